package models

// Badge colors follow the inventory UI conventions for lifecycle states.
var statusChoices = map[string]Status{
	"offline":         {Value: "offline", Label: "Offline", Color: "warning"},
	"active":          {Value: "active", Label: "Active", Color: "success"},
	"planned":         {Value: "planned", Label: "Planned", Color: "info"},
	"staged":          {Value: "staged", Label: "Staged", Color: "primary"},
	"failed":          {Value: "failed", Label: "Failed", Color: "danger"},
	"inventory":       {Value: "inventory", Label: "Inventory", Color: "secondary"},
	"decommissioning": {Value: "decommissioning", Label: "Decommissioning", Color: "warning"},
}

// StatusFromValue resolves a stored status value to its badge. Unknown values
// pass through with a neutral badge rather than failing the view.
func StatusFromValue(value string) Status {
	if s, ok := statusChoices[value]; ok {
		return s
	}

	return Status{Value: value, Label: value, Color: "secondary"}
}
