package models

// ObjectRef is a resolved reference to a related inventory object. Optional
// relationships are represented as *ObjectRef; nil means the relation is not
// set and the view layer substitutes its placeholder.
type ObjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Status carries the badge semantics of an object lifecycle state.
type Status struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// TypeRef references a hardware type (device type or module type) together
// with its manufacturer.
type TypeRef struct {
	ObjectRef
	Manufacturer *ObjectRef `json:"manufacturer,omitempty"`
}

// Device represents a physical device as read from the inventory store.
type Device struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Status     Status     `json:"status"`
	Site       *ObjectRef `json:"site,omitempty"`
	Rack       *ObjectRef `json:"rack,omitempty"`
	Position   *int       `json:"position,omitempty"`
	Face       string     `json:"face,omitempty"`
	Tenant     *ObjectRef `json:"tenant,omitempty"`
	DeviceType *TypeRef   `json:"device_type,omitempty"`
	Role       *ObjectRef `json:"role,omitempty"`
	Platform   *ObjectRef `json:"platform,omitempty"`
	Serial     string     `json:"serial,omitempty"`
	AssetTag   *string    `json:"asset_tag,omitempty"`
	PrimaryIP4 *IPBinding `json:"primary_ip4,omitempty"`
	PrimaryIP6 *IPBinding `json:"primary_ip6,omitempty"`
}

// Module represents a field-replaceable module installed in a device bay.
type Module struct {
	ID         int64      `json:"id"`
	Device     *ObjectRef `json:"device,omitempty"`
	ModuleBay  *ObjectRef `json:"module_bay,omitempty"`
	ModuleType *TypeRef   `json:"module_type,omitempty"`
	Status     Status     `json:"status"`
	Serial     string     `json:"serial,omitempty"`
	AssetTag   *string    `json:"asset_tag,omitempty"`
}

// RelatedCollection summarizes a named set of child objects scoped to a
// parent. Only the count and the filtered list location are exposed; the
// members themselves are never loaded for a detail view.
type RelatedCollection struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
	ListURL string `json:"list_url"`
}

// DeviceDetail is the fully-resolved snapshot for a device detail view.
// Every relation the renderer needs is loaded before rendering starts.
type DeviceDetail struct {
	Device      Device              `json:"device"`
	Collections []RelatedCollection `json:"collections"`
}

// ModuleDetail is the fully-resolved snapshot for a module detail view.
type ModuleDetail struct {
	Module Module `json:"module"`
}
