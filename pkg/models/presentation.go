package models

import "encoding/json"

// PresentationModel is the structured output of a detail view render: the
// attribute sections, related-object cells, permitted actions, and plugin
// extension fragments for one primary object.
type PresentationModel struct {
	ObjectType string      `json:"object_type"`
	ObjectID   int64       `json:"object_id"`
	Title      string      `json:"title"`
	URL        string      `json:"url"`
	Sections   []Section   `json:"sections"`
	Actions    []Action    `json:"actions,omitempty"`
	Extensions []Extension `json:"extensions,omitempty"`
}

// Section is a named, ordered group of attribute rows.
type Section struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

// Row is a single attribute cell. A row for absent optional data carries the
// placeholder marker as its value and has Placeholder set; it is never blank.
type Row struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	URL         string `json:"url,omitempty"`
	Annotation  string `json:"annotation,omitempty"`
	Badge       string `json:"badge,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Action is a UI affordance the caller is permitted to use. Actions whose
// capability is missing from the permission context are omitted entirely.
type Action struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	URL    string `json:"url"`
	Method string `json:"method"`
}

// Extension is an opaque fragment produced by a registered plugin for one of
// the page slots. The fragment payload is spliced through uninterpreted.
type Extension struct {
	Slot     string          `json:"slot"`
	Name     string          `json:"name"`
	Fragment json.RawMessage `json:"fragment"`
}

// PermissionContext is the per-viewer capability set. Missing capabilities
// are not errors; the corresponding affordance is simply absent.
type PermissionContext map[string]bool

// Can reports whether the named capability is granted.
func (p PermissionContext) Can(capability string) bool {
	return p[capability]
}
