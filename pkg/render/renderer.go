/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package render folds a detail snapshot, a permission context, and the
// plugin registry into a presentation model. Rendering is pure: all data is
// resolved before it starts and no branch can fail.
package render

import (
	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/models"
	"github.com/carverauto/rackview/pkg/plugins"
)

// Placeholder is the fixed marker substituted for absent optional data.
// Detail rows are never blank.
const Placeholder = "—"

// Renderer builds presentation models for detail views.
type Renderer struct {
	registry *plugins.Registry
	logger   logger.Logger
}

// NewRenderer creates a renderer. A nil registry disables extension points.
func NewRenderer(registry *plugins.Registry, log logger.Logger) *Renderer {
	return &Renderer{
		registry: registry,
		logger:   log,
	}
}

// placeholderRow is the cell used whenever optional data is absent.
func placeholderRow(label string) models.Row {
	return models.Row{
		Label:       label,
		Value:       Placeholder,
		Placeholder: true,
	}
}

// refRow renders an optional object reference, falling back to the
// placeholder when the relation is unset.
func refRow(label string, ref *models.ObjectRef) models.Row {
	if ref == nil {
		return placeholderRow(label)
	}

	return models.Row{
		Label: label,
		Value: ref.Name,
		URL:   ref.URL,
	}
}

// textRow renders an optional string attribute.
func textRow(label, value string) models.Row {
	if value == "" {
		return placeholderRow(label)
	}

	return models.Row{
		Label: label,
		Value: value,
	}
}

func statusRow(status models.Status) models.Row {
	return models.Row{
		Label: "Status",
		Value: status.Label,
		Badge: status.Color,
	}
}

// ipRow renders a primary IP binding. Exactly one NAT branch fires: the
// inside target wins over the outside target, and an unpaired address gets
// no annotation at all.
func ipRow(label string, binding *models.IPBinding) models.Row {
	if binding == nil {
		return placeholderRow(label)
	}

	row := models.Row{
		Label: label,
		Value: binding.Address,
		URL:   binding.URL,
	}

	switch {
	case binding.NATInside != nil:
		row.Annotation = "NAT for " + binding.NATInside.Name
	case binding.NATOutside != nil:
		row.Annotation = "NAT: " + binding.NATOutside.Name
	}

	return row
}

// collectionsSection renders related-object counts. A populated collection
// links to its filtered list; an empty one shows the placeholder, never a
// zero and never a dead link.
func collectionsSection(collections []models.RelatedCollection) models.Section {
	section := models.Section{Name: "Components"}

	for _, c := range collections {
		if c.Count == 0 {
			section.Rows = append(section.Rows, placeholderRow(c.Label))
			continue
		}

		section.Rows = append(section.Rows, models.Row{
			Label: c.Label,
			Value: formatCount(c.Count),
			URL:   c.ListURL,
		})
	}

	return section
}

// actionSpec pairs a capability with the affordance it unlocks.
type actionSpec struct {
	capability string
	label      string
	url        string
}

// permittedActions keeps only the affordances the viewer holds capabilities
// for. Missing capabilities are silently dropped.
func permittedActions(specs []actionSpec, perms models.PermissionContext) []models.Action {
	var actions []models.Action

	for _, spec := range specs {
		if !perms.Can(spec.capability) {
			continue
		}

		actions = append(actions, models.Action{
			Key:    spec.capability,
			Label:  spec.label,
			URL:    spec.url,
			Method: "GET",
		})
	}

	return actions
}

// extensions collects plugin fragments for all three page slots.
func (r *Renderer) extensions(obj any) []models.Extension {
	if r.registry == nil {
		return nil
	}

	var out []models.Extension

	for _, slot := range []plugins.Slot{plugins.SlotLeft, plugins.SlotRight, plugins.SlotFullWidth} {
		out = append(out, r.registry.Fragments(slot, obj)...)
	}

	return out
}
