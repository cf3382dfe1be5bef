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

package render

import (
	"fmt"

	"github.com/carverauto/rackview/pkg/models"
)

// Device builds the presentation model for a device detail page.
func (r *Renderer) Device(detail *models.DeviceDetail, perms models.PermissionContext) *models.PresentationModel {
	device := detail.Device

	deviceSection := models.Section{
		Name: "Device",
		Rows: []models.Row{
			refRow("Site", device.Site),
			refRow("Rack", device.Rack),
			positionRow(device),
			refRow("Tenant", device.Tenant),
			deviceTypeRow(device.DeviceType),
			textRow("Serial Number", device.Serial),
			assetTagRow(device.AssetTag),
		},
	}

	managementSection := models.Section{
		Name: "Management",
		Rows: []models.Row{
			statusRow(device.Status),
			refRow("Role", device.Role),
			refRow("Platform", device.Platform),
			ipRow("Primary IPv4", device.PrimaryIP4),
			ipRow("Primary IPv6", device.PrimaryIP6),
		},
	}

	title := device.Name
	if title == "" {
		title = fmt.Sprintf("Device %d", device.ID)
	}

	return &models.PresentationModel{
		ObjectType: "dcim.device",
		ObjectID:   device.ID,
		Title:      title,
		URL:        models.DevicePath(device.ID),
		Sections: []models.Section{
			deviceSection,
			managementSection,
			collectionsSection(detail.Collections),
		},
		Actions:    permittedActions(deviceActions(device.ID), perms),
		Extensions: r.extensions(device),
	}
}

func positionRow(device models.Device) models.Row {
	if device.Position == nil {
		return placeholderRow("Position")
	}

	return models.Row{
		Label: "Position",
		Value: formatPosition(*device.Position, device.Face),
	}
}

// deviceTypeRow shows the hardware model with its manufacturer prefix.
func deviceTypeRow(deviceType *models.TypeRef) models.Row {
	return typeRow("Device Type", deviceType)
}

func typeRow(label string, ref *models.TypeRef) models.Row {
	if ref == nil {
		return placeholderRow(label)
	}

	value := ref.Name
	if ref.Manufacturer != nil {
		value = ref.Manufacturer.Name + " " + ref.Name
	}

	return models.Row{
		Label: label,
		Value: value,
		URL:   ref.URL,
	}
}

func assetTagRow(assetTag *string) models.Row {
	if assetTag == nil {
		return placeholderRow("Asset Tag")
	}

	return textRow("Asset Tag", *assetTag)
}

func deviceActions(id int64) []actionSpec {
	return []actionSpec{
		{capability: "add_interface", label: "Add Interface", url: fmt.Sprintf("/dcim/interfaces/add/?device=%d", id)},
		{capability: "add_console_port", label: "Add Console Port", url: fmt.Sprintf("/dcim/console-ports/add/?device=%d", id)},
		{capability: "add_power_port", label: "Add Power Port", url: fmt.Sprintf("/dcim/power-ports/add/?device=%d", id)},
		{capability: "add_front_port", label: "Add Front Port", url: fmt.Sprintf("/dcim/front-ports/add/?device=%d", id)},
		{capability: "add_rear_port", label: "Add Rear Port", url: fmt.Sprintf("/dcim/rear-ports/add/?device=%d", id)},
		{capability: "add_device_bay", label: "Add Device Bay", url: fmt.Sprintf("/dcim/device-bays/add/?device=%d", id)},
		{capability: "add_module_bay", label: "Add Module Bay", url: fmt.Sprintf("/dcim/module-bays/add/?device=%d", id)},
		{capability: "add_inventory_item", label: "Add Inventory Item", url: fmt.Sprintf("/dcim/inventory-items/add/?device=%d", id)},
		{capability: "add_service", label: "Add Service", url: fmt.Sprintf("/ipam/services/add/?device=%d", id)},
	}
}
