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
	"strconv"

	"github.com/carverauto/rackview/pkg/models"
)

// VirtualMachine builds the presentation model for a VM detail page.
func (r *Renderer) VirtualMachine(detail *models.VMDetail, perms models.PermissionContext) *models.PresentationModel {
	vm := detail.VirtualMachine

	vmSection := models.Section{
		Name: "Virtual Machine",
		Rows: []models.Row{
			statusRow(vm.Status),
			refRow("Role", vm.Role),
			refRow("Platform", vm.Platform),
			refRow("Tenant", vm.Tenant),
		},
	}

	clusterSection := clusterSection(vm.Cluster)

	resourcesSection := models.Section{
		Name: "Resources",
		Rows: []models.Row{
			metricRow("Virtual CPUs", vm.VCPUs, strconv.Itoa),
			metricRow("Memory", vm.MemoryMB, formatMemory),
			metricRow("Disk Space", vm.DiskGB, formatDisk),
		},
	}

	addressingSection := models.Section{
		Name: "Addressing",
		Rows: []models.Row{
			ipRow("Primary IPv4", vm.PrimaryIP4),
			ipRow("Primary IPv6", vm.PrimaryIP6),
		},
	}

	title := vm.Name
	if title == "" {
		title = fmt.Sprintf("Virtual Machine %d", vm.ID)
	}

	return &models.PresentationModel{
		ObjectType: "virtualization.virtualmachine",
		ObjectID:   vm.ID,
		Title:      title,
		URL:        models.VirtualMachinePath(vm.ID),
		Sections: []models.Section{
			vmSection,
			clusterSection,
			resourcesSection,
			addressingSection,
			collectionsSection(detail.Collections),
		},
		Actions:    permittedActions(vmActions(vm.ID), perms),
		Extensions: r.extensions(vm),
	}
}

// clusterSection walks the vm→cluster→type traversal; every hop is optional.
func clusterSection(cluster *models.ClusterRef) models.Section {
	if cluster == nil {
		return models.Section{
			Name: "Cluster",
			Rows: []models.Row{
				placeholderRow("Cluster"),
				placeholderRow("Cluster Type"),
				placeholderRow("Site"),
			},
		}
	}

	return models.Section{
		Name: "Cluster",
		Rows: []models.Row{
			refRow("Cluster", &cluster.ObjectRef),
			refRow("Cluster Type", cluster.Type),
			refRow("Site", cluster.Site),
		},
	}
}

// metricRow renders an optional resource figure. An unset metric shows the
// placeholder, never a zero.
func metricRow(label string, value *int, format func(int) string) models.Row {
	if value == nil {
		return placeholderRow(label)
	}

	return models.Row{
		Label: label,
		Value: format(*value),
	}
}

func vmActions(id int64) []actionSpec {
	return []actionSpec{
		{capability: "add_interface", label: "Add Interface", url: fmt.Sprintf("/virtualization/interfaces/add/?virtual_machine=%d", id)},
		{capability: "add_service", label: "Add Service", url: fmt.Sprintf("/ipam/services/add/?virtual_machine=%d", id)},
	}
}
