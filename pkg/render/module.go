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

// Module builds the presentation model for an installed-module detail page.
func (r *Renderer) Module(detail *models.ModuleDetail, perms models.PermissionContext) *models.PresentationModel {
	module := detail.Module

	moduleSection := models.Section{
		Name: "Module",
		Rows: []models.Row{
			refRow("Device", module.Device),
			refRow("Module Bay", module.ModuleBay),
			typeRow("Module Type", module.ModuleType),
			statusRow(module.Status),
			textRow("Serial Number", module.Serial),
			assetTagRow(module.AssetTag),
		},
	}

	return &models.PresentationModel{
		ObjectType: "dcim.module",
		ObjectID:   module.ID,
		Title:      moduleTitle(module),
		URL:        models.ModulePath(module.ID),
		Sections:   []models.Section{moduleSection},
		Actions:    permittedActions(nil, perms),
		Extensions: r.extensions(module),
	}
}

func moduleTitle(module models.Module) string {
	if module.Device != nil && module.ModuleBay != nil {
		return fmt.Sprintf("%s / %s", module.Device.Name, module.ModuleBay.Name)
	}

	return fmt.Sprintf("Module %d", module.ID)
}
