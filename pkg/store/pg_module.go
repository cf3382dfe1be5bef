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

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/carverauto/rackview/pkg/models"
)

const selectModuleSQL = `
SELECT
    m.id, m.status, m.serial, m.asset_tag,
    d.id, d.name,
    mb.id, mb.name,
    mt.id, mt.model,
    mf.id, mf.name
FROM modules m
LEFT JOIN devices d ON d.id = m.device_id
LEFT JOIN module_bays mb ON mb.id = m.module_bay_id
LEFT JOIN module_types mt ON mt.id = m.module_type_id
LEFT JOIN manufacturers mf ON mf.id = mt.manufacturer_id
WHERE m.id = $1`

// GetModuleDetail loads the detail snapshot for an installed module.
func (s *PGStore) GetModuleDetail(ctx context.Context, id int64) (*models.ModuleDetail, error) {
	var (
		module      models.Module
		statusValue string
		assetTag    *string

		deviceID, bayID, typeID, mfID          *int64
		deviceName, bayName, typeModel, mfName *string
	)

	err := s.pool.QueryRow(ctx, selectModuleSQL, id).Scan(
		&module.ID, &statusValue, &module.Serial, &assetTag,
		&deviceID, &deviceName,
		&bayID, &bayName,
		&typeID, &typeModel,
		&mfID, &mfName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: module %d", ErrNotFound, id)
		}

		return nil, fmt.Errorf("%w: module %d: %w", ErrFailedToQuery, id, err)
	}

	module.Status = models.StatusFromValue(statusValue)
	module.AssetTag = assetTag
	module.Device = objectRef(deviceID, deviceName, models.DevicePath)
	module.ModuleBay = objectRef(bayID, bayName, models.ModuleBayPath)
	module.ModuleType = typeRef(typeID, typeModel, mfID, mfName, models.ModuleTypePath)

	return &models.ModuleDetail{Module: module}, nil
}
