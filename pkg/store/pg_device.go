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

const selectDeviceSQL = `
SELECT
    d.id, d.name, d.status, d.serial, d.asset_tag, d.position, d.face,
    d.primary_ip4_id, d.primary_ip6_id,
    s.id, s.name,
    r.id, r.name,
    t.id, t.name,
    dt.id, dt.model,
    mf.id, mf.name,
    ro.id, ro.name,
    p.id, p.name
FROM devices d
LEFT JOIN sites s ON s.id = d.site_id
LEFT JOIN racks r ON r.id = d.rack_id
LEFT JOIN tenants t ON t.id = d.tenant_id
LEFT JOIN device_types dt ON dt.id = d.device_type_id
LEFT JOIN manufacturers mf ON mf.id = dt.manufacturer_id
LEFT JOIN device_roles ro ON ro.id = d.role_id
LEFT JOIN platforms p ON p.id = d.platform_id
WHERE d.id = $1`

// GetDeviceDetail loads the full detail snapshot for a device: the device
// row with all optional references resolved, its primary IP bindings with
// NAT targets, and the per-collection component counts.
func (s *PGStore) GetDeviceDetail(ctx context.Context, id int64) (*models.DeviceDetail, error) {
	var (
		device       models.Device
		statusValue  string
		assetTag     *string
		position     *int
		face         *string
		ip4ID, ip6ID *int64

		siteID, rackID, tenantID, typeID, mfID, roleID, platformID *int64
		siteName, rackName, tenantName, typeModel, mfName          *string
		roleName, platformName                                     *string
	)

	err := s.pool.QueryRow(ctx, selectDeviceSQL, id).Scan(
		&device.ID, &device.Name, &statusValue, &device.Serial, &assetTag, &position, &face,
		&ip4ID, &ip6ID,
		&siteID, &siteName,
		&rackID, &rackName,
		&tenantID, &tenantName,
		&typeID, &typeModel,
		&mfID, &mfName,
		&roleID, &roleName,
		&platformID, &platformName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: device %d", ErrNotFound, id)
		}

		return nil, fmt.Errorf("%w: device %d: %w", ErrFailedToQuery, id, err)
	}

	device.Status = models.StatusFromValue(statusValue)
	device.AssetTag = assetTag
	device.Position = position

	if face != nil {
		device.Face = *face
	}

	device.Site = objectRef(siteID, siteName, models.SitePath)
	device.Rack = objectRef(rackID, rackName, models.RackPath)
	device.Tenant = objectRef(tenantID, tenantName, models.TenantPath)
	device.Role = objectRef(roleID, roleName, models.RolePath)
	device.Platform = objectRef(platformID, platformName, models.PlatformPath)
	device.DeviceType = typeRef(typeID, typeModel, mfID, mfName, models.DeviceTypePath)

	device.PrimaryIP4, err = s.ipBinding(ctx, ip4ID)
	if err != nil {
		return nil, err
	}

	device.PrimaryIP6, err = s.ipBinding(ctx, ip6ID)
	if err != nil {
		return nil, err
	}

	collections, err := s.collectionCounts(ctx, deviceCollections, "device_id", id)
	if err != nil {
		return nil, err
	}

	return &models.DeviceDetail{
		Device:      device,
		Collections: collections,
	}, nil
}

// objectRef builds an optional reference from a nullable joined row. A nil
// id means the relation is unset.
func objectRef(id *int64, name *string, path func(int64) string) *models.ObjectRef {
	if id == nil {
		return nil
	}

	ref := &models.ObjectRef{ID: *id, URL: path(*id)}
	if name != nil {
		ref.Name = *name
	}

	return ref
}

func typeRef(id *int64, model *string, mfID *int64, mfName *string, path func(int64) string) *models.TypeRef {
	base := objectRef(id, model, path)
	if base == nil {
		return nil
	}

	return &models.TypeRef{
		ObjectRef:    *base,
		Manufacturer: objectRef(mfID, mfName, models.ManufacturerPath),
	}
}
