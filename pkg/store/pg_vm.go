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

const selectVirtualMachineSQL = `
SELECT
    vm.id, vm.name, vm.status, vm.vcpus, vm.memory_mb, vm.disk_gb,
    vm.primary_ip4_id, vm.primary_ip6_id,
    c.id, c.name,
    cs.id, cs.name,
    ct.id, ct.name,
    ro.id, ro.name,
    t.id, t.name,
    p.id, p.name
FROM virtual_machines vm
LEFT JOIN clusters c ON c.id = vm.cluster_id
LEFT JOIN sites cs ON cs.id = c.site_id
LEFT JOIN cluster_types ct ON ct.id = c.type_id
LEFT JOIN device_roles ro ON ro.id = vm.role_id
LEFT JOIN tenants t ON t.id = vm.tenant_id
LEFT JOIN platforms p ON p.id = vm.platform_id
WHERE vm.id = $1`

// GetVirtualMachineDetail loads the detail snapshot for a virtual machine:
// the vm→cluster→type traversal, optional references, primary IP bindings,
// and interface/service counts.
func (s *PGStore) GetVirtualMachineDetail(ctx context.Context, id int64) (*models.VMDetail, error) {
	var (
		vm           models.VirtualMachine
		statusValue  string
		ip4ID, ip6ID *int64

		clusterID, clusterSiteID, clusterTypeID, roleID, tenantID, platformID *int64
		clusterName, clusterSiteName, clusterTypeName                         *string
		roleName, tenantName, platformName                                    *string
	)

	err := s.pool.QueryRow(ctx, selectVirtualMachineSQL, id).Scan(
		&vm.ID, &vm.Name, &statusValue, &vm.VCPUs, &vm.MemoryMB, &vm.DiskGB,
		&ip4ID, &ip6ID,
		&clusterID, &clusterName,
		&clusterSiteID, &clusterSiteName,
		&clusterTypeID, &clusterTypeName,
		&roleID, &roleName,
		&tenantID, &tenantName,
		&platformID, &platformName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: virtual machine %d", ErrNotFound, id)
		}

		return nil, fmt.Errorf("%w: virtual machine %d: %w", ErrFailedToQuery, id, err)
	}

	vm.Status = models.StatusFromValue(statusValue)
	vm.Role = objectRef(roleID, roleName, models.RolePath)
	vm.Tenant = objectRef(tenantID, tenantName, models.TenantPath)
	vm.Platform = objectRef(platformID, platformName, models.PlatformPath)

	if cluster := objectRef(clusterID, clusterName, models.ClusterPath); cluster != nil {
		vm.Cluster = &models.ClusterRef{
			ObjectRef: *cluster,
			Site:      objectRef(clusterSiteID, clusterSiteName, models.SitePath),
			Type:      objectRef(clusterTypeID, clusterTypeName, models.ClusterTypePath),
		}
	}

	vm.PrimaryIP4, err = s.ipBinding(ctx, ip4ID)
	if err != nil {
		return nil, err
	}

	vm.PrimaryIP6, err = s.ipBinding(ctx, ip6ID)
	if err != nil {
		return nil, err
	}

	collections, err := s.collectionCounts(ctx, vmCollections, "virtual_machine_id", id)
	if err != nil {
		return nil, err
	}

	return &models.VMDetail{
		VirtualMachine: vm,
		Collections:    collections,
	}, nil
}
