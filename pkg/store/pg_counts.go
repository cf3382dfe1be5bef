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
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/carverauto/rackview/pkg/models"
)

// collectionSpec describes one child collection of a primary object.
type collectionSpec struct {
	key        string
	label      string
	table      string
	section    string
	collection string
}

var deviceCollections = []collectionSpec{
	{key: "interfaces", label: "Interfaces", table: "interfaces", section: "dcim", collection: "interfaces"},
	{key: "console_ports", label: "Console Ports", table: "console_ports", section: "dcim", collection: "console-ports"},
	{key: "console_server_ports", label: "Console Server Ports", table: "console_server_ports", section: "dcim", collection: "console-server-ports"},
	{key: "power_ports", label: "Power Ports", table: "power_ports", section: "dcim", collection: "power-ports"},
	{key: "power_outlets", label: "Power Outlets", table: "power_outlets", section: "dcim", collection: "power-outlets"},
	{key: "front_ports", label: "Front Ports", table: "front_ports", section: "dcim", collection: "front-ports"},
	{key: "rear_ports", label: "Rear Ports", table: "rear_ports", section: "dcim", collection: "rear-ports"},
	{key: "device_bays", label: "Device Bays", table: "device_bays", section: "dcim", collection: "device-bays"},
	{key: "module_bays", label: "Module Bays", table: "module_bays", section: "dcim", collection: "module-bays"},
	{key: "inventory_items", label: "Inventory Items", table: "inventory_items", section: "dcim", collection: "inventory-items"},
	{key: "services", label: "Services", table: "services", section: "ipam", collection: "services"},
}

var vmCollections = []collectionSpec{
	{key: "interfaces", label: "Interfaces", table: "vm_interfaces", section: "virtualization", collection: "interfaces"},
	{key: "services", label: "Services", table: "services", section: "ipam", collection: "services"},
}

// collectionCounts resolves the child counts for a parent in a single batch
// round trip.
func (s *PGStore) collectionCounts(ctx context.Context, specs []collectionSpec, parentColumn string, parentID int64) ([]models.RelatedCollection, error) {
	batch := &pgx.Batch{}

	for _, spec := range specs {
		batch.Queue(fmt.Sprintf("SELECT count(*) FROM %s WHERE %s = $1", spec.table, parentColumn), parentID)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer func() {
		_ = br.Close()
	}()

	collections := make([]models.RelatedCollection, 0, len(specs))

	for _, spec := range specs {
		var count int

		if err := br.QueryRow().Scan(&count); err != nil {
			return nil, fmt.Errorf("%w: %s count for %s=%d: %w", ErrFailedToQuery, spec.key, parentColumn, parentID, err)
		}

		collections = append(collections, models.RelatedCollection{
			Key:     spec.key,
			Label:   spec.label,
			Count:   count,
			ListURL: models.ComponentListPath(spec.section, spec.collection, parentColumn, parentID),
		})
	}

	return collections, nil
}
