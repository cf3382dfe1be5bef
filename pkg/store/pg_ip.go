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

// nin is the inside address this one is the public translation for; nout is
// the outside address this one translates to. Several outside addresses can
// point at the same inside address, so nout is resolved laterally to the
// lowest id to keep the result a single deterministic row.
const selectIPBindingSQL = `
SELECT
    ip.id, ip.address::text, family(ip.address),
    nin.id, nin.address::text,
    nout.id, nout.address::text
FROM ip_addresses ip
LEFT JOIN ip_addresses nin ON nin.id = ip.nat_inside_id
LEFT JOIN LATERAL (
    SELECT o.id, o.address
    FROM ip_addresses o
    WHERE o.nat_inside_id = ip.id
    ORDER BY o.id
    LIMIT 1
) nout ON true
WHERE ip.id = $1`

// ipBinding resolves a primary IP assignment with its NAT relationship.
// A nil id yields a nil binding, not an error.
func (s *PGStore) ipBinding(ctx context.Context, id *int64) (*models.IPBinding, error) {
	if id == nil {
		return nil, nil
	}

	var (
		binding           models.IPBinding
		ninID, noutID     *int64
		ninAddr, noutAddr *string
	)

	err := s.pool.QueryRow(ctx, selectIPBindingSQL, *id).Scan(
		&binding.ID, &binding.Address, &binding.Family,
		&ninID, &ninAddr,
		&noutID, &noutAddr,
	)
	if err != nil {
		// The parent row referenced this id, so a missing row is a broken
		// reference, not a missing object.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: dangling ip address reference %d", ErrFailedToQuery, *id)
		}

		return nil, fmt.Errorf("%w: ip address %d: %w", ErrFailedToQuery, *id, err)
	}

	binding.URL = models.IPAddressPath(binding.ID)
	binding.NATInside = objectRef(ninID, ninAddr, models.IPAddressPath)
	binding.NATOutside = objectRef(noutID, noutAddr, models.IPAddressPath)

	return &binding, nil
}
