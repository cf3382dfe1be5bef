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

// Package store resolves inventory objects and their relations from Postgres
// into fully-loaded detail snapshots.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/models"
)

// Store provides read access to detail snapshots. Every snapshot is fully
// resolved before it is returned; callers never trigger lazy loads.
type Store interface {
	GetDeviceDetail(ctx context.Context, id int64) (*models.DeviceDetail, error)
	GetModuleDetail(ctx context.Context, id int64) (*models.ModuleDetail, error)
	GetVirtualMachineDetail(ctx context.Context, id int64) (*models.VMDetail, error)
}

// Querier is the subset of pgxpool.Pool the store depends on.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// NewPool dials the inventory database and returns a pgx pool.
func NewPool(ctx context.Context, cfg *models.DatabaseConfig, log logger.Logger) (*pgxpool.Pool, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, ErrDSNRequired
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}

	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize pool: %w", err)
	}

	if log != nil {
		log.Info().
			Int32("max_conns", poolConfig.MaxConns).
			Msg("connected to inventory database")
	}

	return pool, nil
}

// PGStore is the Postgres-backed Store implementation.
type PGStore struct {
	pool   Querier
	logger logger.Logger
}

// NewPGStore creates a store over an established pool.
func NewPGStore(pool Querier, log logger.Logger) *PGStore {
	return &PGStore{
		pool:   pool,
		logger: log,
	}
}
