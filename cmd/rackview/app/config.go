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

package app

import (
	"context"
	"errors"

	"github.com/carverauto/rackview/pkg/config"
	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/models"
)

var (
	errListenAddrRequired = errors.New("listen_addr is required")
	errDatabaseRequired   = errors.New("database.dsn is required")
)

// Config is the rackview service configuration.
type Config struct {
	ListenAddr string                `json:"listen_addr"`
	CORS       models.CORSConfig     `json:"cors"`
	Database   models.DatabaseConfig `json:"database"`
	Logging    *logger.Config        `json:"logging"`
	Auth       *models.AuthConfig    `json:"auth"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return errListenAddrRequired
	}

	if c.Database.DSN == "" {
		return errDatabaseRequired
	}

	return nil
}

// LoadConfig reads and validates the service configuration.
func LoadConfig(ctx context.Context, path string, log logger.Logger) (*Config, error) {
	var cfg Config

	loader := config.NewConfig(log)
	if err := loader.LoadAndValidate(ctx, path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
