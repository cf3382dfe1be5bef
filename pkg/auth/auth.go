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

// Package auth derives per-viewer permission contexts from API keys.
package auth

import (
	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/models"
)

// Resolver maps an API key to the capability set of its configured role.
type Resolver struct {
	roles  map[string][]string
	keys   map[string]string
	logger logger.Logger
}

// NewResolver builds a resolver from the auth configuration. A nil config
// yields a resolver that grants nothing.
func NewResolver(cfg *models.AuthConfig, log logger.Logger) *Resolver {
	r := &Resolver{
		roles:  map[string][]string{},
		keys:   map[string]string{},
		logger: log,
	}

	if cfg != nil {
		if cfg.Roles != nil {
			r.roles = cfg.Roles
		}

		if cfg.APIKeys != nil {
			r.keys = cfg.APIKeys
		}
	}

	return r
}

// ContextFor resolves the capability set for an API key. Unknown keys and
// unknown roles yield the empty context; missing capabilities are never an
// error, the corresponding affordances are simply absent.
func (r *Resolver) ContextFor(apiKey string) models.PermissionContext {
	perms := models.PermissionContext{}

	if apiKey == "" {
		return perms
	}

	role, ok := r.keys[apiKey]
	if !ok {
		if r.logger != nil {
			r.logger.Debug().Msg("unknown api key, granting empty permission context")
		}

		return perms
	}

	for _, capability := range r.roles[role] {
		perms[capability] = true
	}

	return perms
}
