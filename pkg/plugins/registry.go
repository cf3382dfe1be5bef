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

// Package plugins is the extension-point registry for detail views. Plugins
// register against a page slot and contribute opaque fragments; the view
// layer splices them through without interpretation.
package plugins

import (
	"sync"

	"github.com/carverauto/rackview/pkg/models"
)

// Slot names an insertion point on a detail page.
type Slot string

const (
	SlotLeft      Slot = "left"
	SlotRight     Slot = "right"
	SlotFullWidth Slot = "full_width"
)

// Provider produces a fragment for a primary object. A nil fragment
// contributes nothing. Fragments are never validated.
type Provider interface {
	Name() string
	Render(obj any) []byte
}

// ProviderFunc adapts a named function to the Provider interface.
type ProviderFunc struct {
	ProviderName string
	Func         func(obj any) []byte
}

func (p ProviderFunc) Name() string {
	return p.ProviderName
}

func (p ProviderFunc) Render(obj any) []byte {
	return p.Func(obj)
}

// Registry holds the registered providers per slot. Registration happens at
// startup; reads afterwards are safe for concurrent requests.
type Registry struct {
	mu        sync.RWMutex
	providers map[Slot][]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[Slot][]Provider),
	}
}

// Register adds a provider to a slot. Providers run in registration order.
func (r *Registry) Register(slot Slot, provider Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[slot] = append(r.providers[slot], provider)
}

// Fragments runs every provider registered for the slot against obj and
// returns their fragments. Providers returning nil are skipped.
func (r *Registry) Fragments(slot Slot, obj any) []models.Extension {
	r.mu.RLock()
	providers := r.providers[slot]
	r.mu.RUnlock()

	var extensions []models.Extension

	for _, provider := range providers {
		fragment := provider.Render(obj)
		if fragment == nil {
			continue
		}

		extensions = append(extensions, models.Extension{
			Slot:     string(slot),
			Name:     provider.Name(),
			Fragment: fragment,
		})
	}

	return extensions
}
