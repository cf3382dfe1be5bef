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
	"sync"

	"github.com/carverauto/rackview/pkg/models"
)

// MemoryStore is an in-memory Store used by tests and local tooling.
type MemoryStore struct {
	mu      sync.RWMutex
	devices map[int64]*models.DeviceDetail
	modules map[int64]*models.ModuleDetail
	vms     map[int64]*models.VMDetail
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		devices: make(map[int64]*models.DeviceDetail),
		modules: make(map[int64]*models.ModuleDetail),
		vms:     make(map[int64]*models.VMDetail),
	}
}

// PutDevice stores a device detail snapshot.
func (m *MemoryStore) PutDevice(detail *models.DeviceDetail) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.devices[detail.Device.ID] = detail
}

// PutModule stores a module detail snapshot.
func (m *MemoryStore) PutModule(detail *models.ModuleDetail) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.modules[detail.Module.ID] = detail
}

// PutVirtualMachine stores a virtual machine detail snapshot.
func (m *MemoryStore) PutVirtualMachine(detail *models.VMDetail) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vms[detail.VirtualMachine.ID] = detail
}

func (m *MemoryStore) GetDeviceDetail(_ context.Context, id int64) (*models.DeviceDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	detail, ok := m.devices[id]
	if !ok {
		return nil, fmt.Errorf("%w: device %d", ErrNotFound, id)
	}

	return detail, nil
}

func (m *MemoryStore) GetModuleDetail(_ context.Context, id int64) (*models.ModuleDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	detail, ok := m.modules[id]
	if !ok {
		return nil, fmt.Errorf("%w: module %d", ErrNotFound, id)
	}

	return detail, nil
}

func (m *MemoryStore) GetVirtualMachineDetail(_ context.Context, id int64) (*models.VMDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	detail, ok := m.vms[id]
	if !ok {
		return nil, fmt.Errorf("%w: virtual machine %d", ErrNotFound, id)
	}

	return detail, nil
}
