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
	"reflect"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/models"
)

var errNotImplemented = errors.New("not implemented in fake")

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}

	if len(dest) != len(r.values) {
		return fmt.Errorf("fake row has %d values, scan wants %d", len(r.values), len(dest))
	}

	for i, d := range dest {
		dv := reflect.ValueOf(d).Elem()

		if r.values[i] == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}

		dv.Set(reflect.ValueOf(r.values[i]))
	}

	return nil
}

type fakeBatchResults struct {
	counts []int
	idx    int
	err    error
}

func (f *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errNotImplemented
}

func (f *fakeBatchResults) Query() (pgx.Rows, error) {
	return nil, errNotImplemented
}

func (f *fakeBatchResults) QueryRow() pgx.Row {
	if f.err != nil {
		return fakeRow{err: f.err}
	}

	if f.idx >= len(f.counts) {
		return fakeRow{err: pgx.ErrNoRows}
	}

	row := fakeRow{values: []any{f.counts[f.idx]}}
	f.idx++

	return row
}

func (f *fakeBatchResults) Close() error {
	return nil
}

type fakeQuerier struct {
	rows     map[string]fakeRow
	counts   []int
	batchErr error
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	var key string

	switch {
	case strings.Contains(sql, "FROM devices"):
		key = "device"
	case strings.Contains(sql, "FROM modules"):
		key = "module"
	case strings.Contains(sql, "FROM virtual_machines"):
		key = "vm"
	case strings.Contains(sql, "FROM ip_addresses"):
		key = fmt.Sprintf("ip:%v", args[0])
	}

	row, ok := q.rows[key]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}

	return row
}

func (q *fakeQuerier) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults {
	return &fakeBatchResults{counts: q.counts, err: q.batchErr}
}

func i64p(v int64) *int64 { return &v }
func ip(v int) *int       { return &v }
func sp(v string) *string { return &v }

func deviceRow() fakeRow {
	return fakeRow{values: []any{
		int64(42), "edge-sw-01", "active", "SN-9101", nil, ip(12), sp("front"),
		i64p(7), nil,
		i64p(1), sp("DC1"),
		i64p(2), sp("R12"),
		nil, nil,
		i64p(3), sp("QFX5100-48S"),
		i64p(4), sp("Juniper"),
		i64p(5), sp("Access Switch"),
		i64p(6), sp("Junos"),
	}}
}

func ipRowWithNATInside() fakeRow {
	return fakeRow{values: []any{
		int64(7), "203.0.113.10/24", 4,
		i64p(9), sp("10.0.0.10/24"),
		nil, nil,
	}}
}

func TestGetDeviceDetail(t *testing.T) {
	querier := &fakeQuerier{
		rows: map[string]fakeRow{
			"device": deviceRow(),
			"ip:7":   ipRowWithNATInside(),
		},
		counts: []int{48, 1, 0, 2, 0, 0, 0, 0, 4, 0, 3},
	}

	s := NewPGStore(querier, logger.NewTestLogger())

	detail, err := s.GetDeviceDetail(context.Background(), 42)
	require.NoError(t, err)

	device := detail.Device
	require.Equal(t, int64(42), device.ID)
	require.Equal(t, "edge-sw-01", device.Name)
	require.Equal(t, "Active", device.Status.Label)
	require.Equal(t, "success", device.Status.Color)

	require.NotNil(t, device.Site)
	require.Equal(t, "DC1", device.Site.Name)
	require.Equal(t, "/dcim/sites/1/", device.Site.URL)

	require.NotNil(t, device.Rack)
	require.Equal(t, 12, *device.Position)
	require.Equal(t, "front", device.Face)

	require.Nil(t, device.Tenant)
	require.Nil(t, device.AssetTag)

	require.NotNil(t, device.DeviceType)
	require.Equal(t, "QFX5100-48S", device.DeviceType.Name)
	require.NotNil(t, device.DeviceType.Manufacturer)
	require.Equal(t, "Juniper", device.DeviceType.Manufacturer.Name)

	require.NotNil(t, device.PrimaryIP4)
	require.Equal(t, "203.0.113.10/24", device.PrimaryIP4.Address)
	require.NotNil(t, device.PrimaryIP4.NATInside)
	require.Equal(t, "10.0.0.10/24", device.PrimaryIP4.NATInside.Name)
	require.Nil(t, device.PrimaryIP4.NATOutside)

	require.Nil(t, device.PrimaryIP6)

	require.Len(t, detail.Collections, len(deviceCollections))
	require.Equal(t, "interfaces", detail.Collections[0].Key)
	require.Equal(t, 48, detail.Collections[0].Count)
	require.Equal(t, "/dcim/interfaces/?device_id=42", detail.Collections[0].ListURL)
	require.Equal(t, "/ipam/services/?device_id=42", detail.Collections[len(detail.Collections)-1].ListURL)
}

func TestGetDeviceDetailNotFound(t *testing.T) {
	s := NewPGStore(&fakeQuerier{rows: map[string]fakeRow{}}, logger.NewTestLogger())

	_, err := s.GetDeviceDetail(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetDeviceDetailDanglingIPReference(t *testing.T) {
	querier := &fakeQuerier{
		rows: map[string]fakeRow{
			"device": deviceRow(),
		},
		counts: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	s := NewPGStore(querier, logger.NewTestLogger())

	_, err := s.GetDeviceDetail(context.Background(), 42)
	require.ErrorIs(t, err, ErrFailedToQuery)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestGetDeviceDetailCountFailure(t *testing.T) {
	querier := &fakeQuerier{
		rows: map[string]fakeRow{
			"device": deviceRow(),
			"ip:7":   ipRowWithNATInside(),
		},
		batchErr: errors.New("connection reset"),
	}

	s := NewPGStore(querier, logger.NewTestLogger())

	_, err := s.GetDeviceDetail(context.Background(), 42)
	require.ErrorIs(t, err, ErrFailedToQuery)
}

func TestGetModuleDetail(t *testing.T) {
	querier := &fakeQuerier{
		rows: map[string]fakeRow{
			"module": {values: []any{
				int64(9), "failed", "MOD-001", sp("AT-77"),
				i64p(42), sp("edge-sw-01"),
				i64p(11), sp("Slot 1"),
				i64p(12), sp("EX4600-EM-8F"),
				i64p(4), sp("Juniper"),
			}},
		},
	}

	s := NewPGStore(querier, logger.NewTestLogger())

	detail, err := s.GetModuleDetail(context.Background(), 9)
	require.NoError(t, err)

	module := detail.Module
	require.Equal(t, "Failed", module.Status.Label)
	require.Equal(t, "danger", module.Status.Color)
	require.Equal(t, "AT-77", *module.AssetTag)
	require.Equal(t, "/dcim/devices/42/", module.Device.URL)
	require.Equal(t, "Slot 1", module.ModuleBay.Name)
	require.Equal(t, "EX4600-EM-8F", module.ModuleType.Name)
	require.Equal(t, "Juniper", module.ModuleType.Manufacturer.Name)
}

func TestGetVirtualMachineDetail(t *testing.T) {
	querier := &fakeQuerier{
		rows: map[string]fakeRow{
			"vm": {values: []any{
				int64(77), "app-frontend-01", "staged", nil, ip(8192), ip(120),
				nil, i64p(33),
				i64p(20), sp("prod-cluster"),
				i64p(1), sp("DC1"),
				i64p(21), sp("Proxmox"),
				nil, nil,
				i64p(30), sp("Acme Corp"),
				nil, nil,
			}},
			"ip:33": {values: []any{
				int64(33), "2001:db8::10/64", 6,
				nil, nil,
				i64p(40), sp("2001:db8:ffff::10/64"),
			}},
		},
		counts: []int{2, 0},
	}

	s := NewPGStore(querier, logger.NewTestLogger())

	detail, err := s.GetVirtualMachineDetail(context.Background(), 77)
	require.NoError(t, err)

	vm := detail.VirtualMachine
	require.Equal(t, "Staged", vm.Status.Label)
	require.Nil(t, vm.VCPUs)
	require.Equal(t, 8192, *vm.MemoryMB)
	require.Equal(t, 120, *vm.DiskGB)

	require.NotNil(t, vm.Cluster)
	require.Equal(t, "prod-cluster", vm.Cluster.Name)
	require.Equal(t, "DC1", vm.Cluster.Site.Name)
	require.Equal(t, "Proxmox", vm.Cluster.Type.Name)

	require.Nil(t, vm.PrimaryIP4)
	require.NotNil(t, vm.PrimaryIP6)
	require.Nil(t, vm.PrimaryIP6.NATInside)
	require.Equal(t, "2001:db8:ffff::10/64", vm.PrimaryIP6.NATOutside.Name)

	require.Len(t, detail.Collections, len(vmCollections))
	require.Equal(t, "/virtualization/interfaces/?virtual_machine_id=77", detail.Collections[0].ListURL)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	m.PutDevice(&models.DeviceDetail{Device: models.Device{ID: 1, Name: "dev"}})

	detail, err := m.GetDeviceDetail(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "dev", detail.Device.Name)

	_, err = m.GetDeviceDetail(context.Background(), 2)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = m.GetModuleDetail(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = m.GetVirtualMachineDetail(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}
