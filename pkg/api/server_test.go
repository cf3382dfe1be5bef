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

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carverauto/rackview/pkg/auth"
	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/models"
	"github.com/carverauto/rackview/pkg/plugins"
	"github.com/carverauto/rackview/pkg/render"
	"github.com/carverauto/rackview/pkg/store"
)

func intPtr(v int) *int { return &v }

func seededStore() *store.MemoryStore {
	m := store.NewMemoryStore()

	m.PutDevice(&models.DeviceDetail{
		Device: models.Device{
			ID:     42,
			Name:   "edge-sw-01",
			Status: models.StatusFromValue("active"),
			Site:   &models.ObjectRef{ID: 1, Name: "DC1", URL: "/dcim/sites/1/"},
		},
		Collections: []models.RelatedCollection{
			{Key: "interfaces", Label: "Interfaces", Count: 48, ListURL: "/dcim/interfaces/?device_id=42"},
			{Key: "services", Label: "Services", Count: 0, ListURL: "/ipam/services/?device_id=42"},
		},
	})

	m.PutVirtualMachine(&models.VMDetail{
		VirtualMachine: models.VirtualMachine{
			ID:       77,
			Name:     "app-frontend-01",
			Status:   models.StatusFromValue("active"),
			MemoryMB: intPtr(4096),
		},
	})

	m.PutModule(&models.ModuleDetail{
		Module: models.Module{
			ID:     9,
			Status: models.StatusFromValue("active"),
			Device: &models.ObjectRef{ID: 42, Name: "edge-sw-01", URL: "/dcim/devices/42/"},
		},
	})

	return m
}

func newTestServer(t *testing.T, st store.Store) *APIServer {
	t.Helper()

	authResolver := auth.NewResolver(&models.AuthConfig{
		Roles:   map[string][]string{"operator": {"add_interface"}},
		APIKeys: map[string]string{"op-key": "operator"},
	}, logger.NewTestLogger())

	return NewAPIServer(models.CORSConfig{},
		WithStore(st),
		WithRenderer(render.NewRenderer(plugins.NewRegistry(), logger.NewTestLogger())),
		WithAuthResolver(authResolver),
		WithLogger(logger.NewTestLogger()),
	)
}

func doRequest(t *testing.T, server *APIServer, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	server.Router().ServeHTTP(rr, req)

	return rr
}

func TestGetDeviceDetail(t *testing.T) {
	server := newTestServer(t, seededStore())

	rr := doRequest(t, server, "/api/dcim/devices/42", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var model models.PresentationModel
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&model))
	require.Equal(t, "dcim.device", model.ObjectType)
	require.Equal(t, "edge-sw-01", model.Title)
	require.Empty(t, model.Actions)
}

func TestGetDeviceDetailWithPermissions(t *testing.T) {
	server := newTestServer(t, seededStore())

	rr := doRequest(t, server, "/api/dcim/devices/42", map[string]string{"X-API-Key": "op-key"})
	require.Equal(t, http.StatusOK, rr.Code)

	var model models.PresentationModel
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&model))
	require.Len(t, model.Actions, 1)
	require.Equal(t, "add_interface", model.Actions[0].Key)
}

func TestGetDeviceDetailNotFound(t *testing.T) {
	server := newTestServer(t, seededStore())

	rr := doRequest(t, server, "/api/dcim/devices/4040", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, http.StatusNotFound, resp.Status)
}

func TestGetDeviceDetailBadID(t *testing.T) {
	server := newTestServer(t, seededStore())

	rr := doRequest(t, server, "/api/dcim/devices/not-a-number", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

type failingStore struct{}

var errUpstream = errors.New("upstream lookup failure")

func (failingStore) GetDeviceDetail(context.Context, int64) (*models.DeviceDetail, error) {
	return nil, fmt.Errorf("%w: boom", errUpstream)
}

func (failingStore) GetModuleDetail(context.Context, int64) (*models.ModuleDetail, error) {
	return nil, fmt.Errorf("%w: boom", errUpstream)
}

func (failingStore) GetVirtualMachineDetail(context.Context, int64) (*models.VMDetail, error) {
	return nil, fmt.Errorf("%w: boom", errUpstream)
}

func TestUpstreamFailureSurfacesAsServerError(t *testing.T) {
	server := newTestServer(t, failingStore{})

	rr := doRequest(t, server, "/api/dcim/devices/42", nil)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

// contextAwareStore fails the lookup as soon as the request context is done,
// the way a live pgx pool would.
type contextAwareStore struct {
	*store.MemoryStore
}

func (s contextAwareStore) GetDeviceDetail(ctx context.Context, id int64) (*models.DeviceDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrFailedToQuery, err)
	}

	return s.MemoryStore.GetDeviceDetail(ctx, id)
}

func TestClientDisconnectAbortsLookup(t *testing.T) {
	server := newTestServer(t, contextAwareStore{seededStore()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/dcim/devices/42", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	server.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetModuleDetail(t *testing.T) {
	server := newTestServer(t, seededStore())

	rr := doRequest(t, server, "/api/dcim/modules/9", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var model models.PresentationModel
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&model))
	require.Equal(t, "dcim.module", model.ObjectType)
}

func TestGetVirtualMachineDetail(t *testing.T) {
	server := newTestServer(t, seededStore())

	rr := doRequest(t, server, "/api/virtualization/virtual-machines/77", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var model models.PresentationModel
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&model))
	require.Equal(t, "virtualization.virtualmachine", model.ObjectType)
	require.Equal(t, "app-frontend-01", model.Title)
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, seededStore())

	rr := doRequest(t, server, "/api/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["version"])
}
