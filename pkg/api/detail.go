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
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carverauto/rackview/pkg/common"
	srHttp "github.com/carverauto/rackview/pkg/http"
	"github.com/carverauto/rackview/pkg/models"
	"github.com/carverauto/rackview/pkg/store"
	"github.com/carverauto/rackview/pkg/version"
)

// objectID parses the {id} path variable. A malformed id is a client error,
// not a lookup failure.
func objectID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *APIServer) permissions(r *http.Request) models.PermissionContext {
	if s.authResolver == nil {
		return models.PermissionContext{}
	}

	return s.authResolver.ContextFor(srHttp.APIKey(r))
}

// writeStoreError maps store failures onto HTTP statuses: a vanished object
// is 404, everything else is an upstream lookup failure and surfaces as 500.
func (s *APIServer) writeStoreError(w http.ResponseWriter, r *http.Request, err error, objectType string, id int64) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, objectType+" not found", http.StatusNotFound)
		return
	}

	if s.logger != nil {
		requestID, _ := common.GetRequestID(r.Context())
		s.logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("object_type", objectType).
			Int64("id", id).
			Msg("detail lookup failed")
	}

	writeError(w, "Internal server error", http.StatusInternalServerError)
}

// @Summary Get device detail view
// @Description Returns the rendered presentation model for a device
// @Tags Devices
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} models.PresentationModel
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dcim/devices/{id} [get]
func (s *APIServer) getDeviceDetail(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, "Invalid device ID", http.StatusBadRequest)
		return
	}

	detail, err := s.store.GetDeviceDetail(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err, "Device", id)
		return
	}

	model := s.renderer.Device(detail, s.permissions(r))
	writeJSONResponse(w, model)
}

// @Summary Get module detail view
// @Description Returns the rendered presentation model for an installed module
// @Tags Modules
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} models.PresentationModel
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dcim/modules/{id} [get]
func (s *APIServer) getModuleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, "Invalid module ID", http.StatusBadRequest)
		return
	}

	detail, err := s.store.GetModuleDetail(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err, "Module", id)
		return
	}

	model := s.renderer.Module(detail, s.permissions(r))
	writeJSONResponse(w, model)
}

// @Summary Get virtual machine detail view
// @Description Returns the rendered presentation model for a virtual machine
// @Tags VirtualMachines
// @Produce json
// @Param id path int true "Virtual machine ID"
// @Success 200 {object} models.PresentationModel
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/virtualization/virtual-machines/{id} [get]
func (s *APIServer) getVirtualMachineDetail(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, "Invalid virtual machine ID", http.StatusBadRequest)
		return
	}

	detail, err := s.store.GetVirtualMachineDetail(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err, "Virtual machine", id)
		return
	}

	model := s.renderer.VirtualMachine(detail, s.permissions(r))
	writeJSONResponse(w, model)
}

func (s *APIServer) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, map[string]string{
		"status":  "ok",
		"version": version.GetFullVersion(),
	})
}
