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

// Package api provides the HTTP API server for rackview detail views.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/carverauto/rackview/pkg/auth"
	srHttp "github.com/carverauto/rackview/pkg/http"
	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/models"
	"github.com/carverauto/rackview/pkg/render"
	"github.com/carverauto/rackview/pkg/store"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// APIServer serves detail view presentation models over HTTP.
type APIServer struct {
	router       *mux.Router
	store        store.Store
	renderer     *render.Renderer
	authResolver *auth.Resolver
	corsConfig   models.CORSConfig
	logger       logger.Logger
	httpServer   *http.Server
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewAPIServer creates a new API server instance with the given configuration.
func NewAPIServer(corsConfig models.CORSConfig, options ...func(*APIServer)) *APIServer {
	s := &APIServer{
		router:     mux.NewRouter(),
		corsConfig: corsConfig,
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithStore sets the object store backing the detail views.
func WithStore(st store.Store) func(*APIServer) {
	return func(server *APIServer) {
		server.store = st
	}
}

// WithRenderer sets the detail view renderer.
func WithRenderer(r *render.Renderer) func(*APIServer) {
	return func(server *APIServer) {
		server.renderer = r
	}
}

// WithAuthResolver sets the permission resolver for API callers.
func WithAuthResolver(r *auth.Resolver) func(*APIServer) {
	return func(server *APIServer) {
		server.authResolver = r
	}
}

// WithLogger sets the server logger.
func WithLogger(log logger.Logger) func(*APIServer) {
	return func(server *APIServer) {
		server.logger = log
	}
}

func (s *APIServer) setupRoutes() {
	s.router.Use(func(next http.Handler) http.Handler {
		return srHttp.CommonMiddleware(next, s.corsConfig, s.logger)
	})

	s.router.HandleFunc("/api/health", s.getHealth).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/dcim/devices/{id}", s.getDeviceDetail).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/dcim/modules/{id}", s.getModuleDetail).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/virtualization/virtual-machines/{id}", s.getVirtualMachineDetail).Methods(http.MethodGet, http.MethodOptions)
}

// Router exposes the configured router, mainly for tests.
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server until it fails or Shutdown is called.
func (s *APIServer) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	if s.logger != nil {
		s.logger.Info().Str("addr", addr).Msg("API server listening")
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// writeJSONResponse writes a JSON response to the HTTP writer.
func writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errResponse := ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
