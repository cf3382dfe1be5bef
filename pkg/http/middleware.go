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

// Package http carries the shared HTTP middleware for the rackview API.
package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/carverauto/rackview/pkg/common"
	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/models"
)

// CommonMiddleware applies CORS headers, short-circuits preflight requests,
// and logs each request with a generated request id.
func CommonMiddleware(next http.Handler, corsConfig models.CORSConfig, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		origin := "*"
		if len(corsConfig.AllowedOrigins) > 0 {
			origin = matchOrigin(r.Header.Get("Origin"), corsConfig.AllowedOrigins)
		}

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if corsConfig.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("X-Request-ID", requestID)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		if log != nil {
			log.Debug().
				Str("request_id", requestID).
				Str("remote_addr", r.RemoteAddr).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
		}

		next.ServeHTTP(w, r.WithContext(common.WithRequestID(r.Context(), requestID)))
	})
}

// matchOrigin returns the request origin when the allow list contains it (or
// a wildcard), otherwise the empty string.
func matchOrigin(origin string, allowed []string) string {
	for _, candidate := range allowed {
		if candidate == "*" {
			return "*"
		}

		if strings.EqualFold(candidate, origin) {
			return origin
		}
	}

	return ""
}

// APIKey extracts the caller's API key from the X-API-Key header or the
// api_key query parameter. An absent key is returned as the empty string;
// authorization decisions belong to the permission layer.
func APIKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}

	return r.URL.Query().Get("api_key")
}
