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

// Package app wires the rackview service together and runs it.
package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/carverauto/rackview/pkg/api"
	"github.com/carverauto/rackview/pkg/auth"
	"github.com/carverauto/rackview/pkg/logger"
	"github.com/carverauto/rackview/pkg/plugins"
	"github.com/carverauto/rackview/pkg/render"
	"github.com/carverauto/rackview/pkg/store"
	"github.com/carverauto/rackview/pkg/version"
)

const shutdownTimeout = 10 * time.Second

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

// Run boots the rackview service using the provided options and blocks until
// the process is signalled or the server fails.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := LoadConfig(ctx, opts.ConfigPath, nil)
	if err != nil {
		return err
	}

	mainLogger, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}

	mainLogger.Info().
		Str("version", version.GetFullVersion()).
		Str("listen_addr", cfg.ListenAddr).
		Msg("starting rackview")

	pool, err := store.NewPool(ctx, &cfg.Database, mainLogger)
	if err != nil {
		return err
	}
	defer pool.Close()

	registry := plugins.NewRegistry()

	server := api.NewAPIServer(cfg.CORS,
		api.WithStore(store.NewPGStore(pool, mainLogger)),
		api.WithRenderer(render.NewRenderer(registry, mainLogger)),
		api.WithAuthResolver(auth.NewResolver(cfg.Auth, mainLogger)),
		api.WithLogger(mainLogger),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.Start(cfg.ListenAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	mainLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
