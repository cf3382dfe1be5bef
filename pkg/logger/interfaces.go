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

package logger

import (
	"github.com/rs/zerolog"
)

// Logger is the injectable logging interface used by rackview components.
type Logger interface {
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	Fatal() *zerolog.Event
	Panic() *zerolog.Event
	With() zerolog.Context
	WithComponent(component string) zerolog.Logger
	WithFields(fields map[string]interface{}) zerolog.Logger
	SetLevel(level zerolog.Level)
	SetDebug(debug bool)
}

type instance struct {
	logger zerolog.Logger
}

func (i *instance) Trace() *zerolog.Event {
	return i.logger.Trace()
}

func (i *instance) Debug() *zerolog.Event {
	return i.logger.Debug()
}

func (i *instance) Info() *zerolog.Event {
	return i.logger.Info()
}

func (i *instance) Warn() *zerolog.Event {
	return i.logger.Warn()
}

func (i *instance) Error() *zerolog.Event {
	return i.logger.Error()
}

func (i *instance) Fatal() *zerolog.Event {
	return i.logger.Fatal()
}

func (i *instance) Panic() *zerolog.Event {
	return i.logger.Panic()
}

func (i *instance) With() zerolog.Context {
	return i.logger.With()
}

func (i *instance) WithComponent(component string) zerolog.Logger {
	return i.logger.With().Str("component", component).Logger()
}

func (i *instance) WithFields(fields map[string]interface{}) zerolog.Logger {
	ctx := i.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}

	return ctx.Logger()
}

func (i *instance) SetLevel(level zerolog.Level) {
	i.logger = i.logger.Level(level)
}

func (i *instance) SetDebug(debug bool) {
	if debug {
		i.SetLevel(zerolog.DebugLevel)
	} else {
		i.SetLevel(zerolog.InfoLevel)
	}
}
