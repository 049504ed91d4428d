/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package vigenere

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"dirpx.dev/dxvig/dxcore/model"
	"dirpx.dev/dxvig/dxcore/model/settings"
	"dirpx.dev/dxvig/dxcore/telemetry"
)

// state is one published configuration together with its compiled form.
type state struct {
	config settings.Config
	tr     settings.Transformation
}

// Engine is a reconfigurable cipher. It is safe for concurrent use: runs
// read the current state without locking and keep it for their whole
// duration, so a concurrent Reconfigure never changes a run midway.
type Engine struct {
	current atomic.Pointer[state]

	// mu serialises writers. Set reads then replaces the configuration.
	mu sync.Mutex

	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink. A nil *telemetry.Metrics disables
// metrics, which is the default.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New validates cfg and returns an Engine using it.
func New(cfg settings.Config, opts ...Option) (*Engine, error) {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	tr, err := settings.Reconfigure(cfg)
	if err != nil {
		return nil, err
	}
	e.current.Store(&state{config: cfg, tr: tr})
	return e, nil
}

// Encode applies the configured cipher to content.
func (e *Engine) Encode(content string) string {
	return e.Transform(content, true)
}

// Decode applies the inverse of the configured cipher to content.
func (e *Engine) Decode(content string) string {
	return e.Transform(content, false)
}

// Transform encodes or decodes content with the configuration current at
// the start of the call.
func (e *Engine) Transform(content string, encode bool) string {
	s := e.current.Load()
	out, stats := TransformStats(content, s.tr, encode)

	variant := s.tr.Variant.String()
	e.metrics.ObserveTransform(variant, encode, stats.Substituted, stats.Passed, stats.Dropped)
	e.logger.Debug("cipher run",
		"variant", variant,
		"encode", encode,
		"substituted", stats.Substituted,
		"passed", stats.Passed,
		"dropped", stats.Dropped,
	)

	return out
}

// Transformation returns the compiled form of the current configuration.
func (e *Engine) Transformation() settings.Transformation {
	return e.current.Load().tr
}

// Config returns the current configuration.
func (e *Engine) Config() settings.Config {
	return e.current.Load().config
}

// Reconfigure validates cfg and makes it current. If cfg is rejected the
// previous configuration stays active and the error matches
// errors.ErrInvalidConfiguration.
func (e *Engine) Reconfigure(cfg settings.Config) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apply(cfg)
}

// Set changes a single setting by name and reconfigures. Names are the
// settings.Setting* constants.
func (e *Engine) Set(name, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, err := e.current.Load().config.Set(name, value)
	if err != nil {
		e.reject(err)
		return err
	}
	return e.apply(cfg)
}

// apply MUST be called with e.mu held.
func (e *Engine) apply(cfg settings.Config) error {
	tr, err := settings.Reconfigure(cfg)
	if err != nil {
		e.reject(err)
		return err
	}

	prev := e.current.Swap(&state{config: cfg, tr: tr})
	e.metrics.ObserveReconfigure(true)
	e.logger.Info("cipher reconfigured",
		"from", model.SafeString(&prev.config, false),
		"to", model.SafeString(&cfg, false),
	)
	return nil
}

func (e *Engine) reject(err error) {
	e.metrics.ObserveReconfigure(false)
	e.logger.Warn("cipher reconfiguration rejected",
		"config", model.SafeString(&e.current.Load().config, false),
		"error", err,
	)
}
