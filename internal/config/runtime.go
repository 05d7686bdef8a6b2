package config

import "sync/atomic"

// Runtime holds the live configuration so a file-watch reload can swap it
// without restarting the server. Readers always see a complete Config.
type Runtime struct {
	current atomic.Pointer[Config]
}

// NewRuntime wraps an initial configuration.
func NewRuntime(cfg *Config) *Runtime {
	r := &Runtime{}
	r.current.Store(cfg)
	return r
}

// Current returns the live configuration. The returned value must be
// treated as read-only.
func (r *Runtime) Current() *Config {
	return r.current.Load()
}

// Replace swaps in a new configuration.
func (r *Runtime) Replace(cfg *Config) {
	r.current.Store(cfg)
}
