// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nameFn    = DefaultNameFn ("S1","S2",...)
//   • listDelim = core.DefaultListDelimiter

package builder

import "github.com/katalvlaran/metro/core"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Station naming strategy: uid -> display name.
	nameFn NameFn
	// Explicit names that win over nameFn.
	names map[int]string
	// Separator used in emitted list fields.
	listDelim string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:    DefaultNameFn,
		names:     map[int]string{},
		listDelim: core.DefaultListDelimiter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nameOf resolves the display name of uid.
func (c builderConfig) nameOf(uid int) string {
	if name, ok := c.names[uid]; ok {
		return name
	}

	return c.nameFn(uid)
}
