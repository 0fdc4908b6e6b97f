// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator per output: BuildRecords / BuildNetwork(bopts, cons...).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options and constructor order ⇒ identical records.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// Constructor applies a deterministic topology mutation to the staged
// blueprint using the resolved builderConfig.
type Constructor func(bp *blueprint, cfg builderConfig) error

// BuildRecords applies all constructors in order and returns the station and
// line records they describe, in the shape core.LoadStations / LoadLines consume.
func BuildRecords(bopts []BuilderOption, cons ...Constructor) (stations, lines []core.Record, err error) {
	cfg := newBuilderConfig(bopts...)
	bp := newBlueprint()

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildRecords: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(bp, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildRecords: %w", err)
		}
	}
	stations, lines = bp.records(cfg)

	return stations, lines, nil
}

// BuildNetwork is BuildRecords followed by core.LoadStations and LoadLines.
// Any rejection by core is reported as ErrConstructFailed wrapping the core error.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	cfg := newBuilderConfig(bopts...)
	stations, lines, err := BuildRecords(bopts, cons...)
	if err != nil {
		return nil, err
	}

	net, err := core.LoadStations(stations, core.WithListDelimiter(cfg.listDelim))
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
	}
	if err = net.LoadLines(lines); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
	}

	return net, nil
}

// MustBuildNetwork is BuildNetwork for fixtures; it panics on error.
func MustBuildNetwork(bopts []BuilderOption, cons ...Constructor) *core.Network {
	net, err := BuildNetwork(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return net
}
