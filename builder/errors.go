// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.

package builder

import "errors"

// ErrTooFewStations indicates a topology constructor received fewer stations
// than its minimum (Line needs 2, Ring needs 3).
var ErrTooFewStations = errors.New("builder: too few stations")

// ErrBadParameter indicates an invalid argument: non-positive uid, empty line
// name, self link, or a station repeated inside one line.
var ErrBadParameter = errors.New("builder: bad parameter")

// ErrConstructFailed indicates the composition itself failed (nil constructor,
// duplicate line) or the resulting records were rejected by core.
var ErrConstructFailed = errors.New("builder: construction failed")
