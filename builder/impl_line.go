// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// impl_line.go - Line and Ring constructors.
//
// Contract:
//   - Line: ≥2 stations, links consecutive members, registers the line.
//   - Ring: ≥3 stations, additionally links last→first.
//   - Member uids must be positive and unique within the line.
//   - A station may belong to several lines; that is how transfers are modelled.

package builder

import "fmt"

const (
	methodLine   = "Line"
	methodRing   = "Ring"
	minLineNodes = 2
	minRingNodes = 3
)

// Line returns a Constructor for a line serving uids in the given order.
func Line(name string, uids ...int) Constructor {
	return func(bp *blueprint, cfg builderConfig) error {
		return addSequence(bp, methodLine, name, uids, minLineNodes, false)
	}
}

// Ring returns a Constructor for a circular line; the last station links back to the first.
func Ring(name string, uids ...int) Constructor {
	return func(bp *blueprint, cfg builderConfig) error {
		return addSequence(bp, methodRing, name, uids, minRingNodes, true)
	}
}

func addSequence(bp *blueprint, method, name string, uids []int, minLen int, closed bool) error {
	if name == "" {
		return fmt.Errorf("%s: empty line name: %w", method, ErrBadParameter)
	}
	if len(uids) < minLen {
		return fmt.Errorf("%s %q: n=%d < min=%d: %w", method, name, len(uids), minLen, ErrTooFewStations)
	}
	seen := make(map[int]struct{}, len(uids))
	for _, uid := range uids {
		if uid <= 0 {
			return fmt.Errorf("%s %q: uid %d: %w", method, name, uid, ErrBadParameter)
		}
		if _, dup := seen[uid]; dup {
			return fmt.Errorf("%s %q: uid %d repeated: %w", method, name, uid, ErrBadParameter)
		}
		seen[uid] = struct{}{}
	}
	if !bp.addLine(name, uids) {
		return fmt.Errorf("%s %q: duplicate line: %w", method, name, ErrConstructFailed)
	}

	for i := 1; i < len(uids); i++ {
		bp.link(uids[i-1], uids[i])
	}
	if closed {
		bp.link(uids[len(uids)-1], uids[0])
	}

	return nil
}
