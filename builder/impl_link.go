// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// impl_link.go - Link and Stations constructors (topology without lines).

package builder

import "fmt"

const (
	methodLink     = "Link"
	methodStations = "Stations"
)

// Link returns a Constructor that connects a and b without assigning a line,
// e.g. a walking passage between two platforms.
func Link(a, b int) Constructor {
	return func(bp *blueprint, cfg builderConfig) error {
		if a <= 0 || b <= 0 {
			return fmt.Errorf("%s(%d,%d): %w", methodLink, a, b, ErrBadParameter)
		}
		if a == b {
			return fmt.Errorf("%s(%d,%d): self link: %w", methodLink, a, b, ErrBadParameter)
		}
		bp.link(a, b)

		return nil
	}
}

// Stations returns a Constructor that adds stations without links or lines.
func Stations(uids ...int) Constructor {
	return func(bp *blueprint, cfg builderConfig) error {
		for _, uid := range uids {
			if uid <= 0 {
				return fmt.Errorf("%s: uid %d: %w", methodStations, uid, ErrBadParameter)
			}
			bp.addStation(uid)
		}

		return nil
	}
}
