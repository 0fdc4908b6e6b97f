// SPDX-License-Identifier: MIT
package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/metro/core"
)

var (
	// ErrEmptyPath is returned when there is nothing to describe.
	ErrEmptyPath = errors.New("itinerary: empty path")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("itinerary: network is nil")

	// ErrNotAdjacent is returned when two consecutive stations are not linked.
	ErrNotAdjacent = errors.New("itinerary: consecutive stations are not adjacent")
)

// Change is a line switch performed at a transfer station.
type Change struct {
	At   *core.Station
	From string
	To   string
}

// Itinerary is a path annotated with the line ridden on each hop.
type Itinerary struct {
	Stops   []*core.Station
	Legs    []string // Legs[i] is the line between Stops[i] and Stops[i+1]
	Changes []Change
}

// Build resolves one line per hop of path and records every line switch.
func Build(net *core.Network, path []*core.Station) (*Itinerary, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	it := &Itinerary{
		Stops: append([]*core.Station(nil), path...),
		Legs:  make([]string, 0, len(path)-1),
	}
	current := ""
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if from == nil || to == nil {
			return nil, fmt.Errorf("itinerary: hop %d: nil station", i)
		}
		if !net.Adjacent(from.UID, to.UID) {
			return nil, fmt.Errorf("%w: %s→%s", ErrNotAdjacent, from, to)
		}
	}
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		line, err := pickLine(net, current, path, i)
		if err != nil {
			return nil, fmt.Errorf("itinerary: hop %s→%s: %w", from, to, err)
		}
		if current != "" && line != current {
			it.Changes = append(it.Changes, Change{At: from, From: current, To: line})
		}
		it.Legs = append(it.Legs, line)
		current = line
	}

	return it, nil
}

// pickLine returns the line for the hop path[i-1]→path[i]. The current line
// is kept while it serves the hop. Otherwise the shared line covering the
// longest run of following hops wins, ties going to the smaller name.
// The resulting number of changes is the minimum for the path.
func pickLine(net *core.Network, current string, path []*core.Station, i int) (string, error) {
	from, to := path[i-1], path[i]
	if current != "" && from.OnLine(current) && to.OnLine(current) {
		return current, nil
	}

	candidates := net.CommonLines(from, to)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %s and %s", core.ErrNoCommonLine, from, to)
	}
	best, bestRun := "", 0
	for _, line := range candidates {
		if run := runLength(path, i, line); run > bestRun {
			best, bestRun = line, run
		}
	}

	return best, nil
}

// runLength counts consecutive hops from path[i-1]→path[i] served by line.
func runLength(path []*core.Station, i int, line string) int {
	n := 0
	for j := i; j < len(path) && path[j-1].OnLine(line) && path[j].OnLine(line); j++ {
		n++
	}

	return n
}

// Hops is the number of edges travelled.
func (it *Itinerary) Hops() int { return len(it.Legs) }

// Transfers is the number of line changes.
func (it *Itinerary) Transfers() int { return len(it.Changes) }

// String renders the itinerary one station per line, with a "Take" header
// and a change notice after each transfer station.
func (it *Itinerary) String() string {
	if len(it.Stops) == 0 {
		return ""
	}
	if len(it.Legs) == 0 {
		return it.Stops[0].Name
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Take %s\n", it.Legs[0])
	sb.WriteString(it.Stops[0].Name)
	for i := 1; i < len(it.Stops); i++ {
		sb.WriteByte('\n')
		sb.WriteString(it.Stops[i].Name)
		if i < len(it.Legs) && it.Legs[i] != it.Legs[i-1] {
			fmt.Fprintf(&sb, "\nchange lines from %s to %s", it.Legs[i-1], it.Legs[i])
		}
	}

	return sb.String()
}

// Render is Build followed by String.
func Render(net *core.Network, path []*core.Station) (string, error) {
	it, err := Build(net, path)
	if err != nil {
		return "", err
	}

	return it.String(), nil
}
