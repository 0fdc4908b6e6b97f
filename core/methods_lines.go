// SPDX-License-Identifier: MIT
//
// File: methods_lines.go
// Role: Line registry load, line membership and common-line queries.
package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// LoadLines registers every line record on n and adds the line name to each
// member station's line set. Lines are loaded once; a second call fails.
//
// Errors:
//   - ErrDataFormat on a missing field, empty or duplicate line name, unknown
//     member id, or when lines were already loaded.
func (n *Network) LoadLines(records []Record) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.linesLoaded {
		return dataFormatf("lines already loaded")
	}

	staged := make([]*Line, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		line, err := n.parseLine(rec)
		if err != nil {
			return fmt.Errorf("line record %d: %w", i+1, err)
		}
		if _, dup := seen[line.Name]; dup {
			return fmt.Errorf("line record %d: %w", i+1, dataFormatf("duplicate line %q", line.Name))
		}
		seen[line.Name] = struct{}{}
		staged = append(staged, line)
	}

	// Commit only after every record validated so a failed load leaves no partial state.
	for _, line := range staged {
		for _, st := range line.stations {
			st.lines[line.Name] = struct{}{}
		}
		n.lines[line.Name] = line
		n.order = append(n.order, line.Name)
	}
	n.linesLoaded = true

	n.log.Info("lines loaded", "lines", len(staged))

	return nil
}

// parseLine resolves rec into a Line without registering it.
func (n *Network) parseLine(rec Record) (*Line, error) {
	name, err := rec.Field(FieldName)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dataFormatf("line has an empty name")
	}
	raw, err := rec.Field(FieldStations)
	if err != nil {
		return nil, err
	}
	ids, err := SplitUIDs(raw, n.listDelim)
	if err != nil {
		return nil, err
	}

	line := &Line{Name: name, stations: make([]*Station, 0, len(ids))}
	for _, id := range ids {
		st, ok := n.stations[id]
		if !ok {
			return nil, dataFormatf("line %q references unknown station %d", name, id)
		}
		line.stations = append(line.stations, st)
	}

	return line, nil
}

// Line returns the named line or ErrNotFound.
func (n *Network) Line(name string) (*Line, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	l, ok := n.lines[name]
	if !ok {
		return nil, fmt.Errorf("%w: line %q", ErrNotFound, name)
	}

	return l, nil
}

// Lines returns all lines in load order.
func (n *Network) Lines() []*Line {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*Line, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.lines[name])
	}

	return out
}

// CommonLines returns every line serving both a and b, sorted by name.
func (n *Network) CommonLines(a, b *Station) []string {
	if a == nil || b == nil {
		return nil
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []string
	for name := range a.lines {
		if _, ok := b.lines[name]; ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

// CommonLine returns one line serving both a and b.
//
// When several lines qualify the choice is arbitrary; this implementation
// returns the smallest name so repeated calls on the same pair agree.
// Callers must not depend on which of several shared lines is chosen.
//
// Errors:
//   - ErrNoCommonLine if the stations share no line.
func (n *Network) CommonLine(a, b *Station) (string, error) {
	shared := n.CommonLines(a, b)
	if len(shared) == 0 {
		return "", fmt.Errorf("%w: %s and %s", ErrNoCommonLine, a, b)
	}

	return shared[0], nil
}

// Validate checks that every pair of neighbouring stations shares at least one
// line, which the itinerary builder relies on. All offending pairs are joined
// into a single ErrDataFormat error.
func (n *Network) Validate() error {
	var errs []error
	for _, st := range n.Stations() {
		for _, nb := range st.Neighbors() {
			if nb.UID < st.UID {
				continue
			}
			if len(n.CommonLines(st, nb)) == 0 {
				errs = append(errs, dataFormatf("link %d-%d is not served by any line", st.UID, nb.UID))
			}
		}
	}

	return errors.Join(errs...)
}
