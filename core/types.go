// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Station, Line, Network, Record, options and sentinel errors.
// Policy:
//   - Stations and lines are created once during load and never mutated afterwards.
//   - All callers hold non-owning *Network / *Station pointers.
//
// Errors:
//
//	ErrDataFormat    - malformed or referentially inconsistent input records.
//	ErrNotFound      - lookup by uid or name that does not exist.
//	ErrNoCommonLine  - two stations share no line.
package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// Sentinel errors for network loading and queries.
var (
	// ErrDataFormat indicates malformed or referentially inconsistent input:
	// unknown id reference, duplicate id, missing required field.
	ErrDataFormat = errors.New("core: data format error")

	// ErrNotFound indicates a lookup referenced a station or line that does not exist.
	ErrNotFound = errors.New("core: not found")

	// ErrNoCommonLine indicates two stations share no line.
	ErrNoCommonLine = errors.New("core: no common line")
)

// dataFormatf wraps ErrDataFormat with formatted context.
func dataFormatf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrDataFormat}, args...)...)
}

// Field names of the station, line and ticket datasets.
const (
	FieldUID        = "uid"
	FieldName       = "name"
	FieldNeighbours = "neighbours"
	FieldStations   = "stations"
	FieldStartUID   = "start_uid"
	FieldStopUID    = "stop_uid"
	FieldPath       = "path"
)

// DefaultListDelimiter separates ids inside a list field ("2$5$7").
const DefaultListDelimiter = "$"

// Record is one parsed dataset row: field name → raw string value.
type Record map[string]string

// Field returns the named value or ErrDataFormat when the field is missing.
func (r Record) Field(name string) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", dataFormatf("missing field %q", name)
	}

	return v, nil
}

// Station is a node of the metro network.
//
// UID and Name are immutable identity. The neighbour set is symmetric and the
// line set is derived from the loaded lines; both are filled during load.
type Station struct {
	// UID is the externally assigned positive identifier.
	UID int

	// Name is the non-empty display name.
	Name string

	neighbours map[int]*Station
	lines      map[string]struct{}
}

// String returns the display name.
func (s *Station) String() string { return s.Name }

// Neighbors returns the adjacent stations sorted by UID ascending.
func (s *Station) Neighbors() []*Station {
	out := make([]*Station, 0, len(s.neighbours))
	for _, n := range s.neighbours {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })

	return out
}

// NeighborUIDs returns the adjacent station ids sorted ascending.
func (s *Station) NeighborUIDs() []int {
	ids := make([]int, 0, len(s.neighbours))
	for uid := range s.neighbours {
		ids = append(ids, uid)
	}
	sort.Ints(ids)

	return ids
}

// IsNeighbor reports whether other is directly connected to s.
func (s *Station) IsNeighbor(other *Station) bool {
	if s == nil || other == nil {
		return false
	}
	_, ok := s.neighbours[other.UID]

	return ok
}

// Lines returns the names of the lines serving s, sorted.
func (s *Station) Lines() []string {
	out := make([]string, 0, len(s.lines))
	for name := range s.lines {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// OnLine reports whether s is a member of the named line.
func (s *Station) OnLine(name string) bool {
	_, ok := s.lines[name]

	return ok
}

// Line is a named, ordered collection of stations.
type Line struct {
	// Name uniquely identifies the line.
	Name string

	stations []*Station
}

// String returns the line name.
func (l *Line) String() string { return l.Name }

// Stations returns the member stations in their physical order along the line.
func (l *Line) Stations() []*Station {
	out := make([]*Station, len(l.stations))
	copy(out, l.stations)

	return out
}

// Len returns the number of member stations.
func (l *Line) Len() int { return len(l.stations) }

// Option configures how a Network is loaded.
type Option func(*Network)

// WithListDelimiter sets the separator used inside list fields.
// An empty separator keeps the default.
func WithListDelimiter(sep string) Option {
	return func(n *Network) {
		if sep != "" {
			n.listDelim = sep
		}
	}
}

// WithLogger routes load diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Network) {
		if logger != nil {
			n.log = logger
		}
	}
}

// Network owns every Station and Line of the metro.
//
// It is populated by LoadStations followed by LoadLines and is read-only
// afterwards; mu only serializes the line load against concurrent readers.
type Network struct {
	mu sync.RWMutex

	listDelim string
	log       *slog.Logger

	stations map[int]*Station    // uid → station
	byName   map[string]*Station // folded name → station
	lines    map[string]*Line    // name → line
	order    []string            // line names in load order

	linesLoaded bool
}

func newNetwork(opts ...Option) *Network {
	n := &Network{
		listDelim: DefaultListDelimiter,
		log:       slog.Default(),
		stations:  make(map[int]*Station),
		byName:    make(map[string]*Station),
		lines:     make(map[string]*Line),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// ListDelimiter returns the list separator the network was loaded with.
func (n *Network) ListDelimiter() string { return n.listDelim }

// foldName normalizes a station name for case-insensitive lookup.
func foldName(name string) string { return strings.ToLower(strings.TrimSpace(name)) }
