// SPDX-License-Identifier: MIT

// Package ticket owns the purchased tickets: creation, pricing, removal and
// whole-collection persistence.
//
// A ticket freezes the route computed at purchase time. Its price is derived
// from that route as hops × price factor and is never stored.
package ticket

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metro/core"
)

// Sentinel errors returned by Store.
var (
	// ErrNoRoute is returned when the destination cannot be reached.
	ErrNoRoute = errors.New("ticket: no route between stations")

	// ErrSameStation is returned for a purchase whose start equals its stop.
	ErrSameStation = errors.New("ticket: start and stop are the same station")

	// ErrIDExhausted is returned when no unused id was produced within the attempt bound.
	ErrIDExhausted = errors.New("ticket: could not generate a unique id")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("ticket: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ticket: invalid option supplied")
)

// Defaults for Store options.
const (
	DefaultPriceFactor   = 10
	DefaultMaxIDAttempts = 16
)

// Header is the field layout of a persisted ticket collection.
var Header = []string{core.FieldUID, core.FieldStartUID, core.FieldStopUID, core.FieldPath}

// Ticket is a purchased journey. Path runs from Start to Stop inclusive.
type Ticket struct {
	UID   string
	Start int
	Stop  int
	Path  []int
}

// Hops is the number of edges on the frozen path, or zero when it has fewer
// than two stations.
func (t *Ticket) Hops() int {
	if t == nil || len(t.Path) < 2 {
		return 0
	}

	return len(t.Path) - 1
}

// Source yields persisted ticket records.
type Source interface {
	ReadRecords() ([]core.Record, error)
}

// Sink receives the full ticket collection, header first.
type Sink interface {
	WriteRecords(header []string, records []core.Record) error
}

// IDGenerator produces candidate ticket ids.
type IDGenerator func() string

// NewUUID returns a random version 4 UUID in 32-digit hex form.
func NewUUID() string {
	u := uuid.New()

	return fmt.Sprintf("%x", u[:])
}

// Option configures a Store.
// Invalid values are recorded and surfaced by NewStore as ErrOptionViolation.
type Option func(*Store)

// WithPriceFactor sets the price of one hop. Negative factors are rejected.
func WithPriceFactor(factor int) Option {
	return func(s *Store) {
		if factor < 0 {
			s.err = fmt.Errorf("%w: price factor %d < 0", ErrOptionViolation, factor)
			return
		}
		s.factor = factor
	}
}

// WithIDGenerator replaces the uuid based id source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen == nil {
			s.err = fmt.Errorf("%w: nil id generator", ErrOptionViolation)
			return
		}
		s.newID = gen
	}
}

// WithMaxIDAttempts bounds how many ids Purchase tries before ErrIDExhausted.
func WithMaxIDAttempts(n int) Option {
	return func(s *Store) {
		if n <= 0 {
			s.err = fmt.Errorf("%w: max id attempts %d <= 0", ErrOptionViolation, n)
			return
		}
		s.maxAttempts = n
	}
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}
