// SPDX-License-Identifier: MIT
package ticket

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/core"
)

// Store is the mutable ticket collection for one network.
// It is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	net         *core.Network
	factor      int
	newID       IDGenerator
	maxAttempts int
	log         *slog.Logger
	err         error

	tickets map[string]*Ticket
	order   []string // insertion order of tickets keys
}

// NewStore returns an empty store bound to net.
func NewStore(net *core.Network, opts ...Option) (*Store, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	s := &Store{
		net:         net,
		factor:      DefaultPriceFactor,
		newID:       NewUUID,
		maxAttempts: DefaultMaxIDAttempts,
		log:         slog.Default(),
		tickets:     make(map[string]*Ticket),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, s.err
	}

	return s, nil
}

// PriceFactor is the price of a single hop.
func (s *Store) PriceFactor() int { return s.factor }

// Price is (len(path)-1) × factor, zero for a path of fewer than two stations.
func (s *Store) Price(t *Ticket) int {
	return t.Hops() * s.factor
}

// Quote returns the route and price Purchase would use, without buying.
func (s *Store) Quote(start, stop int) ([]*core.Station, int, error) {
	path, err := s.route(start, stop)
	if err != nil {
		return nil, 0, err
	}

	return path, (len(path) - 1) * s.factor, nil
}

// route finds the start→stop path, rejecting same-station and unreachable pairs.
func (s *Store) route(start, stop int) ([]*core.Station, error) {
	if start == stop {
		return nil, fmt.Errorf("%w: %d", ErrSameStation, start)
	}
	path, err := bfs.ShortestPath(s.net, start, stop)
	if err != nil {
		return nil, fmt.Errorf("ticket: route %d→%d: %w", start, stop, err)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoRoute, start, stop)
	}

	return path, nil
}

// Purchase routes start→stop and stores a ticket under a fresh id.
//
// Errors:
//   - ErrSameStation when start == stop.
//   - an error wrapping core.ErrNotFound for an unknown station.
//   - ErrNoRoute when stop is unreachable.
//   - ErrIDExhausted when every generated id was already taken.
func (s *Store) Purchase(start, stop int) (*Ticket, error) {
	path, err := s.route(start, stop)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uid, err := s.uniqueID()
	if err != nil {
		return nil, err
	}
	t := &Ticket{UID: uid, Start: start, Stop: stop, Path: core.UIDs(path)}
	s.add(t)

	s.log.Debug("ticket purchased", "uid", uid, "start", start, "stop", stop, "hops", t.Hops())

	return t, nil
}

// uniqueID draws ids until one is unused. Caller holds s.mu.
func (s *Store) uniqueID() (string, error) {
	for i := 0; i < s.maxAttempts; i++ {
		uid := s.newID()
		if uid == "" {
			continue
		}
		if _, taken := s.tickets[uid]; !taken {
			return uid, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrIDExhausted, s.maxAttempts)
}

// add stores t. Caller holds s.mu.
func (s *Store) add(t *Ticket) {
	s.tickets[t.UID] = t
	s.order = append(s.order, t.UID)
}

// Remove deletes the ticket with uid and reports whether it existed.
func (s *Store) Remove(uid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[uid]; !ok {
		return false
	}
	delete(s.tickets, uid)
	for i, id := range s.order {
		if id == uid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.log.Debug("ticket removed", "uid", uid)

	return true
}

// Get returns the ticket with uid.
func (s *Store) Get(uid string) (*Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[uid]

	return t, ok
}

// List returns all tickets in insertion order.
func (s *Store) List() []*Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Ticket, 0, len(s.order))
	for _, uid := range s.order {
		out = append(out, s.tickets[uid])
	}

	return out
}

// Len is the number of stored tickets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tickets)
}
