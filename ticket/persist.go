// SPDX-License-Identifier: MIT
package ticket

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/core"
)

// Persist writes every ticket to sink in insertion order.
func (s *Store) Persist(sink Sink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sep := s.net.ListDelimiter()
	records := make([]core.Record, 0, len(s.order))
	for _, uid := range s.order {
		t := s.tickets[uid]
		records = append(records, core.Record{
			core.FieldUID:      t.UID,
			core.FieldStartUID: strconv.Itoa(t.Start),
			core.FieldStopUID:  strconv.Itoa(t.Stop),
			core.FieldPath:     core.JoinUIDs(t.Path, sep),
		})
	}
	if err := sink.WriteRecords(Header, records); err != nil {
		return fmt.Errorf("ticket: persist: %w", err)
	}
	s.log.Info("tickets saved", "tickets", len(records))

	return nil
}

// Load replaces the collection with the records from source.
//
// A stored path is kept as sold, after checking that it is a walk over the
// current network from start to stop; otherwise the load fails with
// core.ErrDataFormat. A record without a path (the older three-field layout)
// gets its path recomputed, failing with ErrNoRoute when stop is unreachable.
// On any error the current collection is left unchanged.
func (s *Store) Load(source Source) error {
	records, err := source.ReadRecords()
	if err != nil {
		return fmt.Errorf("ticket: load: %w", err)
	}

	staged := make([]*Ticket, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	recomputed := 0
	for i, rec := range records {
		t, fresh, err := s.parse(rec)
		if err != nil {
			return fmt.Errorf("ticket record %d: %w", i+1, err)
		}
		if _, dup := seen[t.UID]; dup {
			return fmt.Errorf("ticket record %d: %w: duplicate uid %q", i+1, core.ErrDataFormat, t.UID)
		}
		seen[t.UID] = struct{}{}
		if fresh {
			recomputed++
		}
		staged = append(staged, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = make(map[string]*Ticket, len(staged))
	s.order = s.order[:0]
	for _, t := range staged {
		s.add(t)
	}
	s.log.Info("tickets loaded", "tickets", len(staged), "recomputed", recomputed)

	return nil
}

// parse builds a ticket from rec; fresh reports a recomputed path.
func (s *Store) parse(rec core.Record) (t *Ticket, fresh bool, err error) {
	uid, err := rec.Field(core.FieldUID)
	if err != nil {
		return nil, false, err
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, false, fmt.Errorf("%w: empty ticket uid", core.ErrDataFormat)
	}
	start, err := s.stationField(rec, core.FieldStartUID)
	if err != nil {
		return nil, false, err
	}
	stop, err := s.stationField(rec, core.FieldStopUID)
	if err != nil {
		return nil, false, err
	}
	t = &Ticket{UID: uid, Start: start, Stop: stop}

	raw := rec[core.FieldPath]
	if strings.TrimSpace(raw) == "" {
		path, err := bfs.ShortestPath(s.net, start, stop)
		if err != nil {
			return nil, false, err
		}
		if len(path) == 0 {
			return nil, false, fmt.Errorf("%w: ticket %s %d→%d", ErrNoRoute, uid, start, stop)
		}
		t.Path = core.UIDs(path)
		s.log.Debug("ticket path recomputed", "uid", uid, "hops", t.Hops())

		return t, true, nil
	}

	if t.Path, err = core.SplitUIDs(raw, s.net.ListDelimiter()); err != nil {
		return nil, false, err
	}
	if err := s.checkWalk(t); err != nil {
		return nil, false, err
	}

	return t, false, nil
}

// stationField parses a station id field and checks it exists.
func (s *Store) stationField(rec core.Record, name string) (int, error) {
	raw, err := rec.Field(name)
	if err != nil {
		return 0, err
	}
	uid, err := core.ParseUID(raw)
	if err != nil {
		return 0, err
	}
	if !s.net.HasStation(uid) {
		return 0, fmt.Errorf("%w: %s %d is not a station", core.ErrDataFormat, name, uid)
	}

	return uid, nil
}

// checkWalk verifies t.Path runs from t.Start to t.Stop over existing links.
func (s *Store) checkWalk(t *Ticket) error {
	p := t.Path
	if p[0] != t.Start || p[len(p)-1] != t.Stop {
		return fmt.Errorf("%w: ticket %s path %v does not run %d→%d",
			core.ErrDataFormat, t.UID, p, t.Start, t.Stop)
	}
	for i := 1; i < len(p); i++ {
		if !s.net.Adjacent(p[i-1], p[i]) {
			return fmt.Errorf("%w: ticket %s path hop %d-%d is not a link",
				core.ErrDataFormat, t.UID, p[i-1], p[i])
		}
	}

	return nil
}
