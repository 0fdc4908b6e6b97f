// SPDX-License-Identifier: MIT
package ticket_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/ticket"
)

// memory is an in-memory Source and Sink.
type memory struct {
	header  []string
	records []core.Record
	err     error
}

func (m *memory) ReadRecords() ([]core.Record, error) { return m.records, m.err }

func (m *memory) WriteRecords(header []string, records []core.Record) error {
	if m.err != nil {
		return m.err
	}
	m.header = append([]string(nil), header...)
	m.records = append([]core.Record(nil), records...)

	return nil
}

// sequence returns an IDGenerator yielding ids in turn, then repeating the last.
func sequence(ids ...string) ticket.IDGenerator {
	i := 0
	return func() string {
		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id
	}
}

// network is 1-2-3 on Red, 3-4 on Blue, with 9 unreachable.
func network() *core.Network {
	return builder.MustBuildNetwork(nil,
		builder.Line("Red", 1, 2, 3),
		builder.Line("Blue", 3, 4),
		builder.Stations(9),
	)
}

type StoreSuite struct {
	suite.Suite
	net   *core.Network
	store *ticket.Store
}

func (s *StoreSuite) SetupTest() {
	s.net = network()
	store, err := ticket.NewStore(s.net, ticket.WithIDGenerator(sequence("t1", "t2", "t3", "t4")))
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreSuite) TestPurchaseAndPrice() {
	require := require.New(s.T())

	tk, err := s.store.Purchase(1, 3)
	require.NoError(err)
	require.Equal(&ticket.Ticket{UID: "t1", Start: 1, Stop: 3, Path: []int{1, 2, 3}}, tk)
	require.Equal(20, s.store.Price(tk))

	back, err := s.store.Purchase(4, 1)
	require.NoError(err)
	require.Equal(4, back.Start, "user direction is kept")
	require.Equal([]int{4, 3, 2, 1}, back.Path)
	require.Equal(30, s.store.Price(back))

	got, ok := s.store.Get("t2")
	require.True(ok)
	require.Same(back, got)
	require.Equal(2, s.store.Len())
}

func (s *StoreSuite) TestPurchaseErrors() {
	require := require.New(s.T())

	_, err := s.store.Purchase(2, 2)
	require.ErrorIs(err, ticket.ErrSameStation)

	_, err = s.store.Purchase(1, 9)
	require.ErrorIs(err, ticket.ErrNoRoute)

	_, err = s.store.Purchase(1, 42)
	require.ErrorIs(err, core.ErrNotFound)

	require.Zero(s.store.Len(), "failed purchases store nothing")
}

func (s *StoreSuite) TestRemoveAndList() {
	require := require.New(s.T())

	for _, stop := range []int{2, 3, 4} {
		_, err := s.store.Purchase(1, stop)
		require.NoError(err)
	}
	require.True(s.store.Remove("t2"))
	require.False(s.store.Remove("t2"), "second removal reports absence")
	require.False(s.store.Remove("nope"))

	ids := []string{}
	for _, tk := range s.store.List() {
		ids = append(ids, tk.UID)
	}
	require.Equal([]string{"t1", "t3"}, ids)
}

func (s *StoreSuite) TestQuote() {
	require := require.New(s.T())

	path, price, err := s.store.Quote(1, 4)
	require.NoError(err)
	require.Equal([]int{1, 2, 3, 4}, core.UIDs(path))
	require.Equal(30, price)
	require.Zero(s.store.Len())
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func TestNewStore_Options(t *testing.T) {
	_, err := ticket.NewStore(nil)
	require.ErrorIs(t, err, ticket.ErrNetworkNil)

	tests := []ticket.Option{
		ticket.WithPriceFactor(-1),
		ticket.WithIDGenerator(nil),
		ticket.WithMaxIDAttempts(0),
	}
	for i, opt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := ticket.NewStore(network(), opt)
			require.ErrorIs(t, err, ticket.ErrOptionViolation)
		})
	}

	store, err := ticket.NewStore(network(), ticket.WithPriceFactor(3), ticket.WithLogger(nil))
	require.NoError(t, err)
	require.Equal(t, 3, store.PriceFactor())
}

func TestPrice_ShortPaths(t *testing.T) {
	store, err := ticket.NewStore(network())
	require.NoError(t, err)
	require.Zero(t, store.Price(&ticket.Ticket{Path: []int{1}}))
	require.Zero(t, store.Price(&ticket.Ticket{}))
	require.Zero(t, store.Price(nil))
}

func TestPurchase_IDCollision(t *testing.T) {
	store, err := ticket.NewStore(network(),
		ticket.WithIDGenerator(sequence("dup")),
		ticket.WithMaxIDAttempts(3),
	)
	require.NoError(t, err)

	_, err = store.Purchase(1, 2)
	require.NoError(t, err)
	_, err = store.Purchase(1, 3)
	require.ErrorIs(t, err, ticket.ErrIDExhausted)
	require.Equal(t, 1, store.Len())

	retry, err := ticket.NewStore(network(), ticket.WithIDGenerator(sequence("a", "a", "b")))
	require.NoError(t, err)
	_, err = retry.Purchase(1, 2)
	require.NoError(t, err)
	second, err := retry.Purchase(1, 3)
	require.NoError(t, err)
	require.Equal(t, "b", second.UID, "taken id is retried")
}

func TestNewUUID(t *testing.T) {
	a, b := ticket.NewUUID(), ticket.NewUUID()
	require.Len(t, a, 32)
	require.NotEqual(t, a, b)
	require.Equal(t, byte('4'), a[12], "version 4")
}

func TestPersist_SinkFailure(t *testing.T) {
	store, err := ticket.NewStore(network())
	require.NoError(t, err)
	boom := errors.New("disk full")
	require.ErrorIs(t, store.Persist(&memory{err: boom}), boom)
}

// TestPurchase_ReturnTripMirrorsRoute buys both directions across two
// equal-length routes and expects one route, reversed.
func TestPurchase_ReturnTripMirrorsRoute(t *testing.T) {
	net := builder.MustBuildNetwork(nil,
		builder.Line("A", 1, 2, 6, 4),
		builder.Line("B", 1, 3, 5, 4),
	)
	store, err := ticket.NewStore(net)
	require.NoError(t, err)

	out, err := store.Purchase(1, 4)
	require.NoError(t, err)
	back, err := store.Purchase(4, 1)
	require.NoError(t, err)

	reversed := make([]int, len(back.Path))
	for i, uid := range back.Path {
		reversed[len(back.Path)-1-i] = uid
	}
	require.Equal(t, out.Path, reversed)
}
