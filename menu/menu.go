// SPDX-License-Identifier: MIT

// Package menu is the interactive text front end: a numbered main menu for
// buying, viewing and deleting tickets and for looking up routes.
//
// The loop reads from any io.Reader and writes to any io.Writer. Choosing
// Exit, or reaching end of input, persists the ticket store and returns.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/itinerary"
	"github.com/katalvlaran/metro/ticket"
)

// errEOF ends the loop when input runs out.
var errEOF = errors.New("menu: end of input")

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.log = logger
		}
	}
}

// Menu drives one interactive session.
type Menu struct {
	net   *core.Network
	store *ticket.Store
	sink  ticket.Sink
	log   *slog.Logger

	in  *bufio.Scanner
	out io.Writer
}

// New returns a menu over net and store; the store is saved to sink on exit.
func New(net *core.Network, store *ticket.Store, sink ticket.Sink, opts ...Option) *Menu {
	m := &Menu{net: net, store: store, sink: sink, log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run executes commands read from in until Exit or end of input, then
// persists the store. The returned error is the persistence error, if any.
func (m *Menu) Run(in io.Reader, out io.Writer) error {
	m.in = bufio.NewScanner(in)
	m.out = out

	for {
		cmd, err := m.choose()
		if err == nil {
			err = m.dispatch(cmd)
		}
		if errors.Is(err, errEOF) {
			cmd = Exit
		} else if err != nil {
			m.log.Warn("command failed", "command", cmd.String(), "err", err)
			m.printf("Error: %v\n", err)
			continue
		}
		if cmd == Exit {
			return m.exit()
		}
	}
}

func (m *Menu) dispatch(cmd Command) error {
	switch cmd {
	case Purchase:
		return m.purchase()
	case View:
		return m.view()
	case Delete:
		return m.remove()
	case Route:
		return m.route()
	case Exit:
		return nil
	default:
		return fmt.Errorf("menu: unhandled command %d", int(cmd))
	}
}

// choose prints the main menu until a valid command is entered.
func (m *Menu) choose() (Command, error) {
	for {
		m.printf("\n=============[ MAIN MENU ]=============\n\n")
		for _, c := range commands {
			m.printf("[%d] >>> %s\n", int(c), c)
		}
		line, err := m.prompt("\nEnter Option ID: ")
		if err != nil {
			return Exit, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || !Command(n).Valid() {
			m.printf("Not a valid option!\nTry Again...\n")
			continue
		}

		return Command(n), nil
	}
}

func (m *Menu) purchase() error {
	start, stop, err := m.journey()
	if err != nil {
		return err
	}
	path, price, err := m.store.Quote(start.UID, stop.UID)
	if errors.Is(err, ticket.ErrNoRoute) {
		m.printf("No route from %s to %s.\n", start, stop)
		return nil
	}
	if err != nil {
		return err
	}

	m.printf("Starting: %s\nDestination: %s\nStops: %d\nPrice: $%d\n", start, stop, len(path)-1, price)
	for {
		answer, err := m.prompt("Do you wish to purchase this ticket? (y/n)\n")
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "y":
			t, err := m.store.Purchase(start.UID, stop.UID)
			if err != nil {
				return err
			}
			m.printf("Ticket %s purchased.\n", t.UID)
			return nil
		case "n":
			return nil
		default:
			m.printf("Error!\nTry again...\n")
		}
	}
}

// journey asks for two distinct stations.
func (m *Menu) journey() (start, stop *core.Station, err error) {
	if start, err = m.station("starting"); err != nil {
		return nil, nil, err
	}
	for {
		if stop, err = m.station("destination"); err != nil {
			return nil, nil, err
		}
		if stop != start {
			return start, stop, nil
		}
		m.printf("Starting and Destination cannot be the same!\nTry Again...\n")
	}
}

func (m *Menu) view() error {
	m.listTickets()
	_, err := m.prompt("\nPress ENTER to finish viewing...")

	return err
}

func (m *Menu) listTickets() {
	tickets := m.store.List()
	if len(tickets) == 0 {
		m.printf("No tickets.\n")
		return
	}
	for _, t := range tickets {
		m.printf("[%s]: %s => %s ($%d)\n", t.UID, m.name(t.Start), m.name(t.Stop), m.store.Price(t))
	}
}

func (m *Menu) remove() error {
	m.listTickets()
	uid, err := m.prompt("Enter Ticket ID: ")
	if err != nil {
		return err
	}
	if m.store.Remove(uid) {
		m.printf("Ticket with ID: %s has been deleted!\n", uid)
	} else {
		m.printf("Invalid Ticket ID!\n")
	}

	return nil
}

// route prints the itinerary between two stations without buying.
func (m *Menu) route() error {
	start, err := m.station("starting")
	if err != nil {
		return err
	}
	stop, err := m.station("destination")
	if err != nil {
		return err
	}
	path, err := bfs.ShortestPath(m.net, start.UID, stop.UID)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		m.printf("No route from %s to %s.\n", start, stop)
		return nil
	}
	text, err := itinerary.Render(m.net, path)
	if err != nil {
		return err
	}
	m.printf("%s\n", text)

	return nil
}

// station lists the stations and reads an id or a name until one matches.
func (m *Menu) station(role string) (*core.Station, error) {
	for {
		for _, st := range m.net.Stations() {
			m.printf("[%d]: %s\n", st.UID, st.Name)
		}
		line, err := m.prompt(fmt.Sprintf("Enter %s Station ID: ", role))
		if err != nil {
			return nil, err
		}
		if uid, err := strconv.Atoi(line); err == nil {
			if st, err := m.net.Station(uid); err == nil {
				return st, nil
			}
		} else if st, ok := m.net.StationByName(line); ok {
			return st, nil
		}
		m.printf("Not a valid Station ID!\nTry Again...\n")
	}
}

func (m *Menu) name(uid int) string {
	st, err := m.net.Station(uid)
	if err != nil {
		return strconv.Itoa(uid)
	}

	return st.Name
}

func (m *Menu) exit() error {
	if err := m.store.Persist(m.sink); err != nil {
		m.printf("Error saving tickets: %v\n", err)
		return err
	}

	return nil
}

// prompt prints text and returns the next trimmed input line.
func (m *Menu) prompt(text string) (string, error) {
	m.printf("%s", text)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			m.log.Error("reading input", "err", err)
		}
		return "", errEOF
	}

	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
