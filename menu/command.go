// SPDX-License-Identifier: MIT
package menu

import "fmt"

// Command is a main-menu choice; its value is the number the user types.
type Command int

const (
	Exit Command = iota
	Purchase
	View
	Delete
	Route
)

// commands lists the menu entries in display order.
var commands = []Command{Purchase, View, Delete, Route, Exit}

func (c Command) String() string {
	switch c {
	case Purchase:
		return "Purchase Tickets"
	case View:
		return "View Tickets"
	case Delete:
		return "Delete Tickets"
	case Route:
		return "Find Route"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Valid reports whether c is a menu entry.
func (c Command) Valid() bool {
	return c >= Exit && c <= Route
}
