// SPDX-License-Identifier: MIT

// Package dataset reads and writes the delimited text files that feed a
// core.Network and persist a ticket.Store.
//
// The first row of every file is a header; field names are matched without
// regard to case or surrounding blanks. List-valued fields (neighbours, line
// members, ticket paths) are kept as raw strings and split by core.
//
// File writes are whole-file rewrites: records go to a temporary file in the
// target's directory which is then renamed over the target.
package dataset
