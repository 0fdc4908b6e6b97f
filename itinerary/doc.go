// SPDX-License-Identifier: MIT

// Package itinerary turns a routed station sequence into a travel plan:
// which line to ride on every hop and where the rider must change lines.
//
// Line selection is done once per hop. The line used for the incoming hop is
// kept whenever it also serves the outgoing hop, so a rider is never told to
// change onto a line they could have stayed on. When a line must be chosen,
// the shared line that covers the longest run of upcoming hops is taken.
//
// Rendering is plain text:
//
//	Take Red
//	Alpha
//	Beta
//	change lines from Red to Blue
//	Gamma
//
// A single-station path renders as just that station's name.
package itinerary
