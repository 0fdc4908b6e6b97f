// SPDX-License-Identifier: MIT

// Package builder assembles metro networks from composable, deterministic
// constructors. It is used for test fixtures, examples and demo datasets.
//
//	net, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithNames(map[int]string{1: "Harbor"})},
//		builder.Line("Red", 1, 2, 3),
//		builder.Line("Blue", 3, 4),
//		builder.Link(4, 5),
//		builder.Stations(9),
//	)
//
// Lines link consecutive members; Ring also closes the loop; Link connects two
// stations without any line; Stations adds isolated stations. BuildRecords
// returns the raw station and line records instead of a loaded network.
package builder
