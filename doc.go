// Package metro is a routing, itinerary and ticketing engine for a small
// metro network served to a single local user through a text menu.
//
// The network is an undirected graph of stations; lines tag which stations
// they serve. Journeys are routed by fewest hops, described with
// change-of-line notices, and sold as tickets priced per hop.
//
// Packages, leaf first:
//
//	core/      - stations, lines, two-phase loading and line-membership queries
//	bfs/       - breadth-first search and fewest-hop shortest paths
//	dfs/       - depth-first traversal and connected components
//	itinerary/ - per-hop line selection and the text itinerary
//	ticket/    - ticket store: purchase, pricing, removal, persistence
//	builder/   - composable constructors for fixture networks
//	dataset/   - delimited record files and atomic rewrite
//	config/    - YAML configuration with environment overrides
//	logging/   - slog handler used across the module
//	menu/      - interactive command loop
//	cmd/metro  - the program entry point
//
// Quick start:
//
//	net := builder.MustBuildNetwork(nil,
//		builder.Line("Red", 1, 2, 3),
//		builder.Line("Blue", 3, 4),
//	)
//	path, _ := bfs.ShortestPath(net, 1, 4)
//	text, _ := itinerary.Render(net, path)
//	fmt.Println(text)
package metro
