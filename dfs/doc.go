// Package dfs implements depth-first traversal of a core.Network and the
// connected-component split built on it.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering, and full
//     traversal of every component.
//   - Components: groups stations that can reach one another. Two stations
//     in different components have no route between them.
//
// Why:
//   - Startup diagnostics: a network that splits into several components
//     will answer some route requests with "no route".
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the recursion stack and result maps.
//
// Neighbors are explored in ascending uid order, so Order, Parent and the
// component listing are reproducible.
package dfs
