// SPDX-License-Identifier: MIT

// Package orbit partitions atoms into orbits under a set of permutations by
// breadth-first search.
//
// What
//
//   - Walk explores the orbit of one atom and returns the visit order, the
//     BFS depth of every member, its parent and the permutation that reached it.
//   - Partition labels every atom with the lowest index of its orbit.
//   - Classes groups atoms by label.
//
// Determinism
//
//	Permutations are applied in slice order and atoms are seeded in index
//	order, so results are reproducible.
//
// Complexity (n atoms, k permutations)
//
//   - Time:   O(n·k)
//   - Memory: O(n)
package orbit
