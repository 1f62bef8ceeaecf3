// Package maze treats a rectangular text grid as a 4-connected maze.
//
// What:
//
//   - Grid parses rows of runes; '#' is a wall, anything else is open.
//   - Node looks up a cell by coordinate and reports out-of-bounds as absent.
//   - Successors yields open neighbors in the fixed order up, down, left, right.
//   - Components and Distances give region and shortest-step analysis.
//   - Breach finds the fewest walls to knock through between two cells.
//
// Why:
//
//   - Search engines need a fixed, deterministic neighbor order.
//   - Renderers need stable wall/open enumerations.
//   - Distances is an exact oracle for checking search results.
//
// Complexity:
//
//   - Parse, Components, Distances, Breach: O(W×H) time and memory.
//   - Node, InBounds, Successors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or an empty first row.
//   - ErrNonRectangular: rows have differing rune lengths.
//   - ErrOutOfBounds: Breach endpoint outside the grid.
package maze
