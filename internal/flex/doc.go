// Package flex implements a pure-Go flexbox layout engine in integer
// pixel coordinates.
//
// It supports row/column directions, justify and align modes, line
// wrapping with align-content packing, padding, margin, gap, min/max
// constraints, flex basis, and percentage and fixed dimensions.
//
// The main entry point is [Calculate], which takes a [Node] tree and
// computes an absolute [Rect] for each node. Recalculation is
// incremental: only subtrees marked dirty are revisited.
package flex
