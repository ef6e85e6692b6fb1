// Package table builds the flat, linearized dispatch table for a method
// and fills the GIV index-vector cells of every concrete class that
// participates in it (spec §4.5).
//
// Build computes strides from each dimension's group count exactly as
// lvlath's Dense matrix computes a row-major flat index from (rows,cols)
// (matrix/dense.go's indexOf, generalized from 2 dimensions to k), fills
// every table cell by intersecting the per-dimension group bitmasks and
// handing the surviving candidate overrides to package specificity, and
// finally precomputes each override's next-most-specific link.
//
// Complexity: O(product of per-dimension group counts * k) to fill the
// table, plus O(classes) to fill index vectors.
package table
