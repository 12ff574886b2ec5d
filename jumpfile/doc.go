// Package jumpfile reads and writes the plain-text problem format used by the
// jumppath command.
//
// A file holds one or more problem blocks followed by an optional terminator:
//
//	rows cols startRow startCol goalRow goalCol
//	v v v ...        (rows lines of cols non-negative integers)
//	...
//	0
//
// Reading stops at a line consisting of "0" or at end of input. Blank lines
// between blocks are ignored; inside a block every line must carry exactly
// cols integers.
//
// Errors wrap ErrMalformed (with the 1-based line number) or ErrNoProblems.
// Both wrap gridgraph.ErrInvalidConfig.
package jumpfile
