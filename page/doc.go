// Package page implements the pure addressing model for Hexpage.
//
// Offsets are 0-based byte indices into a single in-memory file. A page is a
// contiguous run of at most CellsPerRow()*RowsPerPage() bytes starting at the
// page position, which is always a row start (a multiple of CellsPerRow()).
// Ranges are inclusive: [Start, End].
package page
