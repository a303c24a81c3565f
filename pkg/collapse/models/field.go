// Package models defines data structures for schedule column collapsing.
package models

// Field represents a schedule column as seen by the collapse pass.
type Field struct {
	// Name is the field heading.
	Name string `json:"name"`
	// Hidden reports whether the column is currently hidden.
	Hidden bool `json:"hidden"`
}

// ColumnRange is the half-open interval [First, Terminator) of weight
// field indices.
type ColumnRange struct {
	// First is the index of the first weight field.
	First int `json:"first"`
	// Terminator is the index of the terminator field (exclusive bound).
	Terminator int `json:"terminator"`
	// StartHidden counts hidden fields before First. Hidden fields are
	// absent from the physical grid, so a field index maps to the grid
	// column index minus StartHidden.
	StartHidden int `json:"start_hidden"`
}

// Len returns the number of fields in the range.
func (r ColumnRange) Len() int {
	if r.Terminator <= r.First {
		return 0
	}
	return r.Terminator - r.First
}

// PhysicalColumn translates a field index into a grid column index.
func (r ColumnRange) PhysicalColumn(field int) int {
	return field - r.StartHidden
}

// RowRange is an inclusive range of body rows.
type RowRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Empty reports whether the range holds no rows.
func (r RowRange) Empty() bool {
	return r.Last < r.First
}
