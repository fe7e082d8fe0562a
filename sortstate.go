package datagrid

import (
	"fmt"
	"strings"
)

// Direction of a sorted column.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Unsorted:
		return ""
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "asc", "desc" or an empty string.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "":
		return Unsorted, nil
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Unsorted, fmt.Errorf("invalid sort direction %q", s)
}

// SortState is the single sorted column of a table and its direction.
// The zero value means unsorted, rows are shown in input order.
type SortState struct {
	Field     string
	Direction Direction
}

// IsSorted tells if a column is sorted.
func (s SortState) IsSorted() bool {
	return s.Field != "" && s.Direction != Unsorted
}

// DirectionOf returns the direction of the column with the passed ID,
// which is Unsorted for all columns except the sorted one.
func (s SortState) DirectionOf(field string) Direction {
	if !s.IsSorted() || s.Field != field {
		return Unsorted
	}
	return s.Direction
}

func (s SortState) String() string {
	if !s.IsSorted() {
		return "unsorted"
	}
	return s.Field + " " + s.Direction.String()
}

// Cycle returns the SortState after a click on the header
// of the column clicked:
//
//	unsorted or other column sorted -> clicked ascending
//	clicked ascending               -> clicked descending
//	clicked descending              -> unsorted
//
// Any previously sorted column becomes unsorted,
// so only one column is sorted at a time.
func Cycle(current SortState, clicked string) SortState {
	if clicked == "" {
		return current
	}
	switch current.DirectionOf(clicked) {
	case Ascending:
		return SortState{Field: clicked, Direction: Descending}
	case Descending:
		return SortState{}
	default:
		return SortState{Field: clicked, Direction: Ascending}
	}
}
