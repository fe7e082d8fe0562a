package datagrid

import (
	"fmt"
	"strings"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// ParseAlign parses "left", "right" or "center".
// An empty string is parsed as AlignLeft.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("invalid align %q", s)
}

// Fixed tells if a column sticks to one side of the table
// when the table is scrolled horizontally.
type Fixed int

const (
	NotFixed Fixed = iota
	FixedLeft
	FixedRight
)

func (f Fixed) String() string {
	switch f {
	case NotFixed:
		return ""
	case FixedLeft:
		return "left"
	case FixedRight:
		return "right"
	}
	return fmt.Sprintf("Fixed(%d)", int(f))
}

// ParseFixed parses "", "left" or "right".
func ParseFixed(s string) (Fixed, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NotFixed, nil
	case "left":
		return FixedLeft, nil
	case "right":
		return FixedRight, nil
	}
	return NotFixed, fmt.Errorf("invalid fixed position %q", s)
}

// CellType determines how the value of a column is displayed.
// It is implemented by TextCell, LinkCell, DateCell, DateTimeCell,
// AmountCell and CustomCell.
// A nil CellType is displayed like TextCell.
type CellType interface {
	// CellTypeName returns the configuration name of the type.
	CellTypeName() string

	cellType()
}

type (
	// TextCell displays the value formatted by Column.Format
	// or as is.
	TextCell struct{}

	// LinkCell displays the value as navigable target.
	LinkCell struct{}

	// DateCell displays a calendar date.
	DateCell struct{}

	// DateTimeCell displays a calendar date with a 12-hour clock time.
	DateTimeCell struct{}

	// AmountCell displays a number with thousands separators
	// but without currency symbol.
	AmountCell struct{}

	// CustomCell renders the whole row with Render.
	// The column ID does not have to address a row field.
	CustomCell[R any] struct {
		Render func(row R) DisplayValue
	}
)

func (TextCell) CellTypeName() string      { return "text" }
func (LinkCell) CellTypeName() string      { return "link" }
func (DateCell) CellTypeName() string      { return "date" }
func (DateTimeCell) CellTypeName() string  { return "dateTime" }
func (AmountCell) CellTypeName() string    { return "amount" }
func (CustomCell[R]) CellTypeName() string { return "custom" }

func (TextCell) cellType()      {}
func (LinkCell) cellType()      {}
func (DateCell) cellType()      {}
func (DateTimeCell) cellType()  {}
func (AmountCell) cellType()    {}
func (CustomCell[R]) cellType() {}

// ParseCellType returns the CellType for a configuration name.
// The name "custom" can't be parsed because a CustomCell
// needs a render function.
func ParseCellType(name string) (CellType, error) {
	switch name {
	case "", "text":
		return TextCell{}, nil
	case "link":
		return LinkCell{}, nil
	case "date":
		return DateCell{}, nil
	case "dateTime", "datetime":
		return DateTimeCell{}, nil
	case "amount":
		return AmountCell{}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCellType, name)
}

// Column describes how one field of a row of type R
// is labeled, displayed and sorted.
type Column[R any] struct {
	// ID addresses the row field displayed by the column
	// and identifies the column in a SortState.
	ID string
	// Label is the header text.
	Label string
	// Type of the cell, nil means TextCell.
	Type CellType

	MinWidth int
	MaxWidth int
	Align    Align
	Fixed    Fixed

	// Sortable enables sorting by header clicks,
	// requires Sort to be set.
	Sortable bool
	// Sort selects the comparison of the column values.
	Sort SortType

	// Format converts the raw value to display text
	// for TextCell, LinkCell and AmountCell columns.
	Format func(value any) string
}

// CellType returns the column's Type or TextCell if Type is nil.
func (c *Column[R]) CellType() CellType {
	if c.Type == nil {
		return TextCell{}
	}
	return c.Type
}

// IsCustom tells if the column renders the whole row
// instead of a single field value.
func (c *Column[R]) IsCustom() bool {
	_, ok := c.Type.(CustomCell[R])
	return ok
}

// HeaderLabel returns Label or the ID in space separated
// Pascal case if Label is empty.
func (c *Column[R]) HeaderLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return SpacePascalCase(c.ID)
}

func (c *Column[R]) validate(accessor FieldAccessor[R]) []error {
	var errs []error
	if c.ID == "" {
		return append(errs, newConfigError(c.Label, ErrEmptyColumnID, ""))
	}
	switch t := c.Type.(type) {
	case CustomCell[R]:
		if t.Render == nil {
			errs = append(errs, newConfigError(c.ID, ErrMissingCallback, "custom cell without Render"))
		}
	case nil, TextCell, LinkCell, DateCell, DateTimeCell, AmountCell:
		if accessor != nil && !accessor.HasField(c.ID) {
			errs = append(errs, newConfigError(c.ID, ErrUnknownField, ""))
		}
	default:
		// Types embedding a cell type or a CustomCell for another row type
		errs = append(errs, newConfigError(c.ID, ErrUnknownCellType, "%T", c.Type))
	}
	switch s := c.Sort.(type) {
	case nil:
		if c.Sortable {
			errs = append(errs, newConfigError(c.ID, ErrMissingSortType, ""))
		}
	case SortCustom:
		if c.Sortable && s.Compare == nil {
			errs = append(errs, newConfigError(c.ID, ErrMissingCallback, "custom sort without Compare"))
		}
	case SortString, SortNumber, SortDate, SortCurrency, SortAuto:
	default:
		errs = append(errs, newConfigError(c.ID, ErrUnknownSortType, "%T", c.Sort))
	}
	if c.MinWidth < 0 || c.MaxWidth < 0 || (c.MaxWidth > 0 && c.MinWidth > c.MaxWidth) {
		errs = append(errs, newConfigError(c.ID, ErrInvalidWidth, "min %d, max %d", c.MinWidth, c.MaxWidth))
	}
	return errs
}
