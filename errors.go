package datagrid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyColumnID is returned for a column without an ID.
	ErrEmptyColumnID = errors.New("empty column ID")

	// ErrDuplicateColumn is returned when two columns share the same ID.
	ErrDuplicateColumn = errors.New("duplicate column ID")

	// ErrUnknownField indicates that a column ID does not address
	// a field of the row type.
	ErrUnknownField = errors.New("column does not address a row field")

	// ErrMissingSortType indicates a sortable column
	// that has neither a sort type nor a custom comparator.
	// Sorting such a column would silently do nothing.
	ErrMissingSortType = errors.New("sortable column without sort type")

	// ErrUnknownSortType is returned when parsing a sort type name
	// that is not one of string, number, date, currency, auto or custom.
	ErrUnknownSortType = errors.New("unknown sort type")

	// ErrUnknownCellType is returned when parsing a cell type name
	// that is not one of text, link, date, dateTime, amount or custom.
	ErrUnknownCellType = errors.New("unknown cell type")

	// ErrMissingCallback indicates a custom cell type without render function
	// or a custom sort type without compare function.
	ErrMissingCallback = errors.New("missing callback")

	// ErrInvalidWidth indicates a MinWidth greater than MaxWidth
	// or a negative width.
	ErrInvalidWidth = errors.New("invalid column width")
)

// ConfigError describes a problem with the configuration
// of a single column. It wraps one of the sentinel errors
// of this package so errors.Is can be used to check the cause.
//
// Example:
//
//	_, err := datagrid.NewTable(accessor, columns, datagrid.Options[Invoice]{})
//	var configErr *datagrid.ConfigError
//	if errors.As(err, &configErr) {
//	    log.Printf("column %q: %s", configErr.Column, configErr.Err)
//	}
type ConfigError struct {
	Column string
	Err    error
}

func newConfigError(column string, err error, format string, args ...any) *ConfigError {
	if format != "" {
		err = fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
	}
	return &ConfigError{Column: column, Err: err}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("datagrid column %q: %s", e.Column, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
