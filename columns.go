package datagrid

import (
	"errors"
	"slices"
)

// Columns is the ordered column model of a table with rows of type R.
type Columns[R any] []Column[R]

// NewColumns returns the passed columns as Columns
// after validating them against the fields of accessor.
// All configuration problems are returned joined as *ConfigError values.
func NewColumns[R any](accessor FieldAccessor[R], cols ...Column[R]) (Columns[R], error) {
	columns := Columns[R](slices.Clone(cols))
	if err := columns.Validate(accessor); err != nil {
		return nil, err
	}
	return columns, nil
}

// MustNewColumns is like NewColumns but panics on errors.
func MustNewColumns[R any](accessor FieldAccessor[R], cols ...Column[R]) Columns[R] {
	columns, err := NewColumns(accessor, cols...)
	if err != nil {
		panic(err)
	}
	return columns
}

// Validate checks every column and returns all found
// configuration errors joined or nil.
// A nil accessor skips the check if column IDs address row fields.
func (cols Columns[R]) Validate(accessor FieldAccessor[R]) error {
	var (
		errs []error
		seen = make(map[string]bool, len(cols))
	)
	for i := range cols {
		col := &cols[i]
		errs = append(errs, col.validate(accessor)...)
		if col.ID != "" {
			if seen[col.ID] {
				errs = append(errs, newConfigError(col.ID, ErrDuplicateColumn, ""))
			}
			seen[col.ID] = true
		}
	}
	return errors.Join(errs...)
}

// ByID returns the column with the passed id or nil.
func (cols Columns[R]) ByID(id string) *Column[R] {
	if id == "" {
		return nil
	}
	for i := range cols {
		if cols[i].ID == id {
			return &cols[i]
		}
	}
	return nil
}

// IDs returns the IDs of the columns in order.
func (cols Columns[R]) IDs() []string {
	ids := make([]string, len(cols))
	for i := range cols {
		ids[i] = cols[i].ID
	}
	return ids
}

// Labels returns the header labels of the columns in order.
func (cols Columns[R]) Labels() []string {
	labels := make([]string, len(cols))
	for i := range cols {
		labels[i] = cols[i].HeaderLabel()
	}
	return labels
}
