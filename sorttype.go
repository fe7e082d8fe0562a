package datagrid

import "fmt"

// SortType selects how the values of a column are compared.
// It is implemented by SortString, SortNumber, SortDate,
// SortCurrency, SortAuto and SortCustom.
type SortType interface {
	// SortTypeName returns the configuration name of the type.
	SortTypeName() string

	sortType()
}

type (
	// SortString compares case-insensitive and locale-aware.
	SortString struct{}

	// SortNumber compares numerically.
	// Strings are coerced by extracting the first
	// embedded number, so "120 days" compares as 120.
	SortNumber struct{}

	// SortDate compares calendar instants,
	// unparsable dates are sorted like null values.
	SortDate struct{}

	// SortCurrency compares numerically after removing all characters
	// except digits, '.' and '-', so "$1,000.00" compares as 1000.
	SortCurrency struct{}

	// SortAuto compares numerically if both values are numbers,
	// as dates if both values are ISO 8601 times or dates,
	// and as case-insensitive strings otherwise.
	SortAuto struct{}

	// SortCustom delegates the comparison of two non-null values
	// to Compare, only the sign of the result is used.
	// For CustomCell columns whose ID is no row field
	// the compared values are the rows.
	SortCustom struct {
		Compare func(a, b any) int
	}
)

func (SortString) SortTypeName() string   { return "string" }
func (SortNumber) SortTypeName() string   { return "number" }
func (SortDate) SortTypeName() string     { return "date" }
func (SortCurrency) SortTypeName() string { return "currency" }
func (SortAuto) SortTypeName() string     { return "auto" }
func (SortCustom) SortTypeName() string   { return "custom" }

func (SortString) sortType()   {}
func (SortNumber) sortType()   {}
func (SortDate) sortType()     {}
func (SortCurrency) sortType() {}
func (SortAuto) sortType()     {}
func (SortCustom) sortType()   {}

// ParseSortType returns the SortType for a configuration name.
// The name "custom" can't be parsed because SortCustom
// needs a compare function.
func ParseSortType(name string) (SortType, error) {
	switch name {
	case "string":
		return SortString{}, nil
	case "number":
		return SortNumber{}, nil
	case "date":
		return SortDate{}, nil
	case "currency":
		return SortCurrency{}, nil
	case "auto", "default":
		return SortAuto{}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSortType, name)
}
