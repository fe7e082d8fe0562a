package datagrid

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultPlaceholder is displayed for missing or malformed values.
	DefaultPlaceholder = "-"
	// DefaultDateLayout formats DateCell values as day-month-year.
	DefaultDateLayout = formatDisplayDate
	// DefaultDateTimeLayout formats DateTimeCell values as
	// day-month-year with a 12-hour clock time.
	DefaultDateTimeLayout = formatDisplayDateTime
)

// Formatter converts cell values to DisplayValues.
// It never fails, malformed values are displayed as Placeholder.
//
// The zero value is usable and equal to NewFormatter().
type Formatter struct {
	// Placeholder for missing or malformed values,
	// DefaultPlaceholder if empty.
	Placeholder string
	// DateLayout for DateCell, DefaultDateLayout if empty.
	DateLayout string
	// DateTimeLayout for DateTimeCell, DefaultDateTimeLayout if empty.
	DateTimeLayout string
	// Location dates are converted to before formatting,
	// times are formatted in their own location if nil.
	Location *time.Location
	// Language for number formatting of AmountCell,
	// English if undefined.
	Language language.Tag
	// Logger for recovered panics of Format and Render callbacks,
	// slog.Default() if nil.
	Logger *slog.Logger
}

// NewFormatter returns a Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		Placeholder:    DefaultPlaceholder,
		DateLayout:     DefaultDateLayout,
		DateTimeLayout: DefaultDateTimeLayout,
		Language:       language.English,
	}
}

// PlaceholderValue returns the placeholder DisplayValue.
func (f *Formatter) PlaceholderValue() DisplayValue {
	if f == nil || f.Placeholder == "" {
		return Placeholder(DefaultPlaceholder)
	}
	return Placeholder(f.Placeholder)
}

// FormatCell returns the DisplayValue of the cell of column col in row.
// CustomCell columns get the whole row passed to their Render function,
// all other cell types format the field value addressed by the column ID.
func FormatCell[R any](f *Formatter, col *Column[R], row R, accessor FieldAccessor[R]) (val DisplayValue) {
	defer func() {
		if r := recover(); r != nil {
			f.logger().Warn("datagrid: recovered panic formatting cell",
				"column", col.ID,
				"row", safeRowID(accessor, row),
				"panic", r,
			)
			val = f.PlaceholderValue()
		}
	}()
	if custom, ok := col.Type.(CustomCell[R]); ok {
		if custom.Render == nil {
			return f.PlaceholderValue()
		}
		return custom.Render(row)
	}
	return f.FormatValue(accessor.FieldValue(row, col.ID), col.Type, col.Format)
}

// FormatValue returns the DisplayValue of a single value
// of a cell of type cellType. The optional format function
// is used for text, link and amount cells.
// CustomCell types can't be formatted without a row
// and result in the placeholder.
func (f *Formatter) FormatValue(value any, cellType CellType, format func(any) string) (val DisplayValue) {
	defer func() {
		if r := recover(); r != nil {
			f.logger().Warn("datagrid: recovered panic formatting value", "panic", r)
			val = f.PlaceholderValue()
		}
	}()
	switch cellType.(type) {
	case nil, TextCell:
		if format != nil {
			if str := format(value); str != "" || !IsNull(value) {
				return Text(str)
			}
			return f.PlaceholderValue()
		}
		if IsNull(value) {
			return f.PlaceholderValue()
		}
		return Text(displayString(value))

	case LinkCell:
		if IsNull(value) {
			return f.PlaceholderValue()
		}
		href := displayString(value)
		if href == "" {
			return f.PlaceholderValue()
		}
		if format != nil {
			return Link(href, format(value))
		}
		return Link(href, href)

	case DateCell:
		return f.formatTime(value, f.dateLayout())

	case DateTimeCell:
		return f.formatTime(value, f.dateTimeLayout())

	case AmountCell:
		if IsNull(value) {
			return f.PlaceholderValue()
		}
		if format != nil {
			return Text(format(value))
		}
		amount, ok := ParseCurrency(value)
		if !ok {
			return f.PlaceholderValue()
		}
		return Text(f.FormatAmount(amount))
	}
	return f.PlaceholderValue()
}

// FormatAmount formats a number with the thousands separator
// and decimal separator of the Formatter's Language
// using at most two fraction digits.
func (f *Formatter) FormatAmount(amount float64) string {
	lang := language.English
	if f != nil && f.Language != language.Und {
		lang = f.Language
	}
	return message.NewPrinter(lang).Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

func (f *Formatter) formatTime(value any, layout string) DisplayValue {
	if IsNull(value) {
		return f.PlaceholderValue()
	}
	t, ok := ParseDate(value)
	if !ok {
		return f.PlaceholderValue()
	}
	if f != nil && f.Location != nil {
		t = t.In(f.Location)
	}
	return Text(t.Format(layout))
}

func (f *Formatter) dateLayout() string {
	if f == nil || f.DateLayout == "" {
		return DefaultDateLayout
	}
	return f.DateLayout
}

func (f *Formatter) dateTimeLayout() string {
	if f == nil || f.DateTimeLayout == "" {
		return DefaultDateTimeLayout
	}
	return f.DateTimeLayout
}

func (f *Formatter) logger() *slog.Logger {
	if f == nil || f.Logger == nil {
		return slog.Default()
	}
	return f.Logger
}

func safeRowID[R any](accessor FieldAccessor[R], row R) (id string) {
	defer func() {
		if recover() != nil {
			id = ""
		}
	}()
	return accessor.RowID(row)
}
