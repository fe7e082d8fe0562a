package datagrid

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatter_FormatValue(t *testing.T) {
	f := NewFormatter()
	tests := []struct {
		name     string
		value    any
		cellType CellType
		format   func(any) string
		want     DisplayValue
	}{
		{name: "text", value: "hello", cellType: TextCell{}, want: Text("hello")},
		{name: "nil type is text", value: 42, cellType: nil, want: Text("42")},
		{name: "text nil", value: nil, cellType: TextCell{}, want: Placeholder("-")},
		{name: "text null sql", value: sql.NullString{}, cellType: TextCell{}, want: Placeholder("-")},
		{name: "text valid sql", value: sql.NullString{String: "x", Valid: true}, cellType: TextCell{}, want: Text("x")},
		{name: "text format", value: 120, cellType: TextCell{}, format: PrintfFormat("%d days"), want: Text("120 days")},
		{name: "text format nil", value: nil, cellType: TextCell{}, format: PrintfFormat("%d days"), want: Placeholder("-")},
		{name: "link", value: "https://example.com", cellType: LinkCell{}, want: Link("https://example.com", "")},
		{name: "link format", value: "/invoices/7", cellType: LinkCell{}, format: func(any) string { return "Invoice 7" }, want: Link("/invoices/7", "Invoice 7")},
		{name: "link nil", value: nil, cellType: LinkCell{}, want: Placeholder("-")},
		{name: "date string", value: "2024-03-01", cellType: DateCell{}, want: Text("01 Mar 2024")},
		{name: "date time", value: time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC), cellType: DateCell{}, want: Text("24 Dec 2024")},
		{name: "date unparsable", value: "someday", cellType: DateCell{}, want: Placeholder("-")},
		{name: "date zero time", value: time.Time{}, cellType: DateCell{}, want: Placeholder("-")},
		{name: "dateTime", value: "2024-03-01T15:04:00Z", cellType: DateTimeCell{}, want: Text("01 Mar 2024, 03:04 PM")},
		{name: "dateTime morning", value: "2024-03-01 09:30:00", cellType: DateTimeCell{}, want: Text("01 Mar 2024, 09:30 AM")},
		{name: "dateTime nil", value: nil, cellType: DateTimeCell{}, want: Placeholder("-")},
		{name: "dateTime nil pointer", value: (*time.Time)(nil), cellType: DateTimeCell{}, want: Placeholder("-")},
		{name: "amount int", value: 1000000, cellType: AmountCell{}, want: Text("1,000,000")},
		{name: "amount float", value: 1234567.891, cellType: AmountCell{}, want: Text("1,234,567.89")},
		{name: "amount string", value: "$1,000.00", cellType: AmountCell{}, want: Text("1,000")},
		{name: "amount currency format", value: 1234.5, cellType: AmountCell{}, format: CurrencyFormat("$", nil), want: Text("$1,234.5")},
		{name: "amount negative currency format", value: -20, cellType: AmountCell{}, format: CurrencyFormat("$", nil), want: Text("-$20")},
		{name: "amount garbage", value: "lots", cellType: AmountCell{}, want: Placeholder("-")},
		{name: "text format panics", value: 1, cellType: TextCell{}, format: func(any) string { panic("boom") }, want: Placeholder("-")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DisplayValue
			require.NotPanics(t, func() { got = f.FormatValue(tt.value, tt.cellType, tt.format) })
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_Settings(t *testing.T) {
	f := &Formatter{
		Placeholder:    "n/a",
		DateLayout:     "2006/01/02",
		DateTimeLayout: time.Kitchen,
		Location:       time.FixedZone("UTC+2", 2*60*60),
		Language:       language.German,
	}
	require.Equal(t, Placeholder("n/a"), f.FormatValue(nil, DateCell{}, nil))
	require.Equal(t, Text("2024/03/01"), f.FormatValue("2024-03-01", DateCell{}, nil))
	require.Equal(t, Text("5:04PM"), f.FormatValue("2024-03-01T15:04:00Z", DateTimeCell{}, nil))
	require.Equal(t, Text("1.234,5"), f.FormatValue(1234.5, AmountCell{}, nil))
}

func TestFormatter_ZeroValue(t *testing.T) {
	var f Formatter
	require.Equal(t, Placeholder(DefaultPlaceholder), f.FormatValue(nil, TextCell{}, nil))
	require.Equal(t, Text("01 Mar 2024"), f.FormatValue("2024-03-01", DateCell{}, nil))
	require.Equal(t, Text("12,345"), f.FormatValue(12345, AmountCell{}, nil))
}

func TestFormatCell(t *testing.T) {
	type product struct {
		ID    string `col:"id"`
		Name  string `col:"name"`
		Stock *int   `col:"stock"`
	}
	accessor := StructFields[product]()
	f := NewFormatter()
	row := product{ID: "p1", Name: "Lamp", Stock: ptr(3)}

	t.Run("field", func(t *testing.T) {
		col := Column[product]{ID: "name"}
		require.Equal(t, Text("Lamp"), FormatCell(f, &col, row, accessor))
	})
	t.Run("pointer field", func(t *testing.T) {
		col := Column[product]{ID: "stock", Type: AmountCell{}}
		require.Equal(t, Text("3"), FormatCell(f, &col, row, accessor))
		require.Equal(t, Placeholder("-"), FormatCell(f, &col, product{ID: "p2"}, accessor))
	})
	t.Run("custom gets whole row", func(t *testing.T) {
		var got product
		col := Column[product]{
			ID: "summary",
			Type: CustomCell[product]{Render: func(p product) DisplayValue {
				got = p
				return Custom("<b>"+p.Name+"</b>", p.Name+" ("+p.ID+")")
			}},
		}
		val := FormatCell(f, &col, row, accessor)
		require.Equal(t, row, got)
		require.Equal(t, DisplayCustom, val.Kind)
		require.Equal(t, "Lamp (p1)", val.Text)
		require.Equal(t, "<b>Lamp</b>", val.Node)
	})
	t.Run("custom render panics", func(t *testing.T) {
		col := Column[product]{
			ID:   "broken",
			Type: CustomCell[product]{Render: func(p product) DisplayValue { panic("boom") }},
		}
		require.Equal(t, Placeholder("-"), FormatCell(f, &col, row, accessor))
	})
}
