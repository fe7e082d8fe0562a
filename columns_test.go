package datagrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumns_Validate(t *testing.T) {
	accessor := StructFields[invoice]()

	require.NoError(t, invoiceColumns().Validate(accessor))
	require.NoError(t, Columns[invoice]{{ID: "no field"}}.Validate(nil), "nil accessor skips field check")
	require.NoError(t, Columns[invoice]{{ID: "id", MinWidth: 50}}.Validate(accessor), "MaxWidth 0 is unlimited")

	err := Columns[invoice]{
		{ID: "id"},
		{ID: "id", MinWidth: -1},
		{ID: "rendered", Type: CustomCell[invoice]{Render: func(invoice) DisplayValue { return Text("x") }}},
	}.Validate(accessor)
	require.ErrorIs(t, err, ErrDuplicateColumn)
	require.ErrorIs(t, err, ErrInvalidWidth)
	require.NotErrorIs(t, err, ErrUnknownField, "custom columns need no row field")

	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	require.Equal(t, "id", configErr.Column)
}

func TestConfigError(t *testing.T) {
	err := newConfigError("amount", ErrInvalidWidth, "min %d, max %d", 10, 5)
	require.Equal(t, `datagrid column "amount": invalid column width: min 10, max 5`, err.Error())
	require.ErrorIs(t, err, ErrInvalidWidth)

	err = newConfigError("amount", ErrMissingSortType, "")
	require.Equal(t, `datagrid column "amount": sortable column without sort type`, err.Error())
}

func TestColumns_ByID(t *testing.T) {
	cols := invoiceColumns()
	require.Equal(t, "amt", cols.ByID("amt").ID)
	require.Nil(t, cols.ByID("missing"))
	require.Nil(t, cols.ByID(""))
	require.Equal(t, []string{"customer", "amt", "due", "id"}, cols.IDs())
	require.Equal(t, []string{"Customer", "Amount", "Due", "id"}, cols.Labels())

	cols.ByID("amt").Label = "Total"
	require.Equal(t, "Total", cols[1].Label, "ByID returns a pointer into the slice")
}

func TestNewColumns_CopiesInput(t *testing.T) {
	input := []Column[invoice]{{ID: "customer"}}
	cols, err := NewColumns(StructFields[invoice](), input...)
	require.NoError(t, err)
	cols[0].Label = "Changed"
	require.Equal(t, "", input[0].Label)

	require.Panics(t, func() { MustNewColumns(StructFields[invoice](), Column[invoice]{ID: "nope"}) })
}

func TestColumn_CellType(t *testing.T) {
	col := Column[invoice]{ID: "customer"}
	require.Equal(t, TextCell{}, col.CellType(), "default")
	require.False(t, col.IsCustom())

	col.Type = CustomCell[invoice]{Render: func(invoice) DisplayValue { return Text("") }}
	require.True(t, col.IsCustom())
	require.Equal(t, "custom", col.CellType().CellTypeName())
}

func TestParseCellType(t *testing.T) {
	for name, want := range map[string]CellType{
		"":         TextCell{},
		"text":     TextCell{},
		"link":     LinkCell{},
		"date":     DateCell{},
		"dateTime": DateTimeCell{},
		"datetime": DateTimeCell{},
		"amount":   AmountCell{},
	} {
		got, err := ParseCellType(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
	for _, name := range []string{"custom", "html", "Amount "} {
		_, err := ParseCellType(name)
		require.ErrorIs(t, err, ErrUnknownCellType, name)
	}
}

func TestParseSortType(t *testing.T) {
	for name, want := range map[string]SortType{
		"string":   SortString{},
		"number":   SortNumber{},
		"date":     SortDate{},
		"currency": SortCurrency{},
		"auto":     SortAuto{},
		"default":  SortAuto{},
	} {
		got, err := ParseSortType(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
		require.NotEmpty(t, got.SortTypeName())
	}
	for _, name := range []string{"", "custom", "alpha"} {
		_, err := ParseSortType(name)
		require.ErrorIs(t, err, ErrUnknownSortType, name)
	}
}

func TestParseAlignAndFixed(t *testing.T) {
	align, err := ParseAlign("Right")
	require.NoError(t, err)
	require.Equal(t, AlignRight, align)
	require.Equal(t, "right", align.String())
	_, err = ParseAlign("justify")
	require.Error(t, err)

	fixed, err := ParseFixed("left")
	require.NoError(t, err)
	require.Equal(t, FixedLeft, fixed)
	fixed, err = ParseFixed("")
	require.NoError(t, err)
	require.Equal(t, NotFixed, fixed)
	_, err = ParseFixed("top")
	require.Error(t, err)
}
