package csvgrid

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/domonda/go-datagrid"
)

func renderView(rows []map[string]any, loading bool) *datagrid.View {
	accessor := datagrid.MapFields("id", "name", "city", "site")
	columns := datagrid.MustNewColumns(accessor,
		datagrid.Column[map[string]any]{ID: "name", Label: "Name", Sortable: true, Sort: datagrid.SortString{}},
		datagrid.Column[map[string]any]{ID: "city", Label: "City"},
		datagrid.Column[map[string]any]{ID: "site", Label: "Site", Type: datagrid.LinkCell{}, Format: func(any) string { return "web" }},
	)
	table, err := datagrid.NewTable(accessor, columns, datagrid.Options[map[string]any]{
		InitialSort: datagrid.SortState{Field: "name", Direction: datagrid.Ascending},
	})
	if err != nil {
		panic(err)
	}
	return table.Render(datagrid.RenderInput[map[string]any]{Rows: rows, Loading: loading})
}

var customers = []map[string]any{
	{"id": 1, "name": "Müller", "city": "Wien", "site": "https://mueller.at"},
	{"id": 2, "name": "Acme; Inc.", "city": nil, "site": nil},
	{"id": 3, "name": `Bob "the" Builder`, "city": "Graz\r\nSüd", "site": "https://bob.example"},
}

func ExampleWriter() {
	view := renderView(customers, false)
	err := NewWriter().
		WithDelimiter(',').
		WithNewLine("\n").
		WithNilValue("n/a").
		Write(context.Background(), os.Stdout, view, true)
	if err != nil {
		panic(err)
	}

	// Output:
	// Name,City,Site
	// Acme; Inc.,n/a,n/a
	// "Bob ""the"" Builder","Graz
	// Süd",web
	// Müller,Wien,web
}

func TestWriter_Write(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		writer   *Writer
		view     *datagrid.View
		header   bool
		wantDest string
	}{
		{
			name:     "default",
			writer:   NewWriter(),
			view:     renderView(customers[:2], false),
			header:   false,
			wantDest: "\"Acme; Inc.\";;\r\nMüller;Wien;web\r\n",
		},
		{
			name:     "quote all",
			writer:   NewWriter().WithQuoteAllFields(true).WithLinkHrefs(true),
			view:     renderView(customers[:1], false),
			header:   true,
			wantDest: "\"Name\";\"City\";\"Site\"\r\n\"Müller\";\"Wien\";\"https://mueller.at\"\r\n",
		},
		{
			name:     "quote empty",
			writer:   NewWriter().WithQuoteEmptyFields(true).WithDelimiter('\t'),
			view:     renderView(customers[1:2], false),
			wantDest: "Acme; Inc.\t\"\"\t\"\"\r\n",
		},
		{
			name:     "escape quotes",
			writer:   NewWriter().WithEscapeQuotes(`\"`),
			view:     renderView(customers[2:3], false),
			wantDest: "\"Bob \\\"the\\\" Builder\";\"Graz\nSüd\";web\r\n",
		},
		{
			name:     "empty view writes header only",
			writer:   NewWriter(),
			view:     renderView(nil, false),
			header:   true,
			wantDest: "Name;City;Site\r\n",
		},
		{
			name:     "loading view writes nothing",
			writer:   NewWriter(),
			view:     renderView(customers, true),
			wantDest: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest bytes.Buffer
			err := tt.writer.Write(ctx, &dest, tt.view, tt.header)
			require.NoError(t, err)
			require.Equal(t, tt.wantDest, dest.String())
		})
	}
}

func TestWriter_WithEncoder(t *testing.T) {
	var dest bytes.Buffer
	w := NewWriter().WithEncoder(charmap.Windows1252.NewEncoder())
	require.Equal(t, ';', w.Delimiter())
	err := w.Write(context.Background(), &dest, renderView(customers[:1], false), false)
	require.NoError(t, err)
	require.Equal(t, []byte("M\xfcller;Wien;web\r\n"), dest.Bytes())
}

func TestWriter_RawCSV(t *testing.T) {
	view := &datagrid.View{
		Header: []datagrid.HeaderCell{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}},
		Rows: []datagrid.ViewRow{{
			Key:   "1",
			Cells: []datagrid.DisplayValue{datagrid.Custom(Raw(`"pre;quoted"`), "ignored"), datagrid.Text("x")},
		}},
	}
	var dest bytes.Buffer
	require.NoError(t, NewWriter().Write(context.Background(), &dest, view, false))
	require.Equal(t, "\"pre;quoted\";x\r\n", dest.String())
	require.Equal(t, `say ""hi""`, EscapeQuotes(`say "hi"`))
}

func TestWriter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var dest bytes.Buffer
	err := NewWriter().Write(ctx, &dest, renderView(customers, false), true)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, dest.Len())
}
