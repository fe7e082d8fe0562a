package cli

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-datagrid"
	"github.com/domonda/go-datagrid/termgrid"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *browseModel, msgs ...tea.KeyMsg) {
	t.Helper()
	for _, msg := range msgs {
		model, _ := m.Update(msg)
		require.Same(t, m, model)
	}
}

func TestBrowseModel(t *testing.T) {
	opts := &inputOptions{data: "testdata/invoices.csv", limit: 2}
	m, err := newBrowseModel(opts, nil, termgrid.NewRendererStyled(io.Discard, false))
	require.NoError(t, err)
	require.Nil(t, m.Init())

	// Input order before any sort
	require.Equal(t, 1, m.page)
	require.Equal(t, "3", m.view.Rows[0].Key)
	require.Contains(t, m.View(), "[id]")
	require.Contains(t, m.View(), "› 3")

	press(t, m, runes("l"), runes("s"))
	require.Equal(t, datagrid.SortState{Field: "customer", Direction: datagrid.Ascending}, m.host.table.SortState())
	require.Equal(t, []string{"1", "4"}, rowKeys(m.view))
	require.Contains(t, m.View(), "[customer] ▲")
	require.Contains(t, m.View(), "sort customer asc")

	press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "4", m.selected)
	require.Contains(t, m.View(), "selected 4")

	press(t, m, runes("n"))
	require.Equal(t, 2, m.page)
	require.Equal(t, 0, m.rowCursor)
	require.Equal(t, []string{"2", "3"}, rowKeys(m.view))

	press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 2, m.page, "clamped to last page")

	press(t, m, runes("p"))
	require.Equal(t, 1, m.page)

	// Second and third click on the same column
	press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.Equal(t, datagrid.Descending, m.host.table.SortState().Direction)
	require.Equal(t, []string{"3", "2"}, rowKeys(m.view))
	press(t, m, runes("s"))
	require.Equal(t, datagrid.SortState{}, m.host.table.SortState())
	require.Equal(t, []string{"3", "1"}, rowKeys(m.view))

	press(t, m, runes("l"), runes("l"), runes("l"), runes("l"))
	require.Equal(t, 3, m.colCursor)
	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 2, m.colCursor)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBrowseModel_TotalItems(t *testing.T) {
	opts := &inputOptions{data: "testdata/invoices.csv", limit: 10, totalItems: 50}
	m, err := newBrowseModel(opts, nil, termgrid.NewRendererStyled(io.Discard, false))
	require.NoError(t, err)

	press(t, m, runes("l"), runes("s"))
	require.Equal(t, []string{"1", "4", "2", "3"}, rowKeys(m.view))
	for i, row := range m.pageRows {
		require.Equal(t, m.view.Rows[i].Key, m.host.accessor.RowID(row), "page rows in rendered order")
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "1", m.selected)
	press(t, m, runes("j"), runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "3", m.selected)

	press(t, m, runes("s"))
	require.Equal(t, []string{"3", "2", "4", "1"}, rowKeys(m.view))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "1", m.selected, "cursor stays on last row")
}

func TestBrowseModel_Errors(t *testing.T) {
	_, err := newBrowseModel(&inputOptions{data: "testdata/missing.csv"}, nil, termgrid.NewRenderer(io.Discard))
	require.Error(t, err)

	_, err = newBrowseModel(&inputOptions{data: "testdata/invoices.csv", columns: "testdata/invalid.yaml"}, nil, termgrid.NewRenderer(io.Discard))
	require.ErrorIs(t, err, datagrid.ErrUnknownCellType)
}

func rowKeys(view *datagrid.View) []string {
	keys := make([]string, len(view.Rows))
	for i := range view.Rows {
		keys[i] = view.Rows[i].Key
	}
	return keys
}
