package termgrid

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-datagrid"
)

type task struct {
	ID    int    `col:"id"`
	Title string `col:"title"`
	Owner any    `col:"owner"`
	Hours int    `col:"hours"`
}

func taskTable(t *testing.T) *datagrid.Table[task] {
	t.Helper()
	columns := datagrid.Columns[task]{
		{ID: "title", Label: "Title", MaxWidth: 80, Sortable: true, Sort: datagrid.SortString{}},
		{ID: "owner", Label: "Owner"},
		{ID: "hours", Label: "Hours", Align: datagrid.AlignRight, MinWidth: 80, Sortable: true, Sort: datagrid.SortNumber{}},
	}
	table, err := datagrid.NewTable(datagrid.StructFields[task](), columns, datagrid.Options[task]{Limit: 2})
	require.NoError(t, err)
	return table
}

var tasks = []task{
	{ID: 1, Title: "Write docs", Owner: "ana", Hours: 3},
	{ID: 2, Title: "Desk & Chair", Owner: nil, Hours: 12},
}

func TestRenderer_Render(t *testing.T) {
	table := taskTable(t)
	require.True(t, table.HeaderClick("hours"))
	require.True(t, table.HeaderClick("hours"))
	view := table.Render(datagrid.RenderInput[task]{
		Rows:       tasks,
		Pagination: &datagrid.PaginationInfo{TotalItems: 12, TotalPages: 6, Limit: 2},
	})

	out := NewRendererStyled(&bytes.Buffer{}, false).Render(view)
	require.NotContains(t, out, "\x1b[", "no ANSI sequences")
	require.Contains(t, out, "Title")
	require.Contains(t, out, "Hours "+arrowDesc)
	require.Contains(t, out, "Desk & Ch…", "truncated to MaxWidth")
	require.NotContains(t, out, "Chair")
	require.Contains(t, out, " - ", "placeholder for missing owner")
	require.True(t, strings.HasSuffix(out, "1-2 of 12 · page 1/6 ›"), out)

	lines := strings.Split(out, "\n")
	var first, second int
	for i, line := range lines {
		switch {
		case strings.Contains(line, "Desk"):
			first = i
		case strings.Contains(line, "Write docs"):
			second = i
		}
	}
	require.Less(t, first, second, "descending hours")
}

func TestRenderer_EmptyAndLoading(t *testing.T) {
	r := NewRendererStyled(&bytes.Buffer{}, false)

	out := r.Render(taskTable(t).Render(datagrid.RenderInput[task]{}))
	require.Contains(t, out, "no data available")

	out = r.Render(taskTable(t).Render(datagrid.RenderInput[task]{Rows: tasks, Loading: true}))
	require.Equal(t, 2*3, strings.Count(out, skeleton), "Limit rows of skeleton cells")
	require.NotContains(t, out, "Write docs")
}

func TestRenderer_Styled(t *testing.T) {
	view := taskTable(t).Render(datagrid.RenderInput[task]{
		Rows:  tasks,
		Style: datagrid.Style{Dark: true, Striped: true, Dense: true},
	})
	r := NewRendererStyled(&bytes.Buffer{}, true)
	require.True(t, r.Styled())
	out := r.Render(view)
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "Write docs")

	plain := r.WithBorder(lipgloss.NormalBorder())
	require.NotSame(t, r, plain)
}

func TestRenderer_Write(t *testing.T) {
	view := taskTable(t).Render(datagrid.RenderInput[task]{Rows: tasks})
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	require.False(t, r.Styled(), "buffer is no terminal")
	require.NoError(t, r.Write(context.Background(), &buf, view))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, r.Write(ctx, &buf, view), context.Canceled)
}

func TestIsTerminal(t *testing.T) {
	require.False(t, IsTerminal(&bytes.Buffer{}))
}
