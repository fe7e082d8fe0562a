package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/domonda/go-datagrid"
	"github.com/domonda/go-datagrid/termgrid"
)

type browseKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Sort     key.Binding
	Select   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Quit     key.Binding
}

var browseKeys = browseKeyMap{
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Sort:     key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "sort column")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select row")),
	NextPage: key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
	PrevPage: key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

func newBrowseCmd() *cobra.Command {
	defaults, err := LoadEnv()
	if err != nil {
		slog.Warn("Using built-in defaults", "err", err)
	}
	opts := &inputOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse rows of a CSV or JSON file interactively",
		Long: `Browse rows of a CSV or JSON file interactively.

Keys:
  ←/h →/l   move the column cursor
  ↑/k ↓/j   move the row cursor
  s, space  click the header of the column under the cursor
  enter     select the row under the cursor
  n p       next and previous page
  q         quit and print the ID of the selected row`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newBrowseModel(opts, cmd.InOrStdin(), termgrid.NewRendererStyled(cmd.OutOrStdout(), !opts.noColor))
			if err != nil {
				return err
			}
			programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())}
			if opts.data == "" || opts.data == "-" {
				// Rows come from stdin, keys from the terminal
				programOpts = append(programOpts, tea.WithInputTTY())
			}
			_, err = tea.NewProgram(m, programOpts...).Run()
			if err != nil {
				return err
			}
			if m.selected != "" {
				fmt.Fprintln(cmd.OutOrStdout(), m.selected)
			}
			return nil
		},
	}

	addInputFlags(cmd, opts, defaults)

	return cmd
}

type browseModel struct {
	host     *gridHost
	renderer *termgrid.Renderer

	page      int
	pageRows  []map[string]any
	view      *datagrid.View
	colCursor int
	rowCursor int

	selected string
	status   string
}

// newBrowseModel reads the rows from the --data file or stdin.
func newBrowseModel(opts *inputOptions, stdin io.Reader, renderer *termgrid.Renderer) (*browseModel, error) {
	m := &browseModel{renderer: renderer, page: 1}
	host, err := newGridHost(opts, stdin, func(o *datagrid.Options[map[string]any]) {
		o.OnRowClick = func(row map[string]any) {
			m.selected = m.host.accessor.RowID(row)
			m.status = "selected " + m.selected
		}
	})
	if err != nil {
		return nil, err
	}
	m.host = host
	m.refresh()
	return m, nil
}

// refresh renders the current page after a sort or page change
// and keeps the cursors inside the rendered rows and columns.
func (m *browseModel) refresh() {
	var info *datagrid.PaginationInfo
	m.pageRows, info = m.host.page(m.page)
	m.view = m.host.view(m.pageRows, info)
	m.page = m.host.table.Page()
	m.colCursor = min(max(m.colCursor, 0), max(m.view.NumCols()-1, 0))
	m.rowCursor = min(max(m.rowCursor, 0), max(len(m.pageRows)-1, 0))
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, browseKeys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, browseKeys.Left):
		m.colCursor = max(m.colCursor-1, 0)

	case key.Matches(keyMsg, browseKeys.Right):
		m.colCursor = min(m.colCursor+1, max(m.view.NumCols()-1, 0))

	case key.Matches(keyMsg, browseKeys.Up):
		m.rowCursor = max(m.rowCursor-1, 0)

	case key.Matches(keyMsg, browseKeys.Down):
		m.rowCursor = min(m.rowCursor+1, max(len(m.pageRows)-1, 0))

	case key.Matches(keyMsg, browseKeys.Sort):
		if m.view.NumCols() == 0 {
			break
		}
		header := &m.view.Header[m.colCursor]
		if !m.host.table.HeaderClick(header.ID) {
			m.status = header.Label + " is not sortable"
			break
		}
		m.status = "sort " + m.host.table.SortState().String()
		m.refresh()

	case key.Matches(keyMsg, browseKeys.Select):
		if m.rowCursor < len(m.pageRows) {
			m.host.table.RowClick(m.pageRows[m.rowCursor])
		}

	case key.Matches(keyMsg, browseKeys.NextPage):
		m.page++
		m.rowCursor = 0
		m.refresh()

	case key.Matches(keyMsg, browseKeys.PrevPage):
		m.page--
		m.rowCursor = 0
		m.refresh()
	}
	return m, nil
}

// View renders the table with the column under the cursor
// in brackets and the row under the cursor marked with ›.
func (m *browseModel) View() string {
	view := *m.view
	view.Header = append([]datagrid.HeaderCell(nil), m.view.Header...)
	if m.colCursor < len(view.Header) {
		view.Header[m.colCursor].Label = "[" + view.Header[m.colCursor].Label + "]"
	}
	if !view.Empty && m.rowCursor < len(view.Rows) {
		view.Rows = append([]datagrid.ViewRow(nil), m.view.Rows...)
		row := view.Rows[m.rowCursor]
		row.Cells = append([]datagrid.DisplayValue(nil), row.Cells...)
		if len(row.Cells) > 0 {
			row.Cells[0].Text = "› " + row.Cells[0].Text
		}
		view.Rows[m.rowCursor] = row
	}

	var b strings.Builder
	b.WriteString(m.renderer.Render(&view))
	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString(" · ")
	}
	b.WriteString("←→ column · s sort · enter select · n/p page · q quit")
	return b.String()
}
