// Package termgrid renders a datagrid.View as table for terminals
// using lipgloss.
package termgrid

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/domonda/go-datagrid"
)

// PixelsPerChar converts the pixel widths of columns
// to terminal character cells.
const PixelsPerChar = 8

const (
	arrowAsc  = "▲"
	arrowDesc = "▼"
	skeleton  = "░░░"
)

// Renderer renders views as terminal tables.
// Colors are only emitted if styled,
// else the output is plain text.
type Renderer struct {
	lip    *lipgloss.Renderer
	styled bool
	border lipgloss.Border
	light  Palette
	dark   Palette
}

// NewRenderer returns a Renderer for output to w
// that is styled if w is a terminal.
func NewRenderer(w io.Writer) *Renderer {
	return NewRendererStyled(w, IsTerminal(w))
}

// NewRendererStyled returns a Renderer for output to w
// with explicitly enabled or disabled styling.
func NewRendererStyled(w io.Writer, styled bool) *Renderer {
	lip := lipgloss.NewRenderer(w)
	if styled {
		lip.SetColorProfile(termenv.TrueColor)
	} else {
		lip.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		lip:    lip,
		styled: styled,
		border: lipgloss.RoundedBorder(),
		light:  LightPalette,
		dark:   DarkPalette,
	}
}

// IsTerminal tells if w is a file connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styled tells if the Renderer emits colors.
func (r *Renderer) Styled() bool {
	return r.styled
}

func (r *Renderer) clone() *Renderer {
	c := new(Renderer)
	*c = *r
	return c
}

// WithBorder returns a new Renderer using border for the table.
func (r *Renderer) WithBorder(border lipgloss.Border) *Renderer {
	mod := r.clone()
	mod.border = border
	return mod
}

// WithPalettes returns a new Renderer using the passed palettes
// for the light and dark color scheme.
func (r *Renderer) WithPalettes(light, dark Palette) *Renderer {
	mod := r.clone()
	mod.light = light
	mod.dark = dark
	return mod
}

// Write writes the rendered view followed by a new line to dest.
func (r *Renderer) Write(ctx context.Context, dest io.Writer, view *datagrid.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	_, err := io.WriteString(dest, r.Render(view)+"\n")
	return err
}

// Render returns the view as table string
// with the pagination summary as footer line if the view has pagination.
func (r *Renderer) Render(view *datagrid.View) string {
	palette := r.light
	if view.Style.Dark {
		palette = r.dark
	}
	s := r.styles(palette, view.Style.Dense)

	rows := make([][]string, len(view.Rows))
	placeholders := make(map[[2]int]bool)
	for i := range view.Rows {
		rows[i] = r.rowCells(view, i, &s, placeholders)
	}

	t := table.New().
		Border(r.border).
		BorderStyle(s.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = s.header
			case view.Style.Striped && row%2 == 1:
				style = s.stripe
			default:
				style = s.cell
			}
			if row != table.HeaderRow && placeholders[[2]int{row, col}] {
				style = style.Foreground(palette.Muted)
			}
			if col < len(view.Header) {
				style = style.Align(position(view.Header[col].Align))
			}
			return style
		})

	headers := make([]string, len(view.Header))
	for i := range view.Header {
		headers[i] = headerLabel(&view.Header[i])
	}
	t.Headers(headers...)
	t.Rows(rows...)

	var b strings.Builder
	b.WriteString(t.String())
	if view.Pagination != nil {
		b.WriteByte('\n')
		b.WriteString(s.footer.Render(footer(view.Pagination)))
	}
	return b.String()
}

func (r *Renderer) rowCells(view *datagrid.View, rowIndex int, s *styles, placeholders map[[2]int]bool) []string {
	row := &view.Rows[rowIndex]
	cells := make([]string, view.NumCols())
	if row.ColSpan > 0 {
		// The table has no spanning cells,
		// the content goes to the first column.
		if len(row.Cells) > 0 && len(cells) > 0 {
			cells[0] = r.cellText(row.Cells[0], s)
			if row.Cells[0].IsPlaceholder() {
				placeholders[[2]int{rowIndex, 0}] = true
			}
		}
		return cells
	}
	for col := range cells {
		if col >= len(row.Cells) {
			break
		}
		v := row.Cells[col]
		text := r.cellText(v, s)
		if maxChars := view.Header[col].MaxWidth / PixelsPerChar; maxChars > 0 {
			text = ansi.Truncate(text, maxChars, "…")
		}
		cells[col] = text
		if v.IsPlaceholder() || v.Kind == datagrid.DisplaySkeleton {
			placeholders[[2]int{rowIndex, col}] = true
		}
	}
	return cells
}

func (r *Renderer) cellText(v datagrid.DisplayValue, s *styles) string {
	switch v.Kind {
	case datagrid.DisplayLink:
		if r.styled {
			return s.link.Render(v.Text)
		}
	case datagrid.DisplaySkeleton:
		return skeleton
	case datagrid.DisplayCustom:
		if node, ok := v.Node.(lipgloss.Style); ok {
			return r.lip.NewStyle().Inherit(node).Render(v.Text)
		}
	}
	return v.Text
}

func headerLabel(h *datagrid.HeaderCell) string {
	label := h.Label
	switch h.Direction {
	case datagrid.Ascending:
		label += " " + arrowAsc
	case datagrid.Descending:
		label += " " + arrowDesc
	}
	if minChars := h.MinWidth / PixelsPerChar; minChars > 0 {
		label = lipgloss.PlaceHorizontal(minChars, position(h.Align), label)
	}
	return label
}

func footer(c *datagrid.PageControls) string {
	var b strings.Builder
	if c.HasPrev {
		b.WriteString("‹ ")
	}
	b.WriteString(c.Summary())
	if c.HasNext {
		b.WriteString(" ›")
	}
	return b.String()
}

func position(align datagrid.Align) lipgloss.Position {
	switch align {
	case datagrid.AlignRight:
		return lipgloss.Right
	case datagrid.AlignCenter:
		return lipgloss.Center
	}
	return lipgloss.Left
}
