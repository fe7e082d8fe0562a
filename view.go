package datagrid

import (
	"strconv"
	"strings"
)

// View is the renderer independent result of Table.Render.
// Renderers like htmlgrid, termgrid and csvgrid
// present a View without knowing the row type.
type View struct {
	Header []HeaderCell
	Rows   []ViewRow

	// Loading is true if Rows contains only loading placeholders.
	Loading bool
	// Empty is true if Rows contains only the "no data" row.
	Empty bool

	SortState SortState
	// Pagination is nil if pagination controls are suppressed.
	Pagination *PageControls
	Style      Style
}

// HeaderCell describes the header of one column.
type HeaderCell struct {
	ID        string
	Label     string
	Align     Align
	Fixed     Fixed
	MinWidth  int
	MaxWidth  int
	Sortable  bool
	Direction Direction
}

// AriaSort returns the aria-sort attribute value of the header.
func (h *HeaderCell) AriaSort() string {
	switch h.Direction {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	if h.Sortable {
		return "none"
	}
	return ""
}

// ViewRow is one rendered row.
type ViewRow struct {
	// Key is the row ID for data rows
	// and a synthetic key for skeleton, loading and empty rows.
	Key   string
	Cells []DisplayValue
	// ColSpan is 0 for rows with one cell per column,
	// else the single cell of the row spans ColSpan columns.
	ColSpan int
	// Class holds space separated style tokens derived from Style.
	Class     string
	Clickable bool
}

// NumCols returns the number of columns of the view.
func (v *View) NumCols() int {
	return len(v.Header)
}

// NumRows returns the number of rendered rows.
func (v *View) NumRows() int {
	return len(v.Rows)
}

// Labels returns the header labels.
func (v *View) Labels() []string {
	labels := make([]string, len(v.Header))
	for i := range v.Header {
		labels[i] = v.Header[i].Label
	}
	return labels
}

// Style is passed explicitly to Table.Render
// and turned into style tokens of the rendered rows.
type Style struct {
	// Dark selects the dark color scheme.
	Dark bool
	// Hover highlights rows under the pointer.
	Hover bool
	// Striped alternates the background of rows.
	Striped bool
	// Dense reduces the row height.
	Dense bool
}

// DefaultStyle is a light style with hover highlighting.
var DefaultStyle = Style{Hover: true}

// Scheme returns "dark" or "light".
func (s Style) Scheme() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}

// RowClass returns the style tokens of the row with the passed
// zero based index.
func (s Style) RowClass(index int, clickable bool) string {
	tokens := []string{"row"}
	if s.Hover {
		tokens = append(tokens, "row-hover-"+s.Scheme())
	}
	if s.Striped && index%2 == 1 {
		tokens = append(tokens, "row-striped-"+s.Scheme())
	}
	if s.Dense {
		tokens = append(tokens, "row-dense")
	}
	if clickable {
		tokens = append(tokens, "row-clickable")
	}
	return strings.Join(tokens, " ")
}

func skeletonKey(i int) string {
	return "skeleton-" + strconv.Itoa(i)
}
