package datagrid

import (
	"errors"
	"log/slog"
)

const (
	// DefaultLimit is the number of skeleton rows
	// rendered while loading if Options.Limit is not set.
	DefaultLimit = 10
	// DefaultEmptyText is rendered as single row of an empty table.
	DefaultEmptyText = "no data available"
)

// Options configure a Table.
type Options[R any] struct {
	// Limit is the page size of the host,
	// used as number of skeleton rows while loading.
	Limit int
	// OnRowClick is called with rows passed to Table.RowClick.
	OnRowClick func(row R)
	// OnPaginate is called whenever the current page changes.
	OnPaginate func(page int)
	// OnSortChange is called after a header click changed the SortState,
	// the host should render again.
	OnSortChange func(state SortState)
	// ShowPagination enables pagination controls, default true.
	ShowPagination *bool
	// EmptyText of the single row of an empty table.
	EmptyText string
	// InitialSort is the SortState after construction,
	// must reference a sortable column if set.
	InitialSort SortState

	Formatter *Formatter
	Sorter    *Sorter
	Logger    *slog.Logger
}

// RenderInput is the data passed by the host to Table.Render.
type RenderInput[R any] struct {
	// Rows of the current page, replaced on every fetch.
	Rows []R
	// Sorted tells that Rows are already in the order of the
	// current SortState, as when the host sorts the whole result
	// before slicing the page. Sorted Rows are rendered as passed.
	Sorted bool
	// Pagination from the host's last fetch,
	// nil shows all Rows as one page without controls.
	Pagination *PaginationInfo
	// Loading renders LoadingNode or skeleton rows instead of Rows.
	Loading bool
	// LoadingNode replaces the skeleton rows while loading if not nil.
	LoadingNode *DisplayValue
	Style       Style
}

// Table composes column model, sort engine, cell formatter and paginator.
// It owns its SortState and current page.
// A Table is not safe for concurrent use.
type Table[R any] struct {
	accessor  FieldAccessor[R]
	columns   Columns[R]
	options   Options[R]
	sortState SortState
	paginator *Paginator
	formatter *Formatter
	sorter    *Sorter
	logger    *slog.Logger
}

// NewTable returns a Table for rows of type R
// after validating columns against accessor.
// Configuration errors are logged and returned
// joined as *ConfigError values.
func NewTable[R any](accessor FieldAccessor[R], columns Columns[R], options Options[R]) (*Table[R], error) {
	if accessor == nil {
		return nil, errors.New("datagrid: nil FieldAccessor")
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := columns.Validate(accessor); err != nil {
		logger.Error("datagrid: invalid column configuration", "err", err)
		return nil, err
	}
	t := &Table[R]{
		accessor:  accessor,
		columns:   columns,
		options:   options,
		paginator: NewPaginator(options.OnPaginate),
		formatter: options.Formatter,
		sorter:    options.Sorter,
		logger:    logger,
	}
	if t.options.Limit <= 0 {
		t.options.Limit = DefaultLimit
	}
	if t.options.EmptyText == "" {
		t.options.EmptyText = DefaultEmptyText
	}
	if t.formatter == nil {
		t.formatter = NewFormatter()
		t.formatter.Logger = logger
	}
	if t.sorter == nil {
		t.sorter = NewSorter(DefaultLanguage).WithLogger(logger)
	}
	if options.InitialSort.IsSorted() {
		if err := t.SetSortState(options.InitialSort); err != nil {
			logger.Error("datagrid: invalid initial sort", "err", err)
			return nil, err
		}
	}
	return t, nil
}

// Columns returns the column model of the table.
func (t *Table[R]) Columns() Columns[R] {
	return t.columns
}

// SetColumns replaces the column model after validating it.
// A SortState referencing a column that is no longer sortable is reset.
func (t *Table[R]) SetColumns(columns Columns[R]) error {
	if err := columns.Validate(t.accessor); err != nil {
		t.logger.Error("datagrid: invalid column configuration", "err", err)
		return err
	}
	t.columns = columns
	if col := columns.ByID(t.sortState.Field); col == nil || !col.Sortable {
		t.sortState = SortState{}
	}
	return nil
}

// SortState returns the current SortState.
func (t *Table[R]) SortState() SortState {
	return t.sortState
}

// SetSortState sets the SortState directly,
// for example to restore it from a URL query.
func (t *Table[R]) SetSortState(state SortState) error {
	if !state.IsSorted() {
		t.sortState = SortState{}
		return nil
	}
	col := t.columns.ByID(state.Field)
	if col == nil {
		return newConfigError(state.Field, ErrUnknownField, "sort state references unknown column")
	}
	if !col.Sortable {
		return newConfigError(state.Field, ErrMissingSortType, "sort state references column that is not sortable")
	}
	t.sortState = state
	return nil
}

// Page returns the current 1-based page.
func (t *Table[R]) Page() int {
	return t.paginator.Page()
}

// HeaderClick advances the SortState of a sortable column
// Unsorted -> Ascending -> Descending -> Unsorted.
// Clicks on unknown or not sortable columns are ignored.
// Returns if the SortState changed.
func (t *Table[R]) HeaderClick(columnID string) bool {
	col := t.columns.ByID(columnID)
	if col == nil || !col.Sortable {
		return false
	}
	t.sortState = Cycle(t.sortState, columnID)
	t.logger.Debug("datagrid: sort changed", "sort", t.sortState.String())
	if t.options.OnSortChange != nil {
		t.options.OnSortChange(t.sortState)
	}
	return true
}

// RowClick forwards row to Options.OnRowClick if set.
func (t *Table[R]) RowClick(row R) {
	if t.options.OnRowClick != nil {
		t.options.OnRowClick(row)
	}
}

// PageChange forwards a page change of the pagination controls
// to the Paginator which calls Options.OnPaginate if the page changed.
func (t *Table[R]) PageChange(page int) bool {
	return t.paginator.SetPage(page)
}

// Render returns the View of the passed rows.
//
// While loading, skeleton rows or the LoadingNode are rendered
// and the rows are not sorted.
// Without rows a single row with the empty text spanning all columns
// is rendered.
// Otherwise the rows are sorted by the current SortState,
// unless RenderInput.Sorted is set,
// and every cell is formatted according to its column.
func (t *Table[R]) Render(in RenderInput[R]) *View {
	t.paginator.Update(in.Pagination)

	view := &View{
		Header:    t.header(),
		SortState: t.sortState,
		Style:     in.Style,
	}
	if t.showPagination() {
		view.Pagination = t.paginator.Controls()
	}

	numCols := len(t.columns)
	switch {
	case in.Loading:
		view.Loading = true
		if in.LoadingNode != nil {
			view.Rows = []ViewRow{{
				Key:     "loading",
				Cells:   []DisplayValue{*in.LoadingNode},
				ColSpan: numCols,
				Class:   in.Style.RowClass(0, false),
			}}
			break
		}
		view.Rows = make([]ViewRow, t.options.Limit)
		for i := range view.Rows {
			cells := make([]DisplayValue, numCols)
			for col := range cells {
				cells[col] = Skeleton()
			}
			view.Rows[i] = ViewRow{Key: skeletonKey(i), Cells: cells, Class: in.Style.RowClass(i, false)}
		}

	case len(in.Rows) == 0:
		view.Empty = true
		view.Rows = []ViewRow{{
			Key:     "empty",
			Cells:   []DisplayValue{Text(t.options.EmptyText)},
			ColSpan: numCols,
			Class:   in.Style.RowClass(0, false),
		}}

	default:
		clickable := t.options.OnRowClick != nil
		rows := in.Rows
		if !in.Sorted {
			rows = SortedViewWith(t.sorter, rows, t.sortState, t.columns, t.accessor)
		}
		view.Rows = make([]ViewRow, len(rows))
		for i, row := range rows {
			cells := make([]DisplayValue, numCols)
			for col := range t.columns {
				cells[col] = FormatCell(t.formatter, &t.columns[col], row, t.accessor)
			}
			view.Rows[i] = ViewRow{
				Key:       t.accessor.RowID(row),
				Cells:     cells,
				Class:     in.Style.RowClass(i, clickable),
				Clickable: clickable,
			}
		}
	}
	return view
}

func (t *Table[R]) header() []HeaderCell {
	header := make([]HeaderCell, len(t.columns))
	for i := range t.columns {
		col := &t.columns[i]
		header[i] = HeaderCell{
			ID:        col.ID,
			Label:     col.HeaderLabel(),
			Align:     col.Align,
			Fixed:     col.Fixed,
			MinWidth:  col.MinWidth,
			MaxWidth:  col.MaxWidth,
			Sortable:  col.Sortable,
			Direction: t.sortState.DirectionOf(col.ID),
		}
	}
	return header
}

func (t *Table[R]) showPagination() bool {
	return t.options.ShowPagination == nil || *t.options.ShowPagination
}
