package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/domonda/go-datagrid"
	"github.com/domonda/go-datagrid/csvgrid"
	"github.com/domonda/go-datagrid/gridconfig"
	"github.com/domonda/go-datagrid/htmlgrid"
	"github.com/domonda/go-datagrid/termgrid"
)

// inputOptions are the flags shared by render and browse.
type inputOptions struct {
	columns    string
	data       string
	sort       string
	clicks     []string
	limit      int
	totalItems int
	dark       bool
	striped    bool
	dense      bool
	noColor    bool
}

type renderOptions struct {
	inputOptions
	page     int
	format   string
	encoding string
}

func addInputFlags(cmd *cobra.Command, opts *inputOptions, defaults Env) {
	cmd.Flags().StringVarP(&opts.columns, "columns", "c", "", "Column configuration file (.yaml, .yml, .toml, .json or .jsonc)")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "-", "CSV or JSON input file, - for stdin")
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", "", "Initial sort as column[:asc|desc]")
	cmd.Flags().StringArrayVar(&opts.clicks, "click", nil, "Click the header of a column, can be repeated")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", defaults.Limit, "Rows per page, default from column configuration or 10 (env DATAGRID_LIMIT)")
	cmd.Flags().IntVar(&opts.totalItems, "total-items", 0, "Total number of items if the input is a single page")
	cmd.Flags().BoolVar(&opts.dark, "dark", defaults.Dark, "Use the dark color scheme (env DATAGRID_DARK)")
	cmd.Flags().BoolVar(&opts.striped, "striped", false, "Alternate the background of rows")
	cmd.Flags().BoolVar(&opts.dense, "dense", false, "Reduce the row padding")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored terminal output")
}

func newRenderCmd() *cobra.Command {
	defaults, err := LoadEnv()
	if err != nil {
		slog.Warn("Using built-in defaults", "err", err)
	}
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render rows of a CSV or JSON file as table",
		Long: `Render rows of a CSV or JSON file as table.

The rows are sorted by --sort and the header clicks of --click,
where every click on the same column cycles through
ascending, descending and unsorted order.
The sorted rows are split into pages of --limit rows.

If --total-items is set, the input is treated as the current page
of a larger result and is not split into pages.

Examples:
  datagrid render --data invoices.csv
  datagrid render --columns invoices.yaml --data invoices.csv --sort amount:desc
  datagrid render --data invoices.json --click customer --click customer
  datagrid render --data invoices.csv --format html --page 2 --limit 20
  cat invoices.csv | datagrid render --format csv --encoding windows-1252`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addInputFlags(cmd, &opts.inputOptions, defaults)
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page to render")
	cmd.Flags().StringVarP(&opts.format, "format", "f", defaults.Format, "Output format term, html or csv (env DATAGRID_FORMAT)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", defaults.Encoding, "Character encoding of the CSV output (env DATAGRID_ENCODING)")

	return cmd
}

func runRender(ctx context.Context, opts *renderOptions, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	host, err := newGridHost(&opts.inputOptions, stdin, nil)
	if err != nil {
		return err
	}
	return writeView(ctx, opts, stdout, host.render(opts.page))
}

// gridHost plays the host of a table for map rows read from an input file:
// it sorts all rows by the table's SortState, slices the current page
// and supplies the PaginationInfo.
type gridHost struct {
	table      *datagrid.Table[map[string]any]
	sorter     *datagrid.Sorter
	accessor   datagrid.FieldAccessor[map[string]any]
	rows       []map[string]any
	limit      int
	totalItems int
	style      datagrid.Style
}

// newGridHost reads the input, creates the table and applies
// the initial sort and header clicks of opts.
// If not nil, modifyOptions can set callbacks of the table options.
func newGridHost(opts *inputOptions, stdin io.Reader, modifyOptions func(*datagrid.Options[map[string]any])) (*gridHost, error) {
	data, err := readInput(opts.data, stdin)
	if err != nil {
		return nil, err
	}
	rows, fields, err := parseRows(opts.data, data)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.columns, fields)
	if err != nil {
		return nil, err
	}
	if opts.limit > 0 {
		cfg.Limit = opts.limit
	}
	if cfg.Limit <= 0 {
		cfg.Limit = datagrid.DefaultLimit
	}

	columns, err := cfg.GridColumns()
	if err != nil {
		return nil, err
	}
	options, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	options.Logger = slog.Default()
	options.OnSortChange = func(state datagrid.SortState) {
		slog.Debug("Sort changed", "sort", state.String())
	}
	options.OnPaginate = func(page int) {
		slog.Debug("Page changed", "page", page)
	}
	if modifyOptions != nil {
		modifyOptions(&options)
	}
	accessor := cfg.Accessor()
	table, err := datagrid.NewTable(accessor, columns, options)
	if err != nil {
		return nil, err
	}

	if opts.sort != "" {
		state, err := parseSortFlag(opts.sort)
		if err != nil {
			return nil, err
		}
		if err = table.SetSortState(state); err != nil {
			return nil, err
		}
	}
	for _, columnID := range opts.clicks {
		if !table.HeaderClick(columnID) {
			slog.Warn("Ignored click on header of unknown or not sortable column", "column", columnID)
		}
	}

	style := cfg.GridStyle()
	style.Dark = style.Dark || opts.dark
	style.Striped = style.Striped || opts.striped
	style.Dense = style.Dense || opts.dense

	return &gridHost{
		table:      table,
		sorter:     options.Sorter,
		accessor:   accessor,
		rows:       rows,
		limit:      cfg.Limit,
		totalItems: opts.totalItems,
		style:      style,
	}, nil
}

// page returns the sorted rows of the requested page,
// clamped to the available pages, and the PaginationInfo.
// With totalItems > 0 the rows are already a single page.
func (h *gridHost) page(page int) ([]map[string]any, *datagrid.PaginationInfo) {
	sorted := datagrid.SortedViewWith(h.sorter, h.rows, h.table.SortState(), h.table.Columns(), h.accessor)
	if h.totalItems > 0 {
		h.table.PageChange(page)
		return sorted, &datagrid.PaginationInfo{
			TotalItems: h.totalItems,
			TotalPages: (h.totalItems + h.limit - 1) / h.limit,
			Limit:      h.limit,
		}
	}

	info := &datagrid.PaginationInfo{
		TotalItems: len(h.rows),
		TotalPages: (len(h.rows) + h.limit - 1) / h.limit,
		Limit:      h.limit,
	}
	page = min(max(page, 1), max(info.TotalPages, 1))
	h.table.PageChange(page)

	first := min((page-1)*h.limit, len(sorted))
	last := min(page*h.limit, len(sorted))
	return sorted[first:last], info
}

// render returns the view of the requested page.
// The rows of the page are rendered in the order of page.
func (h *gridHost) render(page int) *datagrid.View {
	return h.view(h.page(page))
}

func (h *gridHost) view(rows []map[string]any, info *datagrid.PaginationInfo) *datagrid.View {
	return h.table.Render(datagrid.RenderInput[map[string]any]{
		Rows:       rows,
		Sorted:     true,
		Pagination: info,
		Style:      h.style,
	})
}

func loadConfig(path string, fields []string) (*gridconfig.File, error) {
	if path == "" {
		return configFromFields(fields), nil
	}
	return gridconfig.Load(path)
}

// parseSortFlag parses "column", "column:asc" or "column:desc".
func parseSortFlag(s string) (datagrid.SortState, error) {
	field, dir, hasDir := strings.Cut(s, ":")
	state := datagrid.SortState{Field: field, Direction: datagrid.Ascending}
	if hasDir {
		d, err := datagrid.ParseDirection(dir)
		if err != nil {
			return datagrid.SortState{}, fmt.Errorf("--sort: %w", err)
		}
		if d != datagrid.Unsorted {
			state.Direction = d
		}
	}
	return state, nil
}

func writeView(ctx context.Context, opts *renderOptions, w io.Writer, view *datagrid.View) error {
	switch opts.format {
	case "term", "":
		styled := termgrid.IsTerminal(w) && !opts.noColor
		return termgrid.NewRendererStyled(w, styled).Write(ctx, w, view)

	case "html":
		return htmlgrid.NewWriter().
			WithTableClass("datagrid").
			WithSortLinks(func(columnID string) string { return "?click=" + url.QueryEscape(columnID) }).
			WithPageLinks(func(page int) string { return "?page=" + strconv.Itoa(page) }).
			Write(ctx, w, view)

	case "csv":
		writer := csvgrid.NewWriter()
		if opts.encoding != "" {
			enc, err := htmlindex.Get(opts.encoding)
			if err != nil {
				return fmt.Errorf("--encoding: %w", err)
			}
			writer.WithEncoder(enc.NewEncoder())
		}
		return writer.Write(ctx, w, view, true)
	}
	return fmt.Errorf("unknown output format %q, expected term, html or csv", opts.format)
}
