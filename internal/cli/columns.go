package cli

import (
	"github.com/spf13/cobra"

	"github.com/domonda/go-datagrid"
	"github.com/domonda/go-datagrid/gridconfig"
	"github.com/domonda/go-datagrid/termgrid"
)

func newColumnsCmd() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "columns <config-file>",
		Short: "Validate a column configuration and list its columns",
		Long: `Validate a column configuration and list its columns.

All configuration errors of the file are reported at once.

Examples:
  datagrid columns invoices.yaml
  datagrid columns invoices.toml --no-color`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gridconfig.Load(args[0])
			if err != nil {
				return err
			}
			if _, err = cfg.NewTable(); err != nil {
				return err
			}
			view, err := columnsView(cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			styled := termgrid.IsTerminal(w) && !noColor
			return termgrid.NewRendererStyled(w, styled).Write(cmd.Context(), w, view)
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored terminal output")
	return cmd
}

// columnNaming maps ColumnConfig fields to their JSON names.
var columnNaming = datagrid.StructFieldNaming{Tag: "json", Ignore: "-"}

// columnsView renders the column configurations of cfg
// as rows of a table in configuration order.
func columnsView(cfg *gridconfig.File) (*datagrid.View, error) {
	accessor := datagrid.NewStructFieldAccessor[gridconfig.ColumnConfig](&columnNaming, "id")
	columns, err := datagrid.NewColumns(accessor,
		datagrid.Column[gridconfig.ColumnConfig]{ID: "id", Label: "ID"},
		datagrid.Column[gridconfig.ColumnConfig]{ID: "label", Label: "Label"},
		datagrid.Column[gridconfig.ColumnConfig]{ID: "type", Label: "Type", Format: defaultTo("text")},
		datagrid.Column[gridconfig.ColumnConfig]{ID: "sort", Label: "Sort"},
		datagrid.Column[gridconfig.ColumnConfig]{ID: "align", Label: "Align", Format: defaultTo("left")},
		datagrid.Column[gridconfig.ColumnConfig]{ID: "fixed", Label: "Fixed"},
		datagrid.Column[gridconfig.ColumnConfig]{ID: "minWidth", Label: "Min Width", Align: datagrid.AlignRight},
		datagrid.Column[gridconfig.ColumnConfig]{ID: "maxWidth", Label: "Max Width", Align: datagrid.AlignRight},
		datagrid.Column[gridconfig.ColumnConfig]{ID: "format", Label: "Format"},
	)
	if err != nil {
		return nil, err
	}
	showPagination := false
	table, err := datagrid.NewTable(accessor, columns, datagrid.Options[gridconfig.ColumnConfig]{
		ShowPagination: &showPagination,
		EmptyText:      "no columns configured",
	})
	if err != nil {
		return nil, err
	}
	return table.Render(datagrid.RenderInput[gridconfig.ColumnConfig]{
		Rows:  cfg.Columns,
		Style: datagrid.DefaultStyle,
	}), nil
}

// defaultTo returns a Format function
// displaying empty strings as defaultValue.
func defaultTo(defaultValue string) func(any) string {
	return func(value any) string {
		if s, _ := value.(string); s != "" {
			return s
		}
		return defaultValue
	}
}
