package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "datagrid",
	Short: "Render tabular data as sortable, paginated table",
	Long: `datagrid renders CSV or JSON rows as table for terminals,
as HTML table or as CSV export.

Columns are configured with a YAML, TOML or JSON file,
without configuration every input field becomes an auto sorted column.

Defaults of the render flags can be set with the environment variables
DATAGRID_FORMAT, DATAGRID_LIMIT, DATAGRID_DARK and DATAGRID_ENCODING.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "datagrid:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.SetVersionTemplate(fmt.Sprintf("datagrid version %s\n  commit: %s\n", Version, CommitSHA))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(cmd.ErrOrStderr(), verbose)
	}

	rootCmd.AddCommand(
		newRenderCmd(),
		newColumnsCmd(),
		newVersionCmd(),
	)
}

// setupLogging sets the default slog logger
// used by the tables created by all commands.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "datagrid version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", CommitSHA)
		},
	}
}
