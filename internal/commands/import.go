package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/category"
	"github.com/finsight-dev/finsight/internal/config"
	"github.com/finsight-dev/finsight/internal/report"
	"github.com/finsight-dev/finsight/internal/statement"
)

func newImportCommand() *cobra.Command {
	var dir string
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Ingest a bank statement and print a categorized summary",
		Long: "Ingest a bank statement (CSV or XLSX), validate and categorize its rows,\n" +
			"and print summary metrics. Without a file argument, every statement in\n" +
			"the workspace import/ directory is ingested and moved to import/processed/.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := openWorkspace(dir)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				return ingestFile(cmd, args[0], format, cfg, store)
			}
			return ingestImportDir(cmd, dir, format, cfg, store)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&format, "format", "", "statement format (csv, xlsx); inferred from the file extension when empty")

	return cmd
}

func ingestImportDir(cmd *cobra.Command, dir, format string, cfg *config.Config, store *category.Store) error {
	files, err := statement.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No statements found in import/")
		return nil
	}

	for _, file := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Importing %s\n", file.Name)
		if err := ingestFile(cmd, file.Path, format, cfg, store); err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
		if err := statement.MarkProcessed(dir, file.Name); err != nil {
			return err
		}
	}
	return nil
}

func ingestFile(cmd *cobra.Command, path, format string, cfg *config.Config, store *category.Store) error {
	if format == "" {
		format = statement.DetectFormat(path)
	}

	registry := statement.DefaultRegistry()
	parser := registry.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q (available: %s)",
			format, strings.Join(registry.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return err
	}

	result, err := statement.Clean(rows)
	if err != nil {
		return err
	}

	category.NewCategorizer(store).Apply(result.Transactions)

	summary := report.Summarize(result.Transactions, store.Names())
	report.Render(cmd.OutOrStdout(), summary, result.Transactions, report.Options{
		Currency: cfg.Profile.Currency,
		MaxRows:  cfg.Report.MaxRows,
	})

	if result.Excluded > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Excluded %d row(s) with unparsable date, amount, or direction\n", result.Excluded)
	}
	return nil
}
