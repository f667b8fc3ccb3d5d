package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/auditlog"
	"github.com/finsight-dev/finsight/internal/category"
)

func newLearnCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "learn <category> <description>",
		Short: "Teach a transaction description to a category",
		Long: "Record a manual re-label: the transaction description becomes a new\n" +
			"keyword of the chosen category, so future statements match it directly.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openWorkspace(dir)
			if err != nil {
				return err
			}

			name, details := args[0], args[1]
			categorizer := category.NewCategorizer(store)
			if err := flushWarning(cmd, categorizer.Learn(name, details)); err != nil {
				return err
			}

			logMutation(cmd, dir, auditlog.Entry{
				Timestamp: time.Now(),
				Action:    auditlog.ActionLearn,
				Category:  name,
				Detail:    category.Normalize(details),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Learned %q for %q\n", category.Normalize(details), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	return cmd
}
