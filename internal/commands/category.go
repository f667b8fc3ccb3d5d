package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/auditlog"
	"github.com/finsight-dev/finsight/internal/category"
)

func newCategoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Inspect and edit the category keyword mapping",
	}

	cmd.AddCommand(newCategoryListCommand())
	cmd.AddCommand(newCategoryAddCommand())
	cmd.AddCommand(newCategoryKeywordCommand())

	return cmd
}

func newCategoryListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories and their keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openWorkspace(dir)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Category", "Keywords"})
			for _, c := range store.Categories() {
				t.AppendRow(table.Row{c.Name, strings.Join(c.Keywords, ", ")})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	return cmd
}

func newCategoryAddCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category with an empty keyword list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openWorkspace(dir)
			if err != nil {
				return err
			}

			name := args[0]
			if err := flushWarning(cmd, store.AddCategory(name)); err != nil {
				return err
			}

			logMutation(cmd, dir, auditlog.Entry{
				Timestamp: time.Now(),
				Action:    auditlog.ActionAddCategory,
				Category:  name,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	return cmd
}

func newCategoryKeywordCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "keyword <category> <keyword>",
		Short: "Add a keyword trigger to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openWorkspace(dir)
			if err != nil {
				return err
			}

			name, keyword := args[0], args[1]
			if err := flushWarning(cmd, store.AddKeyword(name, keyword)); err != nil {
				return err
			}

			logMutation(cmd, dir, auditlog.Entry{
				Timestamp: time.Now(),
				Action:    auditlog.ActionAddKeyword,
				Category:  name,
				Detail:    category.Normalize(keyword),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added keyword %q to %q\n", category.Normalize(keyword), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	return cmd
}

// flushWarning downgrades a category-document flush failure to a warning.
// The in-memory mutation is kept; the user is told it was not saved.
func flushWarning(cmd *cobra.Command, err error) error {
	var perr *category.PersistenceError
	if errors.As(err, &perr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: change applied but not saved: %v\n", perr)
		return nil
	}
	return err
}

// logMutation appends an audit entry. Audit failures are warnings, never
// fatal: the mutation itself already succeeded.
func logMutation(cmd *cobra.Command, dir string, e auditlog.Entry) {
	if err := auditlog.Append(dir, []auditlog.Entry{e}); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: writing category log: %v\n", err)
	}
}
