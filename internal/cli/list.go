package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/gabrielfornes/worklog/internal/worklog"
)

func addList(topLevel *cobra.Command, a *app) {
	var showID bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the log, newest first",
		Example: `
worklog list
worklog list --id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error {
				printEntries(cmd.OutOrStdout(), a.store.Load().Entries(), showID)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showID, "id", false, "show entry ids")

	topLevel.AddCommand(cmd)
}

// printEntries renders entries as a table with the same columns as the
// interactive list.
func printEntries(out io.Writer, entries []worklog.Entry, showID bool) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, color.New(color.Faint).Sprint("No entries yet."))
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	header := []interface{}{bold.Sprint("Log"), bold.Sprint("Modified"), bold.Sprint("Created")}
	if showID {
		header = append(header, bold.Sprint("ID"))
	}
	tbl.AddRow(header...)
	for _, e := range entries {
		row := []interface{}{
			e.Summary(),
			e.Modified.Local().Format(worklog.TimeLayout),
			faint.Sprint(e.Created.Local().Format(worklog.TimeLayout)),
		}
		if showID {
			row = append(row, faint.Sprint(e.ID))
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(out, tbl)
}
