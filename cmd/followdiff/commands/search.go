package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mrjoshuak/followdiff/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <unfollowers.html> [query]",
	Short: "Filters a generated report the same way its search box does.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		rows, err := report.Parse(f)
		if err != nil {
			return err
		}

		filter := report.NewFilter(rows)
		if len(args) == 2 {
			filter.SetQuery(args[1])
		}
		if filter.NoResults() {
			fmt.Fprintln(cmd.OutOrStdout(), filter.NoResultsMessage())
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Username", "Profile"})
		for _, row := range filter.Visible() {
			t.AppendRow(table.Row{row.Username, row.URL})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}
