package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var extractFormat string

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "table", "output format: table or json")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <export.html>",
	Short: "Prints the usernames found in a single export file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		users, err := newExtractor().ExtractFromReader(f)
		if err != nil {
			return describe(err)
		}

		switch extractFormat {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(users)
		case "table":
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Username", "Profile"})
			for _, name := range users.Usernames() {
				t.AppendRow(table.Row{name, users[name]})
			}
			t.AppendFooter(table.Row{"Total", len(users)})
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		default:
			return fmt.Errorf("invalid output format: %s. Must be one of: table, json", extractFormat)
		}
	},
}
