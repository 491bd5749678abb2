package commands

import (
	"fmt"
	"os"

	"github.com/mrjoshuak/followdiff"
	"github.com/spf13/cobra"
)

var (
	followingPath string
	followersPath string
	outputPath    string
)

func init() {
	compareCmd.Flags().StringVar(&followingPath, "following", followdiff.FollowingFileName, "path to the following export")
	compareCmd.Flags().StringVar(&followersPath, "followers", followdiff.FollowersFileName, "path to the followers export")
	compareCmd.Flags().StringVarP(&outputPath, "output", "o", followdiff.ReportFileName, "where to write the report")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare [--following <following.html>] [--followers <followers_1.html>] [-o <unfollowers.html>]",
	Short: "Writes a report of the accounts you follow that don't follow you back.",
	RunE: func(cmd *cobra.Command, args []string) error {
		following, err := os.Open(followingPath)
		if err != nil {
			return fmt.Errorf("please upload both files: %w", err)
		}
		defer following.Close()

		followers, err := os.Open(followersPath)
		if err != nil {
			return fmt.Errorf("please upload both files: %w", err)
		}
		defer followers.Close()

		result, err := newExtractor().Compare(cmd.Context(), following, followers)
		if err != nil {
			return describe(err)
		}

		out, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outputPath, err)
		}
		if err := followdiff.RenderTo(out, result.Unfollowers); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Done! Found %d users who don't follow you back out of %d that you follow.\n",
			len(result.Unfollowers), len(result.Following))
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
		return nil
	},
}

// describe turns library errors into the messages shown to the user.
func describe(err error) error {
	role := followdiff.RoleOf(err)
	switch {
	case followdiff.IsIOError(err):
		return fmt.Errorf("could not read %s: %w", role.FileName(), err)
	case followdiff.IsParseError(err):
		return fmt.Errorf("%s does not look like an HTML export: %w", role.FileName(), err)
	case followdiff.IsEmptyResultError(err):
		return fmt.Errorf("%w\nPlease try uploading different Instagram files. The format might have changed", err)
	default:
		return err
	}
}
