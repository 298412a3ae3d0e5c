package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty feed",
	Long: `Create an empty feed manifest at the target path, with parent
directories as needed. Refuses to overwrite an existing file; a publish
against a missing manifest creates it anyway, so init is only for
setting up a feed location ahead of the first release.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := manifestPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite existing manifest %s", path)
		}

		if err := feed.Write(path, feed.Manifest{}); err != nil {
			return fmt.Errorf("creating manifest: %w", err)
		}
		fmt.Printf("Created empty feed at %s\n", path)
		return nil
	},
}
