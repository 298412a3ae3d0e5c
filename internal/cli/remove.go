package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

var removeVersion string

func init() {
	removeCmd.Flags().StringVar(&removeVersion, "version", "", "Remove only this version record, keeping the entry")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <guid>",
	Short: "Remove a plugin entry or one published version",
	Long: `Remove a whole plugin entry from the feed, or with --version just one
record from its history. The rewritten manifest replaces the old one
atomically.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	path, err := manifestPath()
	if err != nil {
		return err
	}
	guid := args[0]

	m, err := feed.Load(path)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	if removeVersion != "" {
		var removed bool
		m, removed = feed.RemoveVersion(m, guid, removeVersion)
		if !removed {
			return fmt.Errorf("no record %s for guid %s", removeVersion, guid)
		}
		if err := feed.Write(path, m); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		fmt.Printf("Removed version %s from %s\n", removeVersion, guid)
		return nil
	}

	m, removed := feed.RemovePlugin(m, guid)
	if !removed {
		return fmt.Errorf("no feed entry with guid %s", guid)
	}
	if err := feed.Write(path, m); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	fmt.Printf("Removed %s from the feed\n", guid)
	return nil
}
