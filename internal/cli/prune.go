package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

var pruneKeep int

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", 3, "Number of newest records to keep per entry")
	rootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune [guid]",
	Short: "Trim version histories to their newest records",
	Long: `Trim every entry's version history to its newest --keep records, or
just one entry's when a guid is given. Histories are stored newest
first, so pruning drops the oldest records.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrune,
}

func runPrune(cmd *cobra.Command, args []string) error {
	if pruneKeep < 1 {
		return fmt.Errorf("--keep must be at least 1, got %d", pruneKeep)
	}

	path, err := manifestPath()
	if err != nil {
		return err
	}

	m, err := feed.Load(path)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	var dropped int
	if len(args) == 1 {
		var found bool
		m, dropped, found = feed.PrunePlugin(m, args[0], pruneKeep)
		if !found {
			return fmt.Errorf("no feed entry with guid %s", args[0])
		}
	} else {
		m, dropped = feed.Prune(m, pruneKeep)
	}

	if dropped == 0 {
		fmt.Println("Nothing to prune.")
		return nil
	}

	if err := feed.Write(path, m); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	printer.Printf("Dropped %d version record(s), keeping the newest %d per entry.\n", dropped, pruneKeep)
	return nil
}
