package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feedsmith-labs/feedsmith/internal/envcfg"
	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Merge the version described by the environment into the feed",
	Long:  publishLong(),
	Args:  cobra.NoArgs,
	RunE:  runPublish,
}

// publishLong renders the command help from the required variable list.
func publishLong() string {
	var b strings.Builder
	b.WriteString("Merge one plugin version into the update feed.\n\n")
	b.WriteString("The publish request is read entirely from the environment:\n\n")
	for _, rv := range envcfg.Required() {
		fmt.Fprintf(&b, "  %-13s  %s\n", rv.Name, rv.Hint)
	}
	fmt.Fprintf(&b, `
A missing variable prints its name on stderr and exits with code %d
without touching the manifest. A bare invocation with no subcommand runs
the same operation. Nothing is printed on success.`, envcfg.ExitMissingVar)
	return b.String()
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := envcfg.Collect()
	if err != nil {
		return err
	}

	logger.Debug().
		Str("manifest", cfg.ManifestPath).
		Str("guid", cfg.Plugin.GUID).
		Str("version", cfg.Version.Version).
		Msg("publishing")

	m, err := feed.Load(cfg.ManifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	logger.Debug().Int("entries", len(m)).Msg("manifest loaded")

	m = feed.Merge(m, cfg.Plugin, cfg.Version)

	if err := feed.Write(cfg.ManifestPath, m); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	logger.Debug().Int("entries", len(m)).Msg("manifest written")
	return nil
}
