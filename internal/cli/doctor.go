package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

var doctorStrict bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorStrict, "strict", false, "Exit non-zero when the feed has issues")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the update feed",
	Long: `Run diagnostic checks on the feed: entry identity, guid uniqueness and
format, version history ordering. Findings are advisory; publishing
works either way, but merges against a broken feed may not do what the
maintainer expects. With --strict any finding fails the command.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	path, err := manifestPath()
	if err != nil {
		return err
	}

	fmt.Printf("Feed check: %s\n", path)

	if _, err := os.Stat(path); err != nil {
		fmt.Println("  [INFO] manifest does not exist yet; the first publish creates it")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	m := feed.Decode(data)

	issues := 0
	if notAFeed(data, m) {
		fmt.Println("  [WARN] existing content did not parse as a feed; the next publish starts over empty")
		issues++
	}

	for _, issue := range feed.Lint(m) {
		fmt.Printf("  [WARN] %s: %s\n", issue.Entry, issue.Message)
		issues++
	}

	if issues == 0 {
		printer.Printf("  [ OK ] %d plugin(s), %d version record(s), no issues\n", len(m), m.TotalVersions())
		return nil
	}
	if doctorStrict {
		return fmt.Errorf("feed has %d issue(s)", issues)
	}
	return nil
}

// notAFeed reports content that decoded to an empty feed without being an
// empty document or an empty JSON array.
func notAFeed(data []byte, m feed.Manifest) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || len(m) > 0 {
		return false
	}
	var raw []json.RawMessage
	return json.Unmarshal(trimmed, &raw) != nil || raw == nil || len(raw) != 0
}
