package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

var printer = message.NewPrinter(language.English)

var (
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the plugins in the feed",
	Long:  `List every feed entry with its version count and latest version.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one feed entry for display.
type listEntry struct {
	Name     string `json:"name"`
	GUID     string `json:"guid"`
	Category string `json:"category"`
	Versions int    `json:"versions"`
	Latest   string `json:"latest,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	path, err := manifestPath()
	if err != nil {
		return err
	}

	m, err := feed.Load(path)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	if len(m) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Feed is empty.")
		return nil
	}

	var entries []listEntry
	for _, p := range m {
		if listCategory != "" && p.Category != listCategory {
			continue
		}
		e := listEntry{Name: p.Name, GUID: p.GUID, Category: p.Category, Versions: len(p.Versions)}
		if latest, ok := feed.Latest(p); ok {
			e.Latest = latest.Version
		}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No plugins matching --category=%s\n", listCategory)
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tGUID\tCATEGORY\tVERSIONS\tLATEST")
	versions := 0
	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = "-"
		}
		latest := e.Latest
		if latest == "" {
			latest = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", e.Name, e.GUID, category, e.Versions, latest)
		versions += e.Versions
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := printer.Fprintf(cmd.OutOrStdout(), "\n%d plugin(s), %d published version(s)\n", len(entries), versions)
	return err
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
