package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feedsmith-labs/feedsmith/internal/feed"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <guid-or-name>",
	Short: "Show one plugin entry and its version history",
	Long: `Show a single feed entry with its full version history.

The argument is matched against guids first, then against plugin names;
a name shared by several entries must be disambiguated by guid.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path, err := manifestPath()
	if err != nil {
		return err
	}

	m, err := feed.Load(path)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	p, err := resolveEntry(m, args[0])
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	return printEntry(cmd, p)
}

// resolveEntry finds an entry by guid, falling back to a unique name match.
func resolveEntry(m feed.Manifest, key string) (feed.Plugin, error) {
	if i := m.FindByGUID(key); i >= 0 {
		return m[i], nil
	}

	matches := m.FindByName(key)
	switch len(matches) {
	case 0:
		return feed.Plugin{}, fmt.Errorf("no feed entry matches %q", key)
	case 1:
		return m[matches[0]], nil
	}
	return feed.Plugin{}, fmt.Errorf("name %q matches %d entries; use a guid", key, len(matches))
}

func printEntry(cmd *cobra.Command, p feed.Plugin) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:        %s\n", p.Name)
	fmt.Fprintf(out, "GUID:        %s\n", p.GUID)
	fmt.Fprintf(out, "Category:    %s\n", p.Category)
	fmt.Fprintf(out, "Owner:       %s\n", p.Owner)
	fmt.Fprintf(out, "Overview:    %s\n", p.Overview)
	fmt.Fprintf(out, "Description: %s\n", p.Description)
	fmt.Fprintf(out, "Image URL:   %s\n", p.ImageURL)

	if len(p.Versions) == 0 {
		fmt.Fprintln(out, "\nNo published versions.")
		return nil
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "VERSION\tTARGET ABI\tTIMESTAMP\tSOURCE URL")
	for _, v := range p.Versions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Version, v.TargetABI, v.Timestamp, v.SourceURL)
	}
	return w.Flush()
}
