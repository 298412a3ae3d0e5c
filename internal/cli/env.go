package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedsmith-labs/feedsmith/internal/envcfg"
)

var envFull bool

func init() {
	envCmd.Flags().BoolVar(&envFull, "full", false, "Print values untruncated")
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the publish variable checklist",
	Long: `Show which of the required publish variables are currently set, in the
order a publish checks them. Useful for debugging a pipeline before it
runs: the first [MISS] line is the variable a publish would report.`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	fmt.Println("Publish environment:")

	missing := 0
	for _, s := range envcfg.Describe() {
		if !s.Set {
			missing++
			fmt.Printf("  [MISS] %-13s  %s\n", s.Name, s.Hint)
			continue
		}
		fmt.Printf("  [ OK ] %-13s  %s\n", s.Name, preview(s.Value))
	}

	if missing == 0 {
		fmt.Println("\nAll publish variables are set.")
		return nil
	}
	fmt.Printf("\n%d variable(s) missing; a publish would fail with exit code %d.\n",
		missing, envcfg.ExitMissingVar)
	return nil
}

// preview truncates long values so URLs and descriptions do not wrap the
// checklist. Truncation is per rune; multibyte values stay valid UTF-8.
func preview(v string) string {
	if v == "" {
		return "(empty)"
	}
	if r := []rune(v); !envFull && len(r) > 48 {
		return string(r[:45]) + "..."
	}
	return v
}
