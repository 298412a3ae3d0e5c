package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(guidCmd)
}

var guidCmd = &cobra.Command{
	Use:   "guid [guid]",
	Short: "Mint or validate a plugin guid",
	Long: `Mint a fresh plugin guid, or validate and normalize one passed as an
argument. Guids identify a plugin across renames, so every plugin keeps
the same guid for its whole release history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), uuid.NewString())
			return nil
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid guid %q: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), id.String())
		return nil
	},
}
