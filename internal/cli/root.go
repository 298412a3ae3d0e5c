package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/feedsmith-labs/feedsmith/internal/branding"
	"github.com/feedsmith-labs/feedsmith/internal/envcfg"
	"github.com/feedsmith-labs/feedsmith/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	flagManifest string
	flagEnvFile  string
	flagVerbose  bool
)

// logger is the shared logger, configured in the root PersistentPreRunE.
var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` maintains the JSON update feed of a plugin repository: the
manifest of distributable plugins and their published version history
that plugin clients poll for updates.

A bare invocation (or 'feedsmith publish') reads the publish variables
from the environment and merges one plugin version into the manifest.
The remaining commands inspect and maintain an existing feed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Dotenv values never override variables the pipeline already set.
		if flagEnvFile != "" {
			if err := godotenv.Load(flagEnvFile); err != nil {
				return fmt.Errorf("loading env file %s: %w", flagEnvFile, err)
			}
		}
		logger = logging.New(os.Stderr, logLevel())
		return nil
	},
	RunE: runPublish,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagManifest, "manifest", "", "Manifest path for maintenance commands (defaults to $"+branding.EnvVar("MANIFEST")+", then $"+envcfg.VarManifestPath+")")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Load environment variables from a dotenv file first")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// logLevel resolves the logger level: --verbose wins, then FEEDSMITH_LOG.
func logLevel() zerolog.Level {
	if flagVerbose {
		return zerolog.DebugLevel
	}
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	return logging.ParseLevel(v.GetString("log"))
}

// manifestPath resolves the feed location for the maintenance commands:
// the --manifest flag first, then FEEDSMITH_MANIFEST, then the pipeline's
// MANIFEST_PATH. Publish itself does not use this; its manifest location is
// part of the environment contract.
func manifestPath() (string, error) {
	if flagManifest != "" {
		return flagManifest, nil
	}
	if v := os.Getenv(branding.EnvVar("MANIFEST")); v != "" {
		return v, nil
	}
	if path, ok := envcfg.ManifestPathFromEnv(); ok {
		return path, nil
	}
	return "", fmt.Errorf("no manifest given: set --manifest or %s", envcfg.VarManifestPath)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
