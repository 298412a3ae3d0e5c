package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/feedsmith-labs/feedsmith/internal/cli"
	"github.com/feedsmith-labs/feedsmith/internal/envcfg"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		var missing *envcfg.MissingVarError
		if errors.As(err, &missing) {
			// Pipelines match this message and exit code verbatim.
			fmt.Fprintln(os.Stderr, missing.Error())
			os.Exit(envcfg.ExitMissingVar)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
