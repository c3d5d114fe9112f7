// ==============================================================================================
// FILE: cmd/prolog/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The prolog CLI entry point, built on github.com/spf13/cobra (SPEC_FULL.md §6),
//          grounded on theRebelliousNerd-codenerd's cmd/nerd convention of one root command
//          dispatching to per-file subcommands.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagTrace        bool
	flagColor        bool
	flagConfigPath   string
	flagMaxSolutions int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "prolog",
		Short:         "A pure Horn-clause logic language interpreter",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVar(&flagTrace, "trace", false, "log structured proof-search events")
	root.PersistentFlags().BoolVar(&flagColor, "color", true, "colorize terminal output")
	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().IntVar(&flagMaxSolutions, "max-solutions", 0, "cap the number of answers collected per query (0 = unbounded)")

	root.AddCommand(newReplCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newCheckCmd())
	return root
}
