// ==============================================================================================
// FILE: cmd/prolog/cmd_repl.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: `prolog repl [file...]` — start the interactive toplevel, optionally preloading one
//          or more program files into the knowledge base first.
// ==============================================================================================

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HeavyHelium/prolog-go/repl"
	"github.com/HeavyHelium/prolog-go/replcolor"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl [file...]",
		Short: "Start an interactive session, optionally preloading program files",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDriver()
			if err != nil {
				return err
			}

			if len(args) > 0 {
				var text strings.Builder
				for _, path := range args {
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					text.Write(data)
					text.WriteByte('\n')
				}
				if err := d.LoadProgram(text.String()); err != nil {
					return err
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pal := replcolor.New(cfg.Color)
			repl.Start(os.Stdin, os.Stdout, d, pal)
			return nil
		},
	}
}
