// ==============================================================================================
// FILE: cmd/prolog/cmd_check.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: `prolog check <file...>` — syntax-check one or more program files without answering
//          any query. Files are parsed concurrently via golang.org/x/sync/errgroup: this is the
//          one place in the whole module concurrency is permitted (spec §5 confines the single-
//          threaded discipline to resolution itself, not to independent file parses).
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/HeavyHelium/prolog-go/parser"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file...>",
		Short: "Syntax-check one or more program files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]string, len(args))
			var g errgroup.Group
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					data, err := os.ReadFile(path)
					if err != nil {
						results[i] = fmt.Sprintf("%s: %s", path, err)
						return err
					}
					if _, err := parser.ParseProgram(string(data)); err != nil {
						results[i] = fmt.Sprintf("%s: %s", path, err.Error())
						return err
					}
					results[i] = fmt.Sprintf("%s: ok", path)
					return nil
				})
			}
			checkErr := g.Wait()
			for _, line := range results {
				fmt.Println(line)
			}
			if checkErr != nil {
				return fmt.Errorf("one or more files failed to parse")
			}
			return nil
		},
	}
}
