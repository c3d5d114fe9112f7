// ==============================================================================================
// FILE: cmd/prolog/cmd_run.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: `prolog run <file> -q <query>` — load one program file non-interactively and print
//          the answer to a single query, for scripting and CI use.
// ==============================================================================================

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Load a program file and answer a single query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return errors.New("run requires -q/--query")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			d, err := newDriver()
			if err != nil {
				return err
			}
			if err := d.LoadProgram(string(data)); err != nil {
				return err
			}
			answer := d.Answer(query)
			if strings.HasPrefix(answer, "In query: ") {
				return errors.New(answer)
			}
			fmt.Println(answer)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "the goal to answer, e.g. \"parent(X, Y).\"")
	return cmd
}
