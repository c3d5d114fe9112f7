// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. It connects an input stream to the driver package instead
//          of talking to lexer/parser/engine directly, the same shape the teacher's Start used
//          for its lexer/parser/evaluator pipeline, now collapsed behind one facade.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/HeavyHelium/prolog-go/driver"
	"github.com/HeavyHelium/prolog-go/lexer"
	"github.com/HeavyHelium/prolog-go/replcolor"
	"github.com/HeavyHelium/prolog-go/token"
)

const (
	PROMPT = ">- "
	LOGO   = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  _ __  _ __ ___ | | ___   __ _       __ _  ___     ┃
┃ | '_ \| '__/ _ \| |/ _ \ / _` + "`" + ` |_____ / _` + "`" + ` |/ _ \    ┃
┃ | |_) | | | (_) | | (_) | (_| |_____| (_| | (_) |   ┃
┃ | .__/|_|  \___/|_|\___/ \__, |      \__, |\___/    ┃
┃ |_|                      |___/       |___/          ┃
┃                                                     ┃
┃ A pure Horn-clause logic language REPL              ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
)

// Start launches the REPL, reading lines from in and writing to out. d is a
// Driver the caller has already constructed (so the CLI controls tracing
// and max-solutions via internal/config before the REPL ever starts).
//
// Toplevel convention (not part of the core grammar, spec §6): a line
// beginning with "?-" is a query; every other non-empty, non-dot-command
// line is appended to the running program text and reloaded as a whole
// knowledge base, mirroring the classic Prolog toplevel's fact/query split.
// When d has no program loaded, the session starts from an empty knowledge
// base, so a query for an unknown predicate reports "No such predicate".
func Start(in io.Reader, out io.Writer, d *driver.Driver, pal *replcolor.Palette) {
	scanner := bufio.NewScanner(in)
	var programText strings.Builder
	debugMode := false

	if !d.Loaded() {
		_ = d.LoadProgram("")
	}

	pal.Banner.Fprint(out, LOGO)
	printHelp(out, pal)

	for {
		pal.Prompt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch line {
			case ".exit":
				pal.Success.Fprintln(out, "Goodbye!")
				return
			case ".clear":
				programText.Reset()
				_ = d.LoadProgram("")
				pal.Success.Fprintln(out, "Knowledge base cleared.")
				continue
			case ".debug":
				debugMode = !debugMode
				status := "DISABLED"
				if debugMode {
					status = "ENABLED"
				}
				pal.Debug.Fprintf(out, "Token debug %s\n", status)
				continue
			case ".trace":
				if err := d.SetTrace(!d.Trace()); err != nil {
					pal.ErrorC.Fprintf(out, "%s\n", err.Error())
					continue
				}
				status := "DISABLED"
				if d.Trace() {
					status = "ENABLED"
				}
				pal.Debug.Fprintf(out, "Proof-search trace %s\n", status)
				continue
			case ".help":
				printHelp(out, pal)
				continue
			default:
				pal.Failure.Fprintf(out, "Unknown command: %s. Type .help for info.\n", line)
				continue
			}
		}

		if debugMode {
			printTokens(out, pal, line)
		}

		if strings.HasPrefix(line, "?-") {
			query := strings.TrimSpace(strings.TrimPrefix(line, "?-"))
			printAnswer(out, pal, d.Answer(query))
			continue
		}

		before := programText.String()
		programText.WriteString(line)
		programText.WriteByte('\n')
		if err := d.LoadProgram(programText.String()); err != nil {
			programText.Reset()
			programText.WriteString(before)
			pal.ErrorC.Fprintf(out, "%s\n", err.Error())
			continue
		}
		pal.Success.Fprintln(out, "ok.")
	}
}

func printHelp(out io.Writer, pal *replcolor.Palette) {
	pal.Debug.Fprintln(out, "Commands:")
	pal.Debug.Fprintln(out, "  ?- goal.   Ask a query")
	pal.Debug.Fprintln(out, "  fact/rule. Add a clause to the knowledge base")
	pal.Debug.Fprintln(out, "  .clear     Reset the knowledge base")
	pal.Debug.Fprintln(out, "  .debug     Toggle token output")
	pal.Debug.Fprintln(out, "  .trace     Toggle proof-search trace logging")
	pal.Debug.Fprintln(out, "  .help      Show this message")
	pal.Debug.Fprintln(out, "  .exit      Quit")
	fmt.Fprintln(out)
}

func printTokens(out io.Writer, pal *replcolor.Palette, line string) {
	pal.Debug.Fprintln(out, "┌── [ TOKENS ] ──────────────────────────────────────────┐")
	for _, tok := range lexer.Tokenize(line) {
		if tok.Type == token.EOF {
			break
		}
		pal.Debug.Fprintf(out, "│ %-15s : %s\n", tok.Type, tok.Literal)
	}
	pal.Debug.Fprintln(out, "└────────────────────────────────────────────────────────┘")
}

func printAnswer(out io.Writer, pal *replcolor.Palette, answer string) {
	switch {
	case strings.HasPrefix(answer, "In query: "):
		pal.ErrorC.Fprintln(out, answer)
	case answer == "false.":
		pal.Failure.Fprintln(out, answer)
	default:
		pal.Success.Fprintln(out, answer)
	}
}
