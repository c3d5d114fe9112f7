// ==============================================================================================
// FILE: replcolor/replcolor.go
// ==============================================================================================
// PACKAGE: replcolor
// PURPOSE: Terminal color helpers for the REPL, built on github.com/fatih/color instead of the
//          teacher's hand-rolled ANSI escape constants — one small seam where the pack's
//          dependency set covers something the teacher wrote by hand (SPEC_FULL.md §6).
// ==============================================================================================

package replcolor

import "github.com/fatih/color"

// Palette is the fixed set of semantic colors the REPL prints with.
// New(false) disables all of them at once, for --color=false or a config
// file with color: false.
type Palette struct {
	Banner  *color.Color
	Prompt  *color.Color
	Success *color.Color
	Failure *color.Color
	ErrorC  *color.Color
	Debug   *color.Color
}

// New builds the standard palette. When enabled is false, every color in
// the palette is a no-op — SprintFunc still formats the string, just
// without escape codes (color.NoColor honors this automatically).
func New(enabled bool) *Palette {
	color.NoColor = !enabled
	return &Palette{
		Banner:  color.New(color.FgCyan, color.Bold),
		Prompt:  color.New(color.FgCyan),
		Success: color.New(color.FgGreen),
		Failure: color.New(color.FgYellow),
		ErrorC:  color.New(color.FgRed, color.Bold),
		Debug:   color.New(color.FgHiBlack),
	}
}
