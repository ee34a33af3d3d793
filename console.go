package consolekit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amterp/color"
)

// Style identifies how a piece of console output should be presented.
// The library only ever selects a tag; what a tag looks like is up to the
// Console implementation.
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleInfo
	StyleWarning
	StyleSuccess
	StyleError
)

// Console is the output sink for help, completion, and command output.
// Implementations append text with the given style, optionally followed by
// a line break.
type Console interface {
	Output(text string, style Style, newline bool)
}

var (
	boldS    = color.New(color.Bold).SprintfFunc()
	cyanS    = color.New(color.FgCyan).SprintfFunc()
	yellowS  = color.New(color.FgYellow).SprintfFunc()
	greenS   = color.New(color.FgGreen).SprintfFunc()
	redBoldS = color.New(color.FgRed, color.Bold).SprintfFunc()
)

// Terminal is a Console that writes styled text to a writer, typically a TTY.
type Terminal struct {
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Output(text string, style Style, newline bool) {
	initializeColorFromEnv()

	styled := text
	switch style {
	case StyleBold:
		styled = boldS("%s", text)
	case StyleInfo:
		styled = cyanS("%s", text)
	case StyleWarning:
		styled = yellowS("%s", text)
	case StyleSuccess:
		styled = greenS("%s", text)
	case StyleError:
		styled = redBoldS("%s", text)
	}

	fmt.Fprint(t.out, styled)
	if newline {
		fmt.Fprintln(t.out)
	}
}

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("CONSOLE_KIT_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// let amterp/color decide based on tty
	}
}
