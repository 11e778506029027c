// Package output provides terminal output: color classes, the status formatter,
// console and file logging, and progress reporting.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorClass is the semantic color of a piece of output
type ColorClass int

const (
	ClassMuted ColorClass = iota
	ClassNeutral
	ClassSuccess
	ClassWarning
	ClassAlert
)

func (c ColorClass) String() string {
	switch c {
	case ClassNeutral:
		return "neutral"
	case ClassSuccess:
		return "success"
	case ClassWarning:
		return "warning"
	case ClassAlert:
		return "alert"
	default:
		return "muted"
	}
}

// classColors maps each class to an ANSI color
var classColors = map[ColorClass]lipgloss.Color{
	ClassMuted:   lipgloss.Color("8"),
	ClassNeutral: lipgloss.Color("12"),
	ClassSuccess: lipgloss.Color("2"),
	ClassWarning: lipgloss.Color("3"),
	ClassAlert:   lipgloss.Color("1"),
}

// Style returns the lipgloss style for the class
func (c ColorClass) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(classColors[c])
}

// Render colors text with the class style
func (c ColorClass) Render(text string) string {
	return c.Style().Render(text)
}

// ConfigureColors picks the color profile for stdout.
// Colors are disabled when noColor is set or stdout is not a terminal.
func ConfigureColors(noColor bool) {
	if noColor || !IsTerminal(os.Stdout) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTTY returns true if both stdin and stdout are terminals
func IsTTY() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

// ColorBold renders text in bold
func ColorBold(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// ColorHeader renders a bold cyan section header
func ColorHeader(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorBranchName colors a branch name green
func ColorBranchName(branchName string) string {
	return ClassSuccess.Render(branchName)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return ClassMuted.Render(text)
}
