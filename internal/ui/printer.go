package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Printer writes status lines, styled only when the writer is a terminal.
type Printer struct {
	w     io.Writer
	color bool

	success lipgloss.Style
	warning lipgloss.Style
	errorS  lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
}

// NewPrinter creates a Printer for w using the given theme.
func NewPrinter(w io.Writer, theme TermTheme) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		color:   isTerminal(w) && os.Getenv("NO_COLOR") == "",
		success: r.NewStyle().Foreground(theme.Success).Bold(true),
		warning: r.NewStyle().Foreground(theme.Warning).Bold(true),
		errorS:  r.NewStyle().Foreground(theme.Error).Bold(true),
		key:     r.NewStyle().Foreground(theme.Secondary).Width(10),
		value:   r.NewStyle().Foreground(theme.Primary),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Success prints an "OK:" line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(p.success, "OK:"), fmt.Sprintf(format, args...))
}

// Warn prints a "WARNING:" line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(p.warning, "WARNING:"), fmt.Sprintf(format, args...))
}

// Error prints an "ERROR:" line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(p.errorS, "ERROR:"), fmt.Sprintf(format, args...))
}

// Field prints an indented "key value" line.
func (p *Printer) Field(key, value string) {
	if !p.color {
		fmt.Fprintf(p.w, "  %-10s%s\n", key, value)
		return
	}
	fmt.Fprintf(p.w, "  %s%s\n", p.key.Render(key), p.value.Render(value))
}
