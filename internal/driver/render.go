package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"stelaro/internal/diag"
	"stelaro/internal/source"
)

// TermEmitter renders diagnostics to a terminal as they are emitted: a
// header line (path:line:col: SEVERITY CODE: message), the offending
// source line, and a single caret under the diagnostic's start column.
// A styled summary footer is available separately via Summary, since the
// total error/warning count isn't known until the whole bag is in.
type TermEmitter struct {
	Out   io.Writer
	Files *source.FileSet
	Color bool

	errorColor   *color.Color
	warningColor *color.Color
	infoColor    *color.Color
	pathColor    *color.Color
	codeColor    *color.Color
	caretColor   *color.Color
}

// NewTermEmitter builds a TermEmitter writing to out, auto-detecting color
// support on out when color is "auto".
func NewTermEmitter(out io.Writer, files *source.FileSet, colorMode string) *TermEmitter {
	useColor := colorMode == "on"
	if colorMode == "auto" {
		if f, ok := out.(interface{ Fd() uintptr }); ok {
			useColor = term.IsTerminal(int(f.Fd()))
		}
	}
	return &TermEmitter{
		Out:          out,
		Files:        files,
		Color:        useColor,
		errorColor:   color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		infoColor:    color.New(color.FgCyan, color.Bold),
		pathColor:    color.New(color.FgWhite, color.Bold),
		codeColor:    color.New(color.FgMagenta),
		caretColor:   color.New(color.FgRed, color.Bold),
	}
}

func (e *TermEmitter) Emit(d diag.Diagnostic) {
	prev := color.NoColor
	color.NoColor = !e.Color
	defer func() { color.NoColor = prev }()

	startLC, _ := e.Files.Resolve(d.Primary)
	f := e.Files.Get(d.Primary.File)

	var sevColored string
	switch d.Severity {
	case diag.SevError, diag.SevFatal:
		sevColored = e.errorColor.Sprint(d.Severity.String())
	case diag.SevWarning:
		sevColored = e.warningColor.Sprint(d.Severity.String())
	default:
		sevColored = e.infoColor.Sprint(d.Severity.String())
	}

	fmt.Fprintf(e.Out, "%s:%d:%d: %s %s: %s\n",
		e.pathColor.Sprint(f.Path), startLC.Line, startLC.Col,
		sevColored, e.codeColor.Sprint(d.Code.ID()), d.Message)

	if line, col := lineAt(f, d.Primary); line != "" {
		fmt.Fprintf(e.Out, "  %s\n", line)
		width := visualWidth(line, col)
		fmt.Fprintf(e.Out, "  %s%s\n", strings.Repeat(" ", width), e.caretColor.Sprint("^"))
	}

	for _, n := range d.Notes {
		fmt.Fprintf(e.Out, "  note: %s\n", n.Msg)
	}
}

// Summary renders a lipgloss-boxed "N errors, M warnings" footer.
func Summary(errors, warnings int) string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
	if errors > 0 {
		style = style.BorderForeground(lipgloss.Color("9"))
	} else if warnings > 0 {
		style = style.BorderForeground(lipgloss.Color("11"))
	} else {
		style = style.BorderForeground(lipgloss.Color("10"))
	}
	return style.Render(fmt.Sprintf("%d error(s), %d warning(s)", errors, warnings))
}

func lineAt(f *source.File, span source.Span) (string, uint32) {
	start := uint32(0)
	for _, end := range f.LineIdx {
		if span.Start <= end {
			break
		}
		start = end + 1
	}
	end := start
	for end < uint32(len(f.Content)) && f.Content[end] != '\n' {
		end++
	}
	if start > uint32(len(f.Content)) || start > end {
		return "", 0
	}
	col := span.Start - start
	return string(f.Content[start:end]), col
}

func visualWidth(line string, uptoByte uint32) int {
	width := 0
	pos := uint32(0)
	for _, r := range line {
		if pos >= uptoByte {
			break
		}
		if r == '\t' {
			width = (width + 8) / 8 * 8
		} else {
			width += runewidth.RuneWidth(r)
		}
		pos += uint32(len(string(r)))
	}
	return width
}
