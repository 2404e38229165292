package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Printer renders menu output. Colour is only used when out is a terminal.
type Printer struct {
	out     io.Writer
	title   *color.Color
	success *color.Color
	info    *color.Color
	warn    *color.Color
	error   *color.Color
}

func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}

	p := &Printer{
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		info:    color.New(color.FgBlue),
		warn:    color.New(color.FgYellow, color.Bold),
		error:   color.New(color.FgRed, color.Bold),
	}

	if !supportsColor(out) || os.Getenv("NO_COLOR") != "" {
		for _, c := range []*color.Color{p.title, p.success, p.info, p.warn, p.error} {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) Banner() {
	p.title.Fprintln(p.out, "==================================")
	p.title.Fprintln(p.out, "        SCOUTING MANAGER")
	p.title.Fprintln(p.out, "==================================")
}

func (p *Printer) Title(text string) {
	fmt.Fprintln(p.out)
	p.title.Fprintln(p.out, text)
	fmt.Fprintln(p.out, strings.Repeat("-", runewidth.StringWidth(text)))
}

func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Info(format string, args ...any) {
	p.info.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Error(err error) {
	p.error.Fprintf(p.out, "Error: %s\n", describeError(err))
}

// KeyValues prints aligned "key: value" lines in the given order.
func (p *Printer) KeyValues(pairs [][2]string) {
	width := 0
	for _, pair := range pairs {
		if w := runewidth.StringWidth(pair[0]); w > width {
			width = w
		}
	}
	for _, pair := range pairs {
		label := runewidth.FillRight(pair[0]+":", width+1)
		fmt.Fprintf(p.out, "%s %s\n", p.info.Sprint(label), pair[1])
	}
}

// Table prints rows under header with columns padded to their widest cell.
func (p *Printer) Table(header []string, rows [][]string) {
	if len(rows) == 0 {
		p.Warn("(no entries)")
		return
	}

	for _, line := range formatTable(header, rows) {
		fmt.Fprintln(p.out, line)
	}
}

func formatTable(header []string, rows [][]string) []string {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = runewidth.StringWidth(cell)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	render := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, render(header), strings.Join(rule, "  "))
	for _, row := range rows {
		lines = append(lines, render(row))
	}
	return lines
}

func supportsColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
