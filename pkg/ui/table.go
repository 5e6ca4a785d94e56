package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/denotag/pkg/style"
)

// tableRenderer prints reports as a pterm table. Without color every ANSI
// sequence is stripped from the output.
type tableRenderer struct {
	output io.Writer
	color  bool
}

func (r *tableRenderer) RenderReport(report *Report) error {
	title := fmt.Sprintf("%d lines, %d groups, %d directives",
		report.Lines, len(report.Groups), report.Directives())
	if report.Path != "" {
		title = r.path(report.Path) + ": " + title
	}
	if err := r.println(r.title(title)); err != nil {
		return err
	}

	if len(report.Groups) > 0 {
		table, err := pterm.DefaultTable.
			WithHasHeader().
			WithData(r.rows(report)).
			Srender()
		if err != nil {
			return err
		}
		if err := r.println(table); err != nil {
			return err
		}
	}

	if report.Unterminated != nil {
		msg := fmt.Sprintf("unterminated directive starting at line %d, left untouched", report.Unterminated.From)
		if r.color {
			msg = style.WarningStyle.Render("warning:") + " " + msg
		} else {
			msg = "warning: " + msg
		}
		return r.println(msg)
	}
	return nil
}

func (r *tableRenderer) rows(report *Report) pterm.TableData {
	data := pterm.TableData{{"LINES", "INDENT", "ACTION", "FILE", "FLAGS"}}
	for _, group := range report.Groups {
		for _, d := range group.Directives {
			action := d.Action
			if r.color {
				action = style.ActionStyle(action).Sprint(action)
			}
			data = append(data, []string{
				group.String(),
				fmt.Sprint(group.Indent),
				action,
				d.File,
				strings.Join(d.Flags, " "),
			})
		}
	}
	return data
}

func (r *tableRenderer) RenderError(err error) error {
	return r.println(style.FormatError(err))
}

func (r *tableRenderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *tableRenderer) title(s string) string {
	if !r.color {
		return s
	}
	return style.TitleStyle.Render(s)
}

func (r *tableRenderer) path(s string) string {
	if !r.color {
		return s
	}
	return style.PathStyle.Render(s)
}

func (r *tableRenderer) println(s string) error {
	if !r.color {
		s = ansi.Strip(s)
	}
	_, err := fmt.Fprintln(r.output, strings.TrimRight(s, "\n"))
	return err
}
