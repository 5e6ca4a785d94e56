package ui

import (
	"fmt"

	"github.com/arthur-debert/denotag/pkg/dispatcher"
	"github.com/arthur-debert/denotag/pkg/types"
)

// Report describes the directive groups found in a document. Line numbers
// are 1-based.
type Report struct {
	Path         string        `json:"path,omitempty" yaml:"path,omitempty"`
	Lines        int           `json:"lines" yaml:"lines"`
	Groups       []GroupReport `json:"groups" yaml:"groups"`
	Unterminated *LineSpan     `json:"unterminated,omitempty" yaml:"unterminated,omitempty"`
}

// LineSpan is an inclusive range of lines.
type LineSpan struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// String formats the span as "3" or "3-5".
func (s LineSpan) String() string {
	if s.From == s.To {
		return fmt.Sprint(s.From)
	}
	return fmt.Sprintf("%d-%d", s.From, s.To)
}

// GroupReport is one directive group and its occurrences.
type GroupReport struct {
	LineSpan   `yaml:",inline"`
	Indent     int               `json:"indent" yaml:"indent"`
	Directives []DirectiveReport `json:"directives" yaml:"directives"`
}

// DirectiveReport is the action one occurrence resolves to.
type DirectiveReport struct {
	Action string   `json:"action" yaml:"action"`
	File   string   `json:"file" yaml:"file"`
	Flags  []string `json:"flags" yaml:"flags"`
}

// NewReport summarizes a scanned document.
func NewReport(path string, doc *types.Document) *Report {
	report := &Report{
		Path:   path,
		Lines:  len(doc.Lines),
		Groups: make([]GroupReport, 0, len(doc.Entries)),
	}

	for _, entry := range doc.Entries {
		group := GroupReport{
			LineSpan:   spanOf(entry.Group),
			Indent:     entry.Group.Indent,
			Directives: make([]DirectiveReport, 0, len(entry.Attributes)),
		}
		for _, attrs := range entry.Attributes {
			action := dispatcher.Resolve(attrs)
			group.Directives = append(group.Directives, DirectiveReport{
				Action: string(action.Type),
				File:   action.File,
				Flags:  action.Flags,
			})
		}
		report.Groups = append(report.Groups, group)
	}

	if doc.Unterminated != nil {
		span := spanOf(*doc.Unterminated)
		report.Unterminated = &span
	}
	return report
}

func spanOf(g types.Group) LineSpan {
	return LineSpan{From: g.LineOpened + 1, To: g.LineClosed + 1}
}

// Directives returns the number of directive occurrences in the report.
func (r *Report) Directives() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Directives)
	}
	return n
}
