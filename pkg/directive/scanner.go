package directive

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/denotag/pkg/logging"
	"github.com/arthur-debert/denotag/pkg/types"
)

// Scan walks text line by line and returns every directive group with the
// attribute maps of its occurrences.
//
// A group starts on a line holding at least one opening marker and closes on
// the first line where the tags it carries are all closed: a still-open
// multi-line tag counts once, plus every marker opened on that line, and the
// total must equal the number of "/>" and "</deno>" tokens on that line.
func Scan(text string) *types.Document {
	logger := logging.GetLogger("directive.scanner")

	doc := &types.Document{
		Text:  text,
		Lines: strings.Split(text, "\n"),
	}

	var (
		multiLine bool
		group     types.Group
		pending   []string
	)
	for i, line := range doc.Lines {
		opened := strings.Count(line, OpenMarker)
		closed := strings.Count(line, SelfClose) + strings.Count(line, CloseMarker)

		if opened == 0 && !multiLine {
			continue
		}
		if len(pending) == 0 {
			group = types.Group{LineOpened: i, Indent: leadingWhitespace(line)}
		}
		pending = append(pending, line)

		carried := 0
		if multiLine {
			carried = 1
		}
		if carried+opened != closed {
			multiLine = true
			continue
		}

		group.LineClosed = i
		doc.Entries = append(doc.Entries, types.Entry{
			Group:      group,
			Attributes: ParseAttributes(strings.Join(pending, " ")),
		})
		logger.Trace().
			Int("from", group.LineOpened).
			Int("to", group.LineClosed).
			Int("occurrences", opened).
			Msg("Directive group closed")

		pending = nil
		multiLine = false
	}

	if len(pending) > 0 {
		unterminated := group
		unterminated.LineClosed = len(doc.Lines) - 1
		doc.Unterminated = &unterminated
		logger.Warn().
			Int("line", group.LineOpened+1).
			Msg("Directive tag is never closed, leaving it untouched")
	}

	return doc
}

func leadingWhitespace(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
