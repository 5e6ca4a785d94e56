package directive

import (
	"strings"

	"github.com/arthur-debert/denotag/pkg/types"
)

// ParseAttributes parses the text of one group (multi-line groups joined with
// a single space) into one attribute map per occurrence, in order.
//
// Parsing is lenient: a value whose closing quote never arrives is dropped,
// and a quoted value containing spaces is rejoined without them, so
// title="a b" yields `"ab"`.
func ParseAttributes(text string) []*types.Attributes {
	segments := strings.Split(text, OpenMarker)
	result := make([]*types.Attributes, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		result = append(result, parseSegment(segment))
	}
	return result
}

func parseSegment(segment string) *types.Attributes {
	if end := strings.IndexByte(segment, '>'); end >= 0 {
		segment = segment[:end]
	}
	segment = strings.TrimSuffix(strings.TrimRight(segment, " \t\r"), "/")

	attrs := types.NewAttributes()
	var (
		key     string
		partial string
	)
	for _, token := range strings.Split(segment, " ") {
		token = strings.Trim(token, "\t\r")
		if token == "" || token == "/" {
			continue
		}

		if key == "" {
			name, rest, found := strings.Cut(token, "=")
			if !found {
				attrs.Set(token, types.True)
				continue
			}
			key, partial = name, rest
		} else {
			partial += token
		}

		if isComplete(partial) {
			attrs.Set(key, types.Value(partial))
			key, partial = "", ""
		}
	}
	return attrs
}

func isComplete(value string) bool {
	return len(value) >= 2 && strings.HasSuffix(value, `"`)
}
