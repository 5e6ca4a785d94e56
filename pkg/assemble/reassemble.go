package assemble

import (
	"strings"

	"github.com/arthur-debert/denotag/pkg/types"
)

// Reassemble rebuilds the document: lines covered by a result are dropped and
// each result's contents is emitted once, at its first line. Results may be
// given in any order. All other lines pass through unchanged.
func Reassemble(text string, results []types.ActionResult) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		ignore := false
		for _, r := range results {
			if r.From == i {
				out = append(out, r.Contents)
			}
			if r.Covers(i) {
				ignore = true
			}
		}
		if !ignore {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
