// Package assemble builds the replacement text for every directive group and
// splices it into the original document.
package assemble

import (
	"context"
	"strings"

	"github.com/arthur-debert/denotag/pkg/types"
)

// Dispatcher produces the output of one directive occurrence.
type Dispatcher interface {
	Dispatch(ctx context.Context, attrs *types.Attributes) (string, error)
}

// ComposeOptions tunes how action outputs are combined.
type ComposeOptions struct {
	// TrimTrailingNewline drops one trailing "\n" from each action output
	TrimTrailingNewline bool
}

// Compose dispatches every occurrence of every entry, sequentially and in
// document order, and returns one result per entry. Outputs of one group are
// joined with "\n" and every resulting line is prefixed with the group's
// indent in spaces.
func Compose(ctx context.Context, entries []types.Entry, d Dispatcher, opts ComposeOptions) ([]types.ActionResult, error) {
	results := make([]types.ActionResult, 0, len(entries))
	for _, entry := range entries {
		outputs := make([]string, 0, len(entry.Attributes))
		for _, attrs := range entry.Attributes {
			out, err := d.Dispatch(ctx, attrs)
			if err != nil {
				return nil, err
			}
			if opts.TrimTrailingNewline {
				out = strings.TrimSuffix(out, "\n")
			}
			outputs = append(outputs, out)
		}

		results = append(results, types.ActionResult{
			From:     entry.Group.LineOpened,
			To:       entry.Group.LineClosed,
			Contents: Indent(strings.Join(outputs, "\n"), entry.Group.Indent),
		})
	}
	return results, nil
}

// Indent prefixes every line of text with n spaces.
func Indent(text string, n int) string {
	if n <= 0 {
		return text
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
