package testutil

import "strings"

// Lines joins lines with "\n".
func Lines(lines ...string) string {
	return strings.Join(lines, "\n")
}
