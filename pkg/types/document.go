package types

// Group identifies one contiguous span of document lines holding one or more
// directive occurrences that open and close together. Line numbers are
// 0-based and LineOpened <= LineClosed. Indent is the number of leading
// whitespace characters on LineOpened.
type Group struct {
	LineOpened int `json:"line_opened" yaml:"line_opened"`
	LineClosed int `json:"line_closed" yaml:"line_closed"`
	Indent     int `json:"indent" yaml:"indent"`
}

// Span returns the number of lines the group occupies.
func (g Group) Span() int {
	return g.LineClosed - g.LineOpened + 1
}

// Entry pairs a group with the attribute maps of its occurrences, in
// document order.
type Entry struct {
	Group      Group
	Attributes []*Attributes
}

// Document is the result of scanning a text for directives.
type Document struct {
	// Text is the unmodified input
	Text string

	// Lines is Text split on "\n"
	Lines []string

	// Entries holds every closed group in scan order
	Entries []Entry

	// Unterminated is set when a multi-line group was still open at the end
	// of the input. Its lines are left untouched.
	Unterminated *Group
}

// ActionResult is the text that replaces lines From..To (inclusive).
type ActionResult struct {
	From     int
	To       int
	Contents string
}

// Covers reports whether line falls within the result's range.
func (r ActionResult) Covers(line int) bool {
	return line >= r.From && line <= r.To
}
