// Package directive finds <deno ...> directive tags in a document and parses
// their attributes.
//
// A tag is recognised purely by its opening marker anywhere in a line, so it
// may sit inside other markup:
//
//	<script><deno run="app.ts" /></script>
//
// Tags may span several lines and several tags may share a line. The lines a
// set of tags occupies form a group; each group is later replaced as a whole
// by the output of its tags.
package directive

// Markers recognised in documents.
const (
	OpenMarker  = "<deno"
	SelfClose   = "/>"
	CloseMarker = "</deno>"
)
