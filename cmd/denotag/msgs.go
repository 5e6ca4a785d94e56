package denotag

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Expand <deno> directive tags in a document"
	MsgScanShort       = "List the directive tags of a document without running them"
	MsgConfigShort     = "Print the effective configuration"
	MsgSyntaxShort     = "Describe the directive tag syntax"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWroteOutput   = "Wrote %s\n"
	MsgVersionFormat = "denotag %s (commit %s, built %s)\n"

	// Error messages
	MsgErrReadDocument = "failed to read %s: %w"
	MsgErrWriteOutput  = "failed to write output to %s"
	MsgErrTopicMissing = "help topic %q not found"
	MsgErrLoadTopics   = "Failed to load help topics"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Read configuration from this file (.toml, .yaml or .yml)"
	MsgFlagOutput     = "Write the result to this file instead of standard output"
	MsgFlagRunCommand = "Base command for run actions, e.g. \"deno run -A\""
	MsgFlagCapture    = "Output to capture from run actions: piped or combined"
	MsgFlagTrim       = "Strip one trailing newline from every action output"
	MsgFlagFormat     = "Output format: auto, term, text, json or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/scan-long.txt
	msgScanLongRaw string
	MsgScanLong    = strings.TrimSpace(msgScanLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
