// Package ui renders denotag's reports in terminal, text, JSON and YAML
// formats.
package ui

import (
	"fmt"
	"io"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders a scan report
	RenderReport(report *Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return &tableRenderer{output: output, color: true}, nil
	case FormatText:
		return &tableRenderer{output: output}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	case FormatYAML:
		return &yamlRenderer{output: output}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
