package ui

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/denotag/pkg/errors"
)

type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderReport(report *Report) error {
	return r.encoder.Encode(report)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(errorObject(err))
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

type yamlRenderer struct {
	output io.Writer
}

func (r *yamlRenderer) encode(v interface{}) error {
	encoder := yaml.NewEncoder(r.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func (r *yamlRenderer) RenderReport(report *Report) error {
	return r.encode(report)
}

func (r *yamlRenderer) RenderError(err error) error {
	return r.encode(errorObject(err))
}

func (r *yamlRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func errorObject(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
}
