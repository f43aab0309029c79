package render

import (
	"encoding/json"
	"io"
)

// JSONWriter writes reports as an indented JSON document.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

// Write outputs {"reports": [...]}.
func (w *JSONWriter) Write(reports []Report) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Reports []Report `json:"reports"`
	}{Reports: reports})
}
