package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/chart"
	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
)

// ErrUnknownFormat is returned by ParseFormat for names it does not recognise.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects an output renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Report is the rendered outcome for one input.
type Report struct {
	Source string `json:"source"`
	Bytes  int64  `json:"bytes"`
	// Analysis is nil when the input was blank.
	Analysis *domain.Analysis `json:"analysis"`
	Charts   *chart.Charts    `json:"charts,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// NewReport builds a report, attaching chart records when an analysis exists.
func NewReport(source string, size int64, analysis domain.Analysis, ok bool) Report {
	r := Report{Source: source, Bytes: size}
	if ok {
		r.Analysis = &analysis
		c := chart.FromAnalysis(analysis)
		r.Charts = &c
	}
	return r
}

// Writer renders reports to an output.
type Writer interface {
	Write(reports []Report) error
}

// NewWriter returns the Writer for format.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
