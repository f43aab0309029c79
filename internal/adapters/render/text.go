package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// TextWriter writes a human-readable summary.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// Write outputs every report, separated by a blank line.
func (w *TextWriter) Write(reports []Report) error {
	var sb strings.Builder
	for i, r := range reports {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeTextReport(&sb, r)
	}
	_, err := io.WriteString(w.output, sb.String())
	return err
}

func writeTextReport(sb *strings.Builder, r Report) {
	fmt.Fprintf(sb, "=== %s (%s) ===\n", r.Source, humanize.Bytes(uint64(r.Bytes)))
	if r.Error != "" {
		fmt.Fprintf(sb, "error: %s\n", r.Error)
		return
	}
	if r.Analysis == nil {
		sb.WriteString("no result: text is blank\n")
		return
	}

	a := r.Analysis
	fmt.Fprintf(sb, "AI-generated:  %3d%%\n", a.Score.AIPercentage)
	fmt.Fprintf(sb, "Human-written: %3d%%\n", a.Score.HumanPercentage)
	fmt.Fprintf(sb, "Confidence:    %s\n", a.Confidence)
	if r.Charts != nil {
		s := r.Charts.Summary
		fmt.Fprintf(sb, "Average sentence length: %.1f words\n", s.AvgSentenceLength)
		fmt.Fprintf(sb, "Vocabulary diversity:    %.1f%%\n", s.VocabularyDiversityPct)
		fmt.Fprintf(sb, "Sentence length variance: %.1f\n", s.SentenceLengthVariance)
		fmt.Fprintf(sb, "Repetition rate:         %.1f%%\n", s.RepetitionRatePct)
	}
	for _, warn := range a.Warnings {
		fmt.Fprintf(sb, "warning: %s\n", warn)
	}
}
