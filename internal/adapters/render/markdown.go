package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/chart"
)

// MarkdownWriter writes reports as GitHub-flavored Markdown with a mermaid pie chart.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs one section per report.
func (w *MarkdownWriter) Write(reports []Report) error {
	md := markdown.NewMarkdown(w.output)
	md.H1("Text Heuristic Report")
	md.PlainText("")

	for _, r := range reports {
		w.writeReport(md, r)
	}

	md.Note("Scores come from fixed heuristic thresholds and are not calibrated probabilities.")
	return md.Build()
}

func (w *MarkdownWriter) writeReport(md *markdown.Markdown, r Report) {
	md.H2(r.Source)
	md.PlainText("")

	if r.Error != "" {
		md.Cautionf("Could not analyze %s: %s", r.Source, r.Error)
		md.PlainText("")
		return
	}
	if r.Analysis == nil {
		md.PlainText("No result: the text is blank.")
		md.PlainText("")
		return
	}

	a := r.Analysis
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Size", humanize.Bytes(uint64(r.Bytes))},
			{chart.LabelAI, strconv.Itoa(a.Score.AIPercentage) + "%"},
			{chart.LabelHuman, strconv.Itoa(a.Score.HumanPercentage) + "%"},
			{"Confidence", string(a.Confidence)},
		},
	})
	md.PlainText("")

	w.writePieChart(md, r)

	if r.Charts != nil {
		rows := make([][]string, 0, len(r.Charts.Radar))
		for _, p := range r.Charts.Radar {
			rows = append(rows, []string{p.Feature, fmt.Sprintf("%.1f", p.Value), strconv.Itoa(p.FullMark)})
		}
		md.H3("Features")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Feature", "Value", "Full mark"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	rules := make([][]string, 0, len(a.Score.Rules))
	for _, o := range a.Score.Rules {
		rules = append(rules, []string{o.Rule, string(o.Side), strconv.Itoa(o.Points)})
	}
	md.H3("Rules")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Rule", "Side", "Points"},
		Rows:   rules,
	})
	md.PlainText("")

	for _, warn := range a.Warnings {
		md.Warningf("%s: results on short texts are less reliable.", warn)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, r Report) {
	a := r.Analysis
	pie := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("AI vs Human"),
		piechart.WithShowData(true),
	)
	if a.Score.AIPercentage > 0 {
		pie.LabelAndIntValue(chart.LabelAI, uint64(a.Score.AIPercentage))
	}
	if a.Score.HumanPercentage > 0 {
		pie.LabelAndIntValue(chart.LabelHuman, uint64(a.Score.HumanPercentage))
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, pie.String())
	md.PlainText("")
}
