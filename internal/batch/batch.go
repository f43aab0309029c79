package batch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/render"
	"github.com/baditaflorin/go_text_heuristic/internal/adapters/source"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

// Loader produces the text for one input.
type Loader func() (source.Text, error)

// Input is a named, lazily loaded text.
type Input struct {
	Name string
	Load Loader
}

// Processor analyzes many inputs concurrently.
type Processor struct {
	analyzer    ports.Analyzer
	logger      ports.Logger
	concurrency int
}

// NewProcessor creates a batch processor. Concurrency below 1 is treated as 1.
func NewProcessor(analyzer ports.Analyzer, logger ports.Logger, concurrency int) *Processor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Processor{
		analyzer:    analyzer,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Process loads and analyzes every input. Reports keep input order. A load
// failure is recorded in its report and does not stop the batch; the returned
// error is only non-nil when ctx is cancelled.
func (p *Processor) Process(ctx context.Context, inputs []Input) ([]render.Report, error) {
	p.logger.Info("Starting batch analysis",
		"inputs", len(inputs),
		"concurrency", p.concurrency,
	)
	start := time.Now()

	reports := make([]render.Report, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, in := range inputs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			text, err := in.Load()
			if err != nil {
				p.logger.Warn("Failed to load input", "input", in.Name, "error", err)
				reports[i] = render.Report{Source: in.Name, Error: err.Error()}
				return nil
			}

			result, ok := p.analyzer.Analyze(text.Body)
			reports[i] = render.NewReport(in.Name, text.Bytes, result, ok)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}

	p.logger.Info("Batch analysis completed",
		"inputs", len(inputs),
		"duration", time.Since(start),
	)
	return reports, nil
}

// Texts analyzes already loaded strings; a blank entry yields a report without analysis.
func (p *Processor) Texts(ctx context.Context, names, texts []string) ([]render.Report, error) {
	inputs := make([]Input, len(texts))
	for i := range texts {
		name, body := names[i], texts[i]
		inputs[i] = Input{Name: name, Load: func() (source.Text, error) {
			return source.FromString(name, body), nil
		}}
	}
	return p.Process(ctx, inputs)
}
