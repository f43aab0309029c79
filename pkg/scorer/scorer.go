// Package scorer scores text on a heuristic scale between AI-generated and
// human-written. It is a pure computation: every call is independent and a
// Scorer may be shared between goroutines.
package scorer

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/logger"
	"github.com/baditaflorin/go_text_heuristic/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_heuristic/internal/core/analysis"
	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
	"github.com/baditaflorin/go_text_heuristic/internal/core/features"
	"github.com/baditaflorin/go_text_heuristic/internal/core/scoring"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
	"github.com/baditaflorin/go_text_heuristic/internal/warmup"
	"github.com/baditaflorin/l"
)

// Re-exported result types.
type (
	Analysis    = domain.Analysis
	FeatureSet  = domain.FeatureSet
	ScoreResult = domain.ScoreResult
	RuleOutcome = domain.RuleOutcome
	Confidence  = domain.Confidence
	Warning     = domain.Warning
)

// Scorer extracts features from text and converts them to AI / human percentages.
type Scorer struct {
	analyzer   ports.Analyzer
	logger     ports.Logger
	normalizer ports.Normalizer
	warmOnce   sync.Once
	warmed     atomic.Bool
}

// Option defines a functional option for configuring a Scorer.
type Option func(*scorerConfig)

type scorerConfig struct {
	MinRecommendedLength int
	Logger               ports.Logger
	Normalizer           ports.Normalizer
	WarmUp               bool
	WarmUpConfig         warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *scorerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithPortsLogger sets a logger that already satisfies ports.Logger.
func WithPortsLogger(l ports.Logger) Option {
	return func(cfg *scorerConfig) {
		cfg.Logger = l
	}
}

// WithNormalizer sets the word normalizer used for vocabulary comparisons.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *scorerConfig) {
		cfg.Normalizer = n
	}
}

// WithFastNormalizer uses the ASCII lookup-table normalizer.
func WithFastNormalizer() Option {
	return func(cfg *scorerConfig) {
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.FastNormalizerType)
	}
}

// WithMinRecommendedLength sets the character count below which a short_text
// warning is attached. Zero disables the warning.
func WithMinRecommendedLength(n int) Option {
	return func(cfg *scorerConfig) {
		cfg.MinRecommendedLength = n
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *scorerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *scorerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Scorer.
func New(opts ...Option) (*Scorer, error) {
	defaultConfig := analysis.DefaultConfig()

	config := &scorerConfig{
		MinRecommendedLength: defaultConfig.MinRecommendedLength,
		WarmUpConfig:         warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	analyzer, err := analysis.NewAnalyzer(
		analysis.Config{MinRecommendedLength: config.MinRecommendedLength},
		config.Logger,
		features.NewExtractor(config.Logger, config.Normalizer),
		scoring.NewAggregator(config.Logger),
	)
	if err != nil {
		return nil, err
	}

	s := &Scorer{
		analyzer:   analyzer,
		logger:     config.Logger,
		normalizer: config.Normalizer,
	}

	if config.WarmUp {
		s.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return s, nil
}

// Analyze scores text. The boolean is false for blank or whitespace-only text;
// that is a valid "no result" state, not an error.
func (s *Scorer) Analyze(text string) (Analysis, bool) {
	return s.analyzer.Analyze(text)
}

// Logger returns the logger the scorer writes to.
func (s *Scorer) Logger() ports.Logger {
	return s.logger
}

// WarmUp exercises the scorer so first requests do not pay for lazy initialization.
// Only the first call warms up; concurrent callers wait for it to finish.
func (s *Scorer) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	ran := false
	s.warmOnce.Do(func() {
		ran = true
		mgr := warmup.NewManager(s.logger, config)
		mgr.RegisterAnalyzer(s.analyzer)
		mgr.RegisterNormalizer(s.normalizer)

		mgr.WarmUp(ctx)
		s.warmed.Store(true)
	})
	if !ran {
		s.logger.Debug("System already warmed up, skipping")
	}
}
