package analysis

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

// DefaultMinRecommendedLength is the character count below which results are flagged as short.
const DefaultMinRecommendedLength = 50

// Config holds configuration for the analyzer.
type Config struct {
	// MinRecommendedLength is the trimmed character count below which a
	// short_text warning is attached. Zero disables the warning.
	MinRecommendedLength int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		MinRecommendedLength: DefaultMinRecommendedLength,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MinRecommendedLength < 0 {
		return errors.New("minRecommendedLength must not be negative")
	}
	return nil
}

// Analyzer runs feature extraction followed by score aggregation.
type Analyzer struct {
	config     Config
	logger     ports.Logger
	extractor  ports.FeatureExtractor
	aggregator ports.ScoreAggregator
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(config Config, logger ports.Logger, extractor ports.FeatureExtractor, aggregator ports.ScoreAggregator) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Analyzer{
		config:     config,
		logger:     logger,
		extractor:  extractor,
		aggregator: aggregator,
	}, nil
}

// Analyze scores text. It returns false for blank text; callers should clear
// any previous result rather than treat this as an error.
func (a *Analyzer) Analyze(text string) (domain.Analysis, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		a.logger.Debug("Blank text, no analysis")
		return domain.Analysis{}, false
	}

	features := a.extractor.Extract(text)
	score, ok := a.aggregator.Aggregate(features)
	if !ok {
		return domain.Analysis{}, false
	}

	result := domain.Analysis{
		Features:   features,
		Score:      score,
		Confidence: domain.ConfidenceFor(score),
	}
	if n := utf8.RuneCountInString(trimmed); a.config.MinRecommendedLength > 0 && n < a.config.MinRecommendedLength {
		result.Warnings = append(result.Warnings, domain.WarningShortText)
	}

	a.logger.Debug("Analyzed text",
		"ai_percentage", score.AIPercentage,
		"human_percentage", score.HumanPercentage,
		"confidence", result.Confidence,
		"warnings", len(result.Warnings),
	)
	return result, true
}
