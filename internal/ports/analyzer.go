package ports

import (
	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
)

// FeatureExtractor derives a feature set from raw text.
type FeatureExtractor interface {
	Extract(text string) domain.FeatureSet
}

// ScoreAggregator turns a feature set into AI / human percentages.
// The boolean is false when no rule contributed any points.
type ScoreAggregator interface {
	Aggregate(features domain.FeatureSet) (domain.ScoreResult, bool)
}

// Analyzer is the single entry point consumers call.
// The boolean is false for blank text, which callers treat as "no result".
type Analyzer interface {
	Analyze(text string) (domain.Analysis, bool)
}
