package scoring

import (
	"math"

	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

// Rule names, in evaluation order.
const (
	RuleSentenceVariance     = "sentence_length_variance"
	RuleVocabularyDiversity  = "vocabulary_diversity"
	RuleRepetition           = "repetition_rate"
	RuleConjunctions         = "conjunction_rate"
	RuleStructuralComplexity = "structural_complexity"
	RuleAvgSentenceLength    = "avg_sentence_length"
)

type rule struct {
	name  string
	apply func(domain.FeatureSet) (domain.Side, int)
}

// The thresholds are hand-tuned and kept as literals.
var rules = []rule{
	{RuleSentenceVariance, func(f domain.FeatureSet) (domain.Side, int) {
		switch v := f.SentenceLengthVariance; {
		case v < 50:
			return domain.SideAI, 20
		case v > 150:
			return domain.SideHuman, 20
		default:
			return domain.SideHuman, 10
		}
	}},
	{RuleVocabularyDiversity, func(f domain.FeatureSet) (domain.Side, int) {
		switch d := f.VocabularyDiversity; {
		case d > 0.7:
			return domain.SideHuman, 25
		case d < 0.5:
			return domain.SideAI, 25
		default:
			return domain.SideAI, 10
		}
	}},
	{RuleRepetition, func(f domain.FeatureSet) (domain.Side, int) {
		switch r := f.RepetitionRate; {
		case r > 0.15:
			return domain.SideAI, 15
		case r < 0.08:
			return domain.SideHuman, 15
		default:
			return domain.SideHuman, 8
		}
	}},
	{RuleConjunctions, func(f domain.FeatureSet) (domain.Side, int) {
		if c := f.ConjunctionRate; c > 0.03 && c < 0.06 {
			return domain.SideAI, 15
		}
		return domain.SideHuman, 10
	}},
	{RuleStructuralComplexity, func(f domain.FeatureSet) (domain.Side, int) {
		switch c := f.StructuralComplexity; {
		case c < 0.3:
			return domain.SideAI, 15
		case c > 0.6:
			return domain.SideHuman, 15
		default:
			return domain.SideHuman, 8
		}
	}},
	// The band between 10 and 15 (and 25 to 30) adds nothing.
	{RuleAvgSentenceLength, func(f domain.FeatureSet) (domain.Side, int) {
		switch a := f.AvgSentenceLength; {
		case a >= 15 && a <= 25:
			return domain.SideAI, 10
		case a < 10 || a > 30:
			return domain.SideHuman, 10
		default:
			return domain.SideNone, 0
		}
	}},
}

// Aggregator applies the threshold rules and normalizes the totals to percentages.
type Aggregator struct {
	logger ports.Logger
}

// NewAggregator creates a score aggregator.
func NewAggregator(logger ports.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate scores a feature set. It returns false when no points were awarded,
// which only happens for the zero feature set of blank text.
func (a *Aggregator) Aggregate(features domain.FeatureSet) (domain.ScoreResult, bool) {
	if features.IsZero() {
		a.logger.Debug("Empty feature set, no score")
		return domain.ScoreResult{}, false
	}

	result := domain.ScoreResult{
		Rules: make([]domain.RuleOutcome, 0, len(rules)),
	}
	for _, r := range rules {
		side, points := r.apply(features)
		switch side {
		case domain.SideAI:
			result.AIScore += points
		case domain.SideHuman:
			result.HumanScore += points
		}
		result.Rules = append(result.Rules, domain.RuleOutcome{Rule: r.name, Side: side, Points: points})
	}

	total := result.AIScore + result.HumanScore
	if total == 0 {
		a.logger.Debug("No rule contributed points")
		return domain.ScoreResult{}, false
	}

	result.AIPercentage = int(math.Round(float64(result.AIScore) / float64(total) * 100))
	result.HumanPercentage = 100 - result.AIPercentage

	a.logger.Debug("Aggregated score",
		"ai_score", result.AIScore,
		"human_score", result.HumanScore,
		"ai_percentage", result.AIPercentage,
		"human_percentage", result.HumanPercentage,
	)
	return result, true
}
