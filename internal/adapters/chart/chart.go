package chart

import (
	"math"

	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
)

// FullMark is the maximum value on every radar axis.
const FullMark = 100

// Bar is one bar of the AI / human comparison chart.
type Bar struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// RadarPoint is one axis of the feature radar chart.
type RadarPoint struct {
	Feature  string  `json:"feature"`
	Value    float64 `json:"value"`
	FullMark int     `json:"full_mark"`
}

// Summary holds display-ready feature values.
type Summary struct {
	AvgSentenceLength      float64 `json:"avg_sentence_length"`
	VocabularyDiversityPct float64 `json:"vocabulary_diversity_pct"`
	SentenceLengthVariance float64 `json:"sentence_length_variance"`
	RepetitionRatePct      float64 `json:"repetition_rate_pct"`
}

// Charts bundles everything a presentation layer needs to draw a result.
type Charts struct {
	Bars    []Bar        `json:"bars"`
	Radar   []RadarPoint `json:"radar"`
	Summary Summary      `json:"summary"`
}

// Bar names.
const (
	LabelAI    = "AI-generated"
	LabelHuman = "Human-written"
)

// Radar axis names.
const (
	AxisVocabularyDiversity  = "Vocabulary diversity"
	AxisStructuralComplexity = "Structural complexity"
	AxisLengthConsistency    = "Sentence length consistency"
	AxisRepetition           = "Repetition"
	AxisConjunctionUsage     = "Conjunction usage"
)

// FromAnalysis maps an analysis to chart-ready records.
func FromAnalysis(a domain.Analysis) Charts {
	return Charts{
		Bars:    Bars(a.Score),
		Radar:   Radar(a.Features),
		Summary: Summarize(a.Features),
	}
}

// Bars returns the two percentage bars.
func Bars(s domain.ScoreResult) []Bar {
	return []Bar{
		{Name: LabelAI, Percentage: s.AIPercentage},
		{Name: LabelHuman, Percentage: s.HumanPercentage},
	}
}

// Radar returns the feature radar axes. Conjunction usage is scaled by 1000 and
// is not clamped, so it may exceed FullMark.
func Radar(f domain.FeatureSet) []RadarPoint {
	return []RadarPoint{
		{Feature: AxisVocabularyDiversity, Value: f.VocabularyDiversity * 100, FullMark: FullMark},
		{Feature: AxisStructuralComplexity, Value: f.StructuralComplexity * 100, FullMark: FullMark},
		{Feature: AxisLengthConsistency, Value: math.Max(0, 100-f.SentenceLengthVariance/2), FullMark: FullMark},
		{Feature: AxisRepetition, Value: (1 - f.RepetitionRate) * 100, FullMark: FullMark},
		{Feature: AxisConjunctionUsage, Value: f.ConjunctionRate * 1000, FullMark: FullMark},
	}
}

// Summarize rounds the headline features to one decimal place.
func Summarize(f domain.FeatureSet) Summary {
	return Summary{
		AvgSentenceLength:      round1(f.AvgSentenceLength),
		VocabularyDiversityPct: round1(f.VocabularyDiversity * 100),
		SentenceLengthVariance: round1(f.SentenceLengthVariance),
		RepetitionRatePct:      round1(f.RepetitionRate * 100),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
