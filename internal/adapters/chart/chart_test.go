package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
)

func TestBars(t *testing.T) {
	bars := Bars(domain.ScoreResult{AIPercentage: 71, HumanPercentage: 29})
	assert.Equal(t, []Bar{
		{Name: LabelAI, Percentage: 71},
		{Name: LabelHuman, Percentage: 29},
	}, bars)
}

func TestRadar(t *testing.T) {
	points := Radar(domain.FeatureSet{
		VocabularyDiversity:    0.8,
		StructuralComplexity:   0.25,
		SentenceLengthVariance: 60,
		RepetitionRate:         0.1,
		ConjunctionRate:        0.04,
	})
	require.Len(t, points, 5)

	want := map[string]float64{
		AxisVocabularyDiversity:  80,
		AxisStructuralComplexity: 25,
		AxisLengthConsistency:    70,
		AxisRepetition:           90,
		AxisConjunctionUsage:     40,
	}
	for _, p := range points {
		assert.InDelta(t, want[p.Feature], p.Value, 1e-9, p.Feature)
		assert.Equal(t, FullMark, p.FullMark)
	}
}

func TestRadarClamping(t *testing.T) {
	points := Radar(domain.FeatureSet{SentenceLengthVariance: 500, ConjunctionRate: 2})

	byAxis := make(map[string]float64, len(points))
	for _, p := range points {
		byAxis[p.Feature] = p.Value
	}
	assert.InDelta(t, 0.0, byAxis[AxisLengthConsistency], 1e-9)
	// Conjunction usage is left unclamped.
	assert.InDelta(t, 2000.0, byAxis[AxisConjunctionUsage], 1e-9)
}

func TestSummarize(t *testing.T) {
	s := Summarize(domain.FeatureSet{
		AvgSentenceLength:      19.25,
		VocabularyDiversity:    0.87654,
		SentenceLengthVariance: 261.6875,
		RepetitionRate:         0.0333,
	})
	assert.InDelta(t, 19.3, s.AvgSentenceLength, 1e-9)
	assert.InDelta(t, 87.7, s.VocabularyDiversityPct, 1e-9)
	assert.InDelta(t, 261.7, s.SentenceLengthVariance, 1e-9)
	assert.InDelta(t, 3.3, s.RepetitionRatePct, 1e-9)
}

func TestFromAnalysis(t *testing.T) {
	c := FromAnalysis(domain.Analysis{
		Features: domain.FeatureSet{AvgSentenceLength: 10},
		Score:    domain.ScoreResult{AIPercentage: 40, HumanPercentage: 60},
	})
	assert.Len(t, c.Bars, 2)
	assert.Len(t, c.Radar, 5)
	assert.InDelta(t, 10.0, c.Summary.AvgSentenceLength, 1e-9)
}
