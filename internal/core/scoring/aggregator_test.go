package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/logger"
	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
)

func newTestAggregator() *Aggregator {
	return NewAggregator(logger.NewNopLogger())
}

func outcome(t *testing.T, result domain.ScoreResult, name string) domain.RuleOutcome {
	t.Helper()
	for _, r := range result.Rules {
		if r.Rule == name {
			return r
		}
	}
	t.Fatalf("rule %s not in result", name)
	return domain.RuleOutcome{}
}

// base sits in the middle band of every rule so single fields can be varied.
func base() domain.FeatureSet {
	return domain.FeatureSet{
		SentenceLengthVariance: 100,
		AvgSentenceLength:      12,
		VocabularyDiversity:    0.6,
		RepetitionRate:         0.1,
		ConjunctionRate:        0.1,
		StructuralComplexity:   0.45,
		WordCount:              10,
	}
}

func TestRuleBands(t *testing.T) {
	tests := []struct {
		name   string
		rule   string
		modify func(*domain.FeatureSet)
		side   domain.Side
		points int
	}{
		{"low variance", RuleSentenceVariance, func(f *domain.FeatureSet) { f.SentenceLengthVariance = 10 }, domain.SideAI, 20},
		{"high variance", RuleSentenceVariance, func(f *domain.FeatureSet) { f.SentenceLengthVariance = 200 }, domain.SideHuman, 20},
		{"variance at 50", RuleSentenceVariance, func(f *domain.FeatureSet) { f.SentenceLengthVariance = 50 }, domain.SideHuman, 10},
		{"variance at 150", RuleSentenceVariance, func(f *domain.FeatureSet) { f.SentenceLengthVariance = 150 }, domain.SideHuman, 10},

		{"high diversity", RuleVocabularyDiversity, func(f *domain.FeatureSet) { f.VocabularyDiversity = 0.9 }, domain.SideHuman, 25},
		{"low diversity", RuleVocabularyDiversity, func(f *domain.FeatureSet) { f.VocabularyDiversity = 0.2 }, domain.SideAI, 25},
		{"diversity at 0.7", RuleVocabularyDiversity, func(f *domain.FeatureSet) { f.VocabularyDiversity = 0.7 }, domain.SideAI, 10},
		{"diversity at 0.5", RuleVocabularyDiversity, func(f *domain.FeatureSet) { f.VocabularyDiversity = 0.5 }, domain.SideAI, 10},

		{"high repetition", RuleRepetition, func(f *domain.FeatureSet) { f.RepetitionRate = 0.3 }, domain.SideAI, 15},
		{"low repetition", RuleRepetition, func(f *domain.FeatureSet) { f.RepetitionRate = 0.01 }, domain.SideHuman, 15},
		{"repetition at 0.15", RuleRepetition, func(f *domain.FeatureSet) { f.RepetitionRate = 0.15 }, domain.SideHuman, 8},
		{"repetition at 0.08", RuleRepetition, func(f *domain.FeatureSet) { f.RepetitionRate = 0.08 }, domain.SideHuman, 8},

		{"conjunctions in band", RuleConjunctions, func(f *domain.FeatureSet) { f.ConjunctionRate = 0.045 }, domain.SideAI, 15},
		{"conjunctions at 0.03", RuleConjunctions, func(f *domain.FeatureSet) { f.ConjunctionRate = 0.03 }, domain.SideHuman, 10},
		{"conjunctions at 0.06", RuleConjunctions, func(f *domain.FeatureSet) { f.ConjunctionRate = 0.06 }, domain.SideHuman, 10},
		{"no conjunctions", RuleConjunctions, func(f *domain.FeatureSet) { f.ConjunctionRate = 0 }, domain.SideHuman, 10},

		{"low complexity", RuleStructuralComplexity, func(f *domain.FeatureSet) { f.StructuralComplexity = 0.1 }, domain.SideAI, 15},
		{"high complexity", RuleStructuralComplexity, func(f *domain.FeatureSet) { f.StructuralComplexity = 0.9 }, domain.SideHuman, 15},
		{"complexity at 0.3", RuleStructuralComplexity, func(f *domain.FeatureSet) { f.StructuralComplexity = 0.3 }, domain.SideHuman, 8},
		{"complexity at 0.6", RuleStructuralComplexity, func(f *domain.FeatureSet) { f.StructuralComplexity = 0.6 }, domain.SideHuman, 8},

		{"typical sentence length", RuleAvgSentenceLength, func(f *domain.FeatureSet) { f.AvgSentenceLength = 20 }, domain.SideAI, 10},
		{"sentence length at 15", RuleAvgSentenceLength, func(f *domain.FeatureSet) { f.AvgSentenceLength = 15 }, domain.SideAI, 10},
		{"sentence length at 25", RuleAvgSentenceLength, func(f *domain.FeatureSet) { f.AvgSentenceLength = 25 }, domain.SideAI, 10},
		{"short sentences", RuleAvgSentenceLength, func(f *domain.FeatureSet) { f.AvgSentenceLength = 5 }, domain.SideHuman, 10},
		{"long sentences", RuleAvgSentenceLength, func(f *domain.FeatureSet) { f.AvgSentenceLength = 35 }, domain.SideHuman, 10},
		{"sentence length at 10", RuleAvgSentenceLength, func(f *domain.FeatureSet) { f.AvgSentenceLength = 10 }, domain.SideNone, 0},
		{"sentence length at 28", RuleAvgSentenceLength, func(f *domain.FeatureSet) { f.AvgSentenceLength = 28 }, domain.SideNone, 0},
		{"sentence length at 30", RuleAvgSentenceLength, func(f *domain.FeatureSet) { f.AvgSentenceLength = 30 }, domain.SideNone, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := base()
			tc.modify(&fs)
			result, ok := newTestAggregator().Aggregate(fs)
			require.True(t, ok)

			got := outcome(t, result, tc.rule)
			assert.Equal(t, tc.side, got.Side)
			assert.Equal(t, tc.points, got.Points)
		})
	}
}

func TestAggregateRuleOrder(t *testing.T) {
	result, ok := newTestAggregator().Aggregate(base())
	require.True(t, ok)

	names := make([]string, 0, len(result.Rules))
	for _, r := range result.Rules {
		names = append(names, r.Rule)
	}
	assert.Equal(t, []string{
		RuleSentenceVariance,
		RuleVocabularyDiversity,
		RuleRepetition,
		RuleConjunctions,
		RuleStructuralComplexity,
		RuleAvgSentenceLength,
	}, names)
}

func TestAggregateTotals(t *testing.T) {
	// Features of the single sentence "Hi.".
	fs := domain.FeatureSet{
		AvgSentenceLength:   1,
		VocabularyDiversity: 1,
		PunctuationDensity:  1.0 / 3.0,
		SentenceCount:       1,
		WordCount:           1,
		CharCount:           3,
	}
	result, ok := newTestAggregator().Aggregate(fs)
	require.True(t, ok)

	assert.Equal(t, 35, result.AIScore)
	assert.Equal(t, 60, result.HumanScore)
	assert.Equal(t, 37, result.AIPercentage)
	assert.Equal(t, 63, result.HumanPercentage)
	assert.Equal(t, domain.LeaningHuman, result.Leaning())
}

func TestAggregatePercentagesSumTo100(t *testing.T) {
	for _, v := range []float64{0, 0.01, 0.045, 0.2, 0.55, 0.75, 1, 40, 120, 400} {
		fs := domain.FeatureSet{
			SentenceLengthVariance: v * 3,
			AvgSentenceLength:      v * 10,
			VocabularyDiversity:    v,
			RepetitionRate:         v / 2,
			ConjunctionRate:        v / 10,
			StructuralComplexity:   v,
			WordCount:              1,
		}
		result, ok := newTestAggregator().Aggregate(fs)
		require.True(t, ok)
		assert.Equal(t, 100, result.AIPercentage+result.HumanPercentage)
		assert.GreaterOrEqual(t, result.AIPercentage, 0)
		assert.LessOrEqual(t, result.AIPercentage, 100)
		assert.Positive(t, result.AIScore+result.HumanScore)
	}
}

func TestAggregateZeroFeatures(t *testing.T) {
	result, ok := newTestAggregator().Aggregate(domain.FeatureSet{})
	assert.False(t, ok)
	assert.Equal(t, domain.ScoreResult{}, result)
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		ai   int
		want domain.Confidence
	}{
		{50, domain.ConfidenceLow},
		{54, domain.ConfidenceLow},
		{55, domain.ConfidenceMedium},
		{30, domain.ConfidenceHigh},
		{69, domain.ConfidenceMedium},
		{70, domain.ConfidenceHigh},
		{100, domain.ConfidenceHigh},
		{0, domain.ConfidenceHigh},
	}
	for _, tc := range tests {
		s := domain.ScoreResult{AIPercentage: tc.ai, HumanPercentage: 100 - tc.ai}
		assert.Equal(t, tc.want, domain.ConfidenceFor(s), "ai=%d", tc.ai)
	}
}
