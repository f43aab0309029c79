package features

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/logger"
	"github.com/baditaflorin/go_text_heuristic/internal/adapters/normalizer"
)

func newTestExtractor() *Extractor {
	return NewExtractor(logger.NewNopLogger(), normalizer.NewDefaultNormalizer())
}

func TestExtractBlank(t *testing.T) {
	e := newTestExtractor()
	for _, text := range []string{"", "   ", "\n\t  \r\n", "　"} {
		assert.True(t, e.Extract(text).IsZero(), "text %q", text)
	}
}

func TestExtractSingleShortSentence(t *testing.T) {
	fs := newTestExtractor().Extract("Hi.")

	assert.Equal(t, 1, fs.SentenceCount)
	assert.Equal(t, 1, fs.WordCount)
	assert.Equal(t, 3, fs.CharCount)
	assert.InDelta(t, 1.0, fs.AvgSentenceLength, 1e-9)
	assert.InDelta(t, 0.0, fs.SentenceLengthVariance, 1e-9)
	assert.InDelta(t, 1.0, fs.VocabularyDiversity, 1e-9)
	assert.InDelta(t, 0.0, fs.RepetitionRate, 1e-9)
	assert.InDelta(t, 0.0, fs.ConjunctionRate, 1e-9)
	assert.InDelta(t, 1.0/3.0, fs.PunctuationDensity, 1e-9)
	assert.InDelta(t, 0.0, fs.StructuralComplexity, 1e-9)
}

func TestExtractUniformSentences(t *testing.T) {
	sentence := strings.TrimSpace(strings.Repeat("word ", 10)) + "."
	text := strings.Repeat(sentence+" ", 4)

	fs := newTestExtractor().Extract(text)

	assert.Equal(t, 4, fs.SentenceCount)
	assert.Equal(t, 40, fs.WordCount)
	assert.InDelta(t, 0.0, fs.SentenceLengthVariance, 1e-9)
	assert.InDelta(t, 10.0, fs.AvgSentenceLength, 1e-9)
	// "word" and "word." are the only distinct tokens.
	assert.InDelta(t, 2.0/40.0, fs.VocabularyDiversity, 1e-9)
	assert.InDelta(t, 2.0/40.0, fs.RepetitionRate, 1e-9)
	// Sentences after the first carry their leading space: lengths 49, 50, 50, 50.
	assert.InDelta(t, 0.1875/ComplexityScale, fs.StructuralComplexity, 1e-12)
}

func TestExtractVariedSentences(t *testing.T) {
	text := variedText([]int{2, 30, 5, 40})

	fs := newTestExtractor().Extract(text)

	assert.Equal(t, 4, fs.SentenceCount)
	assert.Equal(t, 77, fs.WordCount)
	assert.InDelta(t, 261.6875, fs.SentenceLengthVariance, 1e-9)
	assert.InDelta(t, 19.25, fs.AvgSentenceLength, 1e-9)
	assert.InDelta(t, 1.0, fs.VocabularyDiversity, 1e-9)
	assert.InDelta(t, 0.0, fs.RepetitionRate, 1e-9)
	assert.InDelta(t, 1.0, fs.StructuralComplexity, 1e-9)
}

func TestVocabularyIsCaseInsensitive(t *testing.T) {
	e := newTestExtractor()
	upper := e.Extract("The The")
	lower := e.Extract("the the")

	assert.Equal(t, lower.VocabularyDiversity, upper.VocabularyDiversity)
	assert.Equal(t, lower.RepetitionRate, upper.RepetitionRate)
	assert.InDelta(t, 0.5, upper.VocabularyDiversity, 1e-9)
	assert.InDelta(t, 0.5, upper.RepetitionRate, 1e-9)
}

func TestRepetitionRateIsMonotonic(t *testing.T) {
	// Same word count; each step makes one more distinct word repeat.
	texts := []string{
		"a b c d e f",
		"a a c d e f",
		"a a c c e f",
		"a a c c e e",
	}
	e := newTestExtractor()
	prev := -1.0
	for _, text := range texts {
		rate := e.Extract(text).RepetitionRate
		assert.GreaterOrEqual(t, rate, prev, "text %q", text)
		prev = rate
	}
	assert.InDelta(t, 0.5, prev, 1e-9)
}

func TestConjunctionRate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"english", "I like tea and coffee but not milk.", 2.0 / 8.0},
		{"case insensitive", "AND so It Goes", 2.0 / 4.0},
		{"whole words only", "Android before sorry", 0},
		{"chinese connectives", "我喜歡茶和咖啡，但是不喜歡牛奶。", 2.0},
		{"chinese connective inside a word", "世界和平", 1.0},
		{"leading whitespace counts as a fragment", " and", 1.0 / 2.0},
		{"latin words list", "however therefore moreover yet nor or for", 7.0 / 7.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, newTestExtractor().Extract(tc.text).ConjunctionRate, 1e-9)
		})
	}
}

func TestPunctuationDensity(t *testing.T) {
	e := newTestExtractor()
	assert.InDelta(t, 0.5, e.Extract("a,b.").PunctuationDensity, 1e-9)
	assert.InDelta(t, 2.0/6.0, e.Extract("你好，世界。").PunctuationDensity, 1e-9)
	assert.InDelta(t, 0.0, e.Extract("no marks here").PunctuationDensity, 1e-9)
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"One. Two! Three?", []string{"One", " Two", " Three"}},
		{"四。五！六？", []string{"四", "五", "六"}},
		{"Wait... what?!", []string{"Wait", " what"}},
		{"...", []string{}},
		{". \n .", []string{}},
		{"no terminator", []string{"no terminator"}},
		{"A.\n  B.", []string{"A", "\n  B"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SplitSentences(tc.text), "text %q", tc.text)
	}
}

func TestStructuralComplexityCountsIndentation(t *testing.T) {
	e := newTestExtractor()

	// Lengths 1 and 42: the newline and 40 spaces belong to the second sentence.
	fs := e.Extract("A.\n" + strings.Repeat(" ", 40) + "B.")
	assert.Equal(t, 2, fs.SentenceCount)
	assert.InDelta(t, 420.25/ComplexityScale, fs.StructuralComplexity, 1e-12)
	// Word counts ignore the whitespace.
	assert.InDelta(t, 0.0, fs.SentenceLengthVariance, 1e-9)

	flat := e.Extract("A. B.")
	assert.InDelta(t, 0.25/ComplexityScale, flat.StructuralComplexity, 1e-12)
}

func TestPunctuationOnlyText(t *testing.T) {
	fs := newTestExtractor().Extract("...")
	require.False(t, fs.IsZero())
	assert.Equal(t, 0, fs.SentenceCount)
	assert.Equal(t, 1, fs.WordCount)
	assert.InDelta(t, 1.0, fs.AvgSentenceLength, 1e-9)
	assert.InDelta(t, 0.0, fs.SentenceLengthVariance, 1e-9)
	assert.InDelta(t, 0.0, fs.StructuralComplexity, 1e-9)
}

func TestVariance(t *testing.T) {
	assert.InDelta(t, 0.0, Variance(nil), 1e-9)
	assert.InDelta(t, 0.0, Variance([]float64{7}), 1e-9)
	assert.InDelta(t, 4.0, Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestExtractIsIdempotent(t *testing.T) {
	e := newTestExtractor()
	text := "Short one. Then a considerably longer sentence follows, and it rambles on! Why?"
	assert.Equal(t, e.Extract(text), e.Extract(text))
}

func TestFeatureRanges(t *testing.T) {
	e := newTestExtractor()
	for _, text := range []string{
		"Hi.",
		variedText([]int{1, 2, 3}),
		"so so so so. and and. but",
		"。。。！！！",
	} {
		fs := e.Extract(text)
		assertInUnit(t, fs.VocabularyDiversity)
		assertInUnit(t, fs.RepetitionRate)
		assertInUnit(t, fs.PunctuationDensity)
		assertInUnit(t, fs.StructuralComplexity)
		assert.GreaterOrEqual(t, fs.SentenceLengthVariance, 0.0)
		assert.GreaterOrEqual(t, fs.AvgSentenceLength, 0.0)
		assert.GreaterOrEqual(t, fs.ConjunctionRate, 0.0)
	}
}

func assertInUnit(t *testing.T, v float64) {
	t.Helper()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

// variedText builds sentences of the given word counts from distinct words word0, word1, ...
func variedText(lengths []int) string {
	var sb strings.Builder
	n := 0
	for _, l := range lengths {
		words := make([]string, l)
		for i := range words {
			words[i] = fmt.Sprintf("word%d", n)
			n++
		}
		sb.WriteString(strings.Join(words, " "))
		sb.WriteString(". ")
	}
	return sb.String()
}
