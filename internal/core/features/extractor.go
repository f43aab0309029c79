package features

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

// ComplexityScale divides the sentence character-length variance before capping at 1.
const ComplexityScale = 1000.0

var sentenceSplit = regexp.MustCompile(`[.!?。！？]+`)

// Latin connectives are matched as whole words; \b is ASCII-only here.
var latinConjunctions = regexp.MustCompile(`(?i)\b(?:and|but|or|so|yet|for|nor|however|therefore|moreover)\b`)

// CJK connectives are not whitespace delimited, so they are counted by substring
// occurrence. This also counts them inside longer words (和 in 和平).
var cjkConjunctions = []string{"和", "但是", "或者", "所以", "然而", "因此"}

const punctuationSet = ",.!?;:，。！？；："

// Extractor derives the feature set used by the score aggregator.
type Extractor struct {
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewExtractor creates a feature extractor.
func NewExtractor(logger ports.Logger, normalizer ports.Normalizer) *Extractor {
	return &Extractor{
		logger:     logger,
		normalizer: normalizer,
	}
}

// Extract computes all features of text. Blank text yields the zero FeatureSet.
func (e *Extractor) Extract(text string) domain.FeatureSet {
	if strings.TrimSpace(text) == "" {
		e.logger.Debug("Blank text, skipping feature extraction")
		return domain.FeatureSet{}
	}

	sentences := SplitSentences(text)
	words := strings.Fields(text)

	wordCounts := make([]float64, len(sentences))
	charCounts := make([]float64, len(sentences))
	// Character lengths include the whitespace that separates sentences.
	for i, s := range sentences {
		wordCounts[i] = float64(len(strings.Fields(s)))
		charCounts[i] = float64(utf8.RuneCountInString(s))
	}

	sentenceCount := len(sentences)
	if sentenceCount < 1 {
		sentenceCount = 1
	}

	fs := domain.FeatureSet{
		SentenceLengthVariance: Variance(wordCounts),
		AvgSentenceLength:      float64(len(words)) / float64(sentenceCount),
		ConjunctionRate:        conjunctionRate(text),
		PunctuationDensity:     punctuationDensity(text),
		StructuralComplexity:   math.Min(Variance(charCounts)/ComplexityScale, 1),
		SentenceCount:          len(sentences),
		WordCount:              len(words),
		CharCount:              utf8.RuneCountInString(text),
	}
	fs.VocabularyDiversity, fs.RepetitionRate = e.vocabulary(words)

	e.logger.Debug("Extracted features",
		"sentences", fs.SentenceCount,
		"words", fs.WordCount,
		"variance", fs.SentenceLengthVariance,
		"diversity", fs.VocabularyDiversity,
		"repetition", fs.RepetitionRate,
		"conjunctions", fs.ConjunctionRate,
		"punctuation", fs.PunctuationDensity,
		"complexity", fs.StructuralComplexity,
	)
	return fs
}

// vocabulary returns the diversity and repetition rates of words after normalization.
func (e *Extractor) vocabulary(words []string) (diversity, repetition float64) {
	if len(words) == 0 {
		return 0, 0
	}
	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[e.normalizer.Normalize(w)]++
	}
	repeated := 0
	for _, n := range freq {
		if n > 1 {
			repeated++
		}
	}
	total := float64(len(words))
	return float64(len(freq)) / total, float64(repeated) / total
}

// SplitSentences splits text on runs of sentence terminators and drops blank fragments.
// Fragments are returned as found, leading and trailing whitespace included.
func SplitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Variance returns the population variance of values, or 0 for an empty slice.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

func conjunctionRate(text string) float64 {
	count := len(latinConjunctions.FindAllStringIndex(text, -1))
	for _, c := range cjkConjunctions {
		count += strings.Count(text, c)
	}
	fragments := whitespaceFragments(text)
	if fragments == 0 {
		return 0
	}
	return float64(count) / float64(fragments)
}

// whitespaceFragments counts the pieces produced by splitting text on whitespace runs,
// including empty leading and trailing pieces.
func whitespaceFragments(text string) int {
	n := 1
	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inSpace {
				n++
				inSpace = true
			}
			continue
		}
		inSpace = false
	}
	return n
}

func punctuationDensity(text string) float64 {
	total := 0
	marks := 0
	for _, r := range text {
		total++
		if strings.ContainsRune(punctuationSet, r) {
			marks++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(marks) / float64(total)
}
