// text_heuristic.go
// Package textheuristic scores free-form text on a heuristic scale between
// "AI-generated" and "human-written".
//
// Seven features are extracted from the text (sentence length variance and
// average, vocabulary diversity, repetition, conjunction rate, punctuation
// density and structural complexity). Six fixed threshold rules turn them into
// two point totals which are normalized so that
//
//	aiPercentage = round(aiScore / (aiScore + humanScore) * 100)
//	humanPercentage = 100 - aiPercentage
//
// The scores are not calibrated probabilities.
package textheuristic

import (
	"sync"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/logger"
	"github.com/baditaflorin/go_text_heuristic/pkg/scorer"
)

var (
	defaultOnce   sync.Once
	defaultScorer *scorer.Scorer
	defaultErr    error
)

// Analyze builds a scorer from opts and analyzes text with it.
// The boolean is false when text is blank.
func Analyze(text string, opts ...scorer.Option) (scorer.Analysis, bool, error) {
	s, err := scorer.New(opts...)
	if err != nil {
		return scorer.Analysis{}, false, err
	}
	result, ok := s.Analyze(text)
	return result, ok, nil
}

// AnalyzeWithDefaults analyzes text with a shared scorer using default settings.
// It panics if the default logger cannot be created.
func AnalyzeWithDefaults(text string) (scorer.Analysis, bool) {
	defaultOnce.Do(func() {
		l, err := createDefaultLogger()
		if err != nil {
			defaultErr = err
			return
		}
		defaultScorer, defaultErr = scorer.New(scorer.WithPortsLogger(logger.FromExisting(l)))
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultScorer.Analyze(text)
}
