package domain

// FeatureSet holds the numeric signals extracted from a text.
type FeatureSet struct {
	SentenceLengthVariance float64 `json:"sentence_length_variance"`
	AvgSentenceLength      float64 `json:"avg_sentence_length"`
	VocabularyDiversity    float64 `json:"vocabulary_diversity"`
	RepetitionRate         float64 `json:"repetition_rate"`
	ConjunctionRate        float64 `json:"conjunction_rate"`
	PunctuationDensity     float64 `json:"punctuation_density"`
	StructuralComplexity   float64 `json:"structural_complexity"`

	// Supporting counts used to derive the ratios above.
	SentenceCount int `json:"sentence_count"`
	WordCount     int `json:"word_count"`
	CharCount     int `json:"char_count"`
}

// IsZero reports whether no signal was extracted, which is the case for blank text.
func (f FeatureSet) IsZero() bool {
	return f == FeatureSet{}
}

// Side names the running total a rule contributes to.
type Side string

const (
	SideAI    Side = "ai"
	SideHuman Side = "human"
	// SideNone marks a rule that matched no band and added nothing.
	SideNone Side = "none"
)

// RuleOutcome records what a single scoring rule contributed.
type RuleOutcome struct {
	Rule   string `json:"rule"`
	Side   Side   `json:"side"`
	Points int    `json:"points"`
}

// ScoreResult holds the normalized outcome of the score aggregation.
type ScoreResult struct {
	AIPercentage    int           `json:"ai_percentage"`
	HumanPercentage int           `json:"human_percentage"`
	AIScore         int           `json:"ai_score"`
	HumanScore      int           `json:"human_score"`
	Rules           []RuleOutcome `json:"rules"`
}

// Leaning returns which side the percentages favour.
func (s ScoreResult) Leaning() Leaning {
	switch {
	case s.AIPercentage > s.HumanPercentage:
		return LeaningAI
	case s.HumanPercentage > s.AIPercentage:
		return LeaningHuman
	default:
		return LeaningEven
	}
}

// Leaning is the coarse direction of a score.
type Leaning string

const (
	LeaningAI    Leaning = "ai"
	LeaningHuman Leaning = "human"
	LeaningEven  Leaning = "even"
)

// Confidence is a coarse label for how one-sided a score is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceFor derives the confidence label from the larger of the two percentages.
func ConfidenceFor(s ScoreResult) Confidence {
	top := s.AIPercentage
	if s.HumanPercentage > top {
		top = s.HumanPercentage
	}
	switch {
	case top >= 70:
		return ConfidenceHigh
	case top >= 55:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Warning flags a condition that makes a result less reliable without invalidating it.
type Warning string

// WarningShortText is raised when the text is shorter than the recommended minimum.
const WarningShortText Warning = "short_text"

// Analysis is the full outcome of analyzing one text.
type Analysis struct {
	Features   FeatureSet  `json:"features"`
	Score      ScoreResult `json:"score"`
	Confidence Confidence  `json:"confidence"`
	Warnings   []Warning   `json:"warnings,omitempty"`
}
