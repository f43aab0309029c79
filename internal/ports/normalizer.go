package ports

// Normalizer folds a word into the form used for vocabulary comparisons.
type Normalizer interface {
	Normalize(text string) string
}
