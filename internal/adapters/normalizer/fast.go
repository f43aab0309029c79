package normalizer

import (
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

// FastNormalizer lower-cases ASCII words with a lookup table and hands anything
// else to the default normalizer.
type FastNormalizer struct {
	lower    [128]byte
	fallback ports.Normalizer
}

// NewFastNormalizer creates a new fast normalizer.
func NewFastNormalizer() ports.Normalizer {
	n := &FastNormalizer{fallback: NewDefaultNormalizer()}
	for i := 0; i < 128; i++ {
		b := byte(i)
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		n.lower[i] = b
	}
	return n
}

// Normalize returns the lower-cased form of text.
func (n *FastNormalizer) Normalize(text string) string {
	hasUpper := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 128 {
			return n.fallback.Normalize(text)
		}
		if c != n.lower[c] {
			hasUpper = true
		}
	}
	if !hasUpper {
		return text
	}

	buf := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		buf[i] = n.lower[text[i]]
	}
	return string(buf)
}

// NormalizerFactory creates the appropriate normalizer based on requirements.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects a normalizer implementation.
type NormalizerType int

const (
	// DefaultNormalizerType lower-cases with golang.org/x/text.
	DefaultNormalizerType NormalizerType = iota
	// FastNormalizerType uses a lookup table for ASCII input.
	FastNormalizerType
	// FoldNormalizerType applies full Unicode case folding.
	FoldNormalizerType
)

// ParseNormalizerType maps a config name to a NormalizerType, defaulting to DefaultNormalizerType.
func ParseNormalizerType(name string) NormalizerType {
	switch name {
	case "fast":
		return FastNormalizerType
	case "fold":
		return FoldNormalizerType
	default:
		return DefaultNormalizerType
	}
}

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case FastNormalizerType:
		return NewFastNormalizer()
	case FoldNormalizerType:
		return NewFoldNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
