package normalizer

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

// DefaultNormalizer lower-cases words with language-independent Unicode rules.
// A cases.Caser is stateful, so each call borrows one from a pool.
type DefaultNormalizer struct {
	casers sync.Pool
}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return newCaserNormalizer(func() cases.Caser { return cases.Lower(language.Und) })
}

// NewFoldNormalizer creates a normalizer that applies full Unicode case folding,
// so that e.g. "STRASSE" and "straße" compare equal.
func NewFoldNormalizer() ports.Normalizer {
	return newCaserNormalizer(func() cases.Caser { return cases.Fold() })
}

func newCaserNormalizer(build func() cases.Caser) *DefaultNormalizer {
	n := &DefaultNormalizer{}
	n.casers.New = func() interface{} {
		c := build()
		return &c
	}
	return n
}

// Normalize returns the lower-cased form of text.
func (n *DefaultNormalizer) Normalize(text string) string {
	c := n.casers.Get().(*cases.Caser)
	defer n.casers.Put(c)
	return c.String(text)
}
