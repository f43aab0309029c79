package normalizer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

func TestNormalizers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase unchanged", "hello", "hello"},
		{"ascii upper", "HeLLo", "hello"},
		{"punctuation kept", "Word.", "word."},
		{"non-ascii", "ÉCOLE", "école"},
		{"greek", "ΣΟΦΙΑ", "σοφια"},
		{"cjk unchanged", "和", "和"},
		{"empty", "", ""},
	}

	normalizers := map[string]ports.Normalizer{
		"default": NewDefaultNormalizer(),
		"fast":    NewFastNormalizer(),
	}

	for name, n := range normalizers {
		for _, tc := range tests {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, n.Normalize(tc.input))
			})
		}
	}
}

func TestFoldNormalizer(t *testing.T) {
	n := NewFoldNormalizer()
	assert.Equal(t, n.Normalize("STRASSE"), n.Normalize("straße"))
	assert.Equal(t, "hello", n.Normalize("HELLO"))
}

func TestNormalizerFactory(t *testing.T) {
	f := NewNormalizerFactory()
	assert.IsType(t, &FastNormalizer{}, f.CreateNormalizer(FastNormalizerType))
	assert.IsType(t, &DefaultNormalizer{}, f.CreateNormalizer(DefaultNormalizerType))
	assert.IsType(t, &DefaultNormalizer{}, f.CreateNormalizer(FoldNormalizerType))
}

func TestParseNormalizerType(t *testing.T) {
	assert.Equal(t, FastNormalizerType, ParseNormalizerType("fast"))
	assert.Equal(t, FoldNormalizerType, ParseNormalizerType("fold"))
	assert.Equal(t, DefaultNormalizerType, ParseNormalizerType("default"))
	assert.Equal(t, DefaultNormalizerType, ParseNormalizerType(""))
}

func TestDefaultNormalizerConcurrent(t *testing.T) {
	n := NewDefaultNormalizer()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.Equal(t, "ärger", n.Normalize("ÄRGER"))
			}
		}()
	}
	wg.Wait()
}
