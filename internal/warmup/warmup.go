package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     500,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	analyzers   []ports.Analyzer
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterAnalyzer adds an analyzer to be warmed up
func (wm *Manager) RegisterAnalyzer(a ports.Analyzer) {
	wm.analyzers = append(wm.analyzers, a)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components and returns
// the number of analyze calls performed.
func (wm *Manager) WarmUp(ctx context.Context) int64 {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.analyzers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	words := GenerateSampleWords(wm.config.SampleTextSize)
	wm.warmUpNormalizers(warmupCtx, words)
	calls := wm.warmUpAnalyzers(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
		"analyze_calls", calls,
	)
	return calls
}

// run executes fn Iterations times on each of Concurrency goroutines, stopping on ctx.
func (wm *Manager) run(ctx context.Context, fn func(iteration int)) {
	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				fn(j)
			}
		}()
	}
	wg.Wait()
}

func (wm *Manager) warmUpNormalizers(ctx context.Context, words []string) {
	if len(wm.normalizers) == 0 || len(words) == 0 {
		return
	}
	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	wm.run(ctx, func(j int) {
		w := words[j%len(words)]
		for _, n := range wm.normalizers {
			_ = n.Normalize(w)
		}
	})
}

func (wm *Manager) warmUpAnalyzers(ctx context.Context) int64 {
	if len(wm.analyzers) == 0 {
		return 0
	}
	wm.logger.Debug("Warming up analyzers", "count", len(wm.analyzers))

	// Alternate between uniform and varied text so every rule band is exercised.
	samples := []string{
		GenerateUniformText(wm.config.SampleTextSize),
		GenerateVariedText(wm.config.SampleTextSize),
	}

	var mu sync.Mutex
	var calls int64
	wm.run(ctx, func(j int) {
		text := samples[j%len(samples)]
		for _, a := range wm.analyzers {
			_, _ = a.Analyze(text)
		}
		mu.Lock()
		calls += int64(len(wm.analyzers))
		mu.Unlock()
	})
	return calls
}

var sampleWords = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"hello", "world", "lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
	"adipiscing", "elit", "sed", "do", "eiusmod", "tempor", "incididunt",
	"ut", "labore", "et", "dolore", "magna", "aliqua", "and", "however",
}

// GenerateSampleWords returns roughly size/5 words drawn cyclically from a fixed vocabulary.
func GenerateSampleWords(size int) []string {
	n := size / 5
	out := make([]string, n)
	for i := range out {
		out[i] = sampleWords[i%len(sampleWords)]
	}
	return out
}

// GenerateUniformText builds sentences of identical length, roughly size bytes long.
func GenerateUniformText(size int) string {
	words := GenerateSampleWords(size)
	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
		if (i+1)%18 == 0 {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte('.')
	return sb.String()
}

// GenerateVariedText builds sentences whose lengths cycle through short and long.
func GenerateVariedText(size int) string {
	words := GenerateSampleWords(size)
	lengths := []int{2, 30, 5, 40, 9}
	var sb strings.Builder
	next, k := lengths[0], 0
	for i, w := range words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
		next--
		if next == 0 {
			sb.WriteString("!")
			k++
			next = lengths[k%len(lengths)]
		}
	}
	sb.WriteByte('?')
	return sb.String()
}
