// logger.go
package textheuristic

import (
	"os"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/logger"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(logger.DefaultConfig(os.Stderr, false))
}
