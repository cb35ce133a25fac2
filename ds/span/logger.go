package span

import (
	"go.uber.org/zap"

	"github.com/lennartvoelz/ds-and-algo/internal/logger"
)

// SetLogger sets the logger that reports contract violations caught by
// spancheck builds before they panic. A nil logger discards the reports.
func SetLogger(l *zap.Logger) {
	logger.Set(l)
}
