package assert

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lennartvoelz/ds-and-algo/internal/logger"
)

// True panics when condition is false after reporting the violation to the
// package logger. Callers guard it with Enabled so release builds pay nothing.
func True(condition bool, errMsg string, arg ...any) {
	if !condition {
		msg := fmt.Sprintf(errMsg, arg...)
		logger.Error("contract violation", zap.String("violation", msg))
		logger.Sync()
		panic(fmt.Sprintf("Assertion Failed: %s\n", msg))
	}
}

// Values is a test helper to verify seq yields exactly want, in order
func Values[T any](t *testing.T, seq iter.Seq[T], want ...T) bool {
	t.Helper()
	got := slices.Collect(seq)
	if len(want) == 0 {
		return assert2.Empty(t, got)
	}
	return assert2.Equal(t, want, got)
}
