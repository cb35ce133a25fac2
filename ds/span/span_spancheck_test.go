//go:build spancheck

package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lennartvoelz/ds-and-algo/ds/span"
)

func observeViolations(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.ErrorLevel)
	span.SetLogger(zap.New(core))
	t.Cleanup(func() { span.SetLogger(nil) })
	return logs
}

func TestAtOutOfRangePanics(t *testing.T) {
	logs := observeViolations(t)
	s := span.Of([]int{1, 2, 3, 4, 5})

	assert.PanicsWithValue(t, "Assertion Failed: index 5 out of range [0, 5)\n", func() { s.At(5) })
	assert.PanicsWithValue(t, "Assertion Failed: index -1 out of range [0, 5)\n", func() { s.At(-1) })

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "contract violation", entry.Message)
	assert.Equal(t, "index 5 out of range [0, 5)", entry.ContextMap()["violation"])
}

func TestFrontOfEmptySpanPanics(t *testing.T) {
	observeViolations(t)
	s := span.Of[int](nil)

	assert.Panics(t, func() { s.Front() })
	assert.Panics(t, func() { s.Back() })
}

func TestSentinelDereferencePanics(t *testing.T) {
	logs := observeViolations(t)
	var it span.Iterator[int]

	assert.PanicsWithValue(t, "Assertion Failed: dereference of a sentinel iterator\n", func() { it.Value() })
	assert.Equal(t, 1, logs.Len())
}

func TestStaticCountMismatchPanics(t *testing.T) {
	observeViolations(t)
	begin := span.Slice[int]([]int{1, 2, 3, 4}).Begin()

	assert.PanicsWithValue(t, "Assertion Failed: span of static extent 3 built from 2 elements\n", func() {
		span.FromCount[span.N3](begin, 2)
	})
	assert.PanicsWithValue(t, "Assertion Failed: negative span length -2\n", func() {
		span.FromIterators[span.Dynamic](begin.Add(2), begin)
	})
}
