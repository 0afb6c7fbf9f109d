package progress

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWriter captures every Write call separately so tests can inspect
// individual render actions as well as the accumulated line.
type recordingWriter struct {
	writes []string
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func (w *recordingWriter) String() string {
	return strings.Join(w.writes, "")
}

// lastBar returns the most recently drawn bar, brackets included.
func (w *recordingWriter) lastBar() string {
	for i := len(w.writes) - 1; i >= 0; i-- {
		if strings.HasPrefix(w.writes[i], "[") {
			return w.writes[i]
		}
	}
	return ""
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestNewDefaults(t *testing.T) {
	w := &recordingWriter{}

	ind, err := New(150, WithWriter(w))
	require.NoError(t, err)
	require.NotNil(t, ind)

	want := "Running: [" + strings.Repeat(" ", 20) + "]" + "   0%" + " --:--:--"
	assert.Equal(t, want, w.String(), "initial render should show empty bar, 0%% and the time placeholder")
	assert.NotContains(t, w.String(), "/150", "count segment is hidden by default")
	assert.False(t, strings.HasSuffix(w.String(), "\n"), "no trailing newline before completion")
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		opts       []Option
		wantOption string
	}{
		{
			name:       "zero total",
			total:      0,
			wantOption: "total",
		},
		{
			name:       "negative total",
			total:      -3,
			wantOption: "total",
		},
		{
			name:       "bar length zero",
			total:      10,
			opts:       []Option{WithBarLength(0)},
			wantOption: "barLength",
		},
		{
			name:       "update step negative",
			total:      10,
			opts:       []Option{WithUpdateStep(-1)},
			wantOption: "updateStep",
		},
		{
			name:       "bar symbol too long",
			total:      10,
			opts:       []Option{WithBarSymbol("ab")},
			wantOption: "barSymbol",
		},
		{
			name:       "empty bar symbol empty",
			total:      10,
			opts:       []Option{WithEmptyBarSymbol("")},
			wantOption: "emptyBarSymbol",
		},
		{
			name:       "nil writer",
			total:      10,
			opts:       []Option{WithWriter(nil)},
			wantOption: "writer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithWriter(&recordingWriter{})}, tt.opts...)
			ind, err := New(tt.total, opts...)
			require.Error(t, err)
			assert.Nil(t, ind)

			var invalid *InvalidArgumentError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantOption, invalid.Option)
		})
	}
}

func TestAdvanceThrottling(t *testing.T) {
	w := &recordingWriter{}
	ind, err := New(100, WithWriter(w), WithUpdateStep(50))
	require.NoError(t, err)

	initial := len(w.writes)

	// Below the first threshold of 50: silent no-op.
	require.NoError(t, ind.Advance(10))
	assert.Equal(t, initial, len(w.writes), "advance below threshold should produce no output")

	require.NoError(t, ind.Advance(49))
	assert.Equal(t, initial, len(w.writes))

	// First call at the threshold redraws and moves it forward by the step.
	require.NoError(t, ind.Advance(50))
	afterFirst := len(w.writes)
	assert.Greater(t, afterFirst, initial, "reaching the threshold should redraw")
	assert.Contains(t, w.String(), " 50%")

	// Threshold is now 100, so 99 stays silent.
	require.NoError(t, ind.Advance(99))
	assert.Equal(t, afterFirst, len(w.writes))

	require.NoError(t, ind.Advance(100))
	assert.Contains(t, w.String(), " Done.")
	assert.True(t, strings.HasSuffix(w.String(), "\n"))
}

func TestAdvanceBarFill(t *testing.T) {
	const total = 37
	w := &recordingWriter{}
	ind, err := New(total,
		WithWriter(w),
		WithUpdateStep(1),
		WithShowRemainingTime(false),
		WithShowFinalTime(false),
	)
	require.NoError(t, err)

	prevFilled := 0
	for current := 1; current < total; current++ {
		require.NoError(t, ind.Advance(current))

		wantFilled := current * 20 / total
		assert.GreaterOrEqual(t, wantFilled, prevFilled, "fill count must be monotonic")
		prevFilled = wantFilled

		bar := w.lastBar()
		require.NotEmpty(t, bar)
		want := "[" + strings.Repeat("=", wantFilled) + strings.Repeat(" ", 20-wantFilled) + "]"
		assert.Equal(t, want, bar, "bar must reflect floor(current/total*barLength) at current=%d", current)
	}

	require.NoError(t, ind.Advance(total))
	assert.Equal(t, "["+strings.Repeat("=", 20)+"]", w.lastBar(), "bar must be full on completion")
}

func TestAdvancePercentage(t *testing.T) {
	for _, total := range []int{1, 7, 150, 1000} {
		t.Run(fmt.Sprintf("total %d", total), func(t *testing.T) {
			w := &recordingWriter{}
			ind, err := New(total,
				WithWriter(w),
				WithUpdateStep(1),
				WithShowRemainingTime(false),
			)
			require.NoError(t, err)

			for current := 1; current < total; current++ {
				require.NoError(t, ind.Advance(current))
				want := fmt.Sprintf(" %3d%%", current*100/total)
				last := w.writes[len(w.writes)-1]
				assert.Equal(t, want, last, "percentage at current=%d", current)
			}

			require.NoError(t, ind.Advance(total))
			assert.True(t, strings.HasSuffix(w.String(), "\n"))
		})
	}
}

func TestRemainingTimePlaceholder(t *testing.T) {
	w := &recordingWriter{}
	ind, err := New(50, WithWriter(w))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(w.String(), " --:--:--"),
		"initial render must show the unknown-remaining placeholder")

	// current == 0 must never divide; the guard returns the placeholder.
	assert.Equal(t, " --:--:--", ind.remainingText(0))

	got := ind.remainingText(25)
	assert.Regexp(t, `^ \d{2,}:\d{2}:\d{2}$`, got)
}

func TestAdvanceCompletion(t *testing.T) {
	w := &recordingWriter{}
	ind, err := New(30, WithWriter(w), WithShowCount(true))
	require.NoError(t, err)

	require.NoError(t, ind.Advance(30))

	out := w.String()
	assert.Contains(t, out, " Done. [")
	assert.True(t, strings.HasSuffix(out, " seconds]\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"), "completion writes exactly one newline")

	// Post-finish calls are no-ops, visible output included.
	frozen := len(w.writes)
	for i := 0; i <= 30; i += 10 {
		require.NoError(t, ind.Advance(i))
	}
	assert.Equal(t, frozen, len(w.writes), "no output after the final newline")
	assert.Equal(t, 1, strings.Count(w.String(), "\n"))
}

func TestAdvanceRoundTrip(t *testing.T) {
	w := &recordingWriter{}
	ind, err := New(150, WithWriter(w))
	require.NoError(t, err)

	renders := 0
	for i := 1; i <= 150; i++ {
		before := len(w.writes)
		require.NoError(t, ind.Advance(i))
		if len(w.writes) != before {
			renders++
		}
	}

	// One redraw per default update step of 10.
	assert.Equal(t, 15, renders)
	assert.Contains(t, w.String(), " Done. [")
	assert.Regexp(t, ` Done\. \[\d+ seconds\]\n$`, w.String())
}

func TestAdvanceOutOfRange(t *testing.T) {
	w := &recordingWriter{}
	ind, err := New(10, WithWriter(w))
	require.NoError(t, err)

	var invalid *InvalidArgumentError

	err = ind.Advance(-1)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "current", invalid.Option)

	err = ind.Advance(11)
	require.ErrorAs(t, err, &invalid)

	// The failed calls must not have disturbed the display.
	require.NoError(t, ind.Advance(10))
	assert.True(t, strings.HasSuffix(w.String(), "\n"))
}

func TestAdvanceSmallTotal(t *testing.T) {
	// The render threshold is capped at total, so a task shorter than the
	// update step still completes.
	w := &recordingWriter{}
	ind, err := New(3, WithWriter(w))
	require.NoError(t, err)

	require.NoError(t, ind.Advance(1))
	require.NoError(t, ind.Advance(2))
	require.NoError(t, ind.Advance(3))
	assert.True(t, strings.HasSuffix(w.String(), "\n"))
}

func TestAdvanceBackwardCalls(t *testing.T) {
	w := &recordingWriter{}
	ind, err := New(100, WithWriter(w), WithUpdateStep(1))
	require.NoError(t, err)

	require.NoError(t, ind.Advance(50))
	rendered := len(w.writes)

	// Going backward below the threshold is silently ignored, not rejected.
	require.NoError(t, ind.Advance(10))
	assert.Equal(t, rendered, len(w.writes))
}

func TestAdvanceHiddenSegments(t *testing.T) {
	w := &recordingWriter{}
	ind, err := New(40,
		WithWriter(w),
		WithShowBar(false),
		WithShowPercentage(false),
		WithShowRemainingTime(false),
		WithShowFinalTime(false),
		WithShowCount(true),
		WithUpdateStep(1),
		WithStartMessage("copy "),
		WithEndMessage(" ok"),
	)
	require.NoError(t, err)

	assert.Equal(t, "copy   0/40", w.String())

	require.NoError(t, ind.Advance(7))
	assert.True(t, strings.HasSuffix(w.String(), "  7/40"))
	assert.NotContains(t, w.String(), "[")

	require.NoError(t, ind.Advance(40))
	assert.True(t, strings.HasSuffix(w.String(), " ok\n"))
}

func TestCustomSymbols(t *testing.T) {
	w := &recordingWriter{}
	ind, err := New(10,
		WithWriter(w),
		WithBarLength(5),
		WithUpdateStep(1),
		WithBarSymbol("#"),
		WithEmptyBarSymbol("."),
		WithShowRemainingTime(false),
		WithShowPercentage(false),
	)
	require.NoError(t, err)
	assert.Equal(t, "[.....]", w.lastBar())

	require.NoError(t, ind.Advance(4))
	assert.Equal(t, "[##...]", w.lastBar())
}

func TestWriterFailure(t *testing.T) {
	_, err := New(10, WithWriter(failingWriter{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
