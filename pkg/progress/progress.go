package progress

import (
	"time"
)

// Indicator renders a single-line progress display for a task with a known
// number of steps. It owns its render state exclusively and must be driven
// from a single goroutine; nothing else may write to its output stream
// between construction and completion, since erasing depends on the exact
// characters last written.
type Indicator struct {
	cfg settings

	// Render state
	threshold     int // smallest current value that triggers a redraw
	filled        int // bar interior characters already drawn
	lastCount     string
	lastPercent   string
	lastRemaining string
	started       time.Time
	finished      bool
}

// New creates an indicator for a task of total steps and performs the first
// render (empty bar). Options are applied in order; the first invalid one
// aborts construction with an InvalidArgumentError naming the option.
func New(total int, opts ...Option) (*Indicator, error) {
	if total <= 0 {
		return nil, &InvalidArgumentError{
			Option: "total",
			Reason: "must be a positive integer",
		}
	}

	cfg := defaultSettings(total)
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	threshold := cfg.updateStep
	if threshold > total {
		threshold = total
	}
	ind := &Indicator{
		cfg:       cfg,
		threshold: threshold,
	}
	if err := ind.renderInitial(); err != nil {
		return nil, err
	}

	// Taken after the initial render so the elapsed time seen by the first
	// Advance excludes construction output.
	ind.started = time.Now()

	return ind, nil
}

// Advance reports that step current has completed and conditionally redraws
// the trailing segments of the line. Calls below the current render
// threshold are silent no-ops, which bounds redraws to one per updateStep
// progress units. Once the indicator has finished, Advance does nothing.
func (ind *Indicator) Advance(current int) error {
	if ind.finished {
		return nil
	}
	if current < 0 || current > ind.cfg.total {
		return &InvalidArgumentError{
			Option: "current",
			Reason: "must be between 0 and the configured total",
		}
	}
	if current < ind.threshold {
		return nil
	}

	ind.threshold += ind.cfg.updateStep
	if ind.threshold > ind.cfg.total {
		ind.threshold = ind.cfg.total
	}

	// Erase the optional trailing segments in reverse display order, each by
	// the exact text it last rendered.
	if ind.cfg.showRemainingTime {
		if err := ind.erase(len(ind.lastRemaining)); err != nil {
			return err
		}
	}
	if ind.cfg.showPercentage {
		if err := ind.erase(len(ind.lastPercent)); err != nil {
			return err
		}
	}
	if ind.cfg.showCount {
		if err := ind.erase(len(ind.lastCount)); err != nil {
			return err
		}
	}

	filled := current * ind.cfg.barLength / ind.cfg.total
	if filled > ind.filled {
		if ind.cfg.showBar {
			// Interior plus both brackets.
			if err := ind.erase(ind.cfg.barLength + 2); err != nil {
				return err
			}
			if err := ind.drawBar(filled); err != nil {
				return err
			}
		}
		ind.filled = filled
	}

	if current >= ind.cfg.total {
		return ind.renderFinal()
	}

	// Re-render the erased segments with fresh values, remembering each text
	// for the next erase pass.
	if ind.cfg.showCount {
		ind.lastCount = ind.countText(current)
		if err := ind.write(ind.lastCount); err != nil {
			return err
		}
	}
	if ind.cfg.showPercentage {
		ind.lastPercent = percentText(current, ind.cfg.total)
		if err := ind.write(ind.lastPercent); err != nil {
			return err
		}
	}
	if ind.cfg.showRemainingTime {
		ind.lastRemaining = ind.remainingText(current)
		if err := ind.write(ind.lastRemaining); err != nil {
			return err
		}
	}

	return nil
}

// renderInitial writes the zero-position line: start message, empty bar,
// zero count, zero percentage and the unknown-remaining placeholder, in
// display order, without a trailing newline.
func (ind *Indicator) renderInitial() error {
	if err := ind.write(ind.cfg.startMessage); err != nil {
		return err
	}
	if ind.cfg.showBar {
		if err := ind.drawBar(0); err != nil {
			return err
		}
	}
	if ind.cfg.showCount {
		ind.lastCount = ind.countText(0)
		if err := ind.write(ind.lastCount); err != nil {
			return err
		}
	}
	if ind.cfg.showPercentage {
		ind.lastPercent = percentText(0, ind.cfg.total)
		if err := ind.write(ind.lastPercent); err != nil {
			return err
		}
	}
	if ind.cfg.showRemainingTime {
		ind.lastRemaining = timePlaceholder
		if err := ind.write(ind.lastRemaining); err != nil {
			return err
		}
	}
	return nil
}

// renderFinal writes the end message, the optional elapsed-seconds suffix
// and the terminating newline, then marks the indicator inert.
func (ind *Indicator) renderFinal() error {
	if err := ind.write(ind.cfg.endMessage); err != nil {
		return err
	}
	if ind.cfg.showFinalTime {
		if err := ind.write(finalTimeText(time.Since(ind.started))); err != nil {
			return err
		}
	}
	if err := ind.write("\n"); err != nil {
		return err
	}
	ind.finished = true
	return nil
}

// remainingText estimates time left as elapsed * (total-current) / current.
// At current == 0 the ratio is undefined, so the placeholder is shown
// instead.
func (ind *Indicator) remainingText(current int) string {
	if current == 0 {
		return timePlaceholder
	}
	elapsed := time.Since(ind.started).Seconds()
	remaining := elapsed * float64(ind.cfg.total-current) / float64(current)
	return formatSeconds(remaining)
}
