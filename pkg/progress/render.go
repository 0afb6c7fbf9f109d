package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// timePlaceholder is shown while remaining time is still undefined.
const timePlaceholder = " --:--:--"

// write sends s to the output stream. A failed or partial write is returned
// to the caller as-is; after one, the erase bookkeeping no longer matches
// the screen and the line cannot be repaired.
func (ind *Indicator) write(s string) error {
	n, err := fmt.Fprint(ind.cfg.out, s)
	if err != nil {
		return err
	}
	if n < len(s) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(s))
	}
	return nil
}

// erase removes the last n rendered characters by backing over them,
// blanking them and backing over them again, leaving the cursor where the
// erased text began.
func (ind *Indicator) erase(n int) error {
	if n == 0 {
		return nil
	}
	back := strings.Repeat("\b", n)
	if err := ind.write(back); err != nil {
		return err
	}
	if err := ind.write(strings.Repeat(" ", n)); err != nil {
		return err
	}
	return ind.write(back)
}

// drawBar renders the full bar: opening bracket, filled interior characters,
// empty interior characters, closing bracket.
func (ind *Indicator) drawBar(filled int) error {
	var b strings.Builder
	b.Grow(ind.cfg.barLength + 2)
	b.WriteString("[")
	b.WriteString(strings.Repeat(ind.cfg.barSymbol, filled))
	b.WriteString(strings.Repeat(ind.cfg.emptySymbol, ind.cfg.barLength-filled))
	b.WriteString("]")
	return ind.write(b.String())
}

// countText renders the completed/total segment with current left-padded to
// the digit width of total, so the segment keeps a constant width.
func (ind *Indicator) countText(current int) string {
	width := len(strconv.Itoa(ind.cfg.total))
	return fmt.Sprintf(" %*d/%d", width, current, ind.cfg.total)
}

// percentText renders the percentage segment, 3 digits wide.
func percentText(current, total int) string {
	return fmt.Sprintf(" %3d%%", current*100/total)
}

// finalTimeText renders the elapsed-seconds suffix of the completion line.
func finalTimeText(elapsed time.Duration) string {
	return fmt.Sprintf(" [%d seconds]", int(elapsed.Seconds()))
}

// formatSeconds renders a second count as " hh:mm:ss" with zero-padded
// two-digit fields. Hours wider than two digits print wider rather than
// being clamped.
func formatSeconds(seconds float64) string {
	hh := int(seconds / 3600)
	rem := seconds - float64(hh)*3600
	mm := int(rem / 60)
	ss := int(math.Round(rem - float64(mm)*60))
	return fmt.Sprintf(" %02d:%02d:%02d", hh, mm, ss)
}
