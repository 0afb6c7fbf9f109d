package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

func (f *formatter) formatText(s Summary) string {
	var b strings.Builder

	headline := fmt.Sprintf("Completed %d steps in %s", s.Steps, s.ElapsedText)
	if f.config.WithColors {
		headline = color.New(color.FgGreen, color.Bold).Sprint(headline)
	}
	b.WriteString(headline)
	b.WriteString("\n")

	if s.StepsPerSec > 0 {
		b.WriteString(fmt.Sprintf("  Throughput: %.1f steps/s\n", s.StepsPerSec))
	}

	return b.String()
}
