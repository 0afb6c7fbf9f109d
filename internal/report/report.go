/*
Package report renders a post-run summary of a tracked task in text, JSON or
YAML form.

Basic usage:

	formatter := report.NewFormatter(report.Config{
		Format:     report.FormatText,
		WithColors: true,
	}, log)

	out, err := formatter.Format(report.NewSummary(150, elapsed))
*/
package report

import (
	"fmt"
	"time"

	"github.com/megasthenis/textprogressbar/pkg/logger"
)

// Format represents the output format type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Summary describes one completed run.
type Summary struct {
	Steps       int           `json:"steps" yaml:"steps"`
	Elapsed     time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
	ElapsedText string        `json:"elapsed" yaml:"elapsed"`
	StepsPerSec float64       `json:"steps_per_second" yaml:"steps_per_second"`
}

// NewSummary computes the derived fields of a Summary from the step count
// and wall-clock duration of a run.
func NewSummary(steps int, elapsed time.Duration) Summary {
	s := Summary{
		Steps:       steps,
		Elapsed:     elapsed,
		ElapsedText: elapsed.Round(time.Millisecond).String(),
	}
	if elapsed > 0 {
		s.StepsPerSec = float64(steps) / elapsed.Seconds()
	}
	return s
}

// Config holds formatter configuration.
type Config struct {
	Format     Format
	WithColors bool
}

// Formatter renders summaries in the configured format.
type Formatter interface {
	Format(Summary) (string, error)
}

type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance.
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

func (f *formatter) Format(s Summary) (string, error) {
	f.log.WithFields(logger.Fields{
		"format":     f.config.Format,
		"withColors": f.config.WithColors,
	}).Debug("Formatting run summary")

	switch f.config.Format {
	case FormatText:
		return f.formatText(s), nil
	case FormatJSON:
		return f.formatJSON(s)
	case FormatYAML:
		return f.formatYAML(s)
	default:
		return "", fmt.Errorf("unsupported report format: %s", f.config.Format)
	}
}
