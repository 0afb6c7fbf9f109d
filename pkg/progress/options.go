package progress

import (
	"io"
	"os"
	"unicode/utf8"
)

// Default values applied when the corresponding option is not supplied.
const (
	DefaultBarLength    = 20
	DefaultUpdateStep   = 10
	DefaultStartMessage = "Running: "
	DefaultEndMessage   = " Done."
	DefaultBarSymbol    = "="
	DefaultEmptySymbol  = " "
)

// settings holds the immutable configuration of an Indicator.
type settings struct {
	total      int
	barLength  int
	updateStep int

	startMessage string
	endMessage   string

	showBar           bool
	showPercentage    bool
	showCount         bool
	showRemainingTime bool
	showFinalTime     bool

	barSymbol   string
	emptySymbol string

	out io.Writer
}

func defaultSettings(total int) settings {
	return settings{
		total:             total,
		barLength:         DefaultBarLength,
		updateStep:        DefaultUpdateStep,
		startMessage:      DefaultStartMessage,
		endMessage:        DefaultEndMessage,
		showBar:           true,
		showPercentage:    true,
		showCount:         false,
		showRemainingTime: true,
		showFinalTime:     true,
		barSymbol:         DefaultBarSymbol,
		emptySymbol:       DefaultEmptySymbol,
		out:               os.Stdout,
	}
}

// Option configures an Indicator at construction time. Options validate
// their argument and report violations as InvalidArgumentError.
type Option func(*settings) error

// WithBarLength sets the character width of the bar's fillable interior.
func WithBarLength(n int) Option {
	return func(s *settings) error {
		if n <= 0 {
			return &InvalidArgumentError{Option: "barLength", Reason: "must be a positive integer"}
		}
		s.barLength = n
		return nil
	}
}

// WithUpdateStep sets the minimum step-count delta between redraws.
func WithUpdateStep(n int) Option {
	return func(s *settings) error {
		if n <= 0 {
			return &InvalidArgumentError{Option: "updateStep", Reason: "must be a positive integer"}
		}
		s.updateStep = n
		return nil
	}
}

// WithStartMessage sets the text printed before the bar.
func WithStartMessage(msg string) Option {
	return func(s *settings) error {
		s.startMessage = msg
		return nil
	}
}

// WithEndMessage sets the text printed after completion.
func WithEndMessage(msg string) Option {
	return func(s *settings) error {
		s.endMessage = msg
		return nil
	}
}

// WithShowBar toggles the bar segment.
func WithShowBar(show bool) Option {
	return func(s *settings) error {
		s.showBar = show
		return nil
	}
}

// WithShowPercentage toggles the percentage segment.
func WithShowPercentage(show bool) Option {
	return func(s *settings) error {
		s.showPercentage = show
		return nil
	}
}

// WithShowCount toggles the completed/total count segment.
func WithShowCount(show bool) Option {
	return func(s *settings) error {
		s.showCount = show
		return nil
	}
}

// WithShowRemainingTime toggles the estimated-time-remaining segment.
func WithShowRemainingTime(show bool) Option {
	return func(s *settings) error {
		s.showRemainingTime = show
		return nil
	}
}

// WithShowFinalTime toggles the elapsed-seconds suffix after the end
// message.
func WithShowFinalTime(show bool) Option {
	return func(s *settings) error {
		s.showFinalTime = show
		return nil
	}
}

// WithBarSymbol sets the fill glyph. The symbol must be exactly one
// character.
func WithBarSymbol(sym string) Option {
	return func(s *settings) error {
		if utf8.RuneCountInString(sym) != 1 {
			return &InvalidArgumentError{Option: "barSymbol", Reason: "must be a single character"}
		}
		s.barSymbol = sym
		return nil
	}
}

// WithEmptyBarSymbol sets the glyph used for the undrawn bar interior. The
// symbol must be exactly one character.
func WithEmptyBarSymbol(sym string) Option {
	return func(s *settings) error {
		if utf8.RuneCountInString(sym) != 1 {
			return &InvalidArgumentError{Option: "emptyBarSymbol", Reason: "must be a single character"}
		}
		s.emptySymbol = sym
		return nil
	}
}

// WithWriter redirects output away from os.Stdout, typically to a buffer in
// tests.
func WithWriter(w io.Writer) Option {
	return func(s *settings) error {
		if w == nil {
			return &InvalidArgumentError{Option: "writer", Reason: "must not be nil"}
		}
		s.out = w
		return nil
	}
}
