package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the CLI. Values come from
// TEXTPROGRESSBAR_* environment variables and are overridden by command-line
// flags.
type Config struct {
	// BarLength is the character width of the bar's fillable interior
	BarLength int

	// UpdateStep is the minimum number of steps between redraws
	UpdateStep int

	// BarSymbol is the single character used for the filled bar interior
	BarSymbol string

	// EmptyBarSymbol is the single character used for the undrawn interior
	EmptyBarSymbol string

	// StartMessage is printed before the bar
	StartMessage string

	// EndMessage is printed after completion
	EndMessage string

	// ShowCount enables the completed/total count segment
	ShowCount bool

	// Report selects the post-run summary format (text, json, yaml, none)
	Report string

	// NoProgress disables the progress line entirely
	NoProgress bool

	// NoColor disables colored output in reports and error messages
	NoColor bool

	// Verbose sets the logging verbosity level
	Verbose int
}

// validReportFormats contains the supported post-run summary formats
var validReportFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
	"none": true,
}

// Load reads configuration from environment variables and validates it.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("bar_length", 20)
	v.SetDefault("update_step", 10)
	v.SetDefault("bar_symbol", "=")
	v.SetDefault("empty_bar_symbol", " ")
	v.SetDefault("start_message", "Running: ")
	v.SetDefault("end_message", " Done.")
	v.SetDefault("show_count", false)
	v.SetDefault("report", "text")
	v.SetDefault("no_progress", false)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("TEXTPROGRESSBAR")
	v.AutomaticEnv()

	v.BindEnv("bar_length")
	v.BindEnv("update_step")
	v.BindEnv("bar_symbol")
	v.BindEnv("empty_bar_symbol")
	v.BindEnv("start_message")
	v.BindEnv("end_message")
	v.BindEnv("show_count")
	v.BindEnv("report")
	v.BindEnv("no_progress")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	cfg := Config{
		BarLength:      v.GetInt("bar_length"),
		UpdateStep:     v.GetInt("update_step"),
		BarSymbol:      v.GetString("bar_symbol"),
		EmptyBarSymbol: v.GetString("empty_bar_symbol"),
		StartMessage:   v.GetString("start_message"),
		EndMessage:     v.GetString("end_message"),
		ShowCount:      v.GetBool("show_count"),
		Report:         v.GetString("report"),
		NoProgress:     v.GetBool("no_progress"),
		NoColor:        v.GetBool("no_color"),
		Verbose:        v.GetInt("verbose"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.BarLength <= 0 {
		return fmt.Errorf("bar length must be a positive integer")
	}
	if c.UpdateStep <= 0 {
		return fmt.Errorf("update step must be a positive integer")
	}
	if utf8.RuneCountInString(c.BarSymbol) != 1 {
		return fmt.Errorf("bar symbol must be exactly one character")
	}
	if utf8.RuneCountInString(c.EmptyBarSymbol) != 1 {
		return fmt.Errorf("empty bar symbol must be exactly one character")
	}
	if !validReportFormats[c.Report] {
		return fmt.Errorf("invalid report format: must be one of [text json yaml none]")
	}
	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}
	return nil
}

// String returns a string representation of the configuration.
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{BarLength: %d, UpdateStep: %d, BarSymbol: %q, EmptyBarSymbol: %q, "+
			"StartMessage: %q, EndMessage: %q, ShowCount: %v, Report: %s, "+
			"NoProgress: %v, NoColor: %v, Verbose: %d}",
		c.BarLength, c.UpdateStep, c.BarSymbol, c.EmptyBarSymbol,
		c.StartMessage, c.EndMessage, c.ShowCount, c.Report,
		c.NoProgress, c.NoColor, c.Verbose,
	)
}
