// Package config provides configuration management for the textprogressbar
// CLI. It reads environment variables, applies defaults and validates all
// parameters before they reach the indicator.
//
// # Configuration Loading
//
// To load the configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// The following environment variables are supported:
//
//	TEXTPROGRESSBAR_BAR_LENGTH        Bar interior width (default: 20)
//	TEXTPROGRESSBAR_UPDATE_STEP       Steps between redraws (default: 10)
//	TEXTPROGRESSBAR_BAR_SYMBOL        Fill character (default: "=")
//	TEXTPROGRESSBAR_EMPTY_BAR_SYMBOL  Empty interior character (default: " ")
//	TEXTPROGRESSBAR_START_MESSAGE     Text before the bar (default: "Running: ")
//	TEXTPROGRESSBAR_END_MESSAGE       Text after completion (default: " Done.")
//	TEXTPROGRESSBAR_SHOW_COUNT        Show completed/total count (true/false)
//	TEXTPROGRESSBAR_REPORT            Post-run summary: text|json|yaml|none
//	TEXTPROGRESSBAR_NO_PROGRESS       Disable the progress line (true/false)
//	TEXTPROGRESSBAR_NO_COLOR          Disable colored output (true/false)
//	TEXTPROGRESSBAR_VERBOSE           Logging verbosity level
//
// # Validation
//
// The package validates all values on load:
//   - BarLength and UpdateStep must be positive integers
//   - BarSymbol and EmptyBarSymbol must be exactly one character
//   - Report must be one of: text, json, yaml, none
package config
