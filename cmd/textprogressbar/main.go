package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/megasthenis/textprogressbar/cmd/textprogressbar/app"
	"github.com/megasthenis/textprogressbar/internal/config"
	"github.com/megasthenis/textprogressbar/internal/version"
)

var (
	// Global flags
	verbosity  int
	noProgress bool
	noColor    bool

	// Indicator flags, shared by run and walk
	barLength    int
	updateStep   int
	barSymbol    string
	emptySymbol  string
	startMessage string
	endMessage   string
	showCount    bool
	reportFormat string

	// Run command flags
	steps     int
	perSecond float64

	// Version command flags
	fullVersion bool

	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textprogressbar",
	Short: "Single-line terminal progress indicator",
	Long: `textprogressbar v` + version.Version + `

Tracks long-running tasks on a single updating terminal line: a bar,
percentage, completed count and an estimate of the time remaining. Defaults
come from TEXTPROGRESSBAR_* environment variables and are overridden by
flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		mergeFlags(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run [flags]",
	Short: "Track a simulated task",
	Long: `Runs a simulated task of the given number of steps, advancing the progress
line after each step. Use --per-second to pace the simulation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.New(&cfg)
		defer application.Shutdown()

		return application.Run(steps, perSecond)
	},
}

var walkCmd = &cobra.Command{
	Use:   "walk [flags] <path>",
	Short: "Read files under a path with progress",
	Long: `Counts the regular files under the given path, then reads them all while
the progress line tracks completed files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.New(&cfg)
		defer application.Shutdown()

		return application.Walk(args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if fullVersion {
			fmt.Print(version.Full())
		} else {
			fmt.Println(version.Version)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose output (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable the progress line")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	indicatorFlags := pflag.NewFlagSet("indicator", pflag.ContinueOnError)
	indicatorFlags.IntVar(&barLength, "bar-length", 20, "character width of the bar interior")
	indicatorFlags.IntVar(&updateStep, "update-step", 10, "minimum steps between redraws")
	indicatorFlags.StringVar(&barSymbol, "bar-symbol", "=", "fill character")
	indicatorFlags.StringVar(&emptySymbol, "empty-symbol", " ", "empty interior character")
	indicatorFlags.StringVar(&startMessage, "start-message", "Running: ", "text printed before the bar")
	indicatorFlags.StringVar(&endMessage, "end-message", " Done.", "text printed after completion")
	indicatorFlags.BoolVar(&showCount, "show-count", false, "show the completed/total count")
	indicatorFlags.StringVar(&reportFormat, "report", "text", "post-run summary format: text|json|yaml|none")

	runCmd.Flags().IntVarP(&steps, "steps", "n", 150, "total number of steps")
	runCmd.Flags().Float64VarP(&perSecond, "per-second", "r", 25, "steps per second (0 for unpaced)")
	runCmd.Flags().AddFlagSet(indicatorFlags)

	walkCmd.Flags().AddFlagSet(indicatorFlags)

	versionCmd.Flags().BoolVarP(&fullVersion, "full", "f", false, "show full version information")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(versionCmd)
}

// mergeFlags overrides environment-derived configuration with any flag the
// user set explicitly.
func mergeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("bar-length") {
		cfg.BarLength = barLength
	}
	if flags.Changed("update-step") {
		cfg.UpdateStep = updateStep
	}
	if flags.Changed("bar-symbol") {
		cfg.BarSymbol = barSymbol
	}
	if flags.Changed("empty-symbol") {
		cfg.EmptyBarSymbol = emptySymbol
	}
	if flags.Changed("start-message") {
		cfg.StartMessage = startMessage
	}
	if flags.Changed("end-message") {
		cfg.EndMessage = endMessage
	}
	if flags.Changed("show-count") {
		cfg.ShowCount = showCount
	}
	if flags.Changed("report") {
		cfg.Report = reportFormat
	}
	if noProgress {
		cfg.NoProgress = true
	}
	if noColor {
		cfg.NoColor = true
	}
	if verbosity > cfg.Verbose {
		cfg.Verbose = verbosity
	}
}
