/*
Package app wires the CLI together: configuration, logging, signal handling,
the progress indicator and the task drivers it tracks.

Usage:

	application := app.New(cfg)
	defer application.Shutdown()

	if err := application.Run(150, 10); err != nil {
	    log.Fatal(err)
	}
*/
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/megasthenis/textprogressbar/internal/config"
	"github.com/megasthenis/textprogressbar/internal/report"
	"github.com/megasthenis/textprogressbar/internal/task"
	"github.com/megasthenis/textprogressbar/pkg/logger"
	"github.com/megasthenis/textprogressbar/pkg/progress"
)

// App is the application container for one CLI invocation.
type App struct {
	config *config.Config
	log    logger.Logger
	stdout io.Writer

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates an application from cfg.
func New(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		config: cfg,
		stdout: os.Stdout,
		ctx:    ctx,
		cancel: cancel,
	}

	a.log = logger.New(logger.Config{
		Verbosity: cfg.Verbose,
	})

	a.setupSignalHandling()

	a.log.WithFields(logger.Fields{
		"config": cfg.String(),
	}).Debug("Application initialized")

	return a
}

// Run tracks a simulated task of steps units, paced to perSecond steps per
// second when positive.
func (a *App) Run(steps int, perSecond float64) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be a positive integer, got %d", steps)
	}

	a.log.WithFields(logger.Fields{
		"steps":     steps,
		"perSecond": perSecond,
	}).Info("Starting simulated run")

	advance, err := a.newAdvancer(steps)
	if err != nil {
		return fmt.Errorf("failed to create progress indicator: %w", err)
	}

	start := time.Now()
	if err := task.Simulate(a.ctx, steps, perSecond, advance); err != nil {
		return err
	}

	return a.report(steps, time.Since(start))
}

// Walk counts the regular files under path, then reads them all with a
// progress line tracking completed files.
func (a *App) Walk(path string) error {
	walker := task.NewWalker(afero.NewOsFs(), a.log)

	total, err := walker.CountFiles(path)
	if err != nil {
		return err
	}
	if total == 0 {
		fmt.Fprintf(a.stdout, "no files under %s\n", path)
		return nil
	}

	a.log.WithFields(logger.Fields{
		"path":  path,
		"files": total,
	}).Info("Starting file walk")

	advance, err := a.newAdvancer(total)
	if err != nil {
		return fmt.Errorf("failed to create progress indicator: %w", err)
	}

	start := time.Now()
	if err := walker.ReadFiles(a.ctx, path, advance); err != nil {
		return err
	}

	return a.report(total, time.Since(start))
}

// Shutdown cancels any in-flight task.
func (a *App) Shutdown() {
	a.cancel()
}

// newAdvancer builds the progress indicator for a task of total steps and
// returns its Advance method. When the progress line is disabled, or stdout
// is not a terminal, the returned function does nothing and the run is only
// summarized afterwards.
func (a *App) newAdvancer(total int) (func(int) error, error) {
	if a.config.NoProgress || !a.isTerminal() {
		a.log.Debug("Progress line disabled")
		return func(int) error { return nil }, nil
	}

	ind, err := progress.New(total,
		progress.WithWriter(a.stdout),
		progress.WithBarLength(a.config.BarLength),
		progress.WithUpdateStep(a.config.UpdateStep),
		progress.WithBarSymbol(a.config.BarSymbol),
		progress.WithEmptyBarSymbol(a.config.EmptyBarSymbol),
		progress.WithStartMessage(a.config.StartMessage),
		progress.WithEndMessage(a.config.EndMessage),
		progress.WithShowCount(a.config.ShowCount),
	)
	if err != nil {
		return nil, err
	}

	return ind.Advance, nil
}

// report prints the post-run summary unless reports are disabled.
func (a *App) report(steps int, elapsed time.Duration) error {
	a.log.WithFields(logger.Fields{
		"steps":   steps,
		"elapsed": elapsed,
	}).Info("Run completed")

	if a.config.Report == "none" {
		return nil
	}

	formatter := report.NewFormatter(report.Config{
		Format:     report.Format(a.config.Report),
		WithColors: !a.config.NoColor,
	}, a.log)

	out, err := formatter.Format(report.NewSummary(steps, elapsed))
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	_, err = fmt.Fprintln(a.stdout, out)
	return err
}

// isTerminal reports whether stdout is an interactive terminal. The
// indicator corrupts redirected output, so it is only drawn on a TTY.
func (a *App) isTerminal() bool {
	if f, ok := a.stdout.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
