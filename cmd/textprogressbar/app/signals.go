package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/megasthenis/textprogressbar/pkg/logger"
)

// setupSignalHandling cancels the application context on SIGINT/SIGTERM. A
// second signal exits immediately.
func (a *App) setupSignalHandling() {
	var initiated atomic.Bool

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			a.log.WithFields(logger.Fields{
				"signal": sig.String(),
			}).Debug("Received system signal")

			if !initiated.CompareAndSwap(false, true) {
				a.log.Warn("Second interrupt, exiting immediately")
				os.Exit(1)
			}

			a.log.Info("Interrupt received, cancelling task")
			a.cancel()
		}
	}()
}
