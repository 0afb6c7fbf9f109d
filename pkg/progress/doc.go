/*
Package progress implements a single-line terminal progress indicator for
tasks with a known number of steps. The indicator shows an updating bar,
percentage, completed count and estimated remaining time, finalizing the
line once the last step is reported.

Basic usage:

	ind, err := progress.New(150,
		progress.WithStartMessage("Copying: "),
		progress.WithShowCount(true),
	)
	if err != nil {
	    log.Fatal(err)
	}

	for i := 1; i <= 150; i++ {
	    doStep(i)
	    if err := ind.Advance(i); err != nil {
	        log.Fatal(err)
	    }
	}

Redraws are throttled: Advance only produces output once the reported step
count crosses the render threshold, which moves forward by the configured
update step (default 10) on every redraw. Reporting the total finalizes the
line with the end message, the elapsed time and a newline; any later
Advance call is a no-op.

The indicator rewrites the line in place by erasing and redrawing its
trailing segments, so it owns the output stream for its whole lifetime:
writing anything else to the same stream before completion corrupts the
display, and so does driving one indicator from multiple goroutines.
*/
package progress
