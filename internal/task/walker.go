package task

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/megasthenis/textprogressbar/pkg/logger"
)

// Walker reads every regular file under a root, reporting progress per
// completed file. A determinate total comes from counting first, so the two
// passes must see the same tree.
type Walker struct {
	fs  afero.Fs
	log logger.Logger
}

// NewWalker creates a walker over fs.
func NewWalker(fs afero.Fs, log logger.Logger) *Walker {
	return &Walker{
		fs:  fs,
		log: log,
	}
}

// CountFiles returns the number of regular files under root.
func (w *Walker) CountFiles(root string) (int, error) {
	w.log.WithFields(logger.Fields{
		"root": root,
	}).Debug("Counting files")

	count := 0
	err := afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count files under %s: %w", root, err)
	}

	return count, nil
}

// ReadFiles walks root again, reading each regular file fully and calling fn
// with the completed-file count after each read. The walk stops when ctx is
// cancelled or fn returns an error.
func (w *Walker) ReadFiles(ctx context.Context, root string, fn func(done int) error) error {
	done := 0
	err := afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		w.log.WithFields(logger.Fields{
			"path": path,
			"size": info.Size(),
		}).Trace("Reading file")

		if _, rerr := afero.ReadFile(w.fs, path); rerr != nil {
			return fmt.Errorf("failed to read %s: %w", path, rerr)
		}

		done++
		return fn(done)
	})
	if err != nil {
		return fmt.Errorf("walk of %s failed: %w", root, err)
	}

	return nil
}
