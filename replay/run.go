package replay

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/klingtnet/dirsize/fstree"
	"github.com/klingtnet/dirsize/internal/distribute"
	"github.com/klingtnet/dirsize/transcript"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result of a replay.
type Result struct {
	FS    *fstree.FileSystem
	Stats Stats
	// Skipped collects the errors of all lines that could not be read, nil if there were none.
	Skipped error
}

// step is a classified line.
type step struct {
	line  transcript.Line
	event transcript.Event
	err   error
}

// Run reads a transcript from r and replays it onto an empty filesystem.
// Unreadable and unrecognized lines are skipped, an inconsistent transcript fails the run.
func Run(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	fs := fstree.New()
	replayer := New(fs, opts...)
	classifier := transcript.NewClassifier()

	var skipped *multierror.Error
	source := func(ctx context.Context, steps chan<- step) error {
		lines := make(chan transcript.Line)
		eg, ctx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			defer close(lines)
			return transcript.Lines(ctx, r, lines)
		})
		eg.Go(func() error {
			for line := range lines {
				s := step{line: line}
				if line.Err == nil {
					s.event, s.err = classifier.Classify(line.Text)
				}

				select {
				case <-ctx.Done():
					return ctx.Err()
				case steps <- s:
				}
			}

			return nil
		})

		return eg.Wait()
	}
	worker := func(ctx context.Context, s step) error {
		replayer.stats.Lines++

		switch {
		case s.line.Err != nil:
			replayer.stats.SkippedFailures++
			skipped = multierror.Append(skipped, fmt.Errorf("line %d: %w", s.line.Number, s.line.Err))
			replayer.logger.Warn("skipping unreadable line", zap.Int("line", s.line.Number), zap.Error(s.line.Err))

			return nil
		case errors.Is(s.err, transcript.ErrMalformedLine):
			replayer.stats.SkippedMalformed++
			replayer.logger.Debug("skipping malformed line", zap.Int("line", s.line.Number), zap.String("text", s.line.Text))

			return nil
		case s.err != nil:
			return fmt.Errorf("line %d: %w", s.line.Number, s.err)
		}

		err := replayer.Apply(s.event)
		if err != nil {
			replayer.logger.Error(
				"transcript is inconsistent",
				zap.Int("line", s.line.Number),
				zap.String("cwd", replayer.Cwd()),
				zap.Error(err),
			)

			return fmt.Errorf("line %d: %w", s.line.Number, err)
		}

		return nil
	}

	err := distribute.Ordered(ctx, source, worker)
	if err != nil {
		return nil, err
	}

	result := &Result{FS: fs, Stats: replayer.Stats(), Skipped: skipped.ErrorOrNil()}
	replayer.logger.Debug("replay finished", zap.Object("stats", result.Stats))

	return result, nil
}
