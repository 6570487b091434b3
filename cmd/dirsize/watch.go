package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/klingtnet/dirsize/internal/fswatcher"
	"github.com/klingtnet/dirsize/report"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func watch(c *cli.Context) error {
	format, err := parseFormat(c)
	if err != nil {
		return err
	}
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	if a.input == "-" {
		return cli.Exit("watch needs a transcript file, not stdin", BadArgument)
	}

	writer := report.NewWriter(report.NewHTML(report.DefaultMarkdown()))
	ticker := time.NewTicker(c.Duration("check-interval"))
	defer ticker.Stop()
	watcher := fswatcher.New(os.DirFS(filepath.Dir(a.input)), ticker, filepath.Base(a.input))

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	for result := range watcher.Watch(ctx) {
		if result.Err != nil {
			return cli.Exit(result.Err.Error(), InternalError)
		}
		if !result.HasChanged {
			continue
		}

		a.logger.Info("transcript has changed, analyzing...", zap.String("input", a.input))
		s, err := a.run(ctx, c.App.Reader)
		if err != nil {
			// The transcript may still be written to, try again on the next change.
			a.logger.Error("analysis failed", zap.Error(err))
			continue
		}

		err = writer.Write(ctx, c.App.Writer, format, s)
		if err != nil {
			return cli.Exit(err.Error(), InternalError)
		}
	}

	return nil
}
