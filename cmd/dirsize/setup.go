package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klingtnet/dirsize/config"
	"github.com/klingtnet/dirsize/fstree"
	"github.com/klingtnet/dirsize/internal"
	"github.com/klingtnet/dirsize/internal/logging"
	"github.com/klingtnet/dirsize/replay"
	"github.com/klingtnet/dirsize/report"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func flagOverride(cfg *config.Config, c *cli.Context) {
	if c.IsSet("threshold") {
		cfg.Threshold = c.Int64("threshold")
	}
	if c.IsSet("capacity") {
		cfg.Capacity = c.Int64("capacity")
	}
	if c.IsSet("required-free") {
		cfg.RequiredFree = c.Int64("required-free")
	}
	if c.String("log-level") != "" {
		cfg.LogLevel = c.String("log-level")
	}
	if c.String("log-format") != "" {
		cfg.LogFormat = c.String("log-format")
	}
}

type analyzer struct {
	config *config.Config
	logger *zap.Logger
	input  string
}

func setup(c *cli.Context) (a *analyzer, err error) {
	cfg := config.Default()
	if c.String("config") != "" {
		cfg, err = config.ParseConfigFile(c.String("config"))
		if err != nil {
			err = cli.Exit(
				fmt.Sprintf("parsing config %q failed: %s", c.String("config"), err.Error()),
				BadArgument,
			)
			return
		}
	}
	flagOverride(cfg, c)

	err = cfg.Validate()
	if err != nil {
		err = cli.Exit(fmt.Sprintf("bad config: %s", err.Error()), BadArgument)
		return
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		err = cli.Exit(fmt.Sprintf("bad logging config: %s", err.Error()), BadArgument)
		return
	}

	a = &analyzer{
		config: cfg,
		logger: logger,
		input:  c.String("input"),
	}

	return
}

func (a *analyzer) open(stdin io.Reader) (io.ReadCloser, error) {
	if a.input == "-" {
		return io.NopCloser(stdin), nil
	}

	return os.Open(a.input)
}

// run replays the transcript and answers all queries.
func (a *analyzer) run(ctx context.Context, stdin io.Reader) (*report.Summary, error) {
	r, err := a.open(stdin)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("opening transcript failed: %s", err.Error()), BadArgument)
	}
	defer r.Close()

	result, err := replay.Run(ctx, r, replay.WithLogger(a.logger))
	if errors.Is(err, fstree.ErrNotFound) || errors.Is(err, fstree.ErrInvalidTarget) {
		return nil, cli.Exit(fmt.Sprintf("bad transcript: %s", err.Error()), BadTranscript)
	}
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("replay failed: %s", err.Error()), InternalError)
	}
	if result.Skipped != nil {
		a.logger.Warn("some lines could not be read", zap.Error(result.Skipped))
	}
	a.logger.Debug("transcript replayed", zap.String("input", a.input), zap.Object("stats", result.Stats))

	return report.NewSummary(internal.TitleFromPath(a.input), a.config, result), nil
}
