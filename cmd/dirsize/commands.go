package main

import (
	"bytes"
	"fmt"

	"github.com/klingtnet/dirsize/internal/storage"
	"github.com/klingtnet/dirsize/report"
	"github.com/klingtnet/dirsize/slug"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func total(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	s, err := a.run(c.Context, c.App.Reader)
	if err != nil {
		return err
	}
	a.logger.Info("total of small directories", zap.Int64("threshold", s.Threshold), zap.Int("directories", len(s.Small)))
	fmt.Fprintln(c.App.Writer, s.TotalAtMost)

	return nil
}

func free(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	s, err := a.run(c.Context, c.App.Reader)
	if err != nil {
		return err
	}
	a.logger.Info(
		"deletion candidate",
		zap.Int64("used", s.Used),
		zap.Int64("space_to_free", s.SpaceToFree),
	)
	fmt.Fprintln(c.App.Writer, s.DeletionCandidate)

	return nil
}

func dirs(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	s, err := a.run(c.Context, c.App.Reader)
	if err != nil {
		return err
	}

	return report.WriteDirectories(c.App.Writer, s.Directories)
}

func parseFormat(c *cli.Context) (report.Format, error) {
	format, err := report.ParseFormat(c.String("format"))
	if err != nil {
		return "", cli.Exit(err.Error(), BadArgument)
	}

	return format, nil
}

func writeReport(c *cli.Context) error {
	format, err := parseFormat(c)
	if err != nil {
		return err
	}
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	s, err := a.run(c.Context, c.App.Reader)
	if err != nil {
		return err
	}

	writer := report.NewWriter(report.NewHTML(report.DefaultMarkdown()))
	outputDir := a.config.OutputDir
	if c.String("output") != "" {
		outputDir = c.String("output")
	}
	if outputDir == "-" {
		return writer.Write(c.Context, c.App.Writer, format, s)
	}

	buf := bytes.NewBuffer(make([]byte, 0, 8192))
	err = writer.Write(c.Context, buf, format, s)
	if err != nil {
		return cli.Exit(fmt.Sprintf("rendering report failed: %s", err.Error()), InternalError)
	}

	stor := storage.NewFileStorage(outputDir)
	name := slug.NewSlugifier('-').Slugify(s.Title)
	if name == "" {
		name = "index"
	}
	name += format.Extension()
	err = stor.Store(c.Context, name, buf)
	if err != nil {
		return cli.Exit(fmt.Sprintf("storing report failed: %s", err.Error()), InternalError)
	}
	a.logger.Info("report stored", zap.String("path", stor.Path(name)))

	return nil
}
