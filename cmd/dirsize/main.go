// Package main implements the CLI for dirsize, a disk usage analyzer for shell transcripts.
package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

const (
	InternalError = iota + 1
	BadArgument
	BadTranscript
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "dirsize",
		Usage: "find out what to delete, given the transcript of a shell session",
		Description: "Reads cd and ls commands together with their output and rebuilds the directory tree. " +
			"Flags overwrite config file settings.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file to use",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "transcript to read, - for stdin",
				Value:   "-",
			},
			&cli.Int64Flag{
				Name:  "threshold",
				Usage: "largest directory size summed up by total",
			},
			&cli.Int64Flag{
				Name:  "capacity",
				Usage: "disk capacity in bytes",
			},
			&cli.Int64Flag{
				Name:  "required-free",
				Usage: "free space in bytes required after deletion",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "one of debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "total",
				Usage:  "print the sum of all directories not larger than the threshold",
				Action: total,
			},
			{
				Name:   "free",
				Usage:  "print the size of the smallest directory to delete",
				Action: free,
			},
			{
				Name:   "dirs",
				Usage:  "list all directories with their size",
				Action: dirs,
			},
			{
				Name:  "report",
				Usage: "render a full report",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "text, json or html",
						Value: "text",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "folder to store the report in, - to print it (default: output_dir of the config)",
					},
				},
				Action: writeReport,
			},
			{
				Name:  "watch",
				Usage: "print a new report whenever the transcript changes",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "check-interval",
						Usage: "time to wait between looking for changes",
						Value: 1 * time.Second,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "text, json or html",
						Value: "text",
					},
				},
				Action: watch,
			},
		},
		Action: total,
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
