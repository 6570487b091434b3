package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/klingtnet/dirsize/fstree"
)

// Format of a rendered report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

var ErrUnknownFormat = fmt.Errorf("unknown report format")

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Extension returns the file extension used when storing a report.
func (f Format) Extension() string {
	if f == FormatText {
		return ".txt"
	}

	return "." + string(f)
}

// WriteText writes a plain text report.
func WriteText(w io.Writer, s *Summary) error {
	_, err := fmt.Fprintf(w,
		"%s\n\nused %d of %d, %d required free, %d to free\ntotal of directories <= %d: %d\ndeletion candidate: %d\n\n",
		s.Title, s.Used, s.Capacity, s.RequiredFree, s.SpaceToFree, s.Threshold, s.TotalAtMost, s.DeletionCandidate,
	)
	if err != nil {
		return err
	}

	return WriteDirectories(w, s.Directories)
}

// WriteDirectories writes one aligned line per directory.
func WriteDirectories(w io.Writer, dirs []fstree.DirSize) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, dir := range dirs {
		_, err := fmt.Fprintf(tw, "%d\t%s\n", dir.Size, dir.Path)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}
