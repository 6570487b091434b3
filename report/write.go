package report

import (
	"context"
	"io"
)

// Writer renders summaries in one of the supported formats.
type Writer struct {
	html *HTML
}

// NewWriter returns a Writer using html for FormatHTML.
func NewWriter(html *HTML) *Writer {
	return &Writer{html: html}
}

// Write renders s to w.
func (wr *Writer) Write(ctx context.Context, w io.Writer, format Format, s *Summary) error {
	switch format {
	case FormatText:
		return WriteText(w, s)
	case FormatJSON:
		return WriteJSON(w, s)
	case FormatHTML:
		return wr.html.Render(ctx, w, s)
	default:
		return ErrUnknownFormat
	}
}
