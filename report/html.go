package report

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/klingtnet/dirsize/fstree"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// DefaultMarkdown returns the converter used for HTML reports.
func DefaultMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.GFM, emoji.Emoji))
}

// HTML renders reports as a markdown document converted to a standalone web page.
type HTML struct {
	md      goldmark.Markdown
	page    *template.Template
	printer *message.Printer
}

// NewHTML returns a renderer converting markdown with md.
func NewHTML(md goldmark.Markdown) *HTML {
	return &HTML{
		md:      md,
		page:    template.Must(template.New("").ParseFS(templateFS, "templates/report.gohtml")),
		printer: message.NewPrinter(language.English),
	}
}

// Markdown returns the report body as GitHub flavoured markdown.
func (h *HTML) Markdown(s *Summary) []byte {
	buf := bytes.NewBuffer(nil)
	p := func(format string, args ...interface{}) {
		h.printer.Fprintf(buf, format, args...)
	}

	p("# :floppy_disk: %s\n\n", s.Title)
	p("| | bytes |\n|---|---:|\n")
	p("| Capacity | %d |\n", s.Capacity)
	p("| Used | %d |\n", s.Used)
	p("| Required free | %d |\n", s.RequiredFree)
	p("| To free | %d |\n\n", s.SpaceToFree)

	p("## :file_folder: Directories up to %d bytes\n\n", s.Threshold)
	p("Together **%d** bytes.\n\n", s.TotalAtMost)
	h.table(buf, s.Small)

	p("## :wastebasket: Deletion candidates\n\n")
	p("Deleting a directory of **%d** bytes frees enough space.\n\n", s.DeletionCandidate)
	h.table(buf, s.Candidates)

	p("## All directories\n\n")
	h.table(buf, s.Directories)

	return buf.Bytes()
}

func (h *HTML) table(buf *bytes.Buffer, dirs []fstree.DirSize) {
	if len(dirs) == 0 {
		buf.WriteString("_None._\n\n")
		return
	}

	buf.WriteString("| Path | Size |\n|---|---:|\n")
	for _, dir := range dirs {
		h.printer.Fprintf(buf, "| %s | %d |\n", inlineCode(dir.Path), dir.Size)
	}
	buf.WriteString("\n")
}

// inlineCode wraps s in a code span that is safe to use in a table cell.
func inlineCode(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}

	return fmt.Sprintf("%s %s %s", fence, s, fence)
}

// Render writes the report as HTML page.
func (h *HTML) Render(ctx context.Context, w io.Writer, s *Summary) error {
	content := bytes.NewBuffer(nil)
	err := h.md.Convert(h.Markdown(s), content)
	if err != nil {
		return fmt.Errorf("converting markdown failed: %w", err)
	}

	return h.page.ExecuteTemplate(w, "report.gohtml", struct {
		Title   string
		Content template.HTML
	}{
		s.Title,
		template.HTML(content.String()),
	})
}
