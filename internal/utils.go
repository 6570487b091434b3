package internal

import (
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var caserPool = sync.Pool{
	New: func() any {
		caser := cases.Title(language.English)
		return &caser
	},
}

// TitleCase returns string s in title-case.  For now only english strings are supported.
func TitleCase(s string) string {
	caser := caserPool.Get().(*cases.Caser)
	defer caserPool.Put(caser)

	return caser.String(s)
}

// TitleFromPath turns a file name like terminal-output.txt into a title like Terminal Output.
// Names without letters or digits, like - for stdin, become Transcript.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(base)

	title := TitleCase(strings.Join(strings.Fields(base), " "))
	if title == "" {
		return "Transcript"
	}

	return title
}
