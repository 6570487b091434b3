package transcript

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedLine indicates a line that is neither a command nor a listing entry.
var ErrMalformedLine = errors.New("malformed line")

// Classifier recognizes transcript lines.  A Classifier is immutable and safe to reuse.
type Classifier struct {
	cdRE, lsRE, fileRE, dirRE *regexp.Regexp
}

// NewClassifier returns a Classifier with all expressions compiled.
func NewClassifier() *Classifier {
	return &Classifier{
		cdRE:   regexp.MustCompile(`^\$\s+cd\s+(\S+)\s*$`),
		lsRE:   regexp.MustCompile(`^\$\s+ls\s*$`),
		fileRE: regexp.MustCompile(`^(\d+)\s+(\S+)\s*$`),
		dirRE:  regexp.MustCompile(`^dir\s+(\S+)\s*$`),
	}
}

// Classify returns the event for line.  Commands take precedence over listing entries,
// lines matching nothing return ErrMalformedLine.
func (c *Classifier) Classify(line string) (Event, error) {
	if m := c.cdRE.FindStringSubmatch(line); m != nil {
		return Cd{Target: m[1]}, nil
	}
	if c.lsRE.MatchString(line) {
		return Ls{}, nil
	}
	if m := c.fileRE.FindStringSubmatch(line); m != nil {
		size, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: size of %q: %s", ErrMalformedLine, m[2], err.Error())
		}

		return FileEntry{Name: m[2], Size: size}, nil
	}
	if m := c.dirRE.FindStringSubmatch(line); m != nil {
		return DirEntry{Name: m[1]}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
}
