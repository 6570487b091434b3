package replay

import "go.uber.org/zap/zapcore"

// Stats counts what happened during a replay.
type Stats struct {
	// Lines read, including failed ones.
	Lines int `json:"lines"`
	// Events applied.
	Events int `json:"events"`
	// SkippedFailures counts lines that could not be read.
	SkippedFailures int `json:"skipped_failures"`
	// SkippedMalformed counts lines that were not understood.
	SkippedMalformed int `json:"skipped_malformed"`
	// Duplicates counts entries listed more than once.
	Duplicates int `json:"duplicates"`
	// IgnoredEntries counts entries that did not follow an ls.
	IgnoredEntries int `json:"ignored_entries"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("lines", s.Lines)
	enc.AddInt("events", s.Events)
	enc.AddInt("skipped_failures", s.SkippedFailures)
	enc.AddInt("skipped_malformed", s.SkippedMalformed)
	enc.AddInt("duplicates", s.Duplicates)
	enc.AddInt("ignored_entries", s.IgnoredEntries)

	return nil
}
