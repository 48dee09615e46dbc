package data

import "fmt"

// MalformedRecordError reports a track or capture record whose field could not be parsed.
type MalformedRecordError struct {
	Source string
	Index  int
	Field  string
	Value  string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	src := e.Source
	if src == "" {
		src = "input"
	}
	return fmt.Sprintf("%s: record %d: field %s: malformed value %q: %s", src, e.Index, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
