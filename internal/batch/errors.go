package batch

import "fmt"

// SourceNotFoundError reports a record source that does not exist or cannot
// be read.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("record source %s not found: %v", e.Path, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// MalformedSourceError reports a record source whose content cannot be parsed
// into a list of records.
type MalformedSourceError struct {
	Path   string
	Format string
	Err    error
}

func (e *MalformedSourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed %s record source: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("malformed %s record source %s: %v", e.Format, e.Path, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}
