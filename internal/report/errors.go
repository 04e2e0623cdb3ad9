package report

import (
	"fmt"
	"strings"
)

// SourceError is a failed fetch from one source. It carries the source
// name so callers can tell which categories are affected.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// BuildError aborts a report build when sources could not be fetched
// and the service runs in the default fail-closed mode.
type BuildError struct {
	Sources []*SourceError
}

func (e *BuildError) Error() string {
	msgs := make([]string, len(e.Sources))
	for i, s := range e.Sources {
		msgs[i] = s.Error()
	}

	return "report build failed: " + strings.Join(msgs, "; ")
}

func (e *BuildError) Unwrap() []error {
	errs := make([]error, len(e.Sources))
	for i, s := range e.Sources {
		errs[i] = s
	}

	return errs
}
