package dataset

import "fmt"

// LoadError reports a malformed taxonomy or role-profile data source.
// It is fatal: the process must not serve analyses until the source is fixed.
type LoadError struct {
	Source string // which dataset failed, e.g. "skill taxonomy"
	Reason string
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Source, e.Reason, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Source, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
