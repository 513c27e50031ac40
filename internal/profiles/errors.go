package profiles

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError reports a profile that failed schema or struct validation.
// Index is the position in a profile array, or -1 for a single-object document.
type ValidationError struct {
	Path  string
	Index int
	ID    string
	Cause error
}

func (e *ValidationError) Error() string {
	where := e.Path
	if e.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", e.Path, e.Index)
	}
	if e.ID != "" {
		return fmt.Sprintf("invalid profile %q at %s: %v", e.ID, where, e.Cause)
	}
	return fmt.Sprintf("invalid profile at %s: %v", where, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
