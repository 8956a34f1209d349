package areas

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingGeometry is wrapped by ConfigurationError when a definition
	// lacks a position or half-extents.
	ErrMissingGeometry = errors.New("areas: zone definition missing geometry")
	// ErrStaleHandle is returned for handles the registry did not issue.
	ErrStaleHandle = errors.New("areas: stale or unknown zone handle")
	// ErrNoAgent marks a proximity tick skipped because no agent source is set.
	ErrNoAgent = errors.New("areas: no agent position source")
	// ErrNoCamera marks a pointer tick skipped because no camera is set.
	ErrNoCamera = errors.New("areas: no camera")
)

// ConfigurationError reports a rejected zone definition. The registry logs it
// and carries on with the remaining zones.
type ConfigurationError struct {
	Name  string // definition name, may be empty
	Field string // "position" or "halfExtents"
	Err   error
}

func (e *ConfigurationError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("areas: zone %q: %s: %v", name, e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
