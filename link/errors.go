package link

import (
	"errors"
	"fmt"
)

// ErrDuplicateDestination is returned by Register when two entries share the
// same destination name. The table is left unbuilt.
var ErrDuplicateDestination = errors.New("link: duplicate destination name")

// ErrMultipleDefaults is returned by Register when more than one entry has an
// empty path template. At most one default destination may be registered.
var ErrMultipleDefaults = errors.New("link: multiple default destinations")

// ErrTableBuilt is returned by Register when the table has already been built.
// The table transitions from empty to built exactly once.
var ErrTableBuilt = errors.New("link: table already built")

// ErrNotBuilt is returned by Resolve when Register has not been called yet.
var ErrNotBuilt = errors.New("link: table not built")

// ErrNoDefault is returned by Resolve when no template matches and no default
// destination was registered to fall back to.
var ErrNoDefault = errors.New("link: no default destination registered")

// ParamError reports a placeholder capture that failed to convert under its
// declared kind, e.g. "profile/abc" against "profile/{id}". It is recoverable:
// the caller may treat it as no match and fall back to the default
// destination, or surface it to the user.
type ParamError struct {
	// Destination is the name of the structurally matched destination.
	Destination string

	// Var is the placeholder variable name.
	Var string

	// Value is the raw captured path segment.
	Value string

	// Kind is the declared kind of the placeholder.
	Kind Kind

	// Err is the underlying conversion error.
	Err error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("link: malformed %s value %q for variable %q in destination %q: %v",
		e.Kind, e.Value, e.Var, e.Destination, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}
