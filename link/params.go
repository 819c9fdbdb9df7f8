package link

import (
	"time"

	"github.com/google/uuid"
)

// Match is the result of resolving a URI: the destination name and the typed
// parameters extracted from the path. A fresh Match is constructed per
// Resolve call and is owned by the caller.
type Match struct {
	// Destination is the matched destination name, or the default
	// destination when nothing matched.
	Destination string

	// Params holds the extracted placeholder values. Empty for literal
	// templates and for the default fallback.
	Params Params
}

// Params maps placeholder variable names to their converted values. The
// dynamic type of each value is determined by the placeholder's Kind:
// int64 for int, string for string/slug/alpha/alphanum/hex, uuid.UUID for
// uuid, float64 for float, and time.Time for date.
type Params map[string]any

// Has reports whether a variable is present.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Int64 returns the value of an int variable by name and a boolean indicating
// whether the variable exists with that kind.
func (p Params) Int64(name string) (int64, bool) {
	v, ok := p[name].(int64)
	return v, ok
}

// String returns the value of a string-kinded variable by name.
func (p Params) String(name string) (string, bool) {
	v, ok := p[name].(string)
	return v, ok
}

// UUID returns the value of a uuid variable by name.
func (p Params) UUID(name string) (uuid.UUID, bool) {
	v, ok := p[name].(uuid.UUID)
	return v, ok
}

// Float64 returns the value of a float variable by name.
func (p Params) Float64(name string) (float64, bool) {
	v, ok := p[name].(float64)
	return v, ok
}

// Time returns the value of a date variable by name.
func (p Params) Time(name string) (time.Time, bool) {
	v, ok := p[name].(time.Time)
	return v, ok
}
