package link

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Kind is the declared type of a placeholder variable. It controls how a
// captured path segment is converted into a Go value after a template has
// been structurally matched. Conversion failure does not reject the match;
// it surfaces as a *ParamError.
type Kind string

const (
	// KindInt converts the segment to an int64. Only decimal digits are
	// accepted, so values are non-negative. This is the default kind for
	// bare placeholders ({name}), matching the most common deep-link
	// payload: a numeric entity ID.
	KindInt Kind = "int"

	// KindString accepts any non-empty segment unchanged.
	KindString Kind = "string"

	// KindUUID converts the segment to a uuid.UUID (RFC 4122).
	KindUUID Kind = "uuid"

	// KindFloat converts the segment to a float64.
	KindFloat Kind = "float"

	// KindDate converts an ISO 8601 date (e.g. 2024-01-15) to a time.Time.
	KindDate Kind = "date"

	// KindSlug accepts a URL-safe slug (e.g. my-post-title).
	KindSlug Kind = "slug"

	// KindAlpha accepts alphabetic characters only.
	KindAlpha Kind = "alpha"

	// KindAlphanum accepts alphanumeric characters only.
	KindAlphanum Kind = "alphanum"

	// KindHex accepts a hexadecimal string.
	KindHex Kind = "hex"
)

// kindSyntax holds pre-compiled syntax checks for kinds whose values stay
// strings. Kinds with a Go-native conversion (int, uuid, float, date) rely
// on the parser for validation instead.
var kindSyntax = map[Kind]*regexp.Regexp{
	KindInt:      regexp.MustCompile(`^[0-9]+$`),
	KindSlug:     regexp.MustCompile(`^[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*$`),
	KindAlpha:    regexp.MustCompile(`^[a-zA-Z]+$`),
	KindAlphanum: regexp.MustCompile(`^[a-zA-Z0-9]+$`),
	KindHex:      regexp.MustCompile(`^[0-9a-fA-F]+$`),
}

// valid reports whether k is a known kind.
func (k Kind) valid() bool {
	switch k {
	case KindInt, KindString, KindUUID, KindFloat, KindDate,
		KindSlug, KindAlpha, KindAlphanum, KindHex:
		return true
	}
	return false
}

// convert turns a raw captured segment into the kind's Go value.
func (k Kind) convert(raw string) (any, error) {
	switch k {
	case KindInt:
		if !kindSyntax[KindInt].MatchString(raw) {
			return nil, errors.New("not a non-negative integer")
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case KindString:
		return raw, nil
	case KindUUID:
		u, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		return u, nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case KindDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
		return t, nil
	case KindSlug, KindAlpha, KindAlphanum, KindHex:
		if !kindSyntax[k].MatchString(raw) {
			return nil, fmt.Errorf("not a valid %s", k)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("unknown kind %q", string(k))
}
