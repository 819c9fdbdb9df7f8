package link

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/net/idna"
)

// normalizePath removes dot segments per RFC 3986 Section 5.2.4 and strips
// leading and trailing separators, so "/profile/", "profile" and
// "profile/../profile" all normalize to "profile". The root path normalizes
// to the empty string.
func normalizePath(p string) string {
	if p == "" {
		return ""
	}
	if p[0] != '/' {
		p = "/" + p
	}
	return strings.Trim(path.Clean(p), "/")
}

// normalizeHost lowercases a hostname and converts it to its ASCII (punycode)
// form per RFC 5890, so unicode hostnames compare correctly. Returns the
// lowercased input when conversion fails.
func normalizeHost(h string) string {
	h = strings.ToLower(h)
	if ascii, err := idna.Lookup.ToASCII(h); err == nil {
		return ascii
	}
	return h
}

// mapFromPairsToString converts variadic string parameters to a string map.
func mapFromPairsToString(pairs ...string) (map[string]string, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("link: number of parameters must be multiple of 2, got %v", pairs)
	}
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m, nil
}

// matchInArray returns true if the given string value is in the array.
func matchInArray(arr []string, value string) bool {
	for _, v := range arr {
		if v == value {
			return true
		}
	}
	return false
}
