package link

import (
	"fmt"
	"regexp"
	"strings"
)

// pathTemplate is the compiled form of a path template string such as
// "profile/{id}" or "posts/{slug:slug}/comments/{n:int}".
type pathTemplate struct {
	// template is the normalized template string.
	template string
	// regexp matches a normalized path against the full template.
	regexp *regexp.Regexp
	// reverse is the template with %s placeholders for Sprintf.
	reverse string
	// varsN are the variable names in order.
	varsN []string
	// kinds are the declared kinds for each variable, in order.
	kinds []Kind
}

// varPattern matches a single non-empty path segment. Placeholders accept any
// non-empty segment structurally; the declared kind is checked only after a
// template has been selected, so a malformed value is reported instead of
// silently falling through to a later template.
const varPattern = `[^/]+`

// newPathTemplate parses a path template and returns its compiled form.
func newPathTemplate(tpl string) (*pathTemplate, error) {
	normalized := normalizePath(tpl)

	idxs, err := braceIndices(normalized)
	if err != nil {
		return nil, err
	}

	var (
		pattern strings.Builder
		reverse strings.Builder
		varsN   []string
		kinds   []Kind
		end     int
	)

	pattern.WriteByte('^')

	for i := 0; i < len(idxs); i += 2 {
		// Write the raw text between variables.
		raw := normalized[end:idxs[i]]
		end = idxs[i+1]

		// Extract variable name and optional kind.
		parts := strings.SplitN(normalized[idxs[i]+1:end-1], ":", 2)
		name := parts[0]
		kind := KindInt
		if len(parts) == 2 {
			kind = Kind(parts[1])
			if !kind.valid() {
				return nil, fmt.Errorf("link: unknown kind %q in variable %q from %q", parts[1], name, tpl)
			}
		}

		if name == "" {
			return nil, fmt.Errorf("link: missing name in %q from %q", normalized[idxs[i]:end], tpl)
		}

		fmt.Fprintf(&pattern, "%s(%s)", regexp.QuoteMeta(raw), varPattern)
		reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))
		reverse.WriteString("%s")

		varsN = append(varsN, name)
		kinds = append(kinds, kind)
	}

	// Write the remaining literal text after the last variable.
	raw := normalized[end:]
	pattern.WriteString(regexp.QuoteMeta(raw))
	reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))
	pattern.WriteByte('$')

	if err := checkDuplicateVars(varsN); err != nil {
		return nil, err
	}

	reg, err := compileRegexp(pattern.String())
	if err != nil {
		return nil, err
	}

	return &pathTemplate{
		template: normalized,
		regexp:   reg,
		reverse:  reverse.String(),
		varsN:    varsN,
		kinds:    kinds,
	}, nil
}

// match checks the normalized path against the template and returns the raw
// captured segments in variable order.
func (t *pathTemplate) match(path string) ([]string, bool) {
	matches := t.regexp.FindStringSubmatch(path)
	if matches == nil {
		return nil, false
	}
	return matches[1:], true
}

// url builds a normalized path from the template and the given variable
// values. Values are validated under their declared kinds.
func (t *pathTemplate) url(values map[string]string) (string, error) {
	urlValues := make([]interface{}, len(t.varsN))
	for i, name := range t.varsN {
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("link: missing variable %q", name)
		}
		if _, err := t.kinds[i].convert(v); err != nil {
			return "", fmt.Errorf("link: variable %q value %q is not a valid %s: %w", name, v, t.kinds[i], err)
		}
		urlValues[i] = v
	}
	return fmt.Sprintf(t.reverse, urlValues...), nil
}

// braceIndices returns the start and end+1 indices of each top-level
// {...} pair in s. Returns an error if braces are unbalanced.
func braceIndices(s string) ([]int, error) {
	var (
		idxs  []int
		level int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idxs = append(idxs, i)
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, i+1)
			} else if level < 0 {
				return nil, fmt.Errorf("link: unbalanced braces in %q", s)
			}
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("link: unbalanced braces in %q", s)
	}
	return idxs, nil
}

// checkDuplicateVars returns an error if any variable name is repeated.
func checkDuplicateVars(vars []string) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return fmt.Errorf("link: duplicated variable %q", v)
		}
		seen[v] = true
	}
	return nil
}
