package link

import (
	"net/url"
)

// Entry is a single registration record: a unique destination name and the
// path template that resolves to it. An empty template marks the default
// destination, used as the fallback when no template matches.
type Entry struct {
	Name     string
	Template string
}

// Route is the compiled form of an Entry held in a built table.
type Route struct {
	parent    *Resolver
	name      string
	tpl       *pathTemplate
	isDefault bool
}

// Name returns the destination name.
func (r *Route) Name() string {
	return r.name
}

// Template returns the normalized path template.
func (r *Route) Template() string {
	return r.tpl.template
}

// VarNames returns the placeholder variable names in template order.
func (r *Route) VarNames() []string {
	return append([]string(nil), r.tpl.varsN...)
}

// IsDefault reports whether this is the default destination.
func (r *Route) IsDefault() bool {
	return r.isDefault
}

// URL builds a deep-link URI for the destination. It accepts a sequence of
// key/value pairs for the template variables:
//
//	u, err := resolver.Destination("PROFILE_OTHER").URL("id", "42")
//
// When the resolver is configured with schemes or hosts, the first of each is
// used for the built URI. Returns an error if a variable is missing or does
// not satisfy its declared kind.
func (r *Route) URL(pairs ...string) (*url.URL, error) {
	values, err := mapFromPairsToString(pairs...)
	if err != nil {
		return nil, err
	}

	p, err := r.tpl.url(values)
	if err != nil {
		return nil, err
	}

	u := &url.URL{Path: "/" + p}
	if r.parent != nil {
		if len(r.parent.schemes) > 0 {
			u.Scheme = r.parent.schemes[0]
		}
		if len(r.parent.hosts) > 0 {
			u.Host = r.parent.hosts[0]
		}
	}
	return u, nil
}

// match checks the normalized path against the route's template.
func (r *Route) match(path string) ([]string, bool) {
	return r.tpl.match(path)
}

// convert turns raw captured segments into typed parameters. A conversion
// failure is reported as *ParamError carrying the destination, variable,
// raw value, and declared kind.
func (r *Route) convert(raws []string) (Params, error) {
	params := make(Params, len(raws))
	for i, raw := range raws {
		v, err := r.tpl.kinds[i].convert(raw)
		if err != nil {
			return nil, &ParamError{
				Destination: r.name,
				Var:         r.tpl.varsN[i],
				Value:       raw,
				Kind:        r.tpl.kinds[i],
				Err:         err,
			}
		}
		params[r.tpl.varsN[i]] = v
	}
	return params, nil
}
