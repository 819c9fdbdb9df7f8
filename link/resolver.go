package link

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Resolver maps incoming URIs to named destinations using a table of path
// templates built once at startup.
//
//	resolver := link.NewResolver()
//	err := resolver.Register(
//	    link.Entry{Name: "HOME"},
//	    link.Entry{Name: "PROFILE", Template: "profile"},
//	    link.Entry{Name: "PROFILE_OTHER", Template: "profile/{id}"},
//	)
//
// The table is immutable after Register; Resolve is a pure read and is safe
// to call concurrently once the table is built.
type Resolver struct {
	schemes []string
	hosts   []string

	routes []*Route
	byName map[string]*Route
	def    *Route
	built  bool
}

// NewResolver returns a new resolver with an empty table.
func NewResolver() *Resolver {
	return &Resolver{
		byName: make(map[string]*Route),
	}
}

// Schemes restricts resolution to URIs with one of the given schemes.
// Schemes are case-insensitive per RFC 3986 Section 3.1. A URI with any
// other scheme resolves to the default destination. By default the scheme
// is ignored, matching the path-only behavior of platform link filters.
// Must be called before Register; calls on a built table are ignored.
func (r *Resolver) Schemes(schemes ...string) *Resolver {
	if r.built {
		return r
	}
	for _, s := range schemes {
		r.schemes = append(r.schemes, strings.ToLower(s))
	}
	return r
}

// Hosts restricts resolution to URIs with one of the given hosts. Hosts are
// compared case-insensitively in ASCII (punycode) form per RFC 5890, without
// the port. By default the host is ignored. Must be called before Register;
// calls on a built table are ignored.
func (r *Resolver) Hosts(hosts ...string) *Resolver {
	if r.built {
		return r
	}
	for _, h := range hosts {
		r.hosts = append(r.hosts, normalizeHost(h))
	}
	return r
}

// Register compiles the given entries into the match table, in order. It may
// be called exactly once; names must be unique and at most one entry may have
// an empty template (the default destination). Registration is atomic: on
// error, no partial table is built and Register may be retried.
func (r *Resolver) Register(entries ...Entry) error {
	if r.built {
		return ErrTableBuilt
	}
	if len(entries) == 0 {
		return errors.New("link: register requires at least one entry")
	}

	routes := make([]*Route, 0, len(entries))
	byName := make(map[string]*Route, len(entries))
	var def *Route

	for _, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("link: missing destination name for template %q", e.Template)
		}
		if _, ok := byName[e.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateDestination, e.Name)
		}

		tpl, err := newPathTemplate(e.Template)
		if err != nil {
			return err
		}

		rt := &Route{
			parent:    r,
			name:      e.Name,
			tpl:       tpl,
			isDefault: tpl.template == "",
		}
		if rt.isDefault {
			if def != nil {
				return fmt.Errorf("%w: %q and %q", ErrMultipleDefaults, def.name, e.Name)
			}
			def = rt
		}

		byName[e.Name] = rt
		routes = append(routes, rt)
	}

	r.routes = routes
	r.byName = byName
	r.def = def
	r.built = true
	return nil
}

// Resolve maps a URI to a destination and its extracted parameters. Only the
// path component is consulted unless Schemes or Hosts were configured.
// Templates are tried in registration order; the first full structural match
// wins. A URI matching no template resolves to the default destination with
// empty parameters rather than failing, so unexpected external links degrade
// gracefully.
//
// The only resolution error for a built table is *ParamError: the path
// structurally matched a template but a captured segment failed to convert
// under its declared kind.
func (r *Resolver) Resolve(rawURI string) (Match, error) {
	if !r.built {
		return Match{}, ErrNotBuilt
	}

	u, err := url.Parse(rawURI)
	if err != nil {
		// A link the platform hands over that we cannot even parse is
		// treated like any other unrecognized link.
		return r.fallback()
	}

	if len(r.schemes) > 0 && !matchInArray(r.schemes, strings.ToLower(u.Scheme)) {
		return r.fallback()
	}
	if len(r.hosts) > 0 && !matchInArray(r.hosts, normalizeHost(u.Hostname())) {
		return r.fallback()
	}

	p := u.Path
	if u.Opaque != "" {
		// Scheme-only deep links (myapp:profile/2) carry the path in the
		// opaque component per RFC 3986 Section 3.
		p = u.Opaque
	}
	path := normalizePath(p)

	for _, rt := range r.routes {
		raws, ok := rt.match(path)
		if !ok {
			continue
		}
		params, err := rt.convert(raws)
		if err != nil {
			return Match{}, err
		}
		return Match{Destination: rt.name, Params: params}, nil
	}

	return r.fallback()
}

// fallback returns the default destination with empty parameters.
func (r *Resolver) fallback() (Match, error) {
	if r.def == nil {
		return Match{}, ErrNoDefault
	}
	return Match{Destination: r.def.name, Params: Params{}}, nil
}

// Destination returns the route registered under the given destination name,
// or nil if the name is unknown.
func (r *Resolver) Destination(name string) *Route {
	return r.byName[name]
}

// Routes returns the registered routes in registration order.
func (r *Resolver) Routes() []*Route {
	return append([]*Route(nil), r.routes...)
}

// Default returns the default destination route, or nil if none was
// registered.
func (r *Resolver) Default() *Route {
	return r.def
}
