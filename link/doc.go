// Package link resolves deep-link URIs to named destinations.
//
// A deep link is a URI that navigates directly to a specific location within
// an application instead of its default entry point. The package maps an
// incoming URI to a symbolic destination name plus the typed parameters
// extracted from its path, leaving the actual navigation to the host
// application.
//
// # Resolver
//
// Create a resolver, register the link table once at startup, then resolve
// incoming URIs:
//
//	resolver := link.NewResolver()
//	err := resolver.Register(
//	    link.Entry{Name: "HOME"},
//	    link.Entry{Name: "PROFILE", Template: "profile"},
//	    link.Entry{Name: "PROFILE_OTHER", Template: "profile/{id}"},
//	    link.Entry{Name: "SETTINGS", Template: "settings"},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err := resolver.Resolve("myapp://example.com/profile/42")
//	// m.Destination == "PROFILE_OTHER"
//	// m.Params.Int64("id") == 42, true
//
// Templates are tried in registration order and the first full match wins.
// This is a deterministic first-match policy, not longest-match: overlapping
// templates behave exactly as their registration order dictates.
//
// A URI matching no template is not an error. It resolves to the default
// destination (the entry registered with an empty template) with empty
// parameters, so unexpected or malformed external links degrade gracefully
// instead of breaking the host application.
//
// # Path Templates
//
// Templates consist of literal segments and placeholder segments enclosed in
// curly braces, optionally followed by a colon and a kind:
//
//	profile
//	profile/{id}
//	posts/{slug:slug}
//	users/{id:uuid}/events/{day:date}
//
// A placeholder matches any non-empty segment; the kind governs how the
// captured value is converted afterwards. Available kinds:
//
//	int      - int64, decimal digits only (e.g. 42)
//	string   - raw segment (e.g. anything)
//	uuid     - uuid.UUID per RFC 4122 (e.g. 550e8400-e29b-41d4-a716-446655440000)
//	float    - float64 (e.g. 3.14)
//	date     - time.Time from an ISO 8601 date (e.g. 2024-01-15)
//	slug     - URL-safe slug (e.g. my-post-title)
//	alpha    - alphabetic characters (e.g. hello)
//	alphanum - alphanumeric characters (e.g. abc123)
//	hex      - hexadecimal string (e.g. deadBEEF)
//
// A bare placeholder ({id}) defaults to the int kind, the most common
// deep-link payload: a numeric entity ID.
//
// # Malformed Parameters
//
// Kind conversion runs after a template has been structurally selected, so a
// capture that fails to convert reports *ParamError instead of silently
// matching a later template or falling back to the default:
//
//	_, err := resolver.Resolve("myapp:/profile/abc")
//	var pe *link.ParamError
//	if errors.As(err, &pe) {
//	    // pe.Var == "id", pe.Value == "abc", pe.Kind == link.KindInt
//	}
//
// The error is recoverable: the host decides whether to fall back to the
// default destination or surface it to the user.
//
// # Scheme and Host Matching
//
// By default only the path component is consulted; scheme and host are
// ignored the way platform link filters already vet them before delivery.
// Both can be opted into before Register:
//
//	resolver := link.NewResolver().
//	    Schemes("myapp", "https").
//	    Hosts("example.com")
//
// A URI failing the scheme or host check resolves to the default destination.
// Hosts are compared in lowercased ASCII (punycode) form per RFC 5890.
//
// # Extracted Parameters
//
// Params provides typed accessors for extracted values:
//
//	id, ok := m.Params.Int64("id")
//	u, ok := m.Params.UUID("user")
//	day, ok := m.Params.Time("day")
//
// # URL Building
//
// Registered destinations support reverse URI building from key/value pairs:
//
//	u, err := resolver.Destination("PROFILE_OTHER").URL("id", "42")
//	// u.Path == "/profile/42"
//
// # YAML Tables
//
// The link table can be shipped as YAML configuration and loaded with
// LoadTable:
//
//	resolver, err := link.LoadTable(data)
//
// # Concurrency
//
// Register must complete before concurrent use begins; it may be called
// exactly once. After that the table is immutable and Resolve is a pure,
// side-effect-free read, safe to call concurrently without synchronization.
package link
