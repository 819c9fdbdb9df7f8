package link

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	r := NewResolver()
	err := r.Register(
		Entry{Name: "HOME"},
		Entry{Name: "PROFILE", Template: "profile"},
		Entry{Name: "PROFILE_OTHER", Template: "profile/{id}"},
		Entry{Name: "SETTINGS", Template: "settings"},
	)
	require.NoError(t, err)
	return r
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name        string
		uri         string
		destination string
		params      Params
	}{
		{name: "literal profile", uri: "myapp:/profile", destination: "PROFILE", params: Params{}},
		{name: "literal settings", uri: "myapp:/settings", destination: "SETTINGS", params: Params{}},
		{name: "placeholder captures id", uri: "myapp:/profile/42", destination: "PROFILE_OTHER", params: Params{"id": int64(42)}},
		{name: "scheme and host ignored by default", uri: "https://example.com/profile/7", destination: "PROFILE_OTHER", params: Params{"id": int64(7)}},
		{name: "bare path", uri: "profile/9", destination: "PROFILE_OTHER", params: Params{"id": int64(9)}},
		{name: "trailing slash", uri: "myapp:/profile/", destination: "PROFILE", params: Params{}},
		{name: "query ignored", uri: "myapp:/settings?tab=privacy", destination: "SETTINGS", params: Params{}},
		{name: "opaque scheme-only link", uri: "myapp:profile/3", destination: "PROFILE_OTHER", params: Params{"id": int64(3)}},
		{name: "unknown path falls back to default", uri: "myapp:/unknown/path", destination: "HOME", params: Params{}},
		{name: "partial match falls back to default", uri: "myapp:/profile/42/friends", destination: "HOME", params: Params{}},
		{name: "empty path resolves default", uri: "myapp://", destination: "HOME", params: Params{}},
		{name: "empty string resolves default", uri: "", destination: "HOME", params: Params{}},
		{name: "root path resolves default", uri: "/", destination: "HOME", params: Params{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Resolve(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.destination, m.Destination)
			assert.Equal(t, tt.params, m.Params)
		})
	}
}

func TestResolveMalformedParameter(t *testing.T) {
	r := newTestResolver(t)

	_, err := r.Resolve("myapp:/profile/abc")
	require.Error(t, err)

	var pe *ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "PROFILE_OTHER", pe.Destination)
	assert.Equal(t, "id", pe.Var)
	assert.Equal(t, "abc", pe.Value)
	assert.Equal(t, KindInt, pe.Kind)
	assert.NotNil(t, pe.Err)
}

func TestResolveIdempotent(t *testing.T) {
	r := newTestResolver(t)

	first, err := r.Resolve("myapp:/profile/42")
	require.NoError(t, err)

	second, err := r.Resolve("myapp:/profile/42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveFirstMatchWins(t *testing.T) {
	t.Run("earlier placeholder shadows later literal", func(t *testing.T) {
		r := NewResolver()
		require.NoError(t, r.Register(
			Entry{Name: "HOME"},
			Entry{Name: "ANY_PROFILE", Template: "profile/{name:string}"},
			Entry{Name: "PROFILE_SETTINGS", Template: "profile/settings"},
		))

		m, err := r.Resolve("profile/settings")
		require.NoError(t, err)
		assert.Equal(t, "ANY_PROFILE", m.Destination)
	})

	t.Run("earlier literal wins over later placeholder", func(t *testing.T) {
		r := NewResolver()
		require.NoError(t, r.Register(
			Entry{Name: "HOME"},
			Entry{Name: "PROFILE_SETTINGS", Template: "profile/settings"},
			Entry{Name: "ANY_PROFILE", Template: "profile/{name:string}"},
		))

		m, err := r.Resolve("profile/settings")
		require.NoError(t, err)
		assert.Equal(t, "PROFILE_SETTINGS", m.Destination)
	})
}

func TestResolveSchemeGating(t *testing.T) {
	r := NewResolver().Schemes("myapp", "HTTPS")
	require.NoError(t, r.Register(
		Entry{Name: "HOME"},
		Entry{Name: "PROFILE_OTHER", Template: "profile/{id}"},
	))

	tests := []struct {
		name        string
		uri         string
		destination string
	}{
		{name: "configured scheme", uri: "myapp://example.com/profile/2", destination: "PROFILE_OTHER"},
		{name: "scheme comparison is case-insensitive", uri: "https://example.com/profile/2", destination: "PROFILE_OTHER"},
		{name: "other scheme falls back", uri: "ftp://example.com/profile/2", destination: "HOME"},
		{name: "missing scheme falls back", uri: "/profile/2", destination: "HOME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Resolve(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.destination, m.Destination)
		})
	}
}

func TestResolveHostGating(t *testing.T) {
	r := NewResolver().Hosts("Example.com", "bücher.example")
	require.NoError(t, r.Register(
		Entry{Name: "HOME"},
		Entry{Name: "PROFILE_OTHER", Template: "profile/{id}"},
	))

	tests := []struct {
		name        string
		uri         string
		destination string
	}{
		{name: "configured host", uri: "myapp://example.com/profile/2", destination: "PROFILE_OTHER"},
		{name: "host comparison is case-insensitive", uri: "myapp://EXAMPLE.COM/profile/2", destination: "PROFILE_OTHER"},
		{name: "port is ignored", uri: "myapp://example.com:8080/profile/2", destination: "PROFILE_OTHER"},
		{name: "unicode host matches punycode form", uri: "myapp://xn--bcher-kva.example/profile/2", destination: "PROFILE_OTHER"},
		{name: "unicode host matches unicode form", uri: "myapp://bücher.example/profile/2", destination: "PROFILE_OTHER"},
		{name: "other host falls back", uri: "myapp://evil.example/profile/2", destination: "HOME"},
		{name: "missing host falls back", uri: "myapp:/profile/2", destination: "HOME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Resolve(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.destination, m.Destination)
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("duplicate names leave no partial table", func(t *testing.T) {
		r := NewResolver()
		err := r.Register(
			Entry{Name: "HOME"},
			Entry{Name: "PROFILE", Template: "profile"},
			Entry{Name: "PROFILE", Template: "profile/{id}"},
		)
		require.ErrorIs(t, err, ErrDuplicateDestination)

		// Registration is atomic: the failed call leaves the table unbuilt.
		_, err = r.Resolve("profile")
		assert.ErrorIs(t, err, ErrNotBuilt)

		require.NoError(t, r.Register(
			Entry{Name: "HOME"},
			Entry{Name: "PROFILE", Template: "profile"},
		))
		m, err := r.Resolve("profile")
		require.NoError(t, err)
		assert.Equal(t, "PROFILE", m.Destination)
	})

	t.Run("second register fails", func(t *testing.T) {
		r := newTestResolver(t)
		err := r.Register(Entry{Name: "EXTRA", Template: "extra"})
		assert.ErrorIs(t, err, ErrTableBuilt)
	})

	t.Run("multiple defaults", func(t *testing.T) {
		r := NewResolver()
		err := r.Register(
			Entry{Name: "HOME"},
			Entry{Name: "ROOT", Template: "/"},
		)
		assert.ErrorIs(t, err, ErrMultipleDefaults)
	})

	t.Run("missing destination name", func(t *testing.T) {
		r := NewResolver()
		err := r.Register(Entry{Template: "profile"})
		assert.Error(t, err)
	})

	t.Run("no entries", func(t *testing.T) {
		r := NewResolver()
		assert.Error(t, r.Register())
	})

	t.Run("invalid template", func(t *testing.T) {
		r := NewResolver()
		err := r.Register(
			Entry{Name: "HOME"},
			Entry{Name: "BROKEN", Template: "profile/{id"},
		)
		assert.Error(t, err)
	})
}

func TestResolveWithoutDefault(t *testing.T) {
	r := NewResolver()
	require.NoError(t, r.Register(Entry{Name: "PROFILE", Template: "profile"}))

	m, err := r.Resolve("profile")
	require.NoError(t, err)
	assert.Equal(t, "PROFILE", m.Destination)

	_, err = r.Resolve("unknown")
	assert.ErrorIs(t, err, ErrNoDefault)
}

func TestResolveBeforeRegister(t *testing.T) {
	r := NewResolver()
	_, err := r.Resolve("profile")
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestSettersIgnoredAfterBuild(t *testing.T) {
	r := newTestResolver(t)
	r.Schemes("myapp").Hosts("example.com")

	// The built table stays path-only.
	m, err := r.Resolve("https://other.example/profile/2")
	require.NoError(t, err)
	assert.Equal(t, "PROFILE_OTHER", m.Destination)
}

func TestResolverInspection(t *testing.T) {
	r := newTestResolver(t)

	t.Run("routes preserve registration order", func(t *testing.T) {
		routes := r.Routes()
		require.Len(t, routes, 4)

		names := make([]string, len(routes))
		for i, rt := range routes {
			names[i] = rt.Name()
		}
		assert.Equal(t, []string{"HOME", "PROFILE", "PROFILE_OTHER", "SETTINGS"}, names)
	})

	t.Run("destination lookup", func(t *testing.T) {
		rt := r.Destination("PROFILE_OTHER")
		require.NotNil(t, rt)
		assert.Equal(t, "profile/{id}", rt.Template())
		assert.Equal(t, []string{"id"}, rt.VarNames())
		assert.False(t, rt.IsDefault())
	})

	t.Run("unknown destination", func(t *testing.T) {
		assert.Nil(t, r.Destination("NOPE"))
	})

	t.Run("default route", func(t *testing.T) {
		def := r.Default()
		require.NotNil(t, def)
		assert.Equal(t, "HOME", def.Name())
		assert.True(t, def.IsDefault())
	})
}

func TestRouteURL(t *testing.T) {
	t.Run("path only", func(t *testing.T) {
		r := newTestResolver(t)

		u, err := r.Destination("PROFILE_OTHER").URL("id", "42")
		require.NoError(t, err)
		assert.Equal(t, "/profile/42", u.Path)
		assert.Empty(t, u.Scheme)
	})

	t.Run("uses configured scheme and host", func(t *testing.T) {
		r := NewResolver().Schemes("myapp").Hosts("example.com")
		require.NoError(t, r.Register(
			Entry{Name: "HOME"},
			Entry{Name: "PROFILE_OTHER", Template: "profile/{id}"},
		))

		u, err := r.Destination("PROFILE_OTHER").URL("id", "42")
		require.NoError(t, err)
		assert.Equal(t, "myapp", u.Scheme)
		assert.Equal(t, "example.com", u.Host)
		assert.Equal(t, "/profile/42", u.Path)
	})

	t.Run("rejects invalid value", func(t *testing.T) {
		r := newTestResolver(t)
		_, err := r.Destination("PROFILE_OTHER").URL("id", "abc")
		assert.Error(t, err)
	})

	t.Run("rejects odd pairs", func(t *testing.T) {
		r := newTestResolver(t)
		_, err := r.Destination("PROFILE_OTHER").URL("id")
		assert.Error(t, err)
	})

	t.Run("round trips through resolve", func(t *testing.T) {
		r := newTestResolver(t)

		u, err := r.Destination("PROFILE_OTHER").URL("id", "42")
		require.NoError(t, err)

		m, err := r.Resolve(u.String())
		require.NoError(t, err)
		assert.Equal(t, "PROFILE_OTHER", m.Destination)

		id, ok := m.Params.Int64("id")
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})
}

func TestResolveConcurrent(t *testing.T) {
	r := newTestResolver(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m, err := r.Resolve(fmt.Sprintf("myapp:/profile/%d", n))
				assert.NoError(t, err)
				assert.Equal(t, "PROFILE_OTHER", m.Destination)
			}
		}(i)
	}
	wg.Wait()
}

// --- Benchmarks ---

func BenchmarkResolveLiteral(b *testing.B) {
	r := NewResolver()
	if err := r.Register(
		Entry{Name: "HOME"},
		Entry{Name: "SETTINGS", Template: "settings"},
	); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Resolve("myapp:/settings") //nolint:errcheck
	}
}

func BenchmarkResolvePlaceholder(b *testing.B) {
	r := NewResolver()
	if err := r.Register(
		Entry{Name: "HOME"},
		Entry{Name: "PROFILE_OTHER", Template: "profile/{id}"},
	); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Resolve("myapp:/profile/42") //nolint:errcheck
	}
}
