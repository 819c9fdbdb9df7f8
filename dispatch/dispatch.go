package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/TannerPerrien/deeplink/link"
)

// HandlerFunc handles a resolved deep link.
type HandlerFunc func(ctx context.Context, m link.Match) error

// Middleware wraps a HandlerFunc with additional behavior such as logging
// or panic recovery.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrNoHandler is returned by Dispatch when a URI resolves to a destination
// with no registered handler and no fallback is set.
var ErrNoHandler = errors.New("dispatch: no handler for destination")

// Dispatcher routes resolved deep links to destination handlers. It is the
// host-side counterpart of link.Resolver: the resolver decides where a URI
// points, the dispatcher decides what happens there.
//
//	d := dispatch.New(resolver)
//	d.Handle("HOME", showHome).
//	    Handle("PROFILE_OTHER", showProfile)
//	d.Use(dispatch.Recovery())
//
//	err := d.Dispatch(ctx, "myapp:/profile/42")
type Dispatcher struct {
	resolver   *link.Resolver
	handlers   map[string]HandlerFunc
	middleware []Middleware
	fallback   HandlerFunc

	// fallbackOnParamErr treats a malformed parameter like an unmatched
	// link instead of propagating the error.
	fallbackOnParamErr bool

	err error
}

// New returns a dispatcher over a built resolver.
func New(r *link.Resolver) *Dispatcher {
	return &Dispatcher{
		resolver: r,
		handlers: make(map[string]HandlerFunc),
	}
}

// Handle registers a handler for a destination name. Registering an unknown
// destination or a duplicate handler records an error, surfaced by Err and
// by every subsequent Dispatch.
func (d *Dispatcher) Handle(destination string, fn HandlerFunc) *Dispatcher {
	if d.err != nil {
		return d
	}
	if d.resolver.Destination(destination) == nil {
		d.err = fmt.Errorf("dispatch: unknown destination %q", destination)
		return d
	}
	if _, ok := d.handlers[destination]; ok {
		d.err = fmt.Errorf("dispatch: handler already registered for %q", destination)
		return d
	}
	d.handlers[destination] = fn
	return d
}

// Use appends middleware to the chain. Middleware runs in the order it was
// added, around the matched handler.
func (d *Dispatcher) Use(mw ...Middleware) {
	d.middleware = append(d.middleware, mw...)
}

// Fallback sets the handler invoked for destinations with no registered
// handler.
func (d *Dispatcher) Fallback(fn HandlerFunc) *Dispatcher {
	d.fallback = fn
	return d
}

// FallbackOnParamError makes Dispatch treat a malformed parameter
// (link.ParamError) like an unmatched link: the URI is re-resolved to the
// default destination instead of the error being returned.
func (d *Dispatcher) FallbackOnParamError() *Dispatcher {
	d.fallbackOnParamErr = true
	return d
}

// Err returns any error recorded during handler registration.
func (d *Dispatcher) Err() error {
	return d.err
}

// Dispatch resolves a URI and invokes the handler registered for its
// destination, wrapped in the middleware chain.
func (d *Dispatcher) Dispatch(ctx context.Context, rawURI string) error {
	if d.err != nil {
		return d.err
	}

	m, err := d.resolver.Resolve(rawURI)
	if err != nil {
		var pe *link.ParamError
		if !d.fallbackOnParamErr || !errors.As(err, &pe) {
			return err
		}
		if m, err = d.resolver.Resolve(""); err != nil {
			return err
		}
	}

	handler := d.handlers[m.Destination]
	if handler == nil {
		handler = d.fallback
	}
	if handler == nil {
		return fmt.Errorf("%w: %q", ErrNoHandler, m.Destination)
	}

	for i := len(d.middleware) - 1; i >= 0; i-- {
		handler = d.middleware[i](handler)
	}

	return handler(ctx, m)
}
