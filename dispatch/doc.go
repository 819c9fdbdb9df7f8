// Package dispatch routes resolved deep links to destination handlers.
//
// # Dispatcher
//
// A Dispatcher sits between the platform's link delivery and the host's
// navigation layer: it resolves each incoming URI through a link.Resolver
// and invokes the handler registered for the resulting destination.
//
//	d := dispatch.New(resolver)
//	d.Handle("HOME", showHome).
//	    Handle("PROFILE", showProfile).
//	    Handle("PROFILE_OTHER", showOtherProfile)
//
//	err := d.Dispatch(ctx, "myapp:/profile/42")
//
// Destinations without a handler go to the Fallback handler; with no fallback
// set, Dispatch returns ErrNoHandler.
//
// # Middleware
//
// Middleware wraps every dispatched handler:
//
//	d.Use(dispatch.Recovery(), dispatch.Logging(nil))
//
// Recovery converts handler panics into errors. Logging emits one structured
// log record per dispatch.
//
// # Malformed Parameters
//
// By default a malformed placeholder value (link.ParamError) is returned to
// the caller. FallbackOnParamError switches to treating it like an unmatched
// link, re-routing to the default destination:
//
//	d.FallbackOnParamError()
package dispatch
