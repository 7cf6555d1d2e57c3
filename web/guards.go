package web

import (
	"net/http"

	"github.com/gatepost/gatepost/auth"
	"github.com/rs/zerolog"
)

type (
	// guard resolves the session cookie ahead of every handler and
	// enforces the two route predicates of the service: a handler either
	// requires a logged-in caller or requires an anonymous one.
	guard struct {
		sessions auth.SessionStore
		codec    *cookieCodec
		log      zerolog.Logger
	}
)

// resolve binds the session's user id into the request context before
// next runs. Resolution is a blocking prerequisite, guarded handlers
// never observe a half-resolved identity.
func (g *guard) resolve(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, ok := sessionTokenFrom(r, g.codec); ok {
			uid, active, err := g.sessions.Resolve(r.Context(), token)
			if err != nil {
				g.log.Error().Err(err).Msg("Unexpected error resolving session token")
			} else if active {
				r = r.WithContext(withUser(r.Context(), uid))
			}
		}
		next(w, r)
	}
}

// requireUser short-circuits anonymous requests to the login page. Not an
// error, just a control-flow outcome.
func (g *guard) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return g.resolve(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	})
}

// requireAnonymous is the inverse: logged-in callers have no business on
// the login form and are sent to the compose page instead.
func (g *guard) requireAnonymous(next http.HandlerFunc) http.HandlerFunc {
	return g.resolve(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(r.Context()); ok {
			http.Redirect(w, r, "/compose", http.StatusSeeOther)
			return
		}
		next(w, r)
	})
}
