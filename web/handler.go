// Package web exposes the blog over HTTP: public reads, cookie-backed
// sessions, and guarded routes for registration and post management.
package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gatepost/gatepost/auth"
	"github.com/gatepost/gatepost/internal/logutil"
	"github.com/gatepost/gatepost/journal"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
)

type (
	handlers struct {
		store    *journal.J
		sessions auth.SessionStore
		codec    *cookieCodec
		log      zerolog.Logger
	}
)

// Handler builds the full route table. secret signs the session cookie
// and must hold at least 16 bytes.
func Handler(ctx context.Context, store *journal.J, sessions auth.SessionStore, secret []byte) (http.Handler, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("web: session secret must have at least %v bytes", minSecretLen)
	}
	log := logutil.GetOrDefault(ctx)
	codec := newCookieCodec(secret)
	g := &guard{
		sessions: sessions,
		codec:    codec,
		log:      log,
	}
	h := &handlers{
		store:    store,
		sessions: sessions,
		codec:    codec,
		log:      log,
	}

	router := httprouter.New()
	router.HandlerFunc("GET", "/", g.resolve(h.home))
	router.HandlerFunc("GET", "/posts/:postid", g.resolve(h.showPost))

	router.HandlerFunc("GET", "/login", g.requireAnonymous(h.loginForm))
	router.HandlerFunc("POST", "/login", g.requireAnonymous(h.login))
	router.HandlerFunc("GET", "/register", g.requireUser(h.registerForm))
	router.HandlerFunc("POST", "/register", g.requireUser(h.register))
	for _, method := range []string{"GET", "POST"} {
		router.HandlerFunc(method, "/logout", h.logout)
	}

	router.HandlerFunc("GET", "/compose", g.requireUser(h.composeForm))
	router.HandlerFunc("POST", "/compose", g.requireUser(h.compose))
	router.HandlerFunc("POST", "/posts/delete", g.requireUser(h.deletePost))

	router.HandlerFunc("GET", "/api/posts", h.listPostsJSON)
	return router, nil
}

// journalError is the terminal outcome for store failures: logged, never
// swallowed, surfaced as a bad gateway since the journal is misbehaving.
func (h *handlers) journalError(w http.ResponseWriter, err error, msg string) {
	h.log.Error().Err(err).Msg(msg)
	http.Error(w, "journal is mis-behaving, try again later", http.StatusBadGateway)
}
