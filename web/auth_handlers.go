package web

import (
	"errors"
	"net/http"

	"github.com/gatepost/gatepost/auth"
	"github.com/gatepost/gatepost/journal"
)

func (h *handlers) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login", formData{})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	uid, err := auth.Authenticate(r.Context(), h.store, username, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// one outcome for unknown user and wrong password alike
		h.log.Info().Msg("Rejected login attempt")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	} else if err != nil {
		h.journalError(w, err, "Unable to authenticate against the journal")
		return
	}
	if err := h.store.TouchUser(r.Context(), uid); err != nil {
		// last activity is best-effort, the login still counts
		h.log.Warn().Err(err).Msg("Unable to record user activity")
	}
	h.startSession(w, r, uid, "/")
}

func (h *handlers) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "register", formData{LoggedIn: true})
}

// register creates an account on behalf of the already logged-in caller
// and then hands the session over to the new user, mirroring the flow of
// inviting someone at a shared keyboard.
func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if len(password) == 0 {
		h.log.Info().Msg("Rejected registration without a password")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		h.log.Error().Err(err).Msg("Unable to hash password")
		http.Error(w, "unable to process registration", http.StatusInternalServerError)
		return
	}
	uid, err := h.store.CreateUser(r.Context(), username, hash)
	if err != nil {
		var dup journal.DuplicateUsername
		var missing journal.MissingField
		if errors.As(err, &dup) || errors.As(err, &missing) {
			h.log.Info().Err(err).Msg("Rejected registration")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		h.journalError(w, err, "Unable to store new user in the journal")
		return
	}
	if token, ok := sessionTokenFrom(r, h.codec); ok {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			h.log.Warn().Err(err).Msg("Unable to destroy inviting user's session")
		}
	}
	h.startSession(w, r, uid, "/compose")
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := sessionTokenFrom(r, h.codec); ok {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			h.log.Warn().Err(err).Msg("Unable to destroy session")
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handlers) startSession(w http.ResponseWriter, r *http.Request, uid int64, target string) {
	token, err := h.sessions.Create(r.Context(), uid)
	if err != nil {
		h.log.Error().Err(err).Msg("Unable to create session")
		http.Error(w, "unable to start session", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, h.codec.encode(token))
	http.Redirect(w, r, target, http.StatusSeeOther)
}
