package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gatepost/gatepost/journal"
	"github.com/julienschmidt/httprouter"
)

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := currentUser(r.Context())
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		h.journalError(w, err, "Unable to list posts from the journal")
		return
	}
	h.render(w, http.StatusOK, "home", homeData{
		LoggedIn:    loggedIn,
		Description: homeDescription,
		Posts:       posts,
	})
}

func (h *handlers) showPost(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := currentUser(r.Context())
	params := httprouter.ParamsFromContext(r.Context())
	id, err := strconv.ParseInt(params.ByName("postid"), 10, 64)
	if err != nil {
		h.render(w, http.StatusNotFound, "notfound", formData{LoggedIn: loggedIn})
		return
	}
	post, err := h.store.GetPost(r.Context(), id)
	if err != nil {
		var notFound journal.PostNotFound
		if errors.As(err, &notFound) {
			h.render(w, http.StatusNotFound, "notfound", formData{LoggedIn: loggedIn})
			return
		}
		h.journalError(w, err, "Unable to load post from the journal")
		return
	}
	h.render(w, http.StatusOK, "post", postData{LoggedIn: loggedIn, Post: post})
}

func (h *handlers) composeForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "compose", formData{LoggedIn: true})
}

func (h *handlers) compose(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_, err := h.store.CreatePost(r.Context(), r.PostFormValue("title"), r.PostFormValue("content"))
	if err != nil {
		var missing journal.MissingField
		if errors.As(err, &missing) {
			h.log.Info().Err(err).Msg("Rejected incomplete post")
			http.Redirect(w, r, "/compose", http.StatusSeeOther)
			return
		}
		h.journalError(w, err, "Unable to store post in the journal")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// deletePost takes the target id from an explicit form field. Deleting a
// post that is already gone still lands the caller back on the home page.
func (h *handlers) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	if err != nil {
		h.log.Warn().Str("id", r.PostFormValue("id")).Msg("Ignoring delete request with a bogus post id")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	err = h.store.DeletePost(r.Context(), id)
	if err != nil {
		var notFound journal.PostNotFound
		if !errors.As(err, &notFound) {
			h.journalError(w, err, "Unable to delete post from the journal")
			return
		}
		h.log.Warn().Int64("post.id", id).Msg("Ignoring delete request for a missing post")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// listPostsJSON is a small machine-readable view of the post list so the
// blog can be scripted without scraping markup.
func (h *handlers) listPostsJSON(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		h.journalError(w, err, "Unable to list posts from the journal")
		return
	}
	type jsonPost struct {
		ID        int64  `json:"id"`
		Title     string `json:"title"`
		Content   string `json:"content"`
		CreatedAt string `json:"createdAt"`
	}
	out := struct {
		Posts []jsonPost `json:"posts"`
	}{Posts: []jsonPost{}}
	for _, p := range posts {
		out.Posts = append(out.Posts, jsonPost{ID: p.ID, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt})
	}
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.log.Warn().Err(err).Msg("Unable to write post listing")
	}
}
