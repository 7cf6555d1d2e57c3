package web

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gatepost/gatepost/journal"
)

// homeDescription opens the home page. Registration being gated to
// existing accounts is the one rule worth stating up front.
const homeDescription = "A shared journal for a small circle of writers. " +
	"Anyone can read, but new writers can only be registered by someone " +
	"who already holds an account. Once registered you can compose new " +
	"posts and delete existing ones."

type (
	homeData struct {
		LoggedIn    bool
		Description string
		Posts       []journal.Post
	}

	postData struct {
		LoggedIn bool
		Post     journal.Post
	}

	formData struct {
		LoggedIn bool
	}
)

// The pages are deliberately bare: just enough markup to drive the flows.
// Anything fancier belongs to a real rendering layer in front of this one.
var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "head"}}<!doctype html>
<html><head><meta charset="utf-8"><title>gatepost</title></head>
<body>
<nav><a href="/">Home</a>
{{if .LoggedIn}} <a href="/compose">Compose</a> <a href="/register">Register</a> <a href="/logout">Log out</a>
{{else}} <a href="/login">Log in</a>{{end}}
</nav>{{end}}

{{define "foot"}}</body></html>{{end}}

{{define "home"}}{{template "head" .}}
<p>{{.Description}}</p>
{{range .Posts}}
<article>
<h2><a href="/posts/{{.ID}}">{{.Title}}</a></h2>
<p>{{.CreatedAt}}</p>
<p>{{.Content}}</p>
</article>
{{else}}
<p>No posts yet.</p>
{{end}}
{{template "foot" .}}{{end}}

{{define "post"}}{{template "head" .}}
<article>
<h1>{{.Post.Title}}</h1>
<p>{{.Post.CreatedAt}}</p>
<p>{{.Post.Content}}</p>
</article>
{{if .LoggedIn}}
<form method="post" action="/posts/delete">
<input type="hidden" name="id" value="{{.Post.ID}}">
<button type="submit">Delete</button>
</form>
{{end}}
{{template "foot" .}}{{end}}

{{define "login"}}{{template "head" .}}
<h1>Log in</h1>
<form method="post" action="/login">
<label>Email <input type="email" name="username" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Log in</button>
</form>
{{template "foot" .}}{{end}}

{{define "register"}}{{template "head" .}}
<h1>Register a new writer</h1>
<form method="post" action="/register">
<label>Email <input type="email" name="username" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Register</button>
</form>
{{template "foot" .}}{{end}}

{{define "compose"}}{{template "head" .}}
<h1>Compose</h1>
<form method="post" action="/compose">
<label>Title <input type="text" name="title" required></label>
<label>Content <textarea name="content" required></textarea></label>
<button type="submit">Publish</button>
</form>
{{template "foot" .}}{{end}}

{{define "notfound"}}{{template "head" .}}
<h1>Post not found</h1>
<p>The post you are looking for does not exist or was deleted.</p>
{{template "foot" .}}{{end}}
`))

// render buffers the whole page before touching the wire so a template
// failure never produces a half-written response.
func (h *handlers) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	err := pageTemplates.ExecuteTemplate(&buf, name, data)
	if err != nil {
		h.log.Error().Err(err).Str("page", name).Msg("Unable to render page")
		http.Error(w, "unable to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
