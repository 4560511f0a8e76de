// Package web serves the sign-up board page. Pages are rendered on the
// server; htmx swaps the #board region after each action, and plain form
// posts fall back to a redirect.
package web

import (
	"crypto/sha256"
	"embed"
	"net/http"
	"strings"

	"github.com/Shivanand-hulikatti/activity-board/internal/board"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
)

// PagePath is the board page URL.
const PagePath = "/static/index.html"

// htmxHeader is set by htmx on every request it issues.
const htmxHeader = "HX-Request"

//go:embed static/styles.css
var staticFS embed.FS

// Handler serves the board page and its actions.
type Handler struct {
	ctrl    *board.Controller
	state   *State
	csrfKey []byte
}

// Option configures a Handler.
type Option func(*Handler)

// WithCSRFKey enables CSRF protection on the board forms. The secret is
// stretched to the 32 bytes gorilla/csrf expects.
func WithCSRFKey(secret string) Option {
	return func(h *Handler) {
		if strings.TrimSpace(secret) == "" {
			return
		}
		sum := sha256.Sum256([]byte(secret))
		h.csrfKey = sum[:]
	}
}

// NewHandler builds a Handler. state must be the board.View the controller
// was constructed with.
func NewHandler(ctrl *board.Controller, state *State, opts ...Option) *Handler {
	h := &Handler{ctrl: ctrl, state: state}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the page routes. Mount it at the root.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	if h.csrfKey != nil {
		r.Use(markPlaintext)
		r.Use(csrf.Protect(h.csrfKey, csrf.Secure(false), csrf.Path("/")))
	}

	r.Get(PagePath, h.Page)
	r.Handle("/static/styles.css", http.FileServer(http.FS(staticFS)))

	r.Route("/board", func(r chi.Router) {
		r.Get("/", h.Fragment)
		r.Post("/signup", h.Signup)
		r.Post("/unregister", h.Unregister)
		r.Get("/message", h.Message)
	})
	return r
}

// markPlaintext tells gorilla/csrf that a request without TLS is expected,
// so it skips the HTTPS-only referer check.
func markPlaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS == nil {
			r = csrf.PlaintextHTTPRequest(r)
		}
		next.ServeHTTP(w, r)
	})
}

func isHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(htmxHeader), "true")
}

// pageView assembles what the templates need from state, status and request.
func (h *Handler) pageView(r *http.Request) PageView {
	b, form, loaded := h.state.Snapshot()
	status := h.ctrl.Status()
	msg, visible := status.Current()
	return PageView{
		Board:          b,
		Loaded:         loaded,
		Form:           form,
		Message:        msg,
		MessageVisible: visible,
		MessageTTL:     status.TTL(),
		CSRFField:      string(csrf.TemplateField(r)),
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(c).ServeHTTP(w, r)
}

// respond answers an action: htmx gets the fresh #board region, a plain form
// post is redirected back to the page.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		h.render(w, r, Board(h.pageView(r)))
		return
	}
	http.Redirect(w, r, PagePath, http.StatusSeeOther)
}

// Page handles GET /static/index.html
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	_ = h.ctrl.Reload(r.Context())
	h.render(w, r, BoardPage(h.pageView(r)))
}

// Fragment handles GET /board
func (h *Handler) Fragment(w http.ResponseWriter, r *http.Request) {
	_ = h.ctrl.Reload(r.Context())
	h.render(w, r, Board(h.pageView(r)))
}

// Signup handles POST /board/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostForm.Get("email")
	activity := r.PostForm.Get("activity")

	h.state.SetForm(Form{Email: email, Activity: activity})
	_ = h.ctrl.Signup(r.Context(), email, activity)
	h.respond(w, r)
}

// Unregister handles POST /board/unregister
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	_ = h.ctrl.Unregister(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("activity"))
	h.respond(w, r)
}

// Message handles GET /board/message
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	status := h.ctrl.Status()
	msg, visible := status.Current()
	h.render(w, r, Message(msg, visible, status.TTL()))
}
