package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Shivanand-hulikatti/activity-board/internal/board"
	"github.com/Shivanand-hulikatti/activity-board/internal/handler"
	"github.com/Shivanand-hulikatti/activity-board/internal/model"
	"github.com/Shivanand-hulikatti/activity-board/internal/repository"
	"github.com/Shivanand-hulikatti/activity-board/internal/service"
	"github.com/go-chi/chi/v5"
)

func newBoardHandler(t *testing.T, catalog model.Catalog, ttl time.Duration, opts ...Option) http.Handler {
	t.Helper()
	repo := repository.NewMemoryRepository()
	if err := repo.Seed(context.Background(), catalog); err != nil {
		t.Fatalf("seed: %v", err)
	}
	api := chi.NewRouter()
	api.Mount("/activities", handler.NewActivityHandler(service.NewActivityService(repo)).Routes())
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	state := NewState()
	ctrl := board.New(board.NewClient(srv.URL, nil), state, board.NewStatusLine(ttl))
	return NewHandler(ctrl, state, opts...).Routes()
}

func get(t *testing.T, h http.Handler, path string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func post(t *testing.T, h http.Handler, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "http://example.com"+path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func assertContains(t *testing.T, body, want string) {
	t.Helper()
	if !strings.Contains(body, want) {
		t.Fatalf("expected body to contain %q, got %q", want, body)
	}
}

func assertNotContains(t *testing.T, body, unwanted string) {
	t.Helper()
	if strings.Contains(body, unwanted) {
		t.Fatalf("expected body not to contain %q, got %q", unwanted, body)
	}
}

func TestPageRendersBoard(t *testing.T) {
	h := newBoardHandler(t, model.Catalog{
		{Name: "Chess Club", Description: "Strategy", Schedule: "Fridays", MaxParticipants: 12,
			Participants: []string{"jane.doe@mergington.edu"}},
		{Name: "Art Studio", Description: "Paint", Schedule: "Mondays", MaxParticipants: 8},
	}, time.Minute)

	rec := get(t, h, PagePath, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	for _, want := range []string{
		"<!doctype html>",
		`id="activities-list"`,
		`id="signup-form"`,
		`id="activity"`,
		`id="email"`,
		`id="message" class="message hidden"`,
		`<h4 class="activity-title">Chess Club</h4>`,
		`<p class="activity-capacity">Capacity: 1/12</p>`,
		`<span class="participant-avatar">JD</span>`,
		`<span class="participant-email">jane.doe@mergington.edu</span>`,
		`<p class="no-participants hidden">`,
		`<p class="no-participants">No participants yet</p>`,
		`<option value="">-- Select an activity --</option>`,
		`<option value="Chess Club">Chess Club (1/12)</option>`,
		`<option value="Art Studio">Art Studio (0/8)</option>`,
	} {
		assertContains(t, body, want)
	}
	assertNotContains(t, body, "Loading activities...")
	assertNotContains(t, body, "gorilla.csrf.Token")
}

func TestFragmentOmitsLayout(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute)

	body := get(t, h, "/board", true).Body.String()
	assertContains(t, body, `<div id="board">`)
	assertNotContains(t, body, "<!doctype html>")
	assertNotContains(t, body, "<html")
}

func TestSignupSuccessClearsForm(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute)

	rec := post(t, h, "/board/signup", url.Values{
		"email":    {"newstudent@mergington.edu"},
		"activity": {"Chess Club"},
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	assertContains(t, body, `class="message success"`)
	assertContains(t, body, "Signed up newstudent@mergington.edu for Chess Club")
	assertContains(t, body, `<span class="participant-email">newstudent@mergington.edu</span>`)
	assertContains(t, body, "Capacity: 3/12")
	assertContains(t, body, `name="email" placeholder="your-email@mergington.edu" value=""`)
	assertNotContains(t, body, " selected")
}

func TestSignupValidationKeepsForm(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute)

	body := post(t, h, "/board/signup", url.Values{"activity": {"Sports"}}, true).Body.String()
	assertContains(t, body, `class="message error"`)
	assertContains(t, body, board.MissingInputText)
	assertContains(t, body, `<option value="Sports" selected>`)
}

func TestSignupServerErrorShowsDetail(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute)
	_ = get(t, h, PagePath, false)

	body := post(t, h, "/board/signup", url.Values{
		"email":    {"michael@mergington.edu"},
		"activity": {"Chess Club"},
	}, true).Body.String()
	assertContains(t, body, `class="message error"`)
	assertContains(t, body, "Student is already signed up")
	assertContains(t, body, `value="michael@mergington.edu"></div>`)
}

func TestPlainPostRedirects(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute)

	rec := post(t, h, "/board/signup", url.Values{
		"email":    {"newstudent@mergington.edu"},
		"activity": {"Chess Club"},
	}, false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != PagePath {
		t.Fatalf("expected redirect to %s, got %q", PagePath, loc)
	}

	body := get(t, h, PagePath, false).Body.String()
	assertContains(t, body, "Signed up newstudent@mergington.edu for Chess Club")
}

func TestUnregisterRemovesRow(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute)

	body := post(t, h, "/board/unregister", url.Values{
		"email":    {"michael@mergington.edu"},
		"activity": {"Chess Club"},
	}, true).Body.String()

	assertContains(t, body, "michael@mergington.edu unregistered from Chess Club")
	assertNotContains(t, body, `<span class="participant-email">michael@mergington.edu</span>`)
	assertContains(t, body, "Capacity: 1/12")
}

func TestMessageAutoHides(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), 20*time.Millisecond)

	body := post(t, h, "/board/signup", url.Values{}, true).Body.String()
	assertContains(t, body, `hx-get="/board/message" hx-trigger="load delay:20ms"`)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		body = get(t, h, "/board/message", true).Body.String()
		if strings.Contains(body, "hidden") {
			assertNotContains(t, body, board.MissingInputText)
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected message to hide, last body %q", body)
}

func TestEscapesUserContent(t *testing.T) {
	h := newBoardHandler(t, model.Catalog{
		{Name: `<script>alert("x")</script>`, Description: "a & b", MaxParticipants: 1},
	}, time.Minute)

	body := get(t, h, PagePath, false).Body.String()
	assertNotContains(t, body, `<script>alert`)
	assertContains(t, body, "&lt;script&gt;")
	assertContains(t, body, "a &amp; b")
}

func TestStylesheetServed(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute)

	rec := get(t, h, "/static/styles.css", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), ".activity-card")
}

func TestCSRFProtection(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute, WithCSRFKey("test-secret"))

	body := get(t, h, PagePath, false).Body.String()
	assertContains(t, body, `name="gorilla.csrf.Token"`)

	rec := post(t, h, "/board/signup", url.Values{
		"email":    {"newstudent@mergington.edu"},
		"activity": {"Chess Club"},
	}, true)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d", rec.Code)
	}
}

func TestStateIsSharedAcrossVisitors(t *testing.T) {
	h := newBoardHandler(t, repository.SeedCatalog(), time.Minute)

	_ = post(t, h, "/board/signup", url.Values{"email": {"first@mergington.edu"}}, true)

	// A later, unrelated page load sees the same form and message.
	body := get(t, h, PagePath, false).Body.String()
	assertContains(t, body, `value="first@mergington.edu"></div>`)
	assertContains(t, body, board.MissingInputText)
}
