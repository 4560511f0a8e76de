// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
	"github.com/Shivanand-hulikatti/activity-board/internal/repository"
	"github.com/Shivanand-hulikatti/activity-board/internal/service"
	"github.com/go-chi/chi/v5"
)

// BoardPath is where GET / sends browsers.
const BoardPath = "/static/index.html"

// ActivityHandler holds all HTTP handlers for the activities API.
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Routes returns the router for /activities.
func (h *ActivityHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListActivities)
	r.Post("/{name}/signup", h.Signup)
	r.Post("/{name}/unregister", h.Unregister)
	return r
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// activityName returns the decoded {name} segment. chi matches on RawPath
// when the request escaped a reserved character, leaving the param encoded.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

// writeServiceError maps service and repository errors to a status and detail.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, repository.ErrAlreadyRegistered):
		writeError(w, http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, repository.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, "Student is not signed up for this activity")
	case errors.Is(err, repository.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "Activity is full")
	case errors.Is(err, service.ErrEmailRequired):
		writeError(w, http.StatusBadRequest, "email is required")
	default:
		log.Printf("activities: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListActivities handles GET /activities
// @Summary      List activities
// @Description  Returns every activity keyed by name, in catalog order
// @Tags         activities
// @Produce      json
// @Success      200 {object} map[string]model.Activity
// @Router       /activities [get]
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.ListActivities(r.Context())
	if err != nil {
		log.Printf("list activities: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list activities")
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// Signup handles POST /activities/{name}/signup?email=
// @Summary      Sign up for an activity
// @Tags         activities
// @Produce      json
// @Param        name  path  string true "Activity name"
// @Param        email query string true "Student email"
// @Success      200 {object} model.MessageResponse
// @Failure      400 {object} model.ErrorResponse
// @Failure      404 {object} model.ErrorResponse
// @Router       /activities/{name}/signup [post]
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	msg, err := h.svc.Signup(r.Context(), name, email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// Unregister handles POST /activities/{name}/unregister?email=
// @Summary      Drop an activity
// @Tags         activities
// @Produce      json
// @Param        name  path  string true "Activity name"
// @Param        email query string true "Student email"
// @Success      200 {object} model.MessageResponse
// @Failure      400 {object} model.ErrorResponse
// @Failure      404 {object} model.ErrorResponse
// @Router       /activities/{name}/unregister [post]
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	msg, err := h.svc.Unregister(r.Context(), name, email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// ─── Root and health ──────────────────────────────────────────────────────────

// RedirectToBoard handles GET /
func RedirectToBoard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, BoardPath, http.StatusTemporaryRedirect)
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
