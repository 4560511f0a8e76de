package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
)

// maxBodyBytes caps how much of a response body the client reads.
const maxBodyBytes = 1 << 20

// APIError is a non-2xx answer from the activities API.
type APIError struct {
	Status   int
	Detail   string
	fallback string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%s (%d)", e.fallback, e.Status)
}

// RequestError is a failed exchange with the activities API that has no
// usable HTTP status: the request never completed or the reply could not be
// read. Error returns only the text shown to users; Unwrap returns the cause.
type RequestError struct {
	Text string
	Err  error
}

func (e *RequestError) Error() string {
	return e.Text
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// requestFailed logs the cause and hides it behind text.
func requestFailed(text, op string, err error) error {
	log.Printf("board: %s: %v", op, err)
	return &RequestError{Text: text, Err: err}
}

// Client talks to the activities API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the API rooted at baseURL. A nil httpClient
// gets a client with a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Activities fetches the full catalog with GET /activities.
func (c *Client) Activities(ctx context.Context) (model.Catalog, error) {
	const fallback = "Failed to load activities"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, requestFailed(fallback, "build load request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, requestFailed(fallback, "load activities", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &APIError{Status: resp.StatusCode, fallback: fallback}
	}

	var catalog model.Catalog
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&catalog); err != nil {
		return nil, requestFailed(fallback, "decode activities", err)
	}
	return catalog, nil
}

// Signup calls POST /activities/{activity}/signup?email={email} and returns
// the server's confirmation message, which may be empty. A success reply
// that is not JSON counts as a failure.
func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	const fallback = "Signup failed"

	body, err := c.mutate(ctx, "signup", activity, email, fallback)
	if err != nil {
		return "", err
	}
	var m model.MessageResponse
	if err := json.Unmarshal(body, &m); err != nil {
		return "", requestFailed(fallback, "decode signup reply", err)
	}
	return m.Message, nil
}

// Unregister calls POST /activities/{activity}/unregister?email={email}.
// The success body is not used.
func (c *Client) Unregister(ctx context.Context, activity, email string) (string, error) {
	if _, err := c.mutate(ctx, "unregister", activity, email, "Failed to unregister"); err != nil {
		return "", err
	}
	return "", nil
}

// mutate issues one POST and returns the success body. Non-2xx replies
// become *APIError; transport failures become *RequestError with fallback
// as their text.
func (c *Client) mutate(ctx context.Context, action, activity, email, fallback string) ([]byte, error) {
	target := fmt.Sprintf("%s/activities/%s/%s?%s",
		c.baseURL, url.PathEscape(activity), action, url.Values{"email": {email}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return nil, requestFailed(fallback, "build "+action+" request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, requestFailed(fallback, action, err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, fallback: fallback}
		var e model.ErrorResponse
		// A malformed body means no detail.
		if readErr == nil && json.Unmarshal(body, &e) == nil {
			apiErr.Detail = e.Detail
		}
		return nil, apiErr
	}
	if readErr != nil {
		return nil, requestFailed(fallback, "read "+action+" reply", readErr)
	}
	return body, nil
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
