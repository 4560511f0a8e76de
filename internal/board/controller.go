// Package board implements the sign-up board controller: it keeps the
// rendered activity list in step with the server and mediates the signup and
// unregister actions, reporting every outcome on a StatusLine.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
)

// ErrMissingInput is returned by Signup when email or activity is blank.
var ErrMissingInput = errors.New("email and activity are required")

// MissingInputText is the status text shown for ErrMissingInput.
const MissingInputText = "Please provide email and select an activity."

// API is the activities server as seen by the controller. *Client
// implements it over HTTP.
type API interface {
	Activities(ctx context.Context) (model.Catalog, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// View receives rendered state. RenderBoard replaces the activity list and
// selector wholesale; ResetForm clears the signup form.
type View interface {
	RenderBoard(BoardView)
	ResetForm()
}

// Controller synchronises a View with the server-held catalog.
type Controller struct {
	api    API
	view   View
	status *StatusLine
}

// New constructs a Controller. It is meant to be built once at startup.
func New(api API, view View, status *StatusLine) *Controller {
	if status == nil {
		status = NewStatusLine(DefaultMessageTTL)
	}
	return &Controller{api: api, view: view, status: status}
}

// Status returns the controller's status line.
func (c *Controller) Status() *StatusLine {
	return c.status
}

// Reload fetches the catalog and, on success, replaces the rendered board.
// On failure the previous render is left as it was.
func (c *Controller) Reload(ctx context.Context) error {
	catalog, err := c.api.Activities(ctx)
	if err != nil {
		c.status.Show(err.Error(), model.SeverityError)
		return err
	}
	c.view.RenderBoard(BuildView(catalog))
	return nil
}

// Signup registers email for activity and reloads the board on success.
// Blank input fails locally without calling the API.
func (c *Controller) Signup(ctx context.Context, email, activity string) error {
	email = strings.TrimSpace(email)
	activity = strings.TrimSpace(activity)
	if email == "" || activity == "" {
		c.status.Show(MissingInputText, model.SeverityError)
		return ErrMissingInput
	}

	msg, err := c.api.Signup(ctx, activity, email)
	if err != nil {
		c.status.Show(err.Error(), model.SeverityError)
		return err
	}
	if msg == "" {
		msg = "Signed up successfully"
	}
	c.status.Show(msg, model.SeveritySuccess)
	c.view.ResetForm()

	// A failed reload reports itself; the signup already happened.
	_ = c.Reload(ctx)
	return nil
}

// Unregister removes email from activity and reloads the board on success.
func (c *Controller) Unregister(ctx context.Context, email, activity string) error {
	if _, err := c.api.Unregister(ctx, activity, email); err != nil {
		c.status.Show(err.Error(), model.SeverityError)
		return err
	}
	c.status.Show(fmt.Sprintf("%s unregistered from %s", email, activity), model.SeveritySuccess)

	_ = c.Reload(ctx)
	return nil
}
