package web

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/Shivanand-hulikatti/activity-board/internal/board"
	"github.com/Shivanand-hulikatti/activity-board/internal/model"
	"github.com/a-h/templ"
)

// PageView provides data for the board page and its fragments.
type PageView struct {
	Board  board.BoardView
	Loaded bool
	Form   Form

	Message        model.StatusMessage
	MessageVisible bool
	MessageTTL     time.Duration

	// CSRFField is a ready-made hidden input, empty when CSRF is off.
	CSRFField string
}

// htmlWriter stops writing after the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// BoardPage renders the full HTML document.
func BoardPage(v PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>Mergington High School Activities</title>`)
		hw.raw(`<link rel="stylesheet" href="/static/styles.css">`)
		hw.raw(`<style>.hidden{display:none}</style>`)
		hw.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		hw.raw(`</head><body>`)
		hw.raw(`<header><h1>Mergington High School</h1><h2>Extracurricular Activities</h2></header>`)
		hw.raw(`<main>`)
		hw.component(ctx, Board(v))
		hw.raw(`</main>`)
		hw.raw(`<footer><p>&copy; 2023 Mergington High School</p></footer>`)
		hw.raw(`</body></html>`)
		return hw.err
	})
}

// Board renders the swappable region: activity list, signup form, message.
func Board(v PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div id="board">`)

		hw.raw(`<section id="activities-container"><h3>Available Activities</h3><div id="activities-list">`)
		if !v.Loaded {
			hw.raw(`<p>Loading activities...</p>`)
		}
		for _, card := range v.Board.Cards {
			hw.component(ctx, ActivityCard(card, v.CSRFField))
		}
		hw.raw(`</div></section>`)

		hw.component(ctx, SignupForm(v))
		hw.component(ctx, Message(v.Message, v.MessageVisible, v.MessageTTL))

		hw.raw(`</div>`)
		return hw.err
	})
}

// ActivityCard renders one activity with its participants.
func ActivityCard(card board.ActivityCard, csrfField string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="activity-card" data-activity-name="`)
		hw.text(card.Name)
		hw.raw(`">`)

		hw.raw(`<h4 class="activity-title">`)
		hw.text(card.Name)
		hw.raw(`</h4><p class="activity-desc">`)
		hw.text(card.Description)
		hw.raw(`</p><p class="activity-schedule">`)
		hw.text(card.Schedule)
		hw.raw(`</p><p class="activity-capacity">`)
		hw.text(card.Capacity)
		hw.raw(`</p>`)

		hw.raw(`<div class="participants-section"><h5>Participants</h5><ul class="participants-list">`)
		for _, row := range card.Participants {
			hw.component(ctx, participantRow(row, csrfField))
		}
		hw.raw(`</ul>`)
		if card.Empty() {
			hw.raw(`<p class="no-participants">No participants yet</p>`)
		} else {
			hw.raw(`<p class="no-participants hidden">No participants yet</p>`)
		}
		hw.raw(`</div></div>`)
		return hw.err
	})
}

func participantRow(row board.ParticipantRow, csrfField string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<li><div class="participant-content"><span class="participant-avatar">`)
		hw.text(row.Initials)
		hw.raw(`</span><span class="participant-email">`)
		hw.text(row.Email)
		hw.raw(`</span></div>`)

		hw.raw(`<form class="delete-form" method="post" action="/board/unregister" hx-post="/board/unregister" hx-target="#board" hx-swap="outerHTML">`)
		hw.raw(`<input type="hidden" name="activity" value="`)
		hw.text(row.Activity)
		hw.raw(`"><input type="hidden" name="email" value="`)
		hw.text(row.Email)
		hw.raw(`">`)
		hw.raw(csrfField)
		hw.raw(`<button class="delete-btn" type="submit">Delete</button></form></li>`)
		return hw.err
	})
}

// SignupForm renders the signup form with the activity selector.
func SignupForm(v PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="signup-container"><h3>Sign Up for an Activity</h3>`)
		hw.raw(`<form id="signup-form" method="post" action="/board/signup" hx-post="/board/signup" hx-target="#board" hx-swap="outerHTML">`)
		hw.raw(v.CSRFField)

		hw.raw(`<div class="form-group"><label for="email">Student Email:</label>`)
		hw.raw(`<input type="email" id="email" name="email" placeholder="your-email@mergington.edu" value="`)
		hw.text(v.Form.Email)
		hw.raw(`"></div>`)

		hw.raw(`<div class="form-group"><label for="activity">Select Activity:</label><select id="activity" name="activity">`)
		options := v.Board.Options
		if len(options) == 0 {
			options = []board.SelectOption{{Value: "", Label: board.PlaceholderLabel}}
		}
		for _, opt := range options {
			hw.raw(`<option value="`)
			hw.text(opt.Value)
			hw.raw(`"`)
			if opt.Value != "" && opt.Value == v.Form.Activity {
				hw.raw(` selected`)
			}
			hw.raw(`>`)
			hw.text(opt.Label)
			hw.raw(`</option>`)
		}
		hw.raw(`</select></div>`)

		hw.raw(`<button type="submit">Sign Up</button></form></section>`)
		return hw.err
	})
}

// Message renders the status message element. A visible message asks htmx
// to re-fetch it once the hide window has passed.
func Message(msg model.StatusMessage, visible bool, ttl time.Duration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		if !visible {
			hw.raw(`<div id="message" class="message hidden"></div>`)
			return hw.err
		}
		hw.raw(`<div id="message" class="message `)
		hw.text(string(msg.Severity))
		hw.raw(`" hx-get="/board/message" hx-trigger="load delay:`)
		hw.raw(strconv.FormatInt(ttl.Milliseconds(), 10))
		hw.raw(`ms" hx-swap="outerHTML">`)
		hw.text(msg.Text)
		hw.raw(`</div>`)
		return hw.err
	})
}
