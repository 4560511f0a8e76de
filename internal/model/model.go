// Package model defines the core domain types for the activity sign-up board.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity is a named, capacity-bounded event participants can join.
// Name is the unique key and travels as the JSON object key, not a field.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Count returns the number of signed-up participants.
func (a *Activity) Count() int {
	return len(a.Participants)
}

// IsFull returns true when no seats remain.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Has reports whether email is already a participant.
func (a *Activity) Has(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Catalog is the full set of activities as known to the server at one point
// in time. It keeps the server's key order, which a Go map would lose.
type Catalog []Activity

// Find returns the activity with the given name.
func (c Catalog) Find(name string) (*Activity, bool) {
	for i := range c {
		if c[i].Name == name {
			return &c[i], true
		}
	}
	return nil, false
}

// MarshalJSON encodes the catalog as a JSON object keyed by activity name,
// in slice order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}
		val, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keyed by activity name, preserving the
// order in which keys first appear.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("catalog: expected object, got %v", tok)
	}

	out := Catalog{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("catalog: expected activity name, got %v", tok)
		}
		var a Activity
		if err := dec.Decode(&a); err != nil {
			return fmt.Errorf("catalog: decode %q: %w", name, err)
		}
		a.Name = name
		// A repeated key replaces the earlier entry in its original position.
		if i, ok := index[name]; ok {
			out[i] = a
			continue
		}
		index[name] = len(out)
		out = append(out, a)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// Severity tags a StatusMessage.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// StatusMessage is transient user-facing feedback.
type StatusMessage struct {
	Text     string
	Severity Severity
}

// MessageResponse is the success body of the signup and unregister endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
