// Package repository implements activity storage for the sign-up board:
// PostgreSQL via pgx, SQLite via database/sql, and an in-memory store.
package repository

import (
	"errors"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
)

// ErrNotFound is returned when a requested activity does not exist.
var ErrNotFound = errors.New("activity not found")

// ErrActivityFull is returned when an activity has no remaining capacity.
var ErrActivityFull = errors.New("activity is full")

// ErrAlreadyRegistered is returned when the same email signs up twice.
var ErrAlreadyRegistered = errors.New("student is already signed up")

// ErrNotRegistered is returned when unregistering an email that is not a
// participant.
var ErrNotRegistered = errors.New("student is not signed up for this activity")

// SeedCatalog returns the activities a fresh store starts with.
func SeedCatalog() model.Catalog {
	return model.Catalog{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Sports",
			Description:     "Competitive sports teams and athletic training",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"james@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Debate Club",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"lucas@mergington.edu", "ava@mergington.edu"},
		},
	}
}

// clone deep-copies a catalog so callers never share participant slices with
// the store.
func clone(c model.Catalog) model.Catalog {
	out := make(model.Catalog, len(c))
	for i, a := range c {
		a.Participants = append([]string{}, a.Participants...)
		out[i] = a
	}
	return out
}
