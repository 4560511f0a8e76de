package board

import (
	"fmt"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
)

// PlaceholderLabel is the selector entry meaning "none selected".
const PlaceholderLabel = "-- Select an activity --"

// BoardView is everything the page needs to draw the activity list and the
// selector. It is rebuilt from scratch on every reload.
type BoardView struct {
	Cards   []ActivityCard
	Options []SelectOption
}

// ActivityCard is one rendered activity.
type ActivityCard struct {
	Name         string
	Description  string
	Schedule     string
	Capacity     string
	Participants []ParticipantRow
}

// Empty reports whether the "no participants" placeholder should show.
func (c ActivityCard) Empty() bool {
	return len(c.Participants) == 0
}

// ParticipantRow is one participant line with its delete control target.
type ParticipantRow struct {
	Activity string
	Email    string
	Initials string
}

// SelectOption is one entry of the activity selector.
type SelectOption struct {
	Value string
	Label string
}

// BuildView renders a catalog into a BoardView, keeping catalog order.
func BuildView(catalog model.Catalog) BoardView {
	v := BoardView{
		Cards:   make([]ActivityCard, 0, len(catalog)),
		Options: make([]SelectOption, 0, len(catalog)+1),
	}
	v.Options = append(v.Options, SelectOption{Value: "", Label: PlaceholderLabel})

	for _, a := range catalog {
		card := ActivityCard{
			Name:         a.Name,
			Description:  a.Description,
			Schedule:     a.Schedule,
			Capacity:     fmt.Sprintf("Capacity: %d/%d", a.Count(), a.MaxParticipants),
			Participants: make([]ParticipantRow, 0, len(a.Participants)),
		}
		for _, email := range a.Participants {
			card.Participants = append(card.Participants, ParticipantRow{
				Activity: a.Name,
				Email:    email,
				Initials: Initials(email),
			})
		}
		v.Cards = append(v.Cards, card)
		v.Options = append(v.Options, SelectOption{
			Value: a.Name,
			Label: fmt.Sprintf("%s (%d/%d)", a.Name, a.Count(), a.MaxParticipants),
		})
	}
	return v
}
