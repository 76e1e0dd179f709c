package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidCellKey is returned when a wire cell key is not "Day-HH:MM".
var ErrInvalidCellKey = errors.New("invalid cell key")

// Cell is one (day, time) unit in a poll's availability grid. It is a
// composite key, not a concatenated string: day and time are only joined at
// the wire boundary.
type Cell struct {
	Day  string
	Time string
}

// Key renders the wire form of the cell ("Monday-10:00").
func (c Cell) Key() string {
	return c.Day + "-" + c.Time
}

// ParseCellKey parses the wire form. The split is at the first '-': weekday
// names never contain one, and everything after it belongs to the time part.
func ParseCellKey(key string) (Cell, error) {
	day, t, ok := strings.Cut(key, "-")
	if !ok || day == "" || t == "" {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCellKey, key)
	}
	return Cell{Day: day, Time: t}, nil
}

// PollParticipant is one participant's selected cell set. Insertion order is
// irrelevant; cell identity is the (day, time) pair.
type PollParticipant struct {
	Email string
	Cells []Cell
}

// Poll is a shared-availability vote: a set of participants, each with their
// selected grid cells.
type Poll struct {
	ID         int64
	URLPath    string
	Title      string
	OwnerEmail string

	Participants []PollParticipant

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParticipantFor returns the participant entry for the given email.
func (p *Poll) ParticipantFor(email string) (PollParticipant, bool) {
	for _, part := range p.Participants {
		if part.Email == email {
			return part, true
		}
	}
	return PollParticipant{}, false
}
