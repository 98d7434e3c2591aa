package domain

import "time"

// Direction indicates who authored a chat message
type Direction string

const (
	DirectionUser   Direction = "user"
	DirectionSystem Direction = "system"
)

// Message represents a chat message entity
type Message struct {
	ID        string
	UserID    string
	Text      string
	Direction Direction
	Extracted bool // set once when the message produced at least one record
	CreatedAt time.Time
}

// IsProcessable reports whether the extraction pipeline should look at
// this message. System replies and already-extracted messages are skipped.
func (m *Message) IsProcessable() bool {
	return m.Direction == DirectionUser && !m.Extracted
}
