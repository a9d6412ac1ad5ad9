package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionKind separates interactive stories from plain chat threads. Both
// share the same transcript storage and append discipline.
type SessionKind string

const (
	SessionKindStory SessionKind = "story"
	SessionKindChat  SessionKind = "chat"
)

// Character is the protagonist supplied at story creation. It has no lifecycle
// of its own and is embedded in the owning session.
type Character struct {
	Name string `db:"character_name" json:"name"`
	Role string `db:"character_role" json:"role"`
}

// Session is one persisted conversation or story thread, exclusively owned by
// a single user.
type Session struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	UserID      uuid.UUID   `db:"user_id" json:"-"`
	Kind        SessionKind `db:"kind" json:"kind"`
	Title       string      `db:"title" json:"title"`
	ScenarioKey string      `db:"scenario_key" json:"scenario,omitempty"`
	Character   Character   `json:"character"`
	History     []Message   `db:"-" json:"history"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}

// SessionSummary is the list-view shape of a session (no history).
type SessionSummary struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Kind        SessionKind `db:"kind" json:"kind"`
	Title       string      `db:"title" json:"title"`
	ScenarioKey string      `db:"scenario_key" json:"scenario,omitempty"`
	Character   Character   `json:"character"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}
