package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a transcript entry.
type Role string

const (
	RoleUser   Role = "user"
	RoleAI     Role = "ai"
	RoleSystem Role = "system"
)

// InputType describes how a user entry was produced. Action and continue are
// only meaningful for user entries; AI and system entries are always narration.
type InputType string

const (
	InputTypeAction    InputType = "action"
	InputTypeContinue  InputType = "continue"
	InputTypeNarration InputType = "narration"
)

// Message is one entry of a session transcript. Persisted history is
// append-only: entries are never reordered or rewritten after insertion.
type Message struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SessionID uuid.UUID `db:"session_id" json:"-"`
	Role      Role      `db:"role" json:"role"`
	Text      string    `db:"text" json:"text"`
	InputType InputType `db:"input_type" json:"inputType"`
	Timestamp time.Time `db:"created_at" json:"timestamp"`
}

// ValidActionType reports whether t is an input type a client may submit.
func ValidActionType(t InputType) bool {
	return t == InputTypeAction || t == InputTypeContinue
}
