// Package transcript provides read-time projections over stored session
// history. Projections are pure: they never mutate their input and are never
// written back to the store, which stays append-only truth.
package transcript

import "storyteller-server/internal/models"

// WithoutSystem drops system entries. System entries carry per-session
// generation instructions and are never part of a client-facing view.
func WithoutSystem(history []models.Message) []models.Message {
	out := make([]models.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role == models.RoleSystem {
			continue
		}
		out = append(out, msg)
	}
	return out
}

// MergeNarration coalesces runs of consecutive AI entries into a single
// visual block: texts are joined with a blank line, the merged entry keeps the
// first entry's identity and adopts the last entry's timestamp. Applying it to
// an already-merged sequence is a no-op.
func MergeNarration(history []models.Message) []models.Message {
	out := make([]models.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role == models.RoleAI && len(out) > 0 && out[len(out)-1].Role == models.RoleAI {
			prev := &out[len(out)-1]
			prev.Text = prev.Text + "\n\n" + msg.Text
			prev.Timestamp = msg.Timestamp
			continue
		}
		out = append(out, msg)
	}
	return out
}

// NarrationOnly drops user entries, leaving the continuous AI narration
// stream used by the pure-narration display mode. Compose with MergeNarration
// to collapse the resulting adjacent AI entries.
func NarrationOnly(history []models.Message) []models.Message {
	out := make([]models.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role != models.RoleAI {
			continue
		}
		out = append(out, msg)
	}
	return out
}
