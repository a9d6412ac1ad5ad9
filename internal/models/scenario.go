package models

import "time"

// Known scenario keys. The catalog is a closed enumeration seeded at startup.
const (
	ScenarioSpaceColony     = "space-colony"
	ScenarioPostApocalyptic = "post-apocalyptic"
	ScenarioFantasy         = "fantasy"
	ScenarioHistorical      = "historical"
	ScenarioCyberpunk       = "cyberpunk"
)

// Scenario is a read-only narrative template. InitialPrompt seeds the opening
// narration of a new story; SystemInstructions steer the model for every turn.
type Scenario struct {
	Key                string    `db:"key" json:"key"`
	Name               string    `db:"name" json:"name"`
	Description        string    `db:"description" json:"description"`
	Image              string    `db:"image" json:"image"`
	InitialPrompt      string    `db:"initial_prompt" json:"-"`
	SystemInstructions string    `db:"system_instructions" json:"-"`
	CreatedAt          time.Time `db:"created_at" json:"-"`
}
