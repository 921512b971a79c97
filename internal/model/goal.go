package model

import (
	"time"

	"github.com/google/uuid"
)

// Goal types offered by the fixed fallback menu. Suggested goals are mapped
// onto one of these for downstream templating.
const (
	GoalSavings    = "savings"
	GoalRemittance = "remittance"
	GoalEducation  = "education"
	GoalHealth     = "health"
	GoalOther      = "other"
)

// Goal is a committed financial goal. The goals list is append-only:
// progress is the only field mutated after creation.
type Goal struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Deadline  time.Time `json:"deadline"`
	Steps     []string  `json:"steps"`
	Progress  float64   `json:"progress"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateID assigns a new UUID if the goal does not have one yet.
func (g *Goal) GenerateID() {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
}

// GoalSuggestion is one personalized goal returned by the advisor.
type GoalSuggestion struct {
	Goal        string `json:"goal"`
	Description string `json:"description"`
	Rationale   string `json:"rationale"`
}
