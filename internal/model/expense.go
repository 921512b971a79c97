package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single logged expense, parsed from free text by the advisor.
// Expenses are append-only and never edited.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// GenerateID assigns a new UUID if the expense does not have one yet.
func (e *Expense) GenerateID() {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
}
