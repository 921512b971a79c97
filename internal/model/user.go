package model

// UserDoc is the per-user document held by the store: one row per Telegram
// user id, language preference plus the durable financial records.
type UserDoc struct {
	UserID   int64     `json:"user_id"`
	Language string    `json:"language"`
	Profile  *Profile  `json:"profile,omitempty"`
	Goals    []Goal    `json:"goals"`
	Expenses []Expense `json:"expenses"`
}

// DefaultUserDoc is what callers get for users the store has never seen,
// and what reads fall back to when the store is unreachable.
func DefaultUserDoc(userID int64, language string) *UserDoc {
	return &UserDoc{
		UserID:   userID,
		Language: language,
		Goals:    []Goal{},
		Expenses: []Expense{},
	}
}

// UserPatch is a shallow merge applied to a UserDoc: only non-nil fields are
// written, last write wins per field.
type UserPatch struct {
	Language *string    `json:"language,omitempty"`
	Profile  *Profile   `json:"profile,omitempty"`
	Goals    *[]Goal    `json:"goals,omitempty"`
	Expenses *[]Expense `json:"expenses,omitempty"`
}

// Apply merges the patch into the document.
func (p UserPatch) Apply(doc *UserDoc) {
	if p.Language != nil {
		doc.Language = *p.Language
	}
	if p.Profile != nil {
		doc.Profile = p.Profile
	}
	if p.Goals != nil {
		doc.Goals = *p.Goals
	}
	if p.Expenses != nil {
		doc.Expenses = *p.Expenses
	}
}
