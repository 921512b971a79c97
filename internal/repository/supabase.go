package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/supabase-community/supabase-go"

	"github.com/reach-sg/reach-bot/internal/model"
)

// userRow is the shape of the users table: scalar columns plus jsonb payloads.
type userRow struct {
	UserID   int64           `json:"user_id"`
	Language string          `json:"language"`
	Profile  json.RawMessage `json:"profile,omitempty"`
	Goals    json.RawMessage `json:"goals,omitempty"`
	Expenses json.RawMessage `json:"expenses,omitempty"`
}

type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(url, key string) (*SupabaseRepository, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, err
	}

	return &SupabaseRepository{client: client}, nil
}

func (r *SupabaseRepository) GetUser(ctx context.Context, userID int64) (*model.UserDoc, error) {
	data, _, err := r.client.From("users").
		Select("*", "", false).
		Eq("user_id", strconv.FormatInt(userID, 10)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	var rows []userRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse user %d: %w", userID, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return rowToDoc(rows[0])
}

// MergeUser reads the current document, applies the patch and upserts the
// whole row. Last write wins per call; the store has no transactions.
func (r *SupabaseRepository) MergeUser(ctx context.Context, userID int64, patch model.UserPatch) error {
	doc, err := r.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		doc = model.DefaultUserDoc(userID, "")
	}
	patch.Apply(doc)

	row, err := docToRow(doc)
	if err != nil {
		return err
	}

	_, _, err = r.client.From("users").
		Insert(row, true, "user_id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to merge user %d: %w", userID, err)
	}
	return nil
}

func rowToDoc(row userRow) (*model.UserDoc, error) {
	doc := &model.UserDoc{
		UserID:   row.UserID,
		Language: row.Language,
		Goals:    []model.Goal{},
		Expenses: []model.Expense{},
	}
	if len(row.Profile) > 0 {
		if err := json.Unmarshal(row.Profile, &doc.Profile); err != nil {
			return nil, fmt.Errorf("failed to parse profile for user %d: %w", row.UserID, err)
		}
	}
	if len(row.Goals) > 0 {
		if err := json.Unmarshal(row.Goals, &doc.Goals); err != nil {
			return nil, fmt.Errorf("failed to parse goals for user %d: %w", row.UserID, err)
		}
	}
	if len(row.Expenses) > 0 {
		if err := json.Unmarshal(row.Expenses, &doc.Expenses); err != nil {
			return nil, fmt.Errorf("failed to parse expenses for user %d: %w", row.UserID, err)
		}
	}
	return doc, nil
}

func docToRow(doc *model.UserDoc) (userRow, error) {
	row := userRow{
		UserID:   doc.UserID,
		Language: doc.Language,
	}
	var err error
	if doc.Profile != nil {
		if row.Profile, err = json.Marshal(doc.Profile); err != nil {
			return row, fmt.Errorf("failed to encode profile: %w", err)
		}
	}
	if row.Goals, err = json.Marshal(doc.Goals); err != nil {
		return row, fmt.Errorf("failed to encode goals: %w", err)
	}
	if row.Expenses, err = json.Marshal(doc.Expenses); err != nil {
		return row, fmt.Errorf("failed to encode expenses: %w", err)
	}
	return row, nil
}
