package repository

import (
	"context"
	"errors"

	"github.com/reach-sg/reach-bot/internal/model"
)

// ErrNotFound is returned by GetUser when no document exists for the user.
// Callers substitute model.DefaultUserDoc.
var ErrNotFound = errors.New("user document not found")

// Repository is the document-store collaborator: one document per user id,
// last write wins, no transactions.
type Repository interface {
	// GetUser returns the user's document, or ErrNotFound.
	GetUser(ctx context.Context, userID int64) (*model.UserDoc, error)
	// MergeUser applies a shallow merge of the patch's non-nil fields to the
	// user's document, creating it if absent.
	MergeUser(ctx context.Context, userID int64, patch model.UserPatch) error
}
