// internal/interfaces/draft_session_repository.go
package interfaces

import (
	"context"
	"errors"

	"scm/internal/models"
)

// ErrSessionNotFound is returned when no session exists for an id.
var ErrSessionNotFound = errors.New("draft session not found")

// StateFunc computes the next lifecycle state from the current one.
type StateFunc func(models.CampaignCreationState) models.CampaignCreationState

// DraftSessionRepository holds draft sessions. Apply calls for the same id
// never run concurrently.
type DraftSessionRepository interface {
	Create(ctx context.Context, initial models.CampaignCreationState) (*models.DraftSession, error)
	GetByID(ctx context.Context, id string) (*models.DraftSession, error)
	Apply(ctx context.Context, id string, fn StateFunc) (*models.DraftSession, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
