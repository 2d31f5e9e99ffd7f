package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"scm/internal/interfaces"
	"scm/internal/models"
)

type sessionEntry struct {
	mu      sync.Mutex
	session models.DraftSession
	deleted bool
}

type draftSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	now      func() time.Time
}

// NewDraftSessionRepository returns an in-memory session store. Each session
// has its own lock, so transitions on one draft are serialized while
// different drafts proceed independently.
func NewDraftSessionRepository() interfaces.DraftSessionRepository {
	return newDraftSessionRepository(func() time.Time { return time.Now().UTC() })
}

func newDraftSessionRepository(now func() time.Time) *draftSessionRepository {
	return &draftSessionRepository{
		sessions: make(map[string]*sessionEntry),
		now:      now,
	}
}

func (r *draftSessionRepository) Create(ctx context.Context, initial models.CampaignCreationState) (*models.DraftSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := r.now()
	entry := &sessionEntry{session: models.DraftSession{
		ID:        uuid.New().String(),
		State:     initial,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	r.mu.Lock()
	r.sessions[entry.session.ID] = entry
	r.mu.Unlock()

	out := entry.session
	return &out, nil
}

func (r *draftSessionRepository) lookup(id string) (*sessionEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.sessions[id]
	return entry, ok
}

func (r *draftSessionRepository) GetByID(ctx context.Context, id string) (*models.DraftSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, ok := r.lookup(id)
	if !ok {
		return nil, interfaces.ErrSessionNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return nil, interfaces.ErrSessionNotFound
	}
	out := entry.session
	return &out, nil
}

func (r *draftSessionRepository) Apply(ctx context.Context, id string, fn interfaces.StateFunc) (*models.DraftSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, ok := r.lookup(id)
	if !ok {
		return nil, interfaces.ErrSessionNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return nil, interfaces.ErrSessionNotFound
	}

	next := fn(entry.session.State)
	if next != entry.session.State {
		entry.session.State = next
		entry.session.UpdatedAt = r.now()
	}
	out := entry.session
	return &out, nil
}

func (r *draftSessionRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}

func (r *draftSessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	entry, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return interfaces.ErrSessionNotFound
	}

	entry.mu.Lock()
	entry.deleted = true
	entry.mu.Unlock()
	return nil
}
