package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"scm/internal/interfaces"
	"scm/internal/machine"
	"scm/internal/models"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newDraftSessionRepository(fixedClock())
	ctx := context.Background()

	created, err := repo.Create(ctx, machine.Initial())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.State.Status() != models.StatusIdle {
		t.Fatalf("status = %s, want %s", got.State.Status(), models.StatusIdle)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestApplyStoresNextState(t *testing.T) {
	repo := newDraftSessionRepository(fixedClock())
	ctx := context.Background()
	created, _ := repo.Create(ctx, machine.Initial())

	updated, err := repo.Apply(ctx, created.ID, func(s models.CampaignCreationState) models.CampaignCreationState {
		return machine.Transition(s, models.StartCreation{})
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if updated.State.Status() != models.StatusEditing {
		t.Fatalf("status = %s, want editing", updated.State.Status())
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to advance")
	}

	noop, err := repo.Apply(ctx, created.ID, func(s models.CampaignCreationState) models.CampaignCreationState {
		return machine.Transition(s, models.Publish{CampaignID: "x"})
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !noop.UpdatedAt.Equal(updated.UpdatedAt) {
		t.Fatalf("no-op should not touch UpdatedAt")
	}
}

func TestMissingSession(t *testing.T) {
	repo := newDraftSessionRepository(fixedClock())
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "nope"); !errors.Is(err, interfaces.ErrSessionNotFound) {
		t.Fatalf("GetByID err = %v", err)
	}
	if _, err := repo.Apply(ctx, "nope", func(s models.CampaignCreationState) models.CampaignCreationState { return s }); !errors.Is(err, interfaces.ErrSessionNotFound) {
		t.Fatalf("Apply err = %v", err)
	}
	if err := repo.Delete(ctx, "nope"); !errors.Is(err, interfaces.ErrSessionNotFound) {
		t.Fatalf("Delete err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newDraftSessionRepository(fixedClock())
	ctx := context.Background()
	created, _ := repo.Create(ctx, machine.Initial())

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, interfaces.ErrSessionNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestApplySerializesPerSession(t *testing.T) {
	repo := newDraftSessionRepository(fixedClock())
	ctx := context.Background()
	created, _ := repo.Create(ctx, machine.Initial())

	var inFlight, maxInFlight, calls int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Apply(ctx, created.ID, func(s models.CampaignCreationState) models.CampaignCreationState {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					m := atomic.LoadInt32(&maxInFlight)
					if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
						break
					}
				}
				atomic.AddInt32(&calls, 1)
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return s
			})
		}()
	}
	wg.Wait()

	if calls != 50 {
		t.Fatalf("calls = %d, want 50", calls)
	}
	if maxInFlight != 1 {
		t.Fatalf("max concurrent applies = %d, want 1", maxInFlight)
	}
}

func TestCanceledContext(t *testing.T) {
	repo := newDraftSessionRepository(fixedClock())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.Create(ctx, machine.Initial()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
