package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"scm/internal/models"
)

func TestRecordTransition(t *testing.T) {
	m := New(prometheus.NewRegistry(), &fakeCounter{})
	m.RecordTransition(models.EventPublish, models.StatusReadyToPublish, models.StatusPublished)
	m.RecordTransition(models.EventPublish, models.StatusReadyToPublish, models.StatusPublished)

	got := testutil.ToFloat64(m.Transitions.WithLabelValues("PUBLISH", "ready_to_publish", "published"))
	assert.Equal(t, 2.0, got)
}

func TestRecordValidationCountsCodes(t *testing.T) {
	m := New(prometheus.NewRegistry(), &fakeCounter{})
	m.RecordValidation(&models.Invalid{
		Draft: models.NewEmptyDraft(),
		Errors: models.NewErrorList(
			models.ValidationError{Code: models.CodeEmptyName},
			models.ValidationError{Code: models.CodeInvalidTimeFormat},
			models.ValidationError{Code: models.CodeInvalidTimeFormat},
		),
	})
	m.RecordValidation(&models.ReadyToPublish{Draft: models.NewEmptyDraft()})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationOutcomes.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationOutcomes.WithLabelValues("ready_to_publish")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationErrors.WithLabelValues("INVALID_TIME_FORMAT")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordTransition(models.EventValidate, models.StatusEditing, models.StatusValidating)
		m.RecordValidation(&models.Idle{})
	})
}

type fakeCounter struct {
	n   int
	err error
}

var _ SessionCounter = (*fakeCounter)(nil)

func (f *fakeCounter) Count(ctx context.Context) (int, error) { return f.n, f.err }

func TestSessionsActiveReadsStore(t *testing.T) {
	store := &fakeCounter{n: 3}
	m := New(prometheus.NewRegistry(), store)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SessionsActive))

	store.n = 1
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsActive))

	store.err = errors.New("store unavailable")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SessionsActive))
}
