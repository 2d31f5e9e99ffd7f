package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"scm/internal/handlers"
	"scm/internal/interfaces"
	"scm/internal/metrics"
)

func RegisterDraftRoutes(router chi.Router, sessions interfaces.DraftSessionRepository, m *metrics.Metrics, log logrus.FieldLogger) {
	draftHandler := handlers.NewDraftHandler(sessions, m, log)

	router.Route("/drafts", func(r chi.Router) {
		r.Post("/", draftHandler.CreateDraft)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", draftHandler.GetDraft)
			r.Put("/", draftHandler.UpdateDraft)
			r.Delete("/", draftHandler.DeleteDraft)
			r.Post("/validate", draftHandler.ValidateDraft)
			r.Post("/publish", draftHandler.PublishDraft)
			r.Post("/events", draftHandler.DispatchEvent)
		})
	})
}
