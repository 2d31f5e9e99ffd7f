// internal/handlers/draft_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"scm/internal/contract"
	"scm/internal/interfaces"
	"scm/internal/machine"
	"scm/internal/metrics"
	authmw "scm/internal/middleware"
	"scm/internal/models"
	"scm/internal/services"
)

const maxBodyBytes = 1 << 20

type PublishRequest struct {
	CampaignID string `json:"campaignId" validate:"required,notblank"`
}

// EventRequest is the generic event surface. VALIDATION_RESULT is internal to
// the validate use case and cannot be sent from outside.
type EventRequest struct {
	Type       models.EventType    `json:"type" validate:"required,oneof=START_CREATION UPDATE_DRAFT VALIDATE PUBLISH SYSTEM_ERROR"`
	Draft      json.RawMessage     `json:"draft,omitempty" swaggertype:"object"`
	CampaignID string              `json:"campaignId,omitempty"`
	Error      *models.SystemError `json:"error,omitempty"`
}

// payloadError reports a missing payload for event types that carry one.
func (req EventRequest) payloadError() string {
	switch req.Type {
	case models.EventPublish:
		if strings.TrimSpace(req.CampaignID) == "" {
			return "campaignId is required for PUBLISH"
		}
	case models.EventSystemError:
		if req.Error == nil || strings.TrimSpace(req.Error.Message) == "" {
			return "error.message is required for SYSTEM_ERROR"
		}
	case models.EventUpdateDraft:
		if len(req.Draft) == 0 {
			return "draft is required for UPDATE_DRAFT"
		}
	}
	return ""
}

type DraftHandler struct {
	repo     interfaces.DraftSessionRepository
	contract *contract.Validator
	metrics  *metrics.Metrics
	log      logrus.FieldLogger
}

func NewDraftHandler(repo interfaces.DraftSessionRepository, m *metrics.Metrics, log logrus.FieldLogger) *DraftHandler {
	return &DraftHandler{
		repo:     repo,
		contract: contract.NewValidator(),
		metrics:  m,
		log:      log,
	}
}

// CreateDraft handles POST /api/v1/drafts
// @Tags Drafts
// @Summary Start a campaign draft
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.DraftSessionResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/drafts [post]
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	session, err := h.repo.Create(r.Context(), machine.Initial())
	if err != nil {
		h.log.WithError(err).Error("create draft session")
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_draft_failed", "Failed to create draft")
		return
	}

	session, ok := h.dispatch(w, r, session.ID, models.StartCreation{})
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, session.Response())
}

// GetDraft handles GET /api/v1/drafts/{id}
// @Tags Drafts
// @Summary Get a campaign draft
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} models.DraftSessionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/drafts/{id} [get]
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeRepoError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Response())
}

// UpdateDraft handles PUT /api/v1/drafts/{id}. The body is untrusted draft
// data and must pass the draft contract before it reaches the state machine.
// @Tags Drafts
// @Summary Replace the draft content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param draft body contract.DraftInput true "Draft content"
// @Success 200 {object} models.DraftSessionResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/drafts/{id} [put]
func (h *DraftHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	draft, ok := h.admitDraft(w, id, body)
	if !ok {
		return
	}
	session, ok := h.dispatch(w, r, id, models.UpdateDraft{Draft: draft})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Response())
}

// ValidateDraft handles POST /api/v1/drafts/{id}/validate
// @Tags Drafts
// @Summary Validate the draft against the campaign rules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} models.DraftSessionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/drafts/{id}/validate [post]
func (h *DraftHandler) ValidateDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, ok := h.validate(w, r, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Response())
}

// PublishDraft handles POST /api/v1/drafts/{id}/publish
// @Tags Drafts
// @Summary Publish a validated draft
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body PublishRequest true "Published campaign"
// @Success 200 {object} models.DraftSessionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/drafts/{id}/publish [post]
func (h *DraftHandler) PublishDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req PublishRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.contract.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "campaignId is required")
		return
	}

	session, ok := h.dispatch(w, r, id, models.Publish{CampaignID: req.CampaignID})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Response())
}

// DispatchEvent handles POST /api/v1/drafts/{id}/events
// @Tags Drafts
// @Summary Dispatch a lifecycle event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param event body EventRequest true "Event"
// @Success 200 {object} models.DraftSessionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/drafts/{id}/events [post]
func (h *DraftHandler) DispatchEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req EventRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.Type == models.EventValidationResult {
		writeJSONErrorResponse(w, http.StatusBadRequest, "event_not_allowed", "VALIDATION_RESULT is emitted by validation only")
		return
	}
	if err := h.contract.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "type must be one of START_CREATION, UPDATE_DRAFT, VALIDATE, PUBLISH, SYSTEM_ERROR")
		return
	}
	if msg := req.payloadError(); msg != "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", msg)
		return
	}

	var (
		session *models.DraftSession
		ok      bool
	)
	switch req.Type {
	case models.EventStartCreation:
		session, ok = h.dispatch(w, r, id, models.StartCreation{})
	case models.EventUpdateDraft:
		var draft *models.CampaignDraft
		if draft, ok = h.admitDraft(w, id, req.Draft); !ok {
			return
		}
		session, ok = h.dispatch(w, r, id, models.UpdateDraft{Draft: draft})
	case models.EventValidate:
		session, ok = h.validate(w, r, id)
	case models.EventPublish:
		session, ok = h.dispatch(w, r, id, models.Publish{CampaignID: req.CampaignID})
	case models.EventSystemError:
		session, ok = h.dispatch(w, r, id, models.SystemErrorEvent{
			Error: models.SystemError{Message: req.Error.Message},
		})
	}
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Response())
}

// DeleteDraft handles DELETE /api/v1/drafts/{id}
// @Tags Drafts
// @Summary Discard a draft
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/drafts/{id} [delete]
func (h *DraftHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.writeRepoError(w, id, err)
		return
	}
	h.log.WithField("session_id", id).Info("draft session discarded")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "draft discarded",
		"id":      id,
	})
}

func (h *DraftHandler) admitDraft(w http.ResponseWriter, id string, body []byte) (*models.CampaignDraft, bool) {
	if len(body) == 0 {
		body = []byte("null")
	}
	draft, err := h.contract.ParseJSON(body)
	if err == nil {
		return draft, true
	}
	var cerr *contract.ContractError
	if errors.As(err, &cerr) {
		h.log.WithFields(logrus.Fields{
			"session_id": id,
			"violations": len(cerr.Violations),
		}).Info("draft rejected at contract")
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "contract_violation",
			"message":    "Draft does not match the contract",
			"violations": cerr.Violations,
		})
		return nil, false
	}
	h.log.WithError(err).WithField("session_id", id).Error("contract check failed")
	writeJSONErrorResponse(w, http.StatusInternalServerError, "contract_check_failed", "Failed to check draft")
	return nil, false
}

// dispatch applies evt to the session's state under the session lock.
func (h *DraftHandler) dispatch(w http.ResponseWriter, r *http.Request, id string, evt models.Event) (*models.DraftSession, bool) {
	var from models.Status
	session, err := h.repo.Apply(r.Context(), id, func(s models.CampaignCreationState) models.CampaignCreationState {
		from = s.Status()
		return machine.Transition(s, evt)
	})
	if err != nil {
		h.writeRepoError(w, id, err)
		return nil, false
	}
	to := session.State.Status()
	h.metrics.RecordTransition(evt.EventType(), from, to)
	h.log.WithFields(logrus.Fields{
		"session_id": id,
		"subject":    authmw.Subject(r.Context()),
		"event":      evt.EventType(),
		"from":       from,
		"to":         to,
	}).Debug("event dispatched")
	return session, true
}

func (h *DraftHandler) validate(w http.ResponseWriter, r *http.Request, id string) (*models.DraftSession, bool) {
	var from models.Status
	session, err := h.repo.Apply(r.Context(), id, func(s models.CampaignCreationState) models.CampaignCreationState {
		from = s.Status()
		return services.ValidateCampaign(s)
	})
	if err != nil {
		h.writeRepoError(w, id, err)
		return nil, false
	}
	to := session.State.Status()
	h.metrics.RecordTransition(models.EventValidate, from, to)
	if from == models.StatusEditing {
		h.metrics.RecordValidation(session.State)
	}
	h.log.WithFields(logrus.Fields{
		"session_id": id,
		"subject":    authmw.Subject(r.Context()),
		"from":       from,
		"to":         to,
	}).Info("draft validated")
	return session, true
}

func (h *DraftHandler) writeRepoError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, interfaces.ErrSessionNotFound) {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "draft not found")
		return
	}
	h.log.WithError(err).WithField("session_id", id).Error("draft session store failed")
	writeJSONErrorResponse(w, http.StatusInternalServerError, "draft_store_failed", "Failed to access draft")
}
