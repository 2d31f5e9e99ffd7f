// Package machine is the campaign creation lifecycle: a pure transition
// function from (state, event) to the next state.
package machine

import "scm/internal/models"

// Initial is the state a new creation flow starts in.
func Initial() models.CampaignCreationState {
	return &models.Idle{}
}

// Transition returns the successor of state under evt. It is total: any pair
// without a defined edge returns state itself, unchanged. SYSTEM_ERROR wins
// over everything, including the terminal states.
func Transition(state models.CampaignCreationState, evt models.Event) models.CampaignCreationState {
	if sysErr, ok := evt.(models.SystemErrorEvent); ok {
		return &models.Failed{Message: sysErr.Error.Message}
	}

	switch st := state.(type) {
	case *models.Idle:
		if _, ok := evt.(models.StartCreation); ok {
			return &models.Editing{Draft: models.NewEmptyDraft()}
		}
	case *models.Editing:
		switch e := evt.(type) {
		case models.UpdateDraft:
			if e.Draft != nil {
				return &models.Editing{Draft: e.Draft}
			}
		case models.Validate:
			return &models.Validating{Draft: st.Draft}
		}
	case *models.Validating:
		if e, ok := evt.(models.ValidationResultEvent); ok {
			return fromResult(st, e.Result)
		}
	case *models.Invalid:
		if e, ok := evt.(models.UpdateDraft); ok && e.Draft != nil {
			return &models.Editing{Draft: e.Draft}
		}
	case *models.ConflictDetected:
		if e, ok := evt.(models.UpdateDraft); ok && e.Draft != nil {
			return &models.Editing{Draft: e.Draft}
		}
	case *models.ReadyToPublish:
		if e, ok := evt.(models.Publish); ok {
			return &models.Published{CampaignID: e.CampaignID}
		}
	case *models.Published, *models.Failed:
		// terminal
	}
	return state
}

func fromResult(st *models.Validating, result models.ValidationResult) models.CampaignCreationState {
	switch r := result.(type) {
	case models.InvalidResult:
		return &models.Invalid{Draft: st.Draft, Errors: r.Errors}
	case models.ConflictResult:
		return &models.ConflictDetected{Draft: st.Draft}
	case models.ValidResult:
		return &models.ReadyToPublish{Draft: st.Draft}
	default:
		return st
	}
}
