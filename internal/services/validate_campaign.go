package services

import (
	"scm/internal/machine"
	"scm/internal/models"
	"scm/internal/rules"
)

// BuildResult turns a rule validator's output into a ValidationResult. It never
// reports a conflict; schedule conflicts against other campaigns are not
// computed anywhere yet.
func BuildResult(errs []models.ValidationError) models.ValidationResult {
	list, ok := models.ErrorListFrom(errs)
	if !ok {
		return models.ValidResult{}
	}
	return models.InvalidResult{Errors: list}
}

// ValidateCampaign runs one validation cycle on an editing state and returns
// where the lifecycle lands: invalid or ready_to_publish. Any other state is
// returned unchanged.
func ValidateCampaign(state models.CampaignCreationState) models.CampaignCreationState {
	if _, ok := state.(*models.Editing); !ok {
		return state
	}

	validating, ok := machine.Transition(state, models.Validate{}).(*models.Validating)
	if !ok {
		return state
	}

	result := BuildResult(rules.Validate(validating.Draft))
	return machine.Transition(validating, models.ValidationResultEvent{Result: result})
}
