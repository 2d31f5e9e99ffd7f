// Package rules holds the business rules a campaign draft must satisfy before
// it can be published. Everything here is pure: the same draft always yields
// the same errors, in the same order.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"scm/internal/models"
)

// Rule inspects one business constraint and reports zero or more violations.
type Rule func(draft *models.CampaignDraft) []models.ValidationError

// Rules returns the five draft rules in evaluation order.
func Rules() []Rule {
	return []Rule{
		ValidateName,
		ValidateDateRange,
		ValidateScreenSelection,
		ValidateTimeSlots,
		ValidateMediaAsset,
	}
}

// Validate runs every rule against draft and concatenates the results. An
// empty result means the draft may be published. A nil draft has no fields to
// check and is reported as empty on every rule that needs a value.
func Validate(draft *models.CampaignDraft) []models.ValidationError {
	if draft == nil {
		draft = &models.CampaignDraft{}
	}
	var errs []models.ValidationError
	for _, rule := range Rules() {
		errs = append(errs, rule(draft)...)
	}
	return errs
}

func ValidateName(draft *models.CampaignDraft) []models.ValidationError {
	if strings.TrimSpace(draft.Name) == "" {
		return []models.ValidationError{{
			Code:    models.CodeEmptyName,
			Message: "Campaign name is required",
		}}
	}
	return nil
}

func ValidateDateRange(draft *models.CampaignDraft) []models.ValidationError {
	start, startErr := ParseDate(draft.StartDate)
	end, endErr := ParseDate(draft.EndDate)
	if startErr != nil || endErr != nil {
		return []models.ValidationError{{
			Code:    models.CodeInvalidDateFormat,
			Message: "Start and end dates must be valid ISO-8601 dates",
		}}
	}
	if !start.Before(end) {
		return []models.ValidationError{{
			Code:    models.CodeInvalidDateRange,
			Message: "Start date must be before end date",
		}}
	}
	return nil
}

func ValidateScreenSelection(draft *models.CampaignDraft) []models.ValidationError {
	if len(draft.ScreenIDs) == 0 {
		return []models.ValidationError{{
			Code:    models.CodeEmptyScreenSelection,
			Message: "At least one screen must be selected",
		}}
	}
	return nil
}

type clockRange struct {
	start, end int
}

// ValidateTimeSlots checks each slot on its own, then looks for overlaps only
// when every slot parsed. Touching slots (one ends when the next starts) do
// not overlap.
func ValidateTimeSlots(draft *models.CampaignDraft) []models.ValidationError {
	var errs []models.ValidationError
	ranges := make([]clockRange, 0, len(draft.TimeSlots))
	for i, slot := range draft.TimeSlots {
		start, startErr := ParseClock(slot.StartTime)
		end, endErr := ParseClock(slot.EndTime)
		if startErr != nil || endErr != nil || start >= end {
			errs = append(errs, models.ValidationError{
				Code:    models.CodeInvalidTimeFormat,
				Message: fmt.Sprintf("Time slot %d must use HH:mm with start before end", i+1),
			})
			continue
		}
		ranges = append(ranges, clockRange{start: start, end: end})
	}
	if len(errs) > 0 {
		return errs
	}

	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })
	for i := 1; i < len(ranges); i++ {
		if ranges[i-1].end > ranges[i].start {
			return []models.ValidationError{{
				Code:    models.CodeOverlappingTimeSlots,
				Message: "Time slots must not overlap",
			}}
		}
	}
	return nil
}

func ValidateMediaAsset(draft *models.CampaignDraft) []models.ValidationError {
	var errs []models.ValidationError
	media := draft.MediaAsset
	if media.SizeInMB > models.MaxMediaSizeMB {
		errs = append(errs, models.ValidationError{
			Code:    models.CodeMediaSizeExceedsLimit,
			Message: fmt.Sprintf("Media asset must not exceed %gMB", models.MaxMediaSizeMB),
		})
	}
	if !media.Type.IsAllowed() {
		errs = append(errs, models.ValidationError{
			Code:    models.CodeMediaTypeNotAllowed,
			Message: "Media type must be image or video",
		})
	}
	return errs
}
