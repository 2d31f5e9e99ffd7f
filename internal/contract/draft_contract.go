// Package contract is the admission gate for draft data coming from outside
// the process. It checks shape and format only; business rules such as date
// ordering and slot overlap stay in the rules package.
package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"scm/internal/models"
	"scm/internal/rules"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeSlotInput mirrors models.TimeSlot.
type TimeSlotInput struct {
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
}

// MediaAssetInput mirrors models.MediaAsset.
type MediaAssetInput struct {
	URL      string  `json:"url" validate:"required,url"`
	Type     string  `json:"type" validate:"required,oneof=image video"`
	SizeInMB float64 `json:"sizeInMb" validate:"gte=0"`
}

// DraftInput is the untrusted, field-for-field shape of a campaign draft.
type DraftInput struct {
	Name       string          `json:"name" validate:"required,notblank"`
	StartDate  string          `json:"startDate" validate:"required,iso8601"`
	EndDate    string          `json:"endDate" validate:"required,iso8601"`
	ScreenIDs  []string        `json:"screenIds" validate:"required,min=1,dive,required,notblank"`
	TimeSlots  []TimeSlotInput `json:"timeSlots" validate:"dive"`
	MediaAsset MediaAssetInput `json:"mediaAsset"`
}

// FieldViolation describes one field that failed the contract.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ContractError lists every field of an input that broke the contract.
type ContractError struct {
	Violations []FieldViolation `json:"violations"`
}

func (e *ContractError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "draft contract violated: " + strings.Join(parts, "; ")
}

// Validator checks DraftInput values. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	mustRegister(v, "iso8601", func(fl validator.FieldLevel) bool {
		_, err := rules.ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("contract: register %s: %v", tag, err))
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Parse checks input and, if it conforms, converts it into a draft. On failure
// the returned error is a *ContractError naming every violated field.
func (v *Validator) Parse(input DraftInput) (*models.CampaignDraft, error) {
	if err := v.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, newContractError(verrs)
		}
		return nil, fmt.Errorf("validate draft input: %w", err)
	}
	return input.toDraft(), nil
}

// Struct checks any tagged request struct against the same tag set, including
// the custom notblank, iso8601 and hhmm tags.
func (v *Validator) Struct(req any) error {
	return v.validate.Struct(req)
}

// ParseJSON decodes body as a DraftInput and parses it.
func (v *Validator) ParseJSON(body []byte) (*models.CampaignDraft, error) {
	var input DraftInput
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, &ContractError{Violations: []FieldViolation{{
			Field:   "body",
			Rule:    "json",
			Message: "malformed JSON: " + err.Error(),
		}}}
	}
	return v.Parse(input)
}

func (in DraftInput) toDraft() *models.CampaignDraft {
	slots := make([]models.TimeSlot, 0, len(in.TimeSlots))
	for _, s := range in.TimeSlots {
		slots = append(slots, models.TimeSlot{StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return &models.CampaignDraft{
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		ScreenIDs: append([]string(nil), in.ScreenIDs...),
		TimeSlots: slots,
		MediaAsset: models.MediaAsset{
			URL:      in.MediaAsset.URL,
			Type:     models.MediaType(in.MediaAsset.Type),
			SizeInMB: in.MediaAsset.SizeInMB,
		},
	}
}

func newContractError(verrs validator.ValidationErrors) *ContractError {
	out := &ContractError{Violations: make([]FieldViolation, 0, len(verrs))}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name: "DraftInput.mediaAsset.url" -> "mediaAsset.url".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		return "must contain at least " + fe.Param() + " item(s)"
	case "iso8601":
		return "must be an ISO-8601 date"
	case "hhmm":
		return "must be a 24-hour HH:mm time"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
