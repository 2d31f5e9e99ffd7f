package models

type EventType string

const (
	EventStartCreation    EventType = "START_CREATION"
	EventUpdateDraft      EventType = "UPDATE_DRAFT"
	EventValidate         EventType = "VALIDATE"
	EventValidationResult EventType = "VALIDATION_RESULT"
	EventPublish          EventType = "PUBLISH"
	EventSystemError      EventType = "SYSTEM_ERROR"
)

// Event is something a caller dispatches to the creation state machine.
type Event interface {
	EventType() EventType
	event()
}

type StartCreation struct{}

// UpdateDraft replaces the whole draft; merging partial edits is the
// caller's job.
type UpdateDraft struct {
	Draft *CampaignDraft
}

type Validate struct{}

// ValidationResultEvent carries the outcome of a validation cycle. Only the
// validate use case emits it.
type ValidationResultEvent struct {
	Result ValidationResult
}

type Publish struct {
	CampaignID string
}

type SystemErrorEvent struct {
	Error SystemError
}

func (StartCreation) EventType() EventType         { return EventStartCreation }
func (UpdateDraft) EventType() EventType           { return EventUpdateDraft }
func (Validate) EventType() EventType              { return EventValidate }
func (ValidationResultEvent) EventType() EventType { return EventValidationResult }
func (Publish) EventType() EventType               { return EventPublish }
func (SystemErrorEvent) EventType() EventType      { return EventSystemError }

func (StartCreation) event()         {}
func (UpdateDraft) event()           {}
func (Validate) event()              {}
func (ValidationResultEvent) event() {}
func (Publish) event()               {}
func (SystemErrorEvent) event()      {}
