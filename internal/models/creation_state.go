// internal/models/creation_state.go
package models

// Status is the discriminant of a CampaignCreationState.
type Status string

const (
	StatusIdle             Status = "idle"
	StatusEditing          Status = "editing"
	StatusValidating       Status = "validating"
	StatusInvalid          Status = "invalid"
	StatusConflictDetected Status = "conflict_detected"
	StatusReadyToPublish   Status = "ready_to_publish"
	StatusPublished        Status = "published"
	StatusError            Status = "error"
)

func AllStatuses() []Status {
	return []Status{
		StatusIdle,
		StatusEditing,
		StatusValidating,
		StatusInvalid,
		StatusConflictDetected,
		StatusReadyToPublish,
		StatusPublished,
		StatusError,
	}
}

func (s Status) IsValid() bool {
	for _, status := range AllStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no lifecycle event leads out of s.
func (s Status) IsTerminal() bool {
	return s == StatusPublished || s == StatusError
}

// CampaignCreationState is exactly one of the lifecycle variants below. The
// interface is sealed; variants are always handled through pointers so an
// unchanged state can be recognised by identity.
type CampaignCreationState interface {
	Status() Status
	creationState()
}

type Idle struct{}

type Editing struct {
	Draft *CampaignDraft
}

type Validating struct {
	Draft *CampaignDraft
}

type Invalid struct {
	Draft  *CampaignDraft
	Errors ErrorList
}

type ConflictDetected struct {
	Draft *CampaignDraft
}

type ReadyToPublish struct {
	Draft *CampaignDraft
}

// Published keeps only the identifier assigned by the publisher; the draft is
// dropped.
type Published struct {
	CampaignID string
}

// Failed is the "error" variant.
type Failed struct {
	Message string
}

func (*Idle) Status() Status             { return StatusIdle }
func (*Editing) Status() Status          { return StatusEditing }
func (*Validating) Status() Status       { return StatusValidating }
func (*Invalid) Status() Status          { return StatusInvalid }
func (*ConflictDetected) Status() Status { return StatusConflictDetected }
func (*ReadyToPublish) Status() Status   { return StatusReadyToPublish }
func (*Published) Status() Status        { return StatusPublished }
func (*Failed) Status() Status           { return StatusError }

func (*Idle) creationState()             {}
func (*Editing) creationState()          {}
func (*Validating) creationState()       {}
func (*Invalid) creationState()          {}
func (*ConflictDetected) creationState() {}
func (*ReadyToPublish) creationState()   {}
func (*Published) creationState()        {}
func (*Failed) creationState()           {}

// DraftOf returns the draft carried by s, or nil for variants without one.
func DraftOf(s CampaignCreationState) *CampaignDraft {
	switch st := s.(type) {
	case *Editing:
		return st.Draft
	case *Validating:
		return st.Draft
	case *Invalid:
		return st.Draft
	case *ConflictDetected:
		return st.Draft
	case *ReadyToPublish:
		return st.Draft
	default:
		return nil
	}
}
