// internal/models/campaign_draft.go
package models

// MaxMediaSizeMB is the largest media asset a campaign may carry.
const MaxMediaSizeMB = 50.0

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// IsAllowed reports whether t is one of the accepted media types.
func (t MediaType) IsAllowed() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo:
		return true
	default:
		return false
	}
}

// TimeSlot is a daily airing window, both ends in 24-hour HH:mm.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type MediaAsset struct {
	URL      string    `json:"url"`
	Type     MediaType `json:"type"`
	SizeInMB float64   `json:"sizeInMb"`
}

// CampaignDraft is the working copy of a campaign being authored. Nothing in
// the type guarantees the business rules; see the rules package.
type CampaignDraft struct {
	Name       string     `json:"name"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	ScreenIDs  []string   `json:"screenIds"`
	TimeSlots  []TimeSlot `json:"timeSlots"`
	MediaAsset MediaAsset `json:"mediaAsset"`
}

// NewEmptyDraft returns the draft a fresh creation flow starts with: blank
// fields, a single empty screen placeholder and no time slots.
func NewEmptyDraft() *CampaignDraft {
	return &CampaignDraft{
		ScreenIDs: []string{""},
		TimeSlots: []TimeSlot{},
	}
}
