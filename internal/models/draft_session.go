// internal/models/draft_session.go
package models

import "time"

// DraftSession is one caller-held creation flow: an id plus the current
// lifecycle state. It lives in memory only.
type DraftSession struct {
	ID        string
	State     CampaignCreationState
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DraftSessionResponse struct {
	ID        string    `json:"id"`
	State     StateView `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *DraftSession) Response() DraftSessionResponse {
	return DraftSessionResponse{
		ID:        s.ID,
		State:     ViewOf(s.State),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
