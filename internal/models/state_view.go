package models

// StateView is the flat JSON rendering of a CampaignCreationState. Only the
// fields of the active variant are set.
type StateView struct {
	Status     Status            `json:"status"`
	Draft      *CampaignDraft    `json:"draft,omitempty"`
	Errors     []ValidationError `json:"errors,omitempty"`
	CampaignID string            `json:"campaignId,omitempty"`
	Message    string            `json:"message,omitempty"`
}

func ViewOf(s CampaignCreationState) StateView {
	switch st := s.(type) {
	case *Idle:
		return StateView{Status: StatusIdle}
	case *Editing:
		return StateView{Status: StatusEditing, Draft: st.Draft}
	case *Validating:
		return StateView{Status: StatusValidating, Draft: st.Draft}
	case *Invalid:
		return StateView{Status: StatusInvalid, Draft: st.Draft, Errors: st.Errors.Errors()}
	case *ConflictDetected:
		return StateView{Status: StatusConflictDetected, Draft: st.Draft}
	case *ReadyToPublish:
		return StateView{Status: StatusReadyToPublish, Draft: st.Draft}
	case *Published:
		return StateView{Status: StatusPublished, CampaignID: st.CampaignID}
	case *Failed:
		return StateView{Status: StatusError, Message: st.Message}
	default:
		return StateView{}
	}
}
