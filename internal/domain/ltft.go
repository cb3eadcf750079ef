package domain

import (
	"encoding/json"
	"time"
)

// LtftContent is the nested application content of an LTFT update event.
type LtftContent struct {
	Name                string                  `json:"name"`
	ProgrammeMembership LtftProgrammeMembership `json:"programmeMembership"`
}

// LtftProgrammeMembership is the programme the LTFT application refers to.
type LtftProgrammeMembership struct {
	DesignatedBodyCode string `json:"designatedBodyCode"`
	ManagingDeanery    string `json:"managingDeanery"`
}

// LtftDiscussions names the people consulted about the application.
type LtftDiscussions struct {
	TpdName  string `json:"tpdName"`
	TpdEmail string `json:"tpdEmail"`
}

// LtftChange is the requested working-pattern change.
type LtftChange struct {
	StartDate ISODate  `json:"startDate"`
	Wte       *float64 `json:"wte,omitempty"`
	CctDate   ISODate  `json:"cctDate"`
}

// LtftUpdateEvent is the flattened view of an LTFT state-machine transition.
// The nested status block of the wire payload is unpacked into the State*
// and ModifiedBy* fields; the detail reason is replaced with its
// human-readable phrase.
type LtftUpdateEvent struct {
	TraineeID   string          `json:"traineeId"`
	FormRef     string          `json:"formRef"`
	FormName    string          `json:"formName"`
	Content     LtftContent     `json:"content"`
	Discussions LtftDiscussions `json:"discussions"`
	Change      LtftChange      `json:"change"`

	State          string    `json:"state"`
	StateTimestamp time.Time `json:"stateTimestamp"`
	StateReason    string    `json:"stateReason"`
	StateMessage   string    `json:"stateMessage"`
	ModifiedByName string    `json:"modifiedByName"`
	ModifiedByRole string    `json:"modifiedByRole"`
}

// ltftWireEvent mirrors the wire shape before flattening. Unknown fields are
// ignored by encoding/json.
type ltftWireEvent struct {
	TraineeID   string          `json:"traineeId"`
	FormRef     string          `json:"formRef"`
	FormName    string          `json:"formName"`
	Content     LtftContent     `json:"content"`
	Discussions LtftDiscussions `json:"discussions"`
	Change      LtftChange      `json:"change"`
	Status      struct {
		Current struct {
			State     string    `json:"state"`
			Timestamp time.Time `json:"timestamp"`
			Detail    struct {
				Reason  string `json:"reason"`
				Message string `json:"message"`
			} `json:"detail"`
			ModifiedBy struct {
				Name string `json:"name"`
				Role string `json:"role"`
			} `json:"modifiedBy"`
		} `json:"current"`
	} `json:"status"`
}

func (e *LtftUpdateEvent) UnmarshalJSON(data []byte) error {
	var wire ltftWireEvent
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	e.TraineeID = wire.TraineeID
	e.FormRef = wire.FormRef
	e.FormName = wire.FormName
	e.Content = wire.Content
	e.Discussions = wire.Discussions
	e.Change = wire.Change
	e.State = wire.Status.Current.State
	e.StateTimestamp = wire.Status.Current.Timestamp
	e.StateReason = LtftReasonText(wire.Status.Current.Detail.Reason)
	e.StateMessage = wire.Status.Current.Detail.Message
	e.ModifiedByName = wire.Status.Current.ModifiedBy.Name
	e.ModifiedByRole = wire.Status.Current.ModifiedBy.Role
	return nil
}

// ltftReasonText maps machine reason codes to the phrases shown in
// templates. Unmapped codes pass through unchanged.
var ltftReasonText = map[string]string{
	"other":            "other reason",
	"changePercentage": "Change WTE percentage",
	"changeStartDate":  "Change start date",
	"changeOfCircs":    "Change of circumstances",
}

// LtftReasonText returns the human-readable phrase for a reason code.
func LtftReasonText(reason string) string {
	if text, ok := ltftReasonText[reason]; ok {
		return text
	}
	return reason
}

// LtftAdminRole is the modifiedBy role distinguishing admin unsubmissions
// from trainee ones.
const LtftAdminRole = "ADMIN"

// NotificationKind maps the event's state to the trainee-channel kind.
// Unrecognised states fall back to LTFT_UPDATED; a missing state is an
// input error.
func (e *LtftUpdateEvent) NotificationKind() (NotificationKind, error) {
	switch e.State {
	case "":
		return "", ErrMissingLtftState
	case "APPROVED":
		return KindLtftApproved, nil
	case "SUBMITTED":
		return KindLtftSubmitted, nil
	case "UNSUBMITTED":
		if e.ModifiedByRole == LtftAdminRole {
			return KindLtftAdminUnsubmitted, nil
		}
		return KindLtftUnsubmitted, nil
	case "WITHDRAWN":
		return KindLtftWithdrawn, nil
	case "REJECTED":
		return KindLtftRejected, nil
	default:
		return KindLtftUpdated, nil
	}
}

// TpdNotificationKind maps the event's state to the TPD-channel kind. Only
// approvals and submissions notify the TPD; ok is false otherwise.
func (e *LtftUpdateEvent) TpdNotificationKind() (NotificationKind, bool) {
	switch e.State {
	case "APPROVED":
		return KindLtftApprovedTpd, true
	case "SUBMITTED":
		return KindLtftSubmittedTpd, true
	default:
		return "", false
	}
}
