package domain

import "fmt"

// NotificationKind names a notification template family. The value is
// persisted on History rows and embedded in scheduler job ids.
type NotificationKind string

const (
	// Programme milestone emails, anchored to the programme start date.
	KindProgrammeUpdatedWeek8 NotificationKind = "PROGRAMME_UPDATED_WEEK_8"
	KindProgrammeUpdatedWeek4 NotificationKind = "PROGRAMME_UPDATED_WEEK_4"
	KindProgrammeUpdatedWeek1 NotificationKind = "PROGRAMME_UPDATED_WEEK_1"
	KindProgrammeUpdatedWeek0 NotificationKind = "PROGRAMME_UPDATED_WEEK_0"

	// Placement milestone email.
	KindPlacementUpdatedWeek12 NotificationKind = "PLACEMENT_UPDATED_WEEK_12"

	// Programme in-app notifications.
	KindEPortfolio         NotificationKind = "E_PORTFOLIO"
	KindIndemnityInsurance NotificationKind = "INDEMNITY_INSURANCE"
	KindLtft               NotificationKind = "LTFT"
	KindDeferral           NotificationKind = "DEFERRAL"
	KindSponsorship        NotificationKind = "SPONSORSHIP"
	KindDayOne             NotificationKind = "DAY_ONE"

	// Account lifecycle.
	KindWelcome         NotificationKind = "WELCOME"
	KindEmailUpdatedNew NotificationKind = "EMAIL_UPDATED_NEW"
	KindEmailUpdatedOld NotificationKind = "EMAIL_UPDATED_OLD"

	// Conditions of joining.
	KindCojConfirmation NotificationKind = "COJ_CONFIRMATION"

	// Forms.
	KindFormUpdated NotificationKind = "FORM_UPDATED"

	// GMC registration.
	KindGmcUpdated         NotificationKind = "GMC_UPDATED"
	KindGmcRejectedTrainee NotificationKind = "GMC_REJECTED_TRAINEE"
	KindGmcRejectedLo      NotificationKind = "GMC_REJECTED_LO"

	// LTFT application lifecycle.
	KindLtftApproved         NotificationKind = "LTFT_APPROVED"
	KindLtftApprovedTpd      NotificationKind = "LTFT_APPROVED_TPD"
	KindLtftSubmitted        NotificationKind = "LTFT_SUBMITTED"
	KindLtftSubmittedTpd     NotificationKind = "LTFT_SUBMITTED_TPD"
	KindLtftAdminUnsubmitted NotificationKind = "LTFT_ADMIN_UNSUBMITTED"
	KindLtftUnsubmitted      NotificationKind = "LTFT_UNSUBMITTED"
	KindLtftWithdrawn        NotificationKind = "LTFT_WITHDRAWN"
	KindLtftRejected         NotificationKind = "LTFT_REJECTED"
	KindLtftUpdated          NotificationKind = "LTFT_UPDATED"
)

// ProgrammeUpdateKinds are the time-anchored programme milestone emails, in
// anchor order from earliest to the start date itself.
var ProgrammeUpdateKinds = []NotificationKind{
	KindProgrammeUpdatedWeek8,
	KindProgrammeUpdatedWeek4,
	KindProgrammeUpdatedWeek1,
	KindProgrammeUpdatedWeek0,
}

// ProgrammeInAppKinds are the in-app rows created alongside a programme plan.
var ProgrammeInAppKinds = []NotificationKind{
	KindEPortfolio,
	KindIndemnityInsurance,
	KindLtft,
	KindDeferral,
	KindSponsorship,
	KindDayOne,
}

// MilestoneDaysBefore is the number of days before the programme start date
// at which each milestone email fires.
var MilestoneDaysBefore = map[NotificationKind]int{
	KindProgrammeUpdatedWeek8: 56,
	KindProgrammeUpdatedWeek4: 28,
	KindProgrammeUpdatedWeek1: 7,
	KindProgrammeUpdatedWeek0: 0,
}

// PlacementMilestoneDaysBefore is the single placement milestone offset.
const PlacementMilestoneDaysBefore = 84

// JobID derives the scheduler job key for a notification kind and entity id.
// One job per (kind, entity) may exist at a time.
func JobID(kind NotificationKind, tisID string) string {
	return fmt.Sprintf("%s-%s", kind, tisID)
}
