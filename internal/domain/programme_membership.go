package domain

import (
	"strings"
	"time"
)

// Curriculum is one curriculum attached to a programme membership.
type Curriculum struct {
	CurriculumSubType   string `json:"curriculumSubType"`
	CurriculumSpecialty string `json:"curriculumSpecialty"`
}

// ConditionsOfJoining carries the signing state of a programme's CoJ.
type ConditionsOfJoining struct {
	SyncedAt *time.Time `json:"syncedAt,omitempty"`
}

// ProgrammeMembership is a full programme-membership snapshot as delivered
// on the programme-membership-updated queue.
type ProgrammeMembership struct {
	TisID               string               `json:"tisId"`
	PersonID            string               `json:"personId"`
	ProgrammeName       string               `json:"programmeName"`
	ProgrammeNumber     string               `json:"programmeNumber"`
	StartDate           ISODate              `json:"startDate"`
	ManagingDeanery     string               `json:"managingDeanery"`
	DesignatedBody      string               `json:"designatedBody"`
	ResponsibleOfficer  string               `json:"responsibleOfficer"`
	Curricula           []Curriculum         `json:"curricula"`
	ConditionsOfJoining *ConditionsOfJoining `json:"conditionsOfJoining,omitempty"`
}

// medicalSubTypes are the curriculum subtypes that make a programme
// notifiable.
var medicalSubTypes = map[string]bool{
	"MEDICAL_CURRICULUM": true,
	"MEDICAL_SPR":        true,
}

// excludedSpecialties suppress notifications for the whole programme when
// any curriculum carries one.
var excludedSpecialties = map[string]bool{
	"PUBLIC HEALTH MEDICINE": true,
	"FOUNDATION":             true,
}

// IsExcluded reports whether the programme membership is excluded from
// notifications. A membership is excluded when it has no curricula, when no
// curriculum has a medical subtype, or when any curriculum is in an excluded
// specialty. Eligibility is a pure function of the snapshot.
func (pm *ProgrammeMembership) IsExcluded() bool {
	if len(pm.Curricula) == 0 {
		return true
	}

	anyMedical := false
	for _, c := range pm.Curricula {
		if medicalSubTypes[strings.ToUpper(c.CurriculumSubType)] {
			anyMedical = true
		}
		if excludedSpecialties[strings.ToUpper(c.CurriculumSpecialty)] {
			return true
		}
	}

	return !anyMedical
}
