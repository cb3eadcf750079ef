package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain"
)

func TestProgrammeMembership_IsExcluded(t *testing.T) {
	tests := []struct {
		name      string
		curricula []domain.Curriculum
		excluded  bool
	}{
		{
			name:      "no curricula",
			curricula: nil,
			excluded:  true,
		},
		{
			name: "medical curriculum",
			curricula: []domain.Curriculum{
				{CurriculumSubType: "MEDICAL_CURRICULUM", CurriculumSpecialty: "Cardiology"},
			},
			excluded: false,
		},
		{
			name: "medical spr",
			curricula: []domain.Curriculum{
				{CurriculumSubType: "MEDICAL_SPR", CurriculumSpecialty: "General Practice"},
			},
			excluded: false,
		},
		{
			name: "subtype matched case-insensitively",
			curricula: []domain.Curriculum{
				{CurriculumSubType: "medical_curriculum", CurriculumSpecialty: "Cardiology"},
			},
			excluded: false,
		},
		{
			name: "no medical subtype",
			curricula: []domain.Curriculum{
				{CurriculumSubType: "DENTAL_CURRICULUM", CurriculumSpecialty: "Dental"},
			},
			excluded: true,
		},
		{
			name: "public health medicine specialty excludes the whole membership",
			curricula: []domain.Curriculum{
				{CurriculumSubType: "MEDICAL_CURRICULUM", CurriculumSpecialty: "Cardiology"},
				{CurriculumSubType: "MEDICAL_CURRICULUM", CurriculumSpecialty: "Public Health Medicine"},
			},
			excluded: true,
		},
		{
			name: "foundation specialty excludes the whole membership",
			curricula: []domain.Curriculum{
				{CurriculumSubType: "MEDICAL_CURRICULUM", CurriculumSpecialty: "FOUNDATION"},
			},
			excluded: true,
		},
		{
			name: "mixed subtypes with one medical",
			curricula: []domain.Curriculum{
				{CurriculumSubType: "DENTAL_CURRICULUM", CurriculumSpecialty: "Dental"},
				{CurriculumSubType: "MEDICAL_CURRICULUM", CurriculumSpecialty: "Cardiology"},
			},
			excluded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := &domain.ProgrammeMembership{TisID: "pm-1", Curricula: tt.curricula}
			assert.Equal(t, tt.excluded, pm.IsExcluded())
		})
	}
}

func TestProgrammeMembership_Unmarshal(t *testing.T) {
	payload := `{
		"tisId": "pm-1",
		"personId": "40",
		"programmeName": "General Practice",
		"programmeNumber": "LDN-123",
		"startDate": "2025-09-01",
		"managingDeanery": "London",
		"curricula": [
			{"curriculumSubType": "MEDICAL_CURRICULUM", "curriculumSpecialty": "General Practice"}
		],
		"conditionsOfJoining": {"syncedAt": "2025-06-01T10:00:00Z"},
		"somethingUnknown": 42
	}`

	var pm domain.ProgrammeMembership
	require.NoError(t, json.Unmarshal([]byte(payload), &pm))

	assert.Equal(t, "pm-1", pm.TisID)
	assert.Equal(t, "40", pm.PersonID)
	assert.Equal(t, "General Practice", pm.ProgrammeName)
	assert.Equal(t, "London", pm.ManagingDeanery)
	assert.Equal(t, 2025, pm.StartDate.Year())
	assert.Len(t, pm.Curricula, 1)
	require.NotNil(t, pm.ConditionsOfJoining)
	assert.NotNil(t, pm.ConditionsOfJoining.SyncedAt)
}
