package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResourceKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"checkup_room", "checkup_room"},
		{"checkupRoom", "checkup_room"},
		{"CheckupRoom", "checkup_room"},
		{"Checkup-Room", "checkup_room"},
		{"checkup room", "checkup_room"},
		{"  Checkup  Room  ", "checkup_room"},
		{"X-Ray Machine", "x_ray_machine"},
		{"xRayMachine", "x_ray_machine"},
		{"ultrasound__scanner", "ultrasound_scanner"},
		{"Room 2", "room_2"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeResourceKey(tt.in))
		})
	}
}

func TestNormalizeResourceKey_SpellingsConverge(t *testing.T) {
	spellings := []string{"treatmentRoom", "Treatment Room", "treatment-room", "TREATMENT_ROOM"}
	for _, s := range spellings {
		assert.Equal(t, RoomTreatment, NormalizeResourceKey(s), "spelling %q", s)
	}
}

func TestNormalizeReasonKey(t *testing.T) {
	assert.Equal(t, ReasonWellnessExam, NormalizeReasonKey("Wellness Exam"))
	assert.Equal(t, ReasonFollowUp, NormalizeReasonKey("followUp"))
}
