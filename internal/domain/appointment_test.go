package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointment_ReservationRef(t *testing.T) {
	appt := &Appointment{ID: 42}
	assert.Equal(t, "apt_42", appt.ReservationRef())
}

func TestAppointment_DateAndStartTime(t *testing.T) {
	appt := &Appointment{StartAt: time.Date(2026, 2, 15, 13, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2026-02-15", appt.Date())
	assert.Equal(t, "13:00", appt.StartTimeString())
}

func TestEquipmentSummaryFor(t *testing.T) {
	req, _ := RequirementFor(ReasonFracture)
	summary := EquipmentSummaryFor(req)
	require.NotNil(t, summary)
	assert.Equal(t, EquipXRayMachine, *summary)
}

func TestEquipmentSummaryFor_MultipleKeysSorted(t *testing.T) {
	req := Requirement{
		Equipment: map[string]int{EquipXRayMachine: 1, EquipLabAnalyzer: 1},
	}
	summary := EquipmentSummaryFor(req)
	require.NotNil(t, summary)
	assert.Equal(t, "lab_analyzer,x_ray_machine", *summary)
}

func TestEquipmentSummaryFor_NoEquipment(t *testing.T) {
	req, _ := RequirementFor(ReasonWellnessExam)
	assert.Nil(t, EquipmentSummaryFor(req))
}
