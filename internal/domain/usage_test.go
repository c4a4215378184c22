package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlotUsage_SplitShape(t *testing.T) {
	rows := []AppointmentRow{
		{Date: "2026-02-15", StartTime: "09:00", ReasonKey: "wellness_exam"},
		{Date: "2026-02-15", StartTime: "09:00:00", ReasonKey: "follow_up"}, // seconds trimmed
	}

	usage := BuildSlotUsage(rows)

	bucket := usage.Lookup("2026-02-15", "09:00")
	require.NotNil(t, bucket)
	assert.Equal(t, 2, bucket.Rooms[RoomCheckup])
}

func TestBuildSlotUsage_CombinedShape(t *testing.T) {
	rows := []AppointmentRow{
		{StartAt: "2026-02-15 09:00:00", ReasonKey: "wellness_exam"},
		{StartAt: "2026-02-15 13:00", ReasonKey: "fracture"},
		{StartAt: "2026-02-16T09:00:00", ReasonKey: "sick_visit"},
	}

	usage := BuildSlotUsage(rows)

	require.NotNil(t, usage.Lookup("2026-02-15", "09:00"))
	assert.Equal(t, 1, usage.Lookup("2026-02-15", "09:00").Rooms[RoomCheckup])

	fracture := usage.Lookup("2026-02-15", "13:00")
	require.NotNil(t, fracture)
	assert.Equal(t, 1, fracture.Rooms[RoomImaging])
	assert.Equal(t, 1, fracture.Equipment[EquipXRayMachine])

	assert.NotNil(t, usage.Lookup("2026-02-16", "09:00"))
}

func TestBuildSlotUsage_SkipsUnresolvableRows(t *testing.T) {
	rows := []AppointmentRow{
		{ReasonKey: "wellness_exam"},                                      // neither shape
		{Date: "2026-02-15", ReasonKey: "wellness_exam"},                  // missing start time
		{StartAt: "not a timestamp", ReasonKey: "wellness_exam"},          // unparseable
		{Date: "15.02.2026", StartTime: "09:00", ReasonKey: "sick_visit"}, // bad date form
		{Date: "2026-02-15", StartTime: "09:00", ReasonKey: "wellness_exam"},
	}

	usage := BuildSlotUsage(rows)

	require.Len(t, usage, 1)
	assert.Equal(t, 1, usage.Lookup("2026-02-15", "09:00").Rooms[RoomCheckup])
}

func TestBuildSlotUsage_SkipsUnknownReasons(t *testing.T) {
	rows := []AppointmentRow{
		{Date: "2026-02-15", StartTime: "09:00", ReasonKey: "grooming"},
		{Date: "2026-02-15", StartTime: "09:00", ReasonKey: "wellness_exam"},
	}

	usage := BuildSlotUsage(rows)

	assert.Equal(t, 1, usage.Lookup("2026-02-15", "09:00").Rooms[RoomCheckup])
}

func TestBuildSlotUsage_EmptyRequirementLeavesZeroUsage(t *testing.T) {
	rows := []AppointmentRow{
		{Date: "2026-02-15", StartTime: "09:00", ReasonKey: "medication_refill"},
	}

	usage := BuildSlotUsage(rows)

	bucket := usage.Lookup("2026-02-15", "09:00")
	require.NotNil(t, bucket)
	assert.Empty(t, bucket.Rooms)
	assert.Empty(t, bucket.Equipment)
}

func TestSlotUsageMap_LookupMissingSlot(t *testing.T) {
	usage := BuildSlotUsage(nil)
	assert.Nil(t, usage.Lookup("2026-02-15", "09:00"))
}

func TestAppointment_ToUsageRow(t *testing.T) {
	appt := &Appointment{
		ReasonKey: ReasonSickVisit,
		StartAt:   time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	}

	row := appt.ToUsageRow()
	assert.Equal(t, "2026-02-15 09:00:00", row.StartAt)

	usage := BuildSlotUsage([]AppointmentRow{row})
	require.NotNil(t, usage.Lookup("2026-02-15", "09:00"))
}
