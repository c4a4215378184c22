package domain

import (
	"strconv"
	"strings"
	"time"
)

// Appointment represents a committed booking. Created exclusively by the
// booking transaction; the availability path only reads it. Rows are never
// mutated by this service, only deleted by staff tooling.
type Appointment struct {
	ID            int64
	UserEmail     string
	VetID         *int64
	PetID         *int64
	ReasonKey     ReasonKey
	ReasonDetails *string
	StartAt       time.Time // slot date + start time combined

	// EquipmentSummary is the comma-joined list of normalized equipment
	// keys the reason required at booking time, NULL when the reason
	// holds no equipment. Kept parseable so historical equipment usage
	// stays readable.
	EquipmentSummary *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Date returns the appointment's calendar date in YYYY-MM-DD form.
func (a *Appointment) Date() string {
	return a.StartAt.Format(DateFormat)
}

// StartTimeString returns the appointment's start time in HH:MM form.
func (a *Appointment) StartTimeString() string {
	return a.StartAt.Format(TimeFormat)
}

// ReservationRef is the public reference handed to the client, "apt_<id>".
func (a *Appointment) ReservationRef() string {
	return ReservationRefPrefix + strconv.FormatInt(a.ID, 10)
}

// EquipmentSummaryFor builds the persisted equipment summary for a reason's
// requirement: sorted normalized keys joined by ",", or nil for an empty
// equipment demand.
func EquipmentSummaryFor(req Requirement) *string {
	keys := req.EquipmentKeys()
	if len(keys) == 0 {
		return nil
	}
	s := strings.Join(keys, ",")
	return &s
}

// ToUsageRow converts a stored appointment into the loose row shape the
// usage aggregator folds over, using the combined-timestamp form.
func (a *Appointment) ToUsageRow() AppointmentRow {
	return AppointmentRow{
		StartAt:   a.StartAt.Format(DateTimeFormat),
		ReasonKey: string(a.ReasonKey),
	}
}
