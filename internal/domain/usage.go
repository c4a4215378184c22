package domain

import (
	"strings"
	"time"

	"github.com/kc-frost/vet-clinic/pkg/types"
)

// AppointmentRow is the loose shape appointment records arrive in from the
// store. Two shapes occur: a pre-split date + start time pair, or a single
// combined StartAt timestamp string. Exactly one of the shapes must
// resolve for the row to count.
type AppointmentRow struct {
	Date      string // YYYY-MM-DD, may be empty
	StartTime string // HH:MM or HH:MM:SS, may be empty
	StartAt   string // combined timestamp, may be empty
	ReasonKey string
}

// UsageKey addresses one slot's usage bucket.
type UsageKey struct {
	Date      string
	StartTime types.TimeString
}

// SlotUsageMap maps slots to their aggregated resource usage.
type SlotUsageMap map[UsageKey]*SlotUsage

// Lookup returns the bucket for (date, start), or nil when no booking
// touches that slot.
func (m SlotUsageMap) Lookup(date string, start types.TimeString) *SlotUsage {
	return m[UsageKey{Date: date, StartTime: start}]
}

// startAtLayouts are the accepted combined-timestamp forms, tried in order.
// The literal space-separated form is what the store hands back.
var startAtLayouts = []string{
	DateTimeFormat,        // 2006-01-02 15:04:05
	"2006-01-02 15:04",    // seconds omitted
	time.RFC3339,          // 2006-01-02T15:04:05Z07:00
	"2006-01-02T15:04:05", // RFC3339 without zone
}

// resolveRowSlot extracts (date, startTime) from either row shape.
// Rows that resolve neither shape are reported as not ok and skipped.
func resolveRowSlot(row AppointmentRow) (string, types.TimeString, bool) {
	if row.Date != "" && row.StartTime != "" {
		start := row.StartTime
		if len(start) > 5 {
			start = start[:5] // trim seconds from HH:MM:SS
		}
		st, err := types.NewTimeStringFromString(start)
		if err != nil {
			return "", "", false
		}
		if _, err := time.Parse(DateFormat, row.Date); err != nil {
			return "", "", false
		}
		return row.Date, st, true
	}

	if raw := strings.TrimSpace(row.StartAt); raw != "" {
		for _, layout := range startAtLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format(DateFormat), types.NewTimeString(t), true
			}
		}
	}

	return "", "", false
}

// BuildSlotUsage folds appointment rows into per-slot usage buckets through
// the requirement table. Rows whose slot cannot be resolved are skipped;
// rows with a reason key outside the requirement table are skipped too —
// such bookings do not consume capacity this system tracks.
//
// The fold only ever adds. Cancellations show up solely as row absence on
// the next read; there is no release bookkeeping.
func BuildSlotUsage(rows []AppointmentRow) SlotUsageMap {
	usage := make(SlotUsageMap)

	for _, row := range rows {
		date, start, ok := resolveRowSlot(row)
		if !ok {
			continue
		}

		req, known := RequirementFor(ReasonKey(row.ReasonKey))
		if !known {
			continue
		}

		key := UsageKey{Date: date, StartTime: start}
		bucket := usage[key]
		if bucket == nil {
			bucket = newSlotUsage()
			usage[key] = bucket
		}
		bucket.add(req)
	}

	return usage
}
