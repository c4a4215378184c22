package domain

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strings"
	"time"

	"github.com/kc-frost/vet-clinic/pkg/types"
)

// SlotTemplateEntry is one bookable block of the fixed daily schedule.
// Times are HHMM without the colon, matching the slot id wire format.
type SlotTemplateEntry struct {
	StartHHMM string
	EndHHMM   string
	Room      string
}

// SlotTemplate is the clinic's operating-hours template: six one-hour
// blocks with a midday gap. Order here is the order slots are offered in.
// The template is fixed configuration and is never mutated.
var SlotTemplate = []SlotTemplateEntry{
	{StartHHMM: "0900", EndHHMM: "1000", Room: "roomA"},
	{StartHHMM: "1000", EndHHMM: "1100", Room: "roomA"},
	{StartHHMM: "1100", EndHHMM: "1200", Room: "roomA"},
	{StartHHMM: "1300", EndHHMM: "1400", Room: "roomB"},
	{StartHHMM: "1400", EndHHMM: "1500", Room: "roomB"},
	{StartHHMM: "1500", EndHHMM: "1600", Room: "roomB"},
}

// Slot is a derived bookable time window. Slots are never persisted; the
// generator recomputes them from the template on every request.
type Slot struct {
	SlotID       string
	Date         string // YYYY-MM-DD
	StartTime    types.TimeString
	EndTime      types.TimeString
	DisplayLabel string // "HH:MM - HH:MM"
}

const slotIDPrefix = "slot"

var (
	// ErrInvalidSlotID is returned for slot ids that do not match the
	// slot_YYYY-MM-DD_HHMM_HHMM_room shape.
	ErrInvalidSlotID = errors.New("domain: invalid slot id")

	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hhmmRe = regexp.MustCompile(`^\d{4}$`)
)

// SlotID builds the deterministic slot identifier
// slot_YYYY-MM-DD_HHMM_HHMM_room. The same inputs always produce the same
// id, and ParseSlotID recovers the components.
func SlotID(date, startHHMM, endHHMM, room string) string {
	return strings.Join([]string{slotIDPrefix, date, startHHMM, endHHMM, room}, "_")
}

// ParsedSlotID holds the components recovered from a slot identifier.
type ParsedSlotID struct {
	Date      string
	StartHHMM string
	EndHHMM   string
	Room      string
}

// ParseSlotID inverts SlotID. Ids that do not match the expected shape are
// rejected, which guards the booking flow against forged or stale
// identifiers sent by clients.
func ParseSlotID(slotID string) (ParsedSlotID, error) {
	parts := strings.Split(slotID, "_")
	if len(parts) < 5 || parts[0] != slotIDPrefix {
		return ParsedSlotID{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, slotID)
	}

	parsed := ParsedSlotID{
		Date:      parts[1],
		StartHHMM: parts[2],
		EndHHMM:   parts[3],
		// room tags may themselves contain underscores
		Room: strings.Join(parts[4:], "_"),
	}

	if !dateRe.MatchString(parsed.Date) {
		return ParsedSlotID{}, fmt.Errorf("%w: bad date in %q", ErrInvalidSlotID, slotID)
	}
	if _, err := time.Parse(DateFormat, parsed.Date); err != nil {
		return ParsedSlotID{}, fmt.Errorf("%w: bad date in %q", ErrInvalidSlotID, slotID)
	}
	if !hhmmRe.MatchString(parsed.StartHHMM) || !hhmmRe.MatchString(parsed.EndHHMM) {
		return ParsedSlotID{}, fmt.Errorf("%w: bad time in %q", ErrInvalidSlotID, slotID)
	}
	if parsed.Room == "" {
		return ParsedSlotID{}, fmt.Errorf("%w: missing room tag in %q", ErrInvalidSlotID, slotID)
	}

	return parsed, nil
}

// hhmmToColon converts "0900" to "09:00".
func hhmmToColon(hhmm string) types.TimeString {
	return types.TimeString(hhmm[:2] + ":" + hhmm[2:])
}

// displayLabel formats "0900","1000" as "09:00 - 10:00".
func displayLabel(startHHMM, endHHMM string) string {
	return string(hhmmToColon(startHHMM)) + " - " + string(hhmmToColon(endHHMM))
}

// slotFromTemplate materializes one template entry on a calendar date.
func slotFromTemplate(date string, t SlotTemplateEntry) Slot {
	return Slot{
		SlotID:       SlotID(date, t.StartHHMM, t.EndHHMM, t.Room),
		Date:         date,
		StartTime:    hhmmToColon(t.StartHHMM),
		EndTime:      hhmmToColon(t.EndHHMM),
		DisplayLabel: displayLabel(t.StartHHMM, t.EndHHMM),
	}
}

// SlotsForDate expands the daily template on one date, in template order.
func SlotsForDate(date string) []Slot {
	slots := make([]Slot, 0, len(SlotTemplate))
	for _, t := range SlotTemplate {
		slots = append(slots, slotFromTemplate(date, t))
	}
	return slots
}

// SlotCalendar yields every slot from startDate through endDate inclusive,
// day by day in template order. The sequence is lazy and restartable;
// ranging over it twice produces identical output. startDate == endDate
// yields exactly one day of slots.
func SlotCalendar(startDate, endDate time.Time) iter.Seq[Slot] {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)

	return func(yield func(Slot) bool) {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			date := day.Format(DateFormat)
			for _, t := range SlotTemplate {
				if !yield(slotFromTemplate(date, t)) {
					return
				}
			}
		}
	}
}

// IsTemplateStartTime reports whether start matches the start of any
// template entry.
func IsTemplateStartTime(start types.TimeString) bool {
	for _, t := range SlotTemplate {
		if hhmmToColon(t.StartHHMM) == start {
			return true
		}
	}
	return false
}

// TemplateEntryByStart returns the template entry starting at start.
func TemplateEntryByStart(start types.TimeString) (SlotTemplateEntry, bool) {
	for _, t := range SlotTemplate {
		if hhmmToColon(t.StartHHMM) == start {
			return t, true
		}
	}
	return SlotTemplateEntry{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
