package domain

import (
	"strings"
	"unicode"
)

// NormalizeResourceKey maps the heterogeneous resource-type spellings found
// across the rooms and inventory tables onto one canonical snake_case key.
// "checkupRoom", "Checkup-Room" and "checkup room" must all land on
// "checkup_room", otherwise two spellings of the same type would be counted
// as separate capacity pools.
//
// The function is total: any input yields a deterministic key, possibly "".
func NormalizeResourceKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 4)

	prevLowerOrDigit := false
	pendingSep := false

	for _, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsUpper(r):
			// camelCase boundary
			if prevLowerOrDigit {
				pendingSep = true
			}
			writeSep(&b, &pendingSep)
			b.WriteRune(unicode.ToLower(r))
			prevLowerOrDigit = false
		case unicode.IsLower(r) || unicode.IsDigit(r):
			writeSep(&b, &pendingSep)
			b.WriteRune(r)
			prevLowerOrDigit = true
		default:
			// spaces, hyphens, underscores and any punctuation collapse
			// into a single separator
			if b.Len() > 0 {
				pendingSep = true
			}
			prevLowerOrDigit = false
		}
	}

	return b.String()
}

func writeSep(b *strings.Builder, pending *bool) {
	if *pending && b.Len() > 0 {
		b.WriteByte('_')
	}
	*pending = false
}

// NormalizeReasonKey canonicalizes a reason key before a requirement table
// lookup. Reason keys share the resource-key normal form.
func NormalizeReasonKey(raw string) ReasonKey {
	return ReasonKey(NormalizeResourceKey(raw))
}
