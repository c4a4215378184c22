package domain

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04:05" // YYYY-MM-DD HH:MM:SS, the stored appointment timestamp shape
)

// Business validation constants
const (
	MaxReasonDetailsLength = 500
	MaxEmailLength         = 254
)

// ReservationRefPrefix prefixes the public reference returned after a
// successful booking, e.g. "apt_42".
const ReservationRefPrefix = "apt_"
