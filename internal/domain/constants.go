package domain

import "time"

// Cart constraints
const (
	MinPlayers = 1
	MaxPlayers = 4

	// CartStorageKey fixed storage key prefix for persisted carts
	CartStorageKey = "golf_booking_cart"
)

// ConflictBuffer minimum gap between tee times at different courses on the same day.
// Fixed for every course: a short 9-hole round followed by a tee time just over
// four hours later elsewhere is never flagged.
const ConflictBuffer = 4 * time.Hour

// Default eligibility windows
const (
	DefaultEarlyBirdCutoffHour = 10
	DefaultTwilightStartHour   = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// teeTimeLayouts accepted tee time timestamp layouts, most specific first
var teeTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// DefaultCurrency used when none is configured
const DefaultCurrency = "eur"
