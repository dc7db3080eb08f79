package domain

import "time"

// TeeTime a bookable start time normalized from any provider
type TeeTime struct {
	ID             string
	CourseID       string
	CourseName     string
	ProviderType   ProviderType
	Time           time.Time
	Holes          int
	AvailableSpots int
	Packages       []RatePackage
	AddOns         []AddOnOption
}

// HasRoomFor reports whether the slot can take the party
func (t *TeeTime) HasRoomFor(players int) bool {
	return t.AvailableSpots >= players
}

// IsFull returns true if the slot has no available spots
func (t *TeeTime) IsFull() bool {
	return t.AvailableSpots <= 0
}
