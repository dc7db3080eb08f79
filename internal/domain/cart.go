package domain

import (
	"strings"
	"time"
)

// ProviderType upstream system owning a course's tee-time inventory
type ProviderType string

const (
	ProviderZest        ProviderType = "zest"
	ProviderGolfmanager ProviderType = "golfmanager"
	ProviderTeeOne      ProviderType = "teeone"
)

// IsValid reports whether the provider type is known
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderZest, ProviderGolfmanager, ProviderTeeOne:
		return true
	}
	return false
}

// Package the rate package chosen for a cart item
type Package struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	IncludesBuggy bool    `json:"includesBuggy,omitempty"`
	IncludesLunch bool    `json:"includesLunch,omitempty"`
}

// AddOn a selected extra with its total for the item's player count
type AddOn struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}

// CartItem one selected tee time with package and add-ons.
// The JSON form is what cart storage persists.
type CartItem struct {
	ID           string       `json:"id"`
	CourseID     string       `json:"courseId"`
	CourseName   string       `json:"courseName"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	Players      int          `json:"players"`
	Package      Package      `json:"package"`
	AddOns       []AddOn      `json:"addOns"`
	TotalPrice   float64      `json:"totalPrice"`
	ProviderType ProviderType `json:"providerType"`
}

// SameSlot reports whether the item occupies the (courseId, time) key
func (i *CartItem) SameSlot(courseID, teeTime string) bool {
	return i.CourseID == courseID && i.Time == teeTime
}

// CartItemPatch partial update for a cart item.
// The (courseId, time) key is not patchable.
type CartItemPatch struct {
	CourseName *string
	Players    *int
	Package    *Package
	AddOns     []AddOn // nil = unchanged
	TotalPrice *float64
}

// Apply merges non-nil fields into the item
func (p CartItemPatch) Apply(item *CartItem) {
	if p.CourseName != nil {
		item.CourseName = *p.CourseName
	}
	if p.Players != nil {
		item.Players = *p.Players
	}
	if p.Package != nil {
		item.Package = *p.Package
	}
	if p.AddOns != nil {
		item.AddOns = append(make([]AddOn, 0, len(p.AddOns)), p.AddOns...)
	}
	if p.TotalPrice != nil {
		item.TotalPrice = *p.TotalPrice
	}
}

// ParseTeeTime parses a tee time timestamp in any accepted layout
func ParseTeeTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range teeTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// NormalizeDate reduces a date or timestamp string to its calendar day (YYYY-MM-DD).
// Unparseable input is returned trimmed, so equal garbage still compares equal.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateFormat, s); err == nil {
		return d.Format(DateFormat)
	}
	if t, err := ParseTeeTime(s); err == nil {
		return t.Format(DateFormat)
	}
	if len(s) >= len(DateFormat) {
		if d, err := time.Parse(DateFormat, s[:len(DateFormat)]); err == nil {
			return d.Format(DateFormat)
		}
	}
	return s
}
