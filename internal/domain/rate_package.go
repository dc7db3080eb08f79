package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// ErrInvalidTimeRestriction returned when a time restriction string cannot be parsed
var ErrInvalidTimeRestriction = errors.New("invalid time restriction")

// RatePackage a provider rate package offered for a tee time
type RatePackage struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	IncludesBuggy   bool    `json:"includesBuggy"`
	IncludesLunch   bool    `json:"includesLunch"`
	IsEarlyBird     bool    `json:"isEarlyBird"`
	IsTwilight      bool    `json:"isTwilight"`
	TimeRestriction string  `json:"timeRestriction,omitempty"`
}

// ToPackage strips the eligibility metadata, leaving what a cart item stores
func (p RatePackage) ToPackage() Package {
	return Package{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		IncludesBuggy: p.IncludesBuggy,
		IncludesLunch: p.IncludesLunch,
	}
}

// TimeWindow half-open window [Start, End) of minutes since midnight
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Contains reports whether the clock time falls inside the window
func (w TimeWindow) Contains(t types.TimeString) bool {
	m := t.Minutes()
	return m >= w.Start.Minutes() && m < w.End.Minutes()
}

var (
	clockPattern = `(\d{1,2}[:.h]\d{2})`

	rangeRestriction   = regexp.MustCompile(`^` + clockPattern + `\s*(?:-|–|to|a)\s*` + clockPattern + `$`)
	fromRestriction    = regexp.MustCompile(`^(?:from|desde|after|a partir de)\s+` + clockPattern + `$`)
	onwardsRestriction = regexp.MustCompile(`^` + clockPattern + `\s*(?:onwards|onward|\+|en adelante)$`)
	untilRestriction   = regexp.MustCompile(`^(?:until|before|hasta|antes de)\s+` + clockPattern + `$`)
)

// ParseTimeRestriction parses provider free-form restrictions such as
// "07:00-10:00", "from 15:00", "15:00 onwards" or "until 10:00".
func ParseTimeRestriction(s string) (TimeWindow, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return TimeWindow{}, fmt.Errorf("%w: empty", ErrInvalidTimeRestriction)
	}

	if m := rangeRestriction.FindStringSubmatch(normalized); m != nil {
		return window(m[1], m[2])
	}
	if m := fromRestriction.FindStringSubmatch(normalized); m != nil {
		return window(m[1], "24:00")
	}
	if m := onwardsRestriction.FindStringSubmatch(normalized); m != nil {
		return window(m[1], "24:00")
	}
	if m := untilRestriction.FindStringSubmatch(normalized); m != nil {
		return window("00:00", m[1])
	}

	return TimeWindow{}, fmt.Errorf("%w: %q", ErrInvalidTimeRestriction, s)
}

func window(start, end string) (TimeWindow, error) {
	startTime, err := types.NewTimeStringFromString(clockReplacer.Replace(start))
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: %v", ErrInvalidTimeRestriction, err)
	}
	endTime, err := types.NewTimeStringFromString(clockReplacer.Replace(end))
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: %v", ErrInvalidTimeRestriction, err)
	}
	if !startTime.IsBefore(endTime) {
		return TimeWindow{}, fmt.Errorf("%w: window %s-%s is empty", ErrInvalidTimeRestriction, startTime, endTime)
	}
	return TimeWindow{Start: startTime, End: endTime}, nil
}

var clockReplacer = strings.NewReplacer(".", ":", "h", ":")
