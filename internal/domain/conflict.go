package domain

import (
	"fmt"
	"time"
)

// ConflictType kind of scheduling issue between a candidate and a cart item
type ConflictType string

const (
	// ConflictSameCourseSameDay advisory, the user may acknowledge it and proceed
	ConflictSameCourseSameDay ConflictType = "same-course-same-day"
	// ConflictTimeOverlap blocking, tee times at different courses too close together
	ConflictTimeOverlap ConflictType = "time-overlap"
)

// Conflict a detected issue with an item already in the cart
type Conflict struct {
	Type         ConflictType `json:"type"`
	ExistingItem CartItem     `json:"existingItem"`
	Message      string       `json:"message"`
}

// IsBlocking reports whether the conflict can never be acknowledged
func (c Conflict) IsBlocking() bool {
	return c.Type == ConflictTimeOverlap
}

// HasBlockingConflict reports whether any conflict is blocking
func HasBlockingConflict(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.IsBlocking() {
			return true
		}
	}
	return false
}

// DetectConflicts compares a candidate (courseID, date, teeTime) against the items.
//
// Same course on the same calendar day yields an advisory conflict regardless of
// the gap. A different course on the same day yields a blocking conflict when the
// tee times are strictly less than ConflictBuffer apart. When either tee time
// cannot be parsed the overlap rule is skipped for that pair.
func DetectConflicts(items []CartItem, courseID, date, teeTime string) []Conflict {
	conflicts := make([]Conflict, 0)
	if len(items) == 0 {
		return conflicts
	}

	day := NormalizeDate(date)
	candidate, candidateErr := ParseTeeTime(teeTime)

	for _, item := range items {
		if NormalizeDate(item.Date) != day {
			continue
		}

		if item.CourseID == courseID {
			conflicts = append(conflicts, Conflict{
				Type:         ConflictSameCourseSameDay,
				ExistingItem: item,
				Message: fmt.Sprintf("You already have a tee time at %s on %s (%s)",
					item.CourseName, day, clockOf(item.Time)),
			})
			continue
		}

		if candidateErr != nil {
			continue
		}
		existing, err := ParseTeeTime(item.Time)
		if err != nil {
			continue
		}

		gap := candidate.Sub(existing)
		if gap < 0 {
			gap = -gap
		}
		if gap < ConflictBuffer {
			conflicts = append(conflicts, Conflict{
				Type:         ConflictTimeOverlap,
				ExistingItem: item,
				Message: fmt.Sprintf("This tee time is only %.1f hours from your %s round at %s; at least %d hours are needed between rounds at different courses",
					gap.Hours(), clockOf(item.Time), item.CourseName, int(ConflictBuffer/time.Hour)),
			})
		}
	}

	return conflicts
}

func clockOf(teeTime string) string {
	t, err := ParseTeeTime(teeTime)
	if err != nil {
		return teeTime
	}
	return t.Format(TimeFormat)
}
