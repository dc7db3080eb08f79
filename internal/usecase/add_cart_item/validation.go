package add_cart_item

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

// validateRequest валидирует входные данные и возвращает время старта
func validateRequest(req *Request) (time.Time, error) {
	if err := cart.ValidateSessionID(req.SessionID); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.CourseID) == "" {
		return time.Time{}, fmt.Errorf("%w: courseId is required", ErrInvalidInput)
	}

	if req.Players < domain.MinPlayers || req.Players > domain.MaxPlayers {
		return time.Time{}, fmt.Errorf("%w: players must be between %d and %d", ErrInvalidInput, domain.MinPlayers, domain.MaxPlayers)
	}

	teeTime, err := domain.ParseTeeTime(req.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, req.Time)
	}

	if req.Date != "" {
		if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
		}
		if req.Date != teeTime.Format(domain.DateFormat) {
			return time.Time{}, fmt.Errorf("%w: date %s does not match time %s", ErrInvalidInput, req.Date, req.Time)
		}
	}

	if strings.TrimSpace(req.Package.ID) == "" {
		return time.Time{}, fmt.Errorf("%w: package.id is required", ErrInvalidInput)
	}

	seen := make(map[string]bool, len(req.AddOns))
	for _, a := range req.AddOns {
		if strings.TrimSpace(a.ID) == "" {
			return time.Time{}, fmt.Errorf("%w: addOn id is required", ErrInvalidInput)
		}
		if seen[a.ID] {
			return time.Time{}, fmt.Errorf("%w: duplicate addOn %s", ErrInvalidInput, a.ID)
		}
		seen[a.ID] = true
	}

	return teeTime, nil
}
