package update_cart_item

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := cart.ValidateSessionID(req.SessionID); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.ItemID) == "" {
		return fmt.Errorf("%w: itemId is required", ErrInvalidInput)
	}

	if req.Players == nil && req.Package == nil && req.AddOns == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Players != nil && (*req.Players < domain.MinPlayers || *req.Players > domain.MaxPlayers) {
		return fmt.Errorf("%w: players must be between %d and %d", ErrInvalidInput, domain.MinPlayers, domain.MaxPlayers)
	}

	if req.Package != nil && strings.TrimSpace(req.Package.ID) == "" {
		return fmt.Errorf("%w: package.id is required", ErrInvalidInput)
	}

	seen := make(map[string]bool, len(req.AddOns))
	for _, a := range req.AddOns {
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("%w: addOn id is required", ErrInvalidInput)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate addOn %s", ErrInvalidInput, a.ID)
		}
		seen[a.ID] = true
	}

	return nil
}

// selection собирает итоговый выбор: незаданные поля берутся из текущей позиции
func selection(req *Request, current domain.CartItem) (players int, packageID string, addOnIDs []string) {
	players = current.Players
	if req.Players != nil {
		players = *req.Players
	}

	packageID = current.Package.ID
	if req.Package != nil {
		packageID = req.Package.ID
	}

	if req.AddOns != nil {
		addOnIDs = make([]string, 0, len(req.AddOns))
		for _, a := range req.AddOns {
			addOnIDs = append(addOnIDs, a.ID)
		}
	} else {
		addOnIDs = make([]string, 0, len(current.AddOns))
		for _, a := range current.AddOns {
			addOnIDs = append(addOnIDs, a.ID)
		}
	}
	return players, packageID, addOnIDs
}
