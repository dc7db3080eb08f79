package create_checkout_session

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := cart.ValidateSessionID(req.SessionID); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer.name is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.Customer.Email); err != nil {
		return fmt.Errorf("%w: invalid customer.email %q", ErrInvalidInput, req.Customer.Email)
	}

	return nil
}
