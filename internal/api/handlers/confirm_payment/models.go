package confirm_payment

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/service/bookings/models"
	confirmPayment "github.com/m04kA/SMC-TeeTimeService/internal/usecase/confirm_payment"
)

// ConfirmRequest HTTP request model
type ConfirmRequest struct {
	SessionID     string `json:"sessionId"`               // ID платёжной сессии
	CartSessionID string `json:"cartSessionId,omitempty"` // ID сессии корзины
}

// ConfirmResponse HTTP response model
type ConfirmResponse struct {
	Status   string                   `json:"status"` // confirmed | processing
	Attempts int                      `json:"attempts"`
	Message  string                   `json:"message,omitempty"`
	Bookings []models.BookingResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmResponse {
	status := "processing"
	if resp.State == confirmPayment.StateConfirmed {
		status = "confirmed"
	}
	return &ConfirmResponse{
		Status:   status,
		Attempts: resp.Attempts,
		Message:  resp.Message,
		Bookings: models.FromDomainBookingList(resp.Bookings).Bookings,
	}
}
