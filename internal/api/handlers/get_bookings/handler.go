package get_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/bookings"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/bookings/models"
)

const msgNotFound = "бронирования для платёжной сессии не найдены"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/checkout/sessions/{sessionId}/bookings
// Статус заказа после возврата со страницы оплаты, без опроса шлюза
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentSessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.GetByPaymentSession(r.Context(), paymentSessionID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("GET /checkout/sessions/%s/bookings - Not found", paymentSessionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /checkout/sessions/%s/bookings - Failed to get bookings: %v", paymentSessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBookingList(result))
}
