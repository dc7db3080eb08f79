package clear_cart

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/carts/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		h.logger.Warn("DELETE /carts/%s - Failed to clear cart: %v", sessionID, err)
		if !handlers.RespondCartError(w, err) {
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /carts/%s - Cart cleared", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
