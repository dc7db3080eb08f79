package remove_cart_item

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

// Handle DELETE /api/v1/carts/{sessionId}/items/{itemId}
// Удаление отсутствующей позиции не ошибка: возвращается текущая корзина
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, itemID := vars["sessionId"], vars["itemId"]

	summary, err := h.service.RemoveItem(r.Context(), sessionID, itemID)
	if err != nil {
		h.logger.Warn("DELETE /carts/%s/items/%s - Failed to remove item: %v", sessionID, itemID, err)
		if !handlers.RespondCartError(w, err) {
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromCartSummary(summary))
}
