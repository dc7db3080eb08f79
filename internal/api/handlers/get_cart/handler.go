package get_cart

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

// Handle GET /api/v1/carts/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	summary, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Warn("GET /carts/%s - Failed to get cart: %v", sessionID, err)
		if !handlers.RespondCartError(w, err) {
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromCartSummary(summary))
}
