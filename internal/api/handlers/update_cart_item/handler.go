package update_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	updateCartItem "github.com/m04kA/SMC-TeeTimeService/internal/usecase/update_cart_item"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные обновления позиции"
	msgItemNotFound       = "позиция корзины не найдена"
	msgTeeTimeUnavailable = "тии-тайм недоступен"
	msgPackageNotOffered  = "пакет или доп. услуга не предлагаются для этого тии-тайма"
	msgPackageNotEligible = "пакет недоступен для выбранного времени старта"
	msgProviderError      = "провайдер поля недоступен"
)

type Handler struct {
	useCase UpdateCartItemUseCase
	logger  Logger
}

func NewHandler(useCase UpdateCartItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/carts/{sessionId}/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, itemID := vars["sessionId"], vars["itemId"]

	var req UpdateCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /carts/%s/items/%s - Invalid request body: %v", sessionID, itemID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, itemID))
	if err != nil {
		switch {
		case errors.Is(err, updateCartItem.ErrItemNotFound):
			h.logger.Warn("PATCH /carts/%s/items/%s - Item not found", sessionID, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, updateCartItem.ErrTeeTimeUnavailable):
			h.logger.Warn("PATCH /carts/%s/items/%s - Tee time unavailable: %v", sessionID, itemID, err)
			handlers.RespondConflict(w, msgTeeTimeUnavailable)
		case errors.Is(err, updateCartItem.ErrPackageNotOffered):
			h.logger.Warn("PATCH /carts/%s/items/%s - Package not offered: %v", sessionID, itemID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPackageNotOffered)
		case errors.Is(err, updateCartItem.ErrPackageNotEligible):
			h.logger.Warn("PATCH /carts/%s/items/%s - Package not eligible: %v", sessionID, itemID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPackageNotEligible)
		case errors.Is(err, updateCartItem.ErrProviderUnavailable):
			h.logger.Error("PATCH /carts/%s/items/%s - Provider unavailable: %v", sessionID, itemID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)
		case errors.Is(err, updateCartItem.ErrInvalidInput):
			h.logger.Warn("PATCH /carts/%s/items/%s - Invalid input: %v", sessionID, itemID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PATCH /carts/%s/items/%s - Failed to update item: %v", sessionID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &UpdateCartItemResponse{
		Item: result.Item,
		Cart: handlers.FromCartSummary(result.Cart),
	})
}
