package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	addCartItem "github.com/m04kA/SMC-TeeTimeService/internal/usecase/add_cart_item"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные позиции корзины"
	msgCourseNotFound     = "поле не найдено"
	msgBlockingConflict   = "тии-тайм пересекается с другой игрой в корзине"
	msgAdvisoryConflict   = "в корзине уже есть игра на этом поле в этот день, требуется подтверждение"
	msgTeeTimeUnavailable = "тии-тайм недоступен"
	msgPackageNotOffered  = "пакет или доп. услуга не предлагаются для этого тии-тайма"
	msgPackageNotEligible = "пакет недоступен для выбранного времени старта"
	msgProviderError      = "провайдер поля недоступен"
)

type Handler struct {
	useCase AddCartItemUseCase
	logger  Logger
}

func NewHandler(useCase AddCartItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/carts/{sessionId}/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req AddCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/%s/items - Invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		var conflictErr *addCartItem.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /carts/%s/items - Conflict: course=%s time=%s: %v", sessionID, req.CourseID, req.Time, err)
			message := msgAdvisoryConflict
			if conflictErr.Blocking {
				message = msgBlockingConflict
			}
			handlers.RespondJSON(w, http.StatusConflict, &ConflictResponse{
				Code:                    http.StatusConflict,
				Message:                 message,
				Conflicts:               conflictErr.Conflicts,
				Blocking:                conflictErr.Blocking,
				RequiresAcknowledgement: !conflictErr.Blocking,
			})

		case errors.Is(err, addCartItem.ErrCourseNotFound):
			h.logger.Warn("POST /carts/%s/items - Course not found: course=%s", sessionID, req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, addCartItem.ErrTeeTimeUnavailable):
			h.logger.Warn("POST /carts/%s/items - Tee time unavailable: %v", sessionID, err)
			handlers.RespondConflict(w, msgTeeTimeUnavailable)

		case errors.Is(err, addCartItem.ErrPackageNotOffered):
			h.logger.Warn("POST /carts/%s/items - Package not offered: %v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPackageNotOffered)

		case errors.Is(err, addCartItem.ErrPackageNotEligible):
			h.logger.Warn("POST /carts/%s/items - Package not eligible: %v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPackageNotEligible)

		case errors.Is(err, addCartItem.ErrProviderUnavailable):
			h.logger.Error("POST /carts/%s/items - Provider unavailable: %v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)

		case errors.Is(err, addCartItem.ErrInvalidInput):
			h.logger.Warn("POST /carts/%s/items - Invalid input: %v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /carts/%s/items - Failed to add item: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.Replaced {
		status = http.StatusOK
	}

	h.logger.Info("POST /carts/%s/items - Item %s added (replaced=%t)", sessionID, result.Item.ID, result.Replaced)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
