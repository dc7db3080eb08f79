package search_tee_times

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	searchTeeTimes "github.com/m04kA/SMC-TeeTimeService/internal/usecase/search_tee_times"
)

const (
	msgInvalidQuery = "некорректные параметры запроса: ожидается date=YYYY-MM-DD и players=1..4"
	msgPastDate     = "дата поиска в прошлом"
	msgInvalidInput = "некорректные параметры поиска"
)

type Handler struct {
	useCase SearchTeeTimesUseCase
	logger  Logger
}

func NewHandler(useCase SearchTeeTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /slots/search - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, searchTeeTimes.ErrInvalidDate):
			h.logger.Warn("GET /slots/search - Past date: %s", req.Date.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgPastDate)
		case errors.Is(err, searchTeeTimes.ErrInvalidInput):
			h.logger.Warn("GET /slots/search - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /slots/search - Failed to search tee times: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/search - date=%s players=%d: %d tee times, %d warnings",
		req.Date.Format(domain.DateFormat), req.Players, len(result.TeeTimes), len(result.Warnings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
