package filter_packages

import (
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTeeTime     = "некорректное время старта"
)

type Handler struct {
	filter PackageFilter
	logger Logger
}

func NewHandler(filter PackageFilter, logger Logger) *Handler {
	return &Handler{
		filter: filter,
		logger: logger,
	}
}

// Handle POST /api/v1/packages/eligible
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages/eligible - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	teeTime, err := domain.ParseTeeTime(req.TeeTime)
	if err != nil {
		h.logger.Warn("POST /packages/eligible - Invalid tee time %q: %v", req.TeeTime, err)
		handlers.RespondBadRequest(w, msgInvalidTeeTime)
		return
	}

	eligible := h.filter.Apply(req.Packages, teeTime)
	if eligible == nil {
		eligible = []domain.RatePackage{}
	}

	handlers.RespondJSON(w, http.StatusOK, &FilterResponse{
		TeeTime:  req.TeeTime,
		Packages: eligible,
	})
}
