package list_courses

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/courses"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/courses/models"
)

const msgInvalidProviderType = "неизвестный тип провайдера"

type Handler struct {
	service CourseService
	logger  Logger
}

func NewHandler(service CourseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses?providerType=zest
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListCoursesRequest{}
	if providerType := r.URL.Query().Get("providerType"); providerType != "" {
		req.ProviderType = &providerType
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, courses.ErrInvalidInput) {
			h.logger.Warn("GET /courses - Invalid provider type: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProviderType)
			return
		}
		h.logger.Error("GET /courses - Failed to list courses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
