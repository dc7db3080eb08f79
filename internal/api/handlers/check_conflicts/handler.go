package check_conflicts

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
)

const msgMissingParams = "обязательные параметры: courseId и time"

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

// Handle GET /api/v1/carts/{sessionId}/conflicts?courseId=&date=&time=
// Пустая date берётся из time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	q := r.URL.Query()
	courseID := strings.TrimSpace(q.Get("courseId"))
	teeTime := strings.TrimSpace(q.Get("time"))
	date := strings.TrimSpace(q.Get("date"))

	if courseID == "" || teeTime == "" {
		h.logger.Warn("GET /carts/%s/conflicts - Missing params", sessionID)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}
	if date == "" {
		date = teeTime
	}

	conflicts, err := h.service.CheckConflicts(r.Context(), sessionID, courseID, date, teeTime)
	if err != nil {
		h.logger.Warn("GET /carts/%s/conflicts - Failed to check conflicts: %v", sessionID, err)
		if !handlers.RespondCartError(w, err) {
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromConflicts(conflicts))
}
