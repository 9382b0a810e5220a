package get_staff

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgInvalidParams  = "некорректные параметры запроса"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/staff
// Query params: includeInactive (опционально, по умолчанию false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	activeOnly := true
	if includeInactiveStr := r.URL.Query().Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/staff - Invalid includeInactive value: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		activeOnly = !includeInactive
	}

	result, err := h.service.GetSalonStaff(r.Context(), salonID, activeOnly)
	if err != nil {
		h.logger.Error("GET /salons/{id}/staff - Failed to get staff: salon_id=%d, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{id}/staff - Staff retrieved successfully: salon_id=%d, count=%d",
		salonID, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}
