package update_staff_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/middleware"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/staff"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/staff/models"
)

const (
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректное рабочее окно, ожидается HH:MM и начало раньше конца"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgStaffNotFound      = "мастер не найден"
	msgSalonNotFound      = "салон не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/salons/{salonId}/staff/{staffId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем staffId из URL
	vars := mux.Vars(r)
	staffIDStr := vars["staffId"]

	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/staff/{staffId}/hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/staff/{staffId}/hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStaffHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/staff/{staffId}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateActiveHoursRequest{
		UserID:     userID,
		ActiveFrom: req.ActiveFrom,
		ActiveTo:   req.ActiveTo,
	}

	result, err := h.service.UpdateActiveHours(r.Context(), staffID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrStaffNotFound):
			h.logger.Warn("PUT /salons/{id}/staff/{staffId}/hours - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staff.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/{id}/staff/{staffId}/hours - Salon not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, staff.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/staff/{staffId}/hours - Access denied: staff_id=%d, user_id=%d",
				staffID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/staff/{staffId}/hours - Invalid hours: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /salons/{id}/staff/{staffId}/hours - Failed to update hours: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/staff/{staffId}/hours - Hours updated successfully: staff_id=%d, window=%s-%s",
		staffID, result.ActiveFrom, result.ActiveTo)
	handlers.RespondJSON(w, http.StatusOK, result)
}
