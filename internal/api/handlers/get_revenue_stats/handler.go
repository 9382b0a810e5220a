package get_revenue_stats

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/middleware"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	getRevenueStats "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/get_revenue_stats"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgSalonNotFound  = "салон не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	useCase GetRevenueStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetRevenueStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/stats/revenue
// Query params: date (YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/stats/revenue - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/stats/revenue - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/stats/revenue - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	// Вызываем use case (он сам проверит права менеджера)
	result, err := h.useCase.Execute(r.Context(), &getRevenueStats.Request{
		UserID:  userID,
		SalonID: salonID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRevenueStats.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/stats/revenue - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getRevenueStats.ErrAccessDenied):
			h.logger.Warn("GET /salons/{id}/stats/revenue - Access denied: salon_id=%d, user_id=%d", salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getRevenueStats.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/stats/revenue - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /salons/{id}/stats/revenue - Failed to get stats: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/stats/revenue - Stats retrieved successfully: salon_id=%d, user_id=%d",
		salonID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
