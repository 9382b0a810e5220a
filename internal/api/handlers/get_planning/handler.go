package get_planning

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	getPlanning "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/get_planning"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgInvalidMode    = "некорректный режим отображения, ожидается day, week или month"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSalonNotFound  = "салон не найден"
)

type Handler struct {
	useCase GetPlanningUseCase
	logger  Logger
}

func NewHandler(useCase GetPlanningUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/planning
// Query params: mode (day|week|month, по умолчанию day), date (YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/planning - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	query := r.URL.Query()

	mode := query.Get("mode")
	if mode == "" {
		mode = "day"
	}

	date := time.Now()
	if dateStr := query.Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/planning - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getPlanning.Request{
		SalonID: salonID,
		Mode:    mode,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getPlanning.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/planning - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getPlanning.ErrInvalidMode):
			h.logger.Warn("GET /salons/{id}/planning - Invalid mode: salon_id=%d, mode=%q", salonID, mode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, getPlanning.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/planning - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /salons/{id}/planning - Failed to build planning: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/planning - Planning built successfully: salon_id=%d, mode=%s, cached=%v",
		salonID, result.Mode, result.FromCache)
	handlers.RespondJSON(w, http.StatusOK, result)
}
