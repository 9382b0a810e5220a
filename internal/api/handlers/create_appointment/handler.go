package create_appointment

import (
	"errors"
	"net/http"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/middleware"
	createAppointment "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidRequestData  = "некорректные данные запроса: проверьте дату, время и цену"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgSlotTaken           = "выбранный временной слот уже занят"
	msgSalonNotFound       = "салон не найден"
	msgStaffNotFound       = "мастер не найден"
	msgStaffNotInSalon     = "мастер не работает в этом салоне"
	msgStaffInactive       = "мастер не принимает записи"
	msgSalonClosed         = "салон закрыт в выбранную дату"
	msgInvalidDate         = "некорректная дата записи"
	msgOutsideWorkingHours = "время записи вне рабочих часов салона"
	msgOutsideStaffHours   = "время записи вне рабочего окна мастера"
	msgInvalidTimeSlot     = "некорректный временной слот"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты, времени и цены)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestData)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: client_id=%d, salon_id=%d, staff_id=%d",
				clientID, req.SalonID, req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrSalonNotFound):
			h.logger.Warn("POST /appointments - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotInSalon):
			h.logger.Warn("POST /appointments - Staff not in salon: staff_id=%d, salon_id=%d", req.StaffID, req.SalonID)
			handlers.RespondBadRequest(w, msgStaffNotInSalon)

		case errors.Is(err, createAppointment.ErrStaffInactive):
			h.logger.Warn("POST /appointments - Staff inactive: staff_id=%d", req.StaffID)
			handlers.RespondBadRequest(w, msgStaffInactive)

		case errors.Is(err, createAppointment.ErrSalonClosed):
			h.logger.Warn("POST /appointments - Salon closed: salon_id=%d, date=%s", req.SalonID, req.Date)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside salon hours: salon_id=%d, time=%s-%s",
				req.SalonID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrOutsideStaffHours):
			h.logger.Warn("POST /appointments - Outside staff hours: staff_id=%d, time=%s-%s",
				req.StaffID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgOutsideStaffHours)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: client_id=%d, time=%s-%s",
				clientID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, salon_id=%d, error=%v",
				clientID, req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, salon_id=%d",
		result.ID, clientID, req.SalonID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
