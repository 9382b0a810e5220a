package create_appointment

import (
	"fmt"
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.ServiceName == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что времена указаны
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	// Окончание должно быть строго позже начала
	minutes, err := req.StartTime.MinutesUntil(req.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if minutes <= 0 {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidTimeSlot)
	}
	if minutes < domain.MinAppointmentMinutes || minutes > domain.MaxAppointmentMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidTimeSlot, domain.MinAppointmentMinutes, domain.MaxAppointmentMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}

// validateWithinSchedule проверяет, что слот попадает в рабочие часы салона
func validateWithinSchedule(start, end types.TimeString, schedule salonservice.DaySchedule) error {
	open, err := types.NewTimeStringFromString(schedule.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: salon open time: %v", ErrInternal, err)
	}
	close, err := types.NewTimeStringFromString(schedule.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: salon close time: %v", ErrInternal, err)
	}

	if start.IsBefore(open) || end.IsAfter(close) {
		return ErrOutsideWorkingHours
	}

	return nil
}

// overlaps проверяет пересечение слота [start, end) с активными записями.
// Граничные случаи (конец одной записи равен началу другой) пересечением не считаются.
func overlaps(start, end types.TimeString, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if appt == nil || !appt.IsActive() {
			continue
		}
		if appt.StartTime.IsBefore(end) && appt.EndTime.IsAfter(start) {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
