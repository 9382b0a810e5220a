package get_planning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	salonClient "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/planning"
	appointmentModels "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/appointments/models"
	staffModels "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/staff/models"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// UseCase use case для сборки представления планинга салона
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	salonClient     SalonServiceClient
	cache           PlanningCache
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	salonClient SalonServiceClient,
	cache PlanningCache,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		salonClient:     salonClient,
		cache:           cache,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case сборки планинга.
// Собранное представление кешируется целиком: сборка детерминирована по данным,
// кеш инвалидируется при любой мутации записей салона.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPlanning: salon=%d, mode=%s, date=%s",
		req.SalonID, req.Mode, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	mode, err := planning.ParseViewMode(req.Mode)
	if err != nil {
		uc.logger.Warn("GetPlanning: invalid mode=%q", req.Mode)
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	dateKey := req.Date.Format(domain.DateFormat)

	// 2. Пробуем отдать представление из кеша
	if uc.cache != nil {
		if data, ok, err := uc.cache.GetView(ctx, req.SalonID, string(mode), dateKey); err != nil {
			uc.logger.Warn("GetPlanning: cache read failed for salon=%d: %v", req.SalonID, err)
		} else if ok {
			var cached Response
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.FromCache = true
				uc.logger.Info("GetPlanning: cache hit for salon=%d, mode=%s, date=%s", req.SalonID, mode, dateKey)
				return &cached, nil
			}
			uc.logger.Warn("GetPlanning: failed to decode cached view for salon=%d: %v", req.SalonID, err)
		}
	}

	// 3. Вычисляем границы периода и навигацию
	bounds, err := planning.BoundsFor(req.Date, mode, uc.settings.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	prevDate, err := planning.Navigate(req.Date, mode, planning.DirectionPrev)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	nextDate, err := planning.Navigate(req.Date, mode, planning.DirectionNext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Получаем салон для рабочих часов дневной сетки.
	// При недоступности SalonService работаем по часам из конфигурации.
	openHour, closeHour := uc.settings.OpenHour, uc.settings.CloseHour
	salon, err := uc.salonClient.GetSalonWithGracefulDegradation(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("GetPlanning: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		// Graceful degradation: часы по умолчанию
		uc.logger.Warn("GetPlanning: using default hours %d-%d for salon=%d: %v",
			openHour, closeHour, req.SalonID, err)
		salon = nil
	}

	if salon != nil && mode == planning.ModeDay {
		if schedule := salon.ScheduleFor(req.Date); schedule.IsOpen {
			if h, ok := hourOf(schedule.OpenTime); ok {
				openHour = h
			}
			if h, ok := hourOf(schedule.CloseTime); ok {
				closeHour = h
			}
		}
	}

	// 5. Получаем мастеров и записи периода
	staffList, err := uc.staffRepo.GetBySalon(ctx, req.SalonID, true)
	if err != nil {
		uc.logger.Error("GetPlanning: failed to get staff for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// Для представления нужны и неактивные записи: отменённые не занимают слот,
	// но двойные бронирования должны быть видны как есть
	gridStart := bounds.Days[0].Date
	gridEnd := bounds.Days[len(bounds.Days)-1].Date
	filter := domain.SalonAppointmentsFilter{
		SalonID:         req.SalonID,
		StartDate:       &gridStart,
		EndDate:         &gridEnd,
		IncludeInactive: true,
	}

	appointments, err := uc.appointmentRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetPlanning: failed to get appointments for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Строим индекс и представление
	idx, warnings := planning.BuildIndex(appointments)
	if len(warnings) > 0 {
		uc.logger.Warn("GetPlanning: %d malformed appointments skipped for salon=%d", len(warnings), req.SalonID)
	}

	resp := &Response{
		SalonID:    req.SalonID,
		Mode:       string(mode),
		Date:       dateKey,
		RangeStart: bounds.Start.Format(domain.DateFormat),
		RangeEnd:   bounds.End.Format(domain.DateFormat),
		PrevDate:   prevDate.Format(domain.DateFormat),
		NextDate:   nextDate.Format(domain.DateFormat),
		Staff:      staffModels.FromDomainStaffList(staffList).Staff,
		Conflicts:  conflictSummaries(idx.Conflicts()),
		Warnings:   buildWarnings(warnings),
	}

	switch mode {
	case planning.ModeDay:
		slots, err := planning.GenerateSlots(openHour, closeHour, uc.settings.SlotStepMinutes)
		if err != nil {
			uc.logger.Error("GetPlanning: failed to generate slots %d-%d step=%d: %v",
				openHour, closeHour, uc.settings.SlotStepMinutes, err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		resp.DayView = dayView(planning.BuildDayView(bounds.Start, staffList, idx, slots))

	case planning.ModeWeek:
		resp.WeekView = weekView(planning.BuildWeekView(bounds.Days, idx, appointments))

	case planning.ModeMonth:
		resp.MonthView = monthView(planning.BuildMonthView(bounds.Days, idx, uc.timeProvider.Now()))
	}

	// 7. Кладём собранное представление в кеш
	if uc.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cache.SetView(ctx, req.SalonID, string(mode), dateKey, data); err != nil {
				uc.logger.Warn("GetPlanning: cache write failed for salon=%d: %v", req.SalonID, err)
			}
		}
	}

	uc.logger.Info("GetPlanning: built %s view for salon=%d, %d appointments, %d conflicts",
		mode, req.SalonID, idx.Len(), len(resp.Conflicts))
	return resp, nil
}

// dayView конвертирует дневную сетку в DTO
func dayView(rows []planning.DaySlotRow) []DaySlotRow {
	out := make([]DaySlotRow, len(rows))
	for i, row := range rows {
		byStaff := make(map[int64][]appointmentModels.AppointmentResponse, len(row.ByStaff))
		for staffID, appts := range row.ByStaff {
			dtos := make([]appointmentModels.AppointmentResponse, 0, len(appts))
			for _, appt := range appts {
				if dto := appointmentModels.FromDomainAppointment(appt); dto != nil {
					dtos = append(dtos, *dto)
				}
			}
			byStaff[staffID] = dtos
		}
		out[i] = DaySlotRow{Time: row.Time.String(), ByStaff: byStaff}
	}
	return out
}

// weekView конвертирует недельное представление в DTO
func weekView(days map[string]planning.WeekDaySummary) map[string]WeekDaySummary {
	out := make(map[string]WeekDaySummary, len(days))
	for key, day := range days {
		appts := make([]appointmentModels.AppointmentResponse, 0, len(day.Appointments))
		for _, appt := range day.Appointments {
			if dto := appointmentModels.FromDomainAppointment(appt); dto != nil {
				appts = append(appts, *dto)
			}
		}
		out[key] = WeekDaySummary{
			Date:             day.Date.Format(domain.DateFormat),
			AppointmentCount: day.AppointmentCount,
			Appointments:     appts,
		}
	}
	return out
}

// monthView конвертирует месячное представление в DTO
func monthView(days map[string]planning.MonthDaySummary) map[string]MonthDaySummary {
	out := make(map[string]MonthDaySummary, len(days))
	for key, day := range days {
		out[key] = MonthDaySummary{
			Date:             day.Date.Format(domain.DateFormat),
			AppointmentCount: day.AppointmentCount,
			IsCurrentMonth:   day.IsCurrentMonth,
			IsToday:          day.IsToday,
		}
	}
	return out
}

// hourOf извлекает час из строки "HH:MM"
func hourOf(s string) (int, bool) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return 0, false
	}
	minutes, err := ts.Minutes()
	if err != nil {
		return 0, false
	}
	return minutes / 60, true
}
