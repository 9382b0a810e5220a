package get_revenue_stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	salonClient "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/planning"
)

// UseCase use case для получения статистики выручки салона
type UseCase struct {
	appointmentRepo AppointmentRepository
	salonClient     SalonServiceClient
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	salonClient SalonServiceClient,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		salonClient:     salonClient,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case подсчёта выручки.
// Выручка считается за день, неделю и месяц вокруг опорной даты одним проходом
// по записям месячного периода. Деньги считаются в decimal, без плавающей точки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRevenueStats: salon=%d, user=%d, date=%s",
		req.SalonID, req.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем права доступа (только менеджер салона видит выручку)
	if err := uc.checkManagerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Вычисляем границы периодов
	periods, err := planning.PeriodsFor(req.Date, uc.settings.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Получаем записи за самый широкий период.
	// Месячная сетка может не накрывать начало недели, если неделя
	// пересекает границу месяца - берём объединение периодов.
	start, end := periods.Monthly.Start, periods.Monthly.End
	if periods.Weekly.Start.Before(start) {
		start = periods.Weekly.Start
	}
	if periods.Weekly.End.After(end) {
		end = periods.Weekly.End
	}

	filter := domain.SalonAppointmentsFilter{
		SalonID:         req.SalonID,
		StartDate:       &start,
		EndDate:         &end,
		IncludeInactive: true, // политика выручки сама отфильтрует по статусу
	}

	appointments, err := uc.appointmentRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetRevenueStats: failed to get appointments for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Агрегируем
	buckets := planning.Aggregate(appointments, periods, uc.settings.Policy)
	avgTicket := planning.AverageTicket(buckets)

	uc.logger.Info("GetRevenueStats: salon=%d daily=%s weekly=%s monthly=%s",
		req.SalonID, buckets.Daily.Revenue, buckets.Weekly.Revenue, buckets.Monthly.Revenue)

	return &Response{
		SalonID:       req.SalonID,
		Date:          req.Date.Format(domain.DateFormat),
		Daily:         periodStats(periods.Daily, buckets.Daily),
		Weekly:        periodStats(periods.Weekly, buckets.Weekly),
		Monthly:       periodStats(periods.Monthly, buckets.Monthly),
		AverageTicket: avgTicket.StringFixed(2),
	}, nil
}

// periodStats собирает DTO одного периода
func periodStats(r planning.Range, b planning.Bucket) PeriodStats {
	return PeriodStats{
		StartDate:        r.Start.Format(domain.DateFormat),
		EndDate:          r.End.Format(domain.DateFormat),
		Revenue:          b.Revenue.StringFixed(2),
		AppointmentCount: b.AppointmentCount,
	}
}

// checkManagerAccess проверяет, что пользователь является менеджером салона
func (uc *UseCase) checkManagerAccess(ctx context.Context, salonID, userID int64) error {
	salon, err := uc.salonClient.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("GetRevenueStats: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		uc.logger.Error("GetRevenueStats: failed to get salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	for _, managerID := range salon.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	uc.logger.Warn("GetRevenueStats: user=%d is not a manager of salon=%d", userID, salonID)
	return ErrAccessDenied
}
