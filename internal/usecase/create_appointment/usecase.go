package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	staffRepo "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/infra/storage/staff"
	salonClient "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	salonClient     SalonServiceClient
	planningCache   PlanningCache
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	salonClient SalonServiceClient,
	planningCache PlanningCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		salonClient:     salonClient,
		planningCache:   planningCache,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, salon=%d, staff=%d, service=%d, date=%s, time=%s-%s",
		req.ClientID, req.SalonID, req.StaffID, req.ServiceID,
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не может быть в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Получаем салон и проверяем режим работы в указанную дату
	salon, err := uc.salonClient.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("CreateAppointment: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	schedule := salon.ScheduleFor(req.Date)
	if !schedule.IsOpen {
		uc.logger.Warn("CreateAppointment: salon id=%d is closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	if err := validateWithinSchedule(req.StartTime, req.EndTime, schedule); err != nil {
		uc.logger.Warn("CreateAppointment: slot %s-%s outside salon hours %s-%s",
			req.StartTime, req.EndTime, schedule.OpenTime, schedule.CloseTime)
		return nil, err
	}

	// 5. Получаем мастера и проверяем его рабочее окно
	member, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if member.SalonID != req.SalonID {
		uc.logger.Warn("CreateAppointment: staff id=%d belongs to salon=%d, not salon=%d",
			req.StaffID, member.SalonID, req.SalonID)
		return nil, ErrStaffNotInSalon
	}

	if !member.IsActive {
		uc.logger.Warn("CreateAppointment: staff id=%d is not active", req.StaffID)
		return nil, ErrStaffInactive
	}

	if !member.CanFit(req.StartTime, req.EndTime) {
		uc.logger.Warn("CreateAppointment: slot %s-%s outside staff id=%d window %s-%s",
			req.StartTime, req.EndTime, req.StaffID, member.ActiveFrom, member.ActiveTo)
		return nil, ErrOutsideStaffHours
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активные записи мастера на дату с блокировкой (FOR UPDATE)
		filter := domain.SalonAppointmentsFilter{
			SalonID:         req.SalonID,
			StaffID:         &req.StaffID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные записи
		}

		existing, err := uc.appointmentRepo.GetBySalonWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.2. Проверяем пересечения с существующими записями
		if overlaps(req.StartTime, req.EndTime, existing) {
			uc.logger.Warn("CreateAppointment: slot %s-%s already taken for staff=%d on %s",
				req.StartTime, req.EndTime, req.StaffID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 6.3. Создаем запись с денормализацией данных
		appt := &domain.Appointment{
			SalonID:     req.SalonID,
			StaffID:     req.StaffID,
			ClientID:    req.ClientID,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Price:       req.Price,
			Status:      domain.StatusScheduled,
			ServiceName: req.ServiceName,
			ClientName:  req.ClientName,
			Notes:       req.Notes,
		}

		// 6.4. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 7. Сбрасываем кеш планинга салона.
	// Ошибка не фатальна - кеш переживёт TTL.
	if uc.planningCache != nil {
		if err := uc.planningCache.InvalidateSalon(ctx, req.SalonID); err != nil {
			uc.logger.Warn("CreateAppointment: failed to invalidate planning cache for salon=%d: %v", req.SalonID, err)
		}
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:          result.ID,
		ClientID:    result.ClientID,
		SalonID:     result.SalonID,
		StaffID:     result.StaffID,
		ServiceID:   result.ServiceID,
		Date:        result.Date,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Price:       result.Price,
		Status:      string(result.Status),
		ServiceName: result.ServiceName,
		ClientName:  result.ClientName,
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
