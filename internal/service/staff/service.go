package staff

import (
	"context"
	"errors"
	"fmt"

	staffRepo "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/infra/storage/staff"
	salonClient "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/staff/models"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// Service сервис для работы с сотрудниками салона
type Service struct {
	staffRepo     StaffRepository
	salonClient   SalonServiceClient
	planningCache PlanningCache
	logger        Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(
	staffRepo StaffRepository,
	salonClient SalonServiceClient,
	planningCache PlanningCache,
	logger Logger,
) *Service {
	return &Service{
		staffRepo:     staffRepo,
		salonClient:   salonClient,
		planningCache: planningCache,
		logger:        logger,
	}
}

// GetSalonStaff получает сотрудников салона
// Публичный метод - список мастеров виден клиентам при записи
func (s *Service) GetSalonStaff(ctx context.Context, salonID int64, activeOnly bool) (*models.StaffListResponse, error) {
	s.logger.Info("GetSalonStaff: fetching staff for salon=%d, activeOnly=%v", salonID, activeOnly)

	members, err := s.staffRepo.GetBySalon(ctx, salonID, activeOnly)
	if err != nil {
		s.logger.Error("GetSalonStaff: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSalonStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSalonStaff: successfully fetched %d staff members for salon=%d", len(members), salonID)
	return models.FromDomainStaffList(members), nil
}

// UpdateActiveHours обновляет рабочее окно сотрудника
// Доступно только менеджерам салона.
// После изменения инвалидируются закешированные представления планинга.
func (s *Service) UpdateActiveHours(ctx context.Context, staffID int64, req *models.UpdateActiveHoursRequest) (*models.StaffResponse, error) {
	s.logger.Info("UpdateActiveHours: updating staff id=%d to window %s-%s by user=%d",
		staffID, req.ActiveFrom, req.ActiveTo, req.UserID)

	// Валидируем рабочее окно
	from, err := types.NewTimeStringFromString(req.ActiveFrom)
	if err != nil {
		s.logger.Warn("UpdateActiveHours: invalid activeFrom=%s: %v", req.ActiveFrom, err)
		return nil, fmt.Errorf("%w: invalid activeFrom", ErrInvalidInput)
	}
	to, err := types.NewTimeStringFromString(req.ActiveTo)
	if err != nil {
		s.logger.Warn("UpdateActiveHours: invalid activeTo=%s: %v", req.ActiveTo, err)
		return nil, fmt.Errorf("%w: invalid activeTo", ErrInvalidInput)
	}
	if !from.IsBefore(to) {
		s.logger.Warn("UpdateActiveHours: activeFrom=%s is not before activeTo=%s", req.ActiveFrom, req.ActiveTo)
		return nil, fmt.Errorf("%w: activeFrom must be before activeTo", ErrInvalidInput)
	}

	// Получаем сотрудника
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateActiveHours: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateActiveHours: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateActiveHours - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только менеджер салона)
	if err := s.checkManagerAccess(ctx, member.SalonID, req.UserID); err != nil {
		return nil, err
	}

	// Обновляем рабочее окно
	if err := s.staffRepo.UpdateActiveHours(ctx, staffID, from, to); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateActiveHours: staff id=%d not found during update", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateActiveHours: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateActiveHours - repository error: %v", ErrInternal, err)
	}

	member.ActiveFrom = from
	member.ActiveTo = to

	// Рабочее окно влияет на дневную сетку - сбрасываем кеш планинга
	if s.planningCache != nil {
		if err := s.planningCache.InvalidateSalon(ctx, member.SalonID); err != nil {
			s.logger.Warn("UpdateActiveHours: failed to invalidate cache for salon=%d: %v", member.SalonID, err)
		}
	}

	s.logger.Info("UpdateActiveHours: successfully updated staff id=%d", staffID)
	return models.FromDomainStaff(member), nil
}

// checkManagerAccess проверяет, что пользователь является менеджером салона
func (s *Service) checkManagerAccess(ctx context.Context, salonID int64, userID int64) error {
	salon, err := s.salonClient.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			s.logger.Warn("checkManagerAccess: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get salon: %v", ErrInternal, err)
	}

	for _, managerID := range salon.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of salon=%d", userID, salonID)
	return ErrAccessDenied
}
