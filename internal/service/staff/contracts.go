package staff

import (
	"context"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	GetBySalon(ctx context.Context, salonID int64, activeOnly bool) ([]*domain.StaffMember, error)
	UpdateActiveHours(ctx context.Context, id int64, from, to types.TimeString) error
	SetActive(ctx context.Context, id int64, isActive bool) error
}

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error)
}

// PlanningCache интерфейс кеша представлений планинга
type PlanningCache interface {
	InvalidateSalon(ctx context.Context, salonID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
