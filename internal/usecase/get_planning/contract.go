package get_planning

import (
	"context"
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetBySalon(ctx context.Context, salonID int64, activeOnly bool) ([]*domain.StaffMember, error)
}

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetSalonWithGracefulDegradation(ctx context.Context, salonID int64) (*salonservice.Salon, error)
}

// PlanningCache интерфейс кеша собранных представлений
type PlanningCache interface {
	GetView(ctx context.Context, salonID int64, mode, date string) ([]byte, bool, error)
	SetView(ctx context.Context, salonID int64, mode, date string, data []byte) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
