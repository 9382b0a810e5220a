package get_staff

import (
	"context"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/staff/models"
)

type StaffService interface {
	GetSalonStaff(ctx context.Context, salonID int64, activeOnly bool) (*models.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
