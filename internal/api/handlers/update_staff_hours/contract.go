package update_staff_hours

import (
	"context"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/staff/models"
)

type StaffService interface {
	UpdateActiveHours(ctx context.Context, staffID int64, req *models.UpdateActiveHoursRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
