package get_salon_appointments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	salonID int64,
	userID int64,
	staffIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
	includeInactiveStr string,
) (*models.GetSalonAppointmentsRequest, error) {
	req := &models.GetSalonAppointmentsRequest{
		UserID:          userID,
		SalonID:         salonID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим staffId если указан
	if staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим период если указан. Одна startDate без endDate означает один день.
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
		req.EndDate = &startDate
	}
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		if req.StartDate == nil {
			return nil, fmt.Errorf("endDate requires startDate")
		}
		if endDate.Before(*req.StartDate) {
			return nil, fmt.Errorf("endDate is before startDate")
		}
		req.EndDate = &endDate
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
