package create_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	createAppointment "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/create_appointment"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SalonID     int64   `json:"salonId"`
	StaffID     int64   `json:"staffId"`
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       string  `json:"price"`     // десятичная строка, например "45.00"
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	EndTime     string  `json:"endTime"`   // "10:30"
	ClientName  *string `json:"clientName,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	SalonID     int64   `json:"salonId"`
	StaffID     int64   `json:"staffId"`
	ServiceID   int64   `json:"serviceId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Price       string  `json:"price"`
	Status      string  `json:"status"`
	ServiceName string  `json:"serviceName"`
	ClientName  *string `json:"clientName,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим времена
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	// Парсим цену
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:    clientID,
		SalonID:     r.SalonID,
		StaffID:     r.StaffID,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		Price:       price,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		ClientName:  r.ClientName,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		SalonID:     resp.SalonID,
		StaffID:     resp.StaffID,
		ServiceID:   resp.ServiceID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Price:       resp.Price.StringFixed(2),
		Status:      resp.Status,
		ServiceName: resp.ServiceName,
		ClientName:  resp.ClientName,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
