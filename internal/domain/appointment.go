package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a client appointment with a staff member
type Appointment struct {
	ID        int64
	SalonID   int64
	StaffID   int64
	ClientID  int64
	ServiceID int64
	Date      time.Time // дата без времени
	StartTime types.TimeString
	EndTime   types.TimeString
	Price     decimal.Decimal
	Status    AppointmentStatus

	// Denormalized data for history
	ServiceName string
	ClientName  *string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// IsTerminal returns true if the appointment reached a terminal state
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled || a.Status == StatusNoShow
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// DurationMinutes returns the appointment length in minutes.
// Второе значение false, если времена некорректны или EndTime не позже StartTime.
func (a *Appointment) DurationMinutes() (int, bool) {
	minutes, err := a.StartTime.MinutesUntil(a.EndTime)
	if err != nil || minutes <= 0 {
		return 0, false
	}
	return minutes, true
}

// SalonAppointmentsFilter фильтр для получения записей салона
type SalonAppointmentsFilter struct {
	SalonID         int64              // Обязательный параметр
	StaffID         *int64             // Фильтр по мастеру (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи и no-show
}
