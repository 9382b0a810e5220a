package domain

// Default planning grid values
const (
	DefaultOpenHour        = 9
	DefaultCloseHour       = 19
	DefaultSlotStepMinutes = 30
)

// Business validation constants
const (
	MinAppointmentMinutes       = 15
	MaxAppointmentMinutes       = 480 // 8 часов
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxStaffNameLength          = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, которые не занимают слот в сетке
// Используется при фильтрации записей для расчёта занятости
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}

// ValidStatuses все допустимые статусы записи
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
