package salonservice

// Logger интерфейс логгера для клиента SalonService
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Salon модель салона из SalonService
type Salon struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Timezone     string       `json:"timezone"`
	IsActive     bool         `json:"is_active"`
	ManagerIDs   []int64      `json:"manager_ids"`
	WorkingHours WorkingHours `json:"working_hours"`
}

// WorkingHours расписание работы салона по дням недели
type WorkingHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule режим работы в один день недели
type DaySchedule struct {
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`  // HH:MM
	CloseTime string `json:"close_time"` // HH:MM
}

// ErrorResponse модель ошибки от SalonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
