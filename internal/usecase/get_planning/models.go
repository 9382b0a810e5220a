package get_planning

import (
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/planning"
	appointmentModels "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/appointments/models"
	staffModels "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/staff/models"
)

// Request модель запроса на получение планинга
type Request struct {
	SalonID int64     // ID салона
	Mode    string    // Режим отображения: day, week, month
	Date    time.Time // Опорная дата (без времени)
}

// Settings настройки сетки планинга из конфигурации сервиса
type Settings struct {
	OpenHour        int          // Час открытия по умолчанию (fallback при недоступности SalonService)
	CloseHour       int          // Час закрытия по умолчанию
	SlotStepMinutes int          // Шаг слотов в минутах
	WeekStart       time.Weekday // Первый день недели
}

// Response модель ответа с собранным представлением планинга.
// Сериализуется в JSON целиком - в этом виде и кешируется.
type Response struct {
	SalonID    int64  `json:"salonId"`
	Mode       string `json:"mode"`
	Date       string `json:"date"`       // опорная дата YYYY-MM-DD
	RangeStart string `json:"rangeStart"` // начало периода YYYY-MM-DD
	RangeEnd   string `json:"rangeEnd"`   // конец периода YYYY-MM-DD
	PrevDate   string `json:"prevDate"`   // опорная дата предыдущего периода
	NextDate   string `json:"nextDate"`   // опорная дата следующего периода

	Staff []staffModels.StaffResponse `json:"staff"`

	// Ровно одно из представлений заполнено в зависимости от Mode
	DayView   []DaySlotRow               `json:"dayView,omitempty"`
	WeekView  map[string]WeekDaySummary  `json:"weekView,omitempty"`
	MonthView map[string]MonthDaySummary `json:"monthView,omitempty"`

	// Конфликты двойного бронирования и записи, исключённые из индекса
	Conflicts []ConflictSummary `json:"conflicts,omitempty"`
	Warnings  []Warning         `json:"warnings,omitempty"`

	FromCache bool `json:"-"` // служебный флаг, в JSON не попадает
}

// DaySlotRow строка дневной сетки
type DaySlotRow struct {
	Time    string                                            `json:"time"`
	ByStaff map[int64][]appointmentModels.AppointmentResponse `json:"byStaff"`
}

// WeekDaySummary сводка одного дня недели
type WeekDaySummary struct {
	Date             string                                  `json:"date"`
	AppointmentCount int                                     `json:"appointmentCount"`
	Appointments     []appointmentModels.AppointmentResponse `json:"appointments"`
}

// MonthDaySummary сводка одного дня месячной сетки
type MonthDaySummary struct {
	Date             string `json:"date"`
	AppointmentCount int    `json:"appointmentCount"`
	IsCurrentMonth   bool   `json:"isCurrentMonth"`
	IsToday          bool   `json:"isToday"`
}

// ConflictSummary конфликт двойного бронирования
type ConflictSummary struct {
	StaffID        int64   `json:"staffId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	AppointmentIDs []int64 `json:"appointmentIds"`
}

// Warning запись, исключённая из индекса при построении
type Warning struct {
	AppointmentID int64  `json:"appointmentId"`
	Reason        string `json:"reason"`
}

// conflictSummaries конвертирует доменные конфликты в DTO
func conflictSummaries(conflicts []planning.Conflict) []ConflictSummary {
	if len(conflicts) == 0 {
		return nil
	}

	out := make([]ConflictSummary, len(conflicts))
	for i, c := range conflicts {
		ids := make([]int64, len(c.Appointments))
		for j, appt := range c.Appointments {
			ids[j] = appt.ID
		}
		out[i] = ConflictSummary{
			StaffID:        c.StaffID,
			Date:           c.Date.Format("2006-01-02"),
			StartTime:      c.StartTime.String(),
			AppointmentIDs: ids,
		}
	}
	return out
}

// buildWarnings конвертирует предупреждения индекса в DTO
func buildWarnings(warnings []planning.BuildWarning) []Warning {
	if len(warnings) == 0 {
		return nil
	}

	out := make([]Warning, len(warnings))
	for i, w := range warnings {
		out[i] = Warning{AppointmentID: w.AppointmentID, Reason: w.Reason}
	}
	return out
}
