package get_revenue_stats

import (
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/planning"
)

// Request модель запроса на получение статистики выручки
type Request struct {
	UserID  int64     // ID пользователя (менеджера салона)
	SalonID int64     // ID салона
	Date    time.Time // Опорная дата, вокруг которой строятся периоды (без времени)
}

// Settings настройки агрегации из конфигурации сервиса
type Settings struct {
	WeekStart time.Weekday           // Первый день недели
	Policy    planning.RevenuePolicy // Какие статусы считаются выручкой
}

// PeriodStats агрегат одного периода
type PeriodStats struct {
	StartDate        string `json:"startDate"` // YYYY-MM-DD
	EndDate          string `json:"endDate"`   // YYYY-MM-DD
	Revenue          string `json:"revenue"`   // десятичная строка, например "1250.00"
	AppointmentCount int    `json:"appointmentCount"`
}

// Response модель ответа со статистикой выручки
type Response struct {
	SalonID       int64       `json:"salonId"`
	Date          string      `json:"date"` // опорная дата YYYY-MM-DD
	Daily         PeriodStats `json:"daily"`
	Weekly        PeriodStats `json:"weekly"`
	Monthly       PeriodStats `json:"monthly"`
	AverageTicket string      `json:"averageTicket"` // средний чек, десятичная строка
}
