package create_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID    int64            // ID клиента
	SalonID     int64            // ID салона
	StaffID     int64            // ID мастера
	ServiceID   int64            // ID услуги
	ServiceName string           // Название услуги (денормализация)
	Price       decimal.Decimal  // Цена услуги
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала (например, "10:00")
	EndTime     types.TimeString // Время окончания (например, "10:30")
	ClientName  *string          // Имя клиента (опционально)
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64            // ID созданной записи
	ClientID  int64            // ID клиента
	SalonID   int64            // ID салона
	StaffID   int64            // ID мастера
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Price     decimal.Decimal  // Цена услуги
	Status    string           // Статус записи

	// Денормализованные данные
	ServiceName string  // Название услуги
	ClientName  *string // Имя клиента
	Notes       *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
