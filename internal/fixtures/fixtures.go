package fixtures

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/ptr"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// Роли и услуги, типичные для салона красоты
var (
	staffRoles = []string{"coiffeur", "coloriste", "estheticienne", "manucure", "barbier"}

	services = []struct {
		Name     string
		Minutes  int
		PriceMin float64
		PriceMax float64
	}{
		{"Coupe femme", 60, 35, 75},
		{"Coupe homme", 30, 18, 40},
		{"Coloration", 120, 60, 150},
		{"Balayage", 150, 90, 220},
		{"Brushing", 30, 20, 45},
		{"Soin visage", 60, 45, 110},
		{"Manucure", 45, 25, 60},
		{"Epilation sourcils", 15, 8, 20},
	}
)

// Generator детерминированный генератор тестовых данных.
// Один и тот же seed всегда даёт один и тот же набор - фикстуры для тестов
// и наполнение dev-окружения используют общий код.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator создает генератор с фиксированным seed
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// StaffMember генерирует сотрудника салона
func (g *Generator) StaffMember(id, salonID int64) *domain.StaffMember {
	// Рабочее окно: начало 8-11, длина 6-9 часов
	startHour := g.faker.Number(8, 11)
	endHour := startHour + g.faker.Number(6, 9)
	if endHour > 20 {
		endHour = 20
	}

	return &domain.StaffMember{
		ID:         id,
		SalonID:    salonID,
		Name:       g.faker.Name(),
		Role:       staffRoles[g.faker.Number(0, len(staffRoles)-1)],
		ActiveFrom: hourToTimeString(startHour),
		ActiveTo:   hourToTimeString(endHour),
		IsActive:   true,
	}
}

// Appointment генерирует запись клиента на указанную дату
func (g *Generator) Appointment(id int64, staff *domain.StaffMember, date time.Time) *domain.Appointment {
	svc := services[g.faker.Number(0, len(services)-1)]

	// Время начала внутри рабочего окна мастера, выровнено по получасу
	fromMinutes, _ := staff.ActiveFrom.Minutes()
	toMinutes, _ := staff.ActiveTo.Minutes()
	latestStart := toMinutes - svc.Minutes
	if latestStart < fromMinutes {
		latestStart = fromMinutes
	}
	startMinutes := fromMinutes + g.faker.Number(0, (latestStart-fromMinutes)/30)*30

	startTime := minutesToTimeString(startMinutes)
	endTime := minutesToTimeString(startMinutes + svc.Minutes)

	price := decimal.NewFromFloat(g.faker.Float64Range(svc.PriceMin, svc.PriceMax)).Round(2)

	var notes *string
	if g.faker.Number(0, 4) == 0 {
		notes = ptr.Ptr(g.faker.Sentence(5))
	}

	return &domain.Appointment{
		ID:          id,
		SalonID:     staff.SalonID,
		StaffID:     staff.ID,
		ClientID:    int64(g.faker.Number(1000, 9999)),
		ServiceID:   int64(g.faker.Number(1, 100)),
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Price:       price,
		Status:      g.status(date),
		ServiceName: svc.Name,
		ClientName:  ptr.Ptr(g.faker.Name()),
		Notes:       notes,
	}
}

// status выбирает правдоподобный статус: прошедшие даты чаще завершены,
// будущие - запланированы или подтверждены
func (g *Generator) status(date time.Time) domain.AppointmentStatus {
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		switch g.faker.Number(0, 9) {
		case 0:
			return domain.StatusCancelled
		case 1:
			return domain.StatusNoShow
		default:
			return domain.StatusCompleted
		}
	}

	if g.faker.Bool() {
		return domain.StatusConfirmed
	}
	return domain.StatusScheduled
}

func hourToTimeString(hour int) types.TimeString {
	return minutesToTimeString(hour * 60)
}

func minutesToTimeString(minutes int) types.TimeString {
	ts, err := types.NewTimeStringFromString(formatMinutes(minutes))
	if err != nil {
		// Генератор всегда держит минуты в пределах суток
		return types.TimeString("09:00")
	}
	return ts
}

func formatMinutes(minutes int) string {
	return time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(domain.TimeFormat)
}
