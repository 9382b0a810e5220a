package planning

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
)

// RevenuePolicy определяет, какие статусы записи учитываются в выручке
type RevenuePolicy []domain.AppointmentStatus

var (
	// PolicyCompletedOnly учитывает только завершённые записи.
	// Политика по умолчанию: деньги считаются полученными после оказания услуги.
	PolicyCompletedOnly = RevenuePolicy{domain.StatusCompleted}

	// PolicyCompletedConfirmed дополнительно учитывает подтверждённые записи
	// (прогнозная выручка)
	PolicyCompletedConfirmed = RevenuePolicy{domain.StatusCompleted, domain.StatusConfirmed}
)

// ParseRevenuePolicy converts a config string into a RevenuePolicy
func ParseRevenuePolicy(s string) (RevenuePolicy, error) {
	switch s {
	case "completed":
		return PolicyCompletedOnly, nil
	case "completed_confirmed":
		return PolicyCompletedConfirmed, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRevenuePolicy, s)
	}
}

// Includes reports whether the status counts toward revenue under this policy
func (p RevenuePolicy) Includes(status domain.AppointmentStatus) bool {
	for _, s := range p {
		if s == status {
			return true
		}
	}
	return false
}

// Bucket агрегат выручки за период
type Bucket struct {
	Revenue          decimal.Decimal
	AppointmentCount int
}

// Periods границы периодов агрегации вокруг опорной даты
type Periods struct {
	Daily   Range
	Weekly  Range
	Monthly Range
}

// Buckets результат агрегации по трём периодам
type Buckets struct {
	Daily   Bucket
	Weekly  Bucket
	Monthly Bucket
}

// PeriodsFor computes the daily/weekly/monthly bounds containing ref
func PeriodsFor(ref time.Time, weekStart time.Weekday) (Periods, error) {
	daily, err := BoundsFor(ref, ModeDay, weekStart)
	if err != nil {
		return Periods{}, err
	}
	weekly, err := BoundsFor(ref, ModeWeek, weekStart)
	if err != nil {
		return Periods{}, err
	}
	monthly, err := BoundsFor(ref, ModeMonth, weekStart)
	if err != nil {
		return Periods{}, err
	}
	return Periods{Daily: daily, Weekly: weekly, Monthly: monthly}, nil
}

// Aggregate filters appointments by the revenue policy and sums price and count
// into daily/weekly/monthly buckets. Границы периодов включительные с обеих
// сторон. Денежная арифметика точная (decimal), без дрейфа плавающей точки.
func Aggregate(appointments []*domain.Appointment, periods Periods, policy RevenuePolicy) Buckets {
	buckets := Buckets{
		Daily:   Bucket{Revenue: decimal.Zero},
		Weekly:  Bucket{Revenue: decimal.Zero},
		Monthly: Bucket{Revenue: decimal.Zero},
	}

	for _, appt := range appointments {
		if appt == nil || !policy.Includes(appt.Status) {
			continue
		}

		if withinRange(appt.Date, periods.Daily) {
			buckets.Daily.Revenue = buckets.Daily.Revenue.Add(appt.Price)
			buckets.Daily.AppointmentCount++
		}
		if withinRange(appt.Date, periods.Weekly) {
			buckets.Weekly.Revenue = buckets.Weekly.Revenue.Add(appt.Price)
			buckets.Weekly.AppointmentCount++
		}
		if withinRange(appt.Date, periods.Monthly) {
			buckets.Monthly.Revenue = buckets.Monthly.Revenue.Add(appt.Price)
			buckets.Monthly.AppointmentCount++
		}
	}

	return buckets
}

// AverageTicket returns total revenue across all buckets divided by total count.
// При нулевом количестве возвращается 0, а не NaN и не ошибка.
func AverageTicket(b Buckets) decimal.Decimal {
	total := b.Daily.Revenue.Add(b.Weekly.Revenue).Add(b.Monthly.Revenue)
	count := b.Daily.AppointmentCount + b.Weekly.AppointmentCount + b.Monthly.AppointmentCount

	if count == 0 {
		return decimal.Zero
	}

	return total.DivRound(decimal.NewFromInt(int64(count)), 2)
}

// withinRange проверяет попадание даты в период (включительно с обеих сторон)
func withinRange(date time.Time, r Range) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(r.Start)) && !d.After(dateOnly(r.End))
}
