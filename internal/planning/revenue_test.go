package planning

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
)

func pricedAppt(id int64, day time.Time, price string, status domain.AppointmentStatus) *domain.Appointment {
	a := appt(id, 10, day, "10:00", "11:00", status)
	a.Price = decimal.RequireFromString(price)
	return a
}

func TestParseRevenuePolicy(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		policy, err := ParseRevenuePolicy("completed")
		require.NoError(t, err)
		assert.True(t, policy.Includes(domain.StatusCompleted))
		assert.False(t, policy.Includes(domain.StatusConfirmed))
	})

	t.Run("completed_confirmed", func(t *testing.T) {
		policy, err := ParseRevenuePolicy("completed_confirmed")
		require.NoError(t, err)
		assert.True(t, policy.Includes(domain.StatusCompleted))
		assert.True(t, policy.Includes(domain.StatusConfirmed))
		assert.False(t, policy.Includes(domain.StatusScheduled))
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := ParseRevenuePolicy("all")
		assert.ErrorIs(t, err, ErrUnknownRevenuePolicy)
	})
}

func TestPeriodsFor(t *testing.T) {
	// 15 января 2025 - среда
	periods, err := PeriodsFor(date(2025, time.January, 15), time.Monday)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.January, 15), periods.Daily.Start)
	assert.Equal(t, date(2025, time.January, 15), periods.Daily.End)
	assert.Equal(t, date(2025, time.January, 13), periods.Weekly.Start)
	assert.Equal(t, date(2025, time.January, 19), periods.Weekly.End)
	assert.Equal(t, date(2025, time.January, 1), periods.Monthly.Start)
	assert.Equal(t, date(2025, time.January, 31), periods.Monthly.End)
}

func TestAggregate(t *testing.T) {
	ref := date(2025, time.January, 15)
	periods, err := PeriodsFor(ref, time.Monday)
	require.NoError(t, err)

	t.Run("buckets by period with inclusive bounds", func(t *testing.T) {
		appointments := []*domain.Appointment{
			pricedAppt(1, ref, "50.00", domain.StatusCompleted),                          // день, неделя, месяц
			pricedAppt(2, date(2025, time.January, 13), "30.00", domain.StatusCompleted), // начало недели
			pricedAppt(3, date(2025, time.January, 19), "20.00", domain.StatusCompleted), // конец недели
			pricedAppt(4, date(2025, time.January, 1), "100.00", domain.StatusCompleted), // начало месяца
			pricedAppt(5, date(2025, time.January, 31), "40.00", domain.StatusCompleted), // конец месяца
			pricedAppt(6, date(2025, time.February, 1), "999.00", domain.StatusCompleted),
			pricedAppt(7, date(2024, time.December, 31), "999.00", domain.StatusCompleted),
		}

		buckets := Aggregate(appointments, periods, PolicyCompletedOnly)

		assert.Equal(t, "50", buckets.Daily.Revenue.String())
		assert.Equal(t, 1, buckets.Daily.AppointmentCount)

		assert.Equal(t, "100", buckets.Weekly.Revenue.String())
		assert.Equal(t, 3, buckets.Weekly.AppointmentCount)

		assert.Equal(t, "240", buckets.Monthly.Revenue.String())
		assert.Equal(t, 5, buckets.Monthly.AppointmentCount)
	})

	t.Run("policy filters statuses", func(t *testing.T) {
		appointments := []*domain.Appointment{
			pricedAppt(1, ref, "50.00", domain.StatusCompleted),
			pricedAppt(2, ref, "60.00", domain.StatusConfirmed),
			pricedAppt(3, ref, "70.00", domain.StatusScheduled),
			pricedAppt(4, ref, "80.00", domain.StatusCancelled),
			pricedAppt(5, ref, "90.00", domain.StatusNoShow),
		}

		completed := Aggregate(appointments, periods, PolicyCompletedOnly)
		assert.Equal(t, "50", completed.Daily.Revenue.String())
		assert.Equal(t, 1, completed.Daily.AppointmentCount)

		forecast := Aggregate(appointments, periods, PolicyCompletedConfirmed)
		assert.Equal(t, "110", forecast.Daily.Revenue.String())
		assert.Equal(t, 2, forecast.Daily.AppointmentCount)
	})

	t.Run("decimal sums are exact", func(t *testing.T) {
		// 0.1 + 0.2 дают ровно 0.3, без дрейфа плавающей точки
		appointments := []*domain.Appointment{
			pricedAppt(1, ref, "0.10", domain.StatusCompleted),
			pricedAppt(2, ref, "0.20", domain.StatusCompleted),
		}

		buckets := Aggregate(appointments, periods, PolicyCompletedOnly)
		assert.True(t, buckets.Daily.Revenue.Equal(decimal.RequireFromString("0.3")),
			"got %s", buckets.Daily.Revenue)
	})

	t.Run("nil appointments are ignored", func(t *testing.T) {
		buckets := Aggregate([]*domain.Appointment{nil, pricedAppt(1, ref, "10.00", domain.StatusCompleted)}, periods, PolicyCompletedOnly)
		assert.Equal(t, 1, buckets.Daily.AppointmentCount)
	})
}

func TestAverageTicket(t *testing.T) {
	t.Run("zero count yields zero, not an error", func(t *testing.T) {
		avg := AverageTicket(Buckets{
			Daily:   Bucket{Revenue: decimal.Zero},
			Weekly:  Bucket{Revenue: decimal.Zero},
			Monthly: Bucket{Revenue: decimal.Zero},
		})
		assert.True(t, avg.IsZero())
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		avg := AverageTicket(Buckets{
			Daily:   Bucket{Revenue: decimal.RequireFromString("100.00"), AppointmentCount: 3},
			Weekly:  Bucket{Revenue: decimal.Zero},
			Monthly: Bucket{Revenue: decimal.Zero},
		})
		assert.Equal(t, "33.33", avg.StringFixed(2))
	})
}
