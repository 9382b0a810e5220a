package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

func staffMember(id int64) *domain.StaffMember {
	return &domain.StaffMember{
		ID:         id,
		SalonID:    1,
		Name:       "Test Master",
		Role:       "coiffeur",
		ActiveFrom: "09:00",
		ActiveTo:   "18:00",
		IsActive:   true,
	}
}

func TestBuildDayView(t *testing.T) {
	day := date(2025, time.January, 6)
	staffList := []*domain.StaffMember{staffMember(10), staffMember(20)}

	slots, err := GenerateSlots(9, 12, 30)
	require.NoError(t, err)

	idx, warnings := BuildIndex([]*domain.Appointment{
		appt(1, 10, day, "09:00", "10:00", domain.StatusScheduled),
		appt(2, 10, day, "09:00", "09:30", domain.StatusConfirmed), // двойное бронирование
		appt(3, 20, day, "10:30", "11:00", domain.StatusScheduled),
	})
	require.Empty(t, warnings)

	rows := BuildDayView(day, staffList, idx, slots)
	require.Len(t, rows, len(slots))

	t.Run("rows follow slot order", func(t *testing.T) {
		for i, slot := range slots {
			assert.Equal(t, slot, rows[i].Time)
		}
	})

	t.Run("every staff member has an entry per row", func(t *testing.T) {
		for _, row := range rows {
			assert.Len(t, row.ByStaff, 2)
		}
	})

	t.Run("double booking is visible in the cell", func(t *testing.T) {
		assert.Len(t, rows[0].ByStaff[10], 2)
		assert.Empty(t, rows[0].ByStaff[20])
	})

	t.Run("occupied and free cells", func(t *testing.T) {
		// 10:30 - третий ряд от 09:00 с шагом 30
		assert.Equal(t, types.TimeString("10:30"), rows[3].Time)
		assert.Len(t, rows[3].ByStaff[20], 1)
		assert.Empty(t, rows[3].ByStaff[10])
	})
}

func TestBuildWeekView(t *testing.T) {
	r, err := BoundsFor(date(2025, time.January, 15), ModeWeek, time.Monday)
	require.NoError(t, err)

	monday := date(2025, time.January, 13)
	wednesday := date(2025, time.January, 15)

	appointments := []*domain.Appointment{
		appt(1, 10, monday, "10:00", "11:00", domain.StatusScheduled),
		appt(2, 10, monday, "14:00", "15:00", domain.StatusCompleted),
		appt(3, 20, wednesday, "10:00", "11:00", domain.StatusScheduled),
		appt(4, 20, wednesday, "12:00", "13:00", domain.StatusCancelled),
	}
	idx, warnings := BuildIndex(appointments)
	require.Empty(t, warnings)

	view := BuildWeekView(r.Days, idx, appointments)
	require.Len(t, view, 7)

	t.Run("counts active appointments per day", func(t *testing.T) {
		assert.Equal(t, 2, view["2025-01-13"].AppointmentCount)
		assert.Equal(t, 1, view["2025-01-15"].AppointmentCount)
		assert.Zero(t, view["2025-01-14"].AppointmentCount)
	})

	t.Run("cancelled appointments are excluded from day lists", func(t *testing.T) {
		require.Len(t, view["2025-01-15"].Appointments, 1)
		assert.Equal(t, int64(3), view["2025-01-15"].Appointments[0].ID)
	})

	t.Run("empty days are present with zero counts", func(t *testing.T) {
		sunday, ok := view["2025-01-19"]
		require.True(t, ok)
		assert.Zero(t, sunday.AppointmentCount)
		assert.Empty(t, sunday.Appointments)
	})
}

func TestBuildMonthView(t *testing.T) {
	r, err := BoundsFor(date(2025, time.January, 15), ModeMonth, time.Monday)
	require.NoError(t, err)

	idx, warnings := BuildIndex([]*domain.Appointment{
		appt(1, 10, date(2025, time.January, 6), "10:00", "11:00", domain.StatusScheduled),
		appt(2, 10, date(2025, time.January, 6), "11:00", "12:00", domain.StatusScheduled),
		appt(3, 10, date(2024, time.December, 30), "10:00", "11:00", domain.StatusScheduled),
	})
	require.Empty(t, warnings)

	today := date(2025, time.January, 15)
	view := BuildMonthView(r.Days, idx, today)
	require.Len(t, view, 35)

	t.Run("counts per day including adjacent month tails", func(t *testing.T) {
		assert.Equal(t, 2, view["2025-01-06"].AppointmentCount)
		assert.Equal(t, 1, view["2024-12-30"].AppointmentCount)
		assert.Zero(t, view["2025-01-07"].AppointmentCount)
	})

	t.Run("current month flags", func(t *testing.T) {
		assert.False(t, view["2024-12-30"].IsCurrentMonth)
		assert.True(t, view["2025-01-01"].IsCurrentMonth)
		assert.True(t, view["2025-01-31"].IsCurrentMonth)
		assert.False(t, view["2025-02-01"].IsCurrentMonth)
	})

	t.Run("today is marked", func(t *testing.T) {
		assert.True(t, view["2025-01-15"].IsToday)
		assert.False(t, view["2025-01-14"].IsToday)
	})
}
