package planning

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

func appt(id, staffID int64, day time.Time, start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		SalonID:     1,
		StaffID:     staffID,
		ClientID:    100 + id,
		ServiceID:   1,
		Date:        day,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Price:       decimal.NewFromInt(50),
		Status:      status,
		ServiceName: "Coupe femme",
	}
}

func TestBuildIndex(t *testing.T) {
	day := date(2025, time.January, 6)

	t.Run("indexes appointments by slot", func(t *testing.T) {
		idx, warnings := BuildIndex([]*domain.Appointment{
			appt(1, 10, day, "10:00", "11:00", domain.StatusScheduled),
			appt(2, 10, day, "14:00", "15:00", domain.StatusConfirmed),
			appt(3, 20, day, "10:00", "10:30", domain.StatusScheduled),
		})

		assert.Empty(t, warnings)
		assert.Equal(t, 3, idx.Len())

		found := idx.Lookup(10, day, "10:00")
		require.Len(t, found, 1)
		assert.Equal(t, int64(1), found[0].ID)

		assert.Empty(t, idx.Lookup(10, day, "10:30"))
		assert.Empty(t, idx.Lookup(10, day.AddDate(0, 0, 1), "10:00"))
		assert.Empty(t, idx.Lookup(99, day, "10:00"))
	})

	t.Run("counts only active appointments", func(t *testing.T) {
		idx, warnings := BuildIndex([]*domain.Appointment{
			appt(1, 10, day, "10:00", "11:00", domain.StatusScheduled),
			appt(2, 10, day, "11:00", "12:00", domain.StatusCancelled),
			appt(3, 10, day, "12:00", "13:00", domain.StatusNoShow),
			appt(4, 20, day, "10:00", "11:00", domain.StatusCompleted),
		})

		assert.Empty(t, warnings)
		assert.Equal(t, 4, idx.Len())
		assert.Equal(t, 2, idx.CountForDay(day))
		assert.Equal(t, 1, idx.CountForStaffAndDay(10, day))
		assert.Equal(t, 1, idx.CountForStaffAndDay(20, day))

		// Отменённая запись остаётся доступной через Lookup
		found := idx.Lookup(10, day, "11:00")
		require.Len(t, found, 1)
		assert.Equal(t, domain.StatusCancelled, found[0].Status)
	})

	t.Run("malformed records are skipped with warnings", func(t *testing.T) {
		noDate := appt(1, 10, time.Time{}, "10:00", "11:00", domain.StatusScheduled)
		noStaff := appt(2, 0, day, "10:00", "11:00", domain.StatusScheduled)
		badStart := appt(3, 10, day, "25:00", "11:00", domain.StatusScheduled)
		badEnd := appt(4, 10, day, "10:00", "abc", domain.StatusScheduled)
		inverted := appt(5, 10, day, "11:00", "10:00", domain.StatusScheduled)
		negative := appt(6, 10, day, "10:00", "11:00", domain.StatusScheduled)
		negative.Price = decimal.NewFromInt(-5)
		valid := appt(7, 10, day, "12:00", "13:00", domain.StatusScheduled)

		idx, warnings := BuildIndex([]*domain.Appointment{
			noDate, noStaff, badStart, badEnd, inverted, negative, valid, nil,
		})

		assert.Equal(t, 1, idx.Len())
		require.Len(t, warnings, 6)

		byID := make(map[int64]string, len(warnings))
		for _, w := range warnings {
			byID[w.AppointmentID] = w.Reason
		}
		assert.Equal(t, "missing date", byID[1])
		assert.Equal(t, "missing staff id", byID[2])
		assert.Contains(t, byID[3], "invalid start time")
		assert.Contains(t, byID[4], "invalid end time")
		assert.Equal(t, "end time must be after start time", byID[5])
		assert.Equal(t, "negative price", byID[6])
	})

	t.Run("empty input", func(t *testing.T) {
		idx, warnings := BuildIndex(nil)
		assert.Empty(t, warnings)
		assert.Zero(t, idx.Len())
		assert.Empty(t, idx.Conflicts())
	})
}

func TestAppointmentIndex_Conflicts(t *testing.T) {
	day := date(2025, time.January, 6)

	t.Run("double booking on the same slot", func(t *testing.T) {
		first := appt(1, 10, day, "10:00", "11:00", domain.StatusScheduled)
		second := appt(2, 10, day, "10:00", "10:30", domain.StatusConfirmed)

		idx, warnings := BuildIndex([]*domain.Appointment{first, second})
		require.Empty(t, warnings)

		// Lookup возвращает обе записи, без выбора победителя
		found := idx.Lookup(10, day, "10:00")
		assert.Len(t, found, 2)

		conflicts := idx.Conflicts()
		require.Len(t, conflicts, 1)
		assert.Equal(t, int64(10), conflicts[0].StaffID)
		assert.True(t, SameDay(day, conflicts[0].Date))
		assert.Equal(t, types.TimeString("10:00"), conflicts[0].StartTime)
		assert.Len(t, conflicts[0].Appointments, 2)
	})

	t.Run("cancelled appointment does not conflict", func(t *testing.T) {
		idx, _ := BuildIndex([]*domain.Appointment{
			appt(1, 10, day, "10:00", "11:00", domain.StatusScheduled),
			appt(2, 10, day, "10:00", "10:30", domain.StatusCancelled),
		})

		assert.Empty(t, idx.Conflicts())
	})

	t.Run("same time different staff is not a conflict", func(t *testing.T) {
		idx, _ := BuildIndex([]*domain.Appointment{
			appt(1, 10, day, "10:00", "11:00", domain.StatusScheduled),
			appt(2, 20, day, "10:00", "11:00", domain.StatusScheduled),
		})

		assert.Empty(t, idx.Conflicts())
	})

	t.Run("conflicts are ordered by date, staff and time", func(t *testing.T) {
		nextDay := day.AddDate(0, 0, 1)
		idx, _ := BuildIndex([]*domain.Appointment{
			appt(1, 20, nextDay, "10:00", "11:00", domain.StatusScheduled),
			appt(2, 20, nextDay, "10:00", "11:00", domain.StatusScheduled),
			appt(3, 10, day, "14:00", "15:00", domain.StatusScheduled),
			appt(4, 10, day, "14:00", "15:00", domain.StatusScheduled),
			appt(5, 10, day, "09:00", "10:00", domain.StatusScheduled),
			appt(6, 10, day, "09:00", "10:00", domain.StatusScheduled),
		})

		conflicts := idx.Conflicts()
		require.Len(t, conflicts, 3)
		assert.Equal(t, types.TimeString("09:00"), conflicts[0].StartTime)
		assert.Equal(t, types.TimeString("14:00"), conflicts[1].StartTime)
		assert.True(t, SameDay(nextDay, conflicts[2].Date))
	})
}
