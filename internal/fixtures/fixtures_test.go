package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Deterministic(t *testing.T) {
	day := time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)

	a := NewGenerator(42)
	b := NewGenerator(42)

	staffA := a.StaffMember(1, 1)
	staffB := b.StaffMember(1, 1)
	assert.Equal(t, staffA, staffB)

	assert.Equal(t, a.Appointment(1, staffA, day), b.Appointment(1, staffB, day))
}

func TestGenerator_StaffMember(t *testing.T) {
	gen := NewGenerator(7)

	for i := 0; i < 50; i++ {
		member := gen.StaffMember(int64(i), 1)

		require.NoError(t, member.ActiveFrom.Validate())
		require.NoError(t, member.ActiveTo.Validate())
		assert.True(t, member.ActiveFrom.IsBefore(member.ActiveTo))
		assert.True(t, member.IsActive)
		assert.NotEmpty(t, member.Name)
		assert.Contains(t, staffRoles, member.Role)
	}
}

func TestGenerator_Appointment(t *testing.T) {
	gen := NewGenerator(7)
	member := gen.StaffMember(1, 1)
	// Дата далеко в будущем, чтобы статусы были только scheduled/confirmed
	day := time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		appt := gen.Appointment(int64(i), member, day)

		require.NoError(t, appt.StartTime.Validate())
		require.NoError(t, appt.EndTime.Validate())
		assert.True(t, appt.StartTime.IsBefore(appt.EndTime))
		assert.False(t, appt.StartTime.IsBefore(member.ActiveFrom),
			"appointment %s starts before staff window %s", appt.StartTime, member.ActiveFrom)
		assert.False(t, appt.Price.IsNegative())
		assert.NotEmpty(t, appt.ServiceName)

		// Будущая дата не даёт завершённых статусов
		assert.Contains(t, []string{"scheduled", "confirmed"}, string(appt.Status))
	}
}
