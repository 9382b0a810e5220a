package domain

import (
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// StaffMember represents a bookable salon employee
type StaffMember struct {
	ID      int64
	SalonID int64
	Name    string
	Role    string // coiffeur, coloriste, estheticienne...

	// Active hours define the daily window during which the staff member is bookable
	ActiveFrom types.TimeString
	ActiveTo   types.TimeString

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorksAt returns true if t falls within the staff member's active hours.
// Начало окна включительно, конец - нет.
func (s *StaffMember) WorksAt(t types.TimeString) bool {
	if !s.IsActive {
		return false
	}
	return !t.IsBefore(s.ActiveFrom) && t.IsBefore(s.ActiveTo)
}

// CanFit returns true if the interval [start, end) fits within active hours
func (s *StaffMember) CanFit(start, end types.TimeString) bool {
	if !s.IsActive {
		return false
	}
	return !start.IsBefore(s.ActiveFrom) && !end.IsAfter(s.ActiveTo)
}
