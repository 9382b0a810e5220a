package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// slotKey ключ слота (мастер, дата, время начала)
type slotKey struct {
	staffID int64
	date    string
	start   types.TimeString
}

// staffDayKey ключ для счётчиков по мастеру и дню
type staffDayKey struct {
	staffID int64
	date    string
}

// BuildWarning описывает некорректную запись, пропущенную при построении индекса.
// Одна битая запись не должна ронять весь календарь - она исключается из индекса
// и возвращается вызывающему для отображения.
type BuildWarning struct {
	AppointmentID int64
	Reason        string
}

// Conflict is a double-booking: two or more active appointments occupying
// the same (staff, date, start time) triple.
type Conflict struct {
	StaffID      int64
	Date         time.Time
	StartTime    types.TimeString
	Appointments []*domain.Appointment
}

// AppointmentIndex indexes a flat appointment list by (staff, date, start time)
// for O(1) slot lookup. Индекс одноразовый: перестраивается целиком на каждый
// свежий набор данных, инкрементальных обновлений нет.
type AppointmentIndex struct {
	bySlot     map[slotKey][]*domain.Appointment
	byDay      map[string]int
	byStaffDay map[staffDayKey]int
	total      int
}

// BuildIndex builds the index in O(n). Malformed records are skipped and
// reported as warnings instead of aborting the whole build.
//
// Счётчики CountForDay/CountForStaffAndDay учитывают только активные записи
// (отменённые и no-show слот не занимают), но Lookup возвращает все записи
// слота как есть.
func BuildIndex(appointments []*domain.Appointment) (*AppointmentIndex, []BuildWarning) {
	idx := &AppointmentIndex{
		bySlot:     make(map[slotKey][]*domain.Appointment, len(appointments)),
		byDay:      make(map[string]int),
		byStaffDay: make(map[staffDayKey]int),
	}

	var warnings []BuildWarning

	for _, appt := range appointments {
		if appt == nil {
			continue
		}

		if reason, ok := validateRecord(appt); !ok {
			warnings = append(warnings, BuildWarning{AppointmentID: appt.ID, Reason: reason})
			continue
		}

		date := appt.Date.Format(domain.DateFormat)
		key := slotKey{staffID: appt.StaffID, date: date, start: appt.StartTime}
		idx.bySlot[key] = append(idx.bySlot[key], appt)
		idx.total++

		if appt.IsActive() {
			idx.byDay[date]++
			idx.byStaffDay[staffDayKey{staffID: appt.StaffID, date: date}]++
		}
	}

	return idx, warnings
}

// validateRecord проверяет обязательные поля записи перед индексацией
func validateRecord(appt *domain.Appointment) (string, bool) {
	if appt.Date.IsZero() {
		return "missing date", false
	}
	if appt.StaffID <= 0 {
		return "missing staff id", false
	}
	if _, err := appt.StartTime.Minutes(); err != nil {
		return fmt.Sprintf("invalid start time %q", appt.StartTime), false
	}
	if _, err := appt.EndTime.Minutes(); err != nil {
		return fmt.Sprintf("invalid end time %q", appt.EndTime), false
	}
	if _, ok := appt.DurationMinutes(); !ok {
		return "end time must be after start time", false
	}
	if appt.Price.IsNegative() {
		return "negative price", false
	}
	return "", true
}

// Lookup returns every appointment occupying the (staffID, date, start) slot.
// Больше одной записи означает двойное бронирование: индекс не выбирает
// "победителя" и не дедуплицирует - конфликт отдаётся вызывающему как есть.
func (idx *AppointmentIndex) Lookup(staffID int64, date time.Time, start types.TimeString) []*domain.Appointment {
	key := slotKey{staffID: staffID, date: date.Format(domain.DateFormat), start: start}
	return idx.bySlot[key]
}

// CountForDay returns the number of active appointments on the given date
func (idx *AppointmentIndex) CountForDay(date time.Time) int {
	return idx.byDay[date.Format(domain.DateFormat)]
}

// CountForStaffAndDay returns the number of active appointments for a staff
// member on the given date
func (idx *AppointmentIndex) CountForStaffAndDay(staffID int64, date time.Time) int {
	return idx.byStaffDay[staffDayKey{staffID: staffID, date: date.Format(domain.DateFormat)}]
}

// Len returns the number of indexed appointments
func (idx *AppointmentIndex) Len() int {
	return idx.total
}

// Conflicts returns every slot occupied by more than one active appointment,
// ordered by date, staff and start time for stable output.
func (idx *AppointmentIndex) Conflicts() []Conflict {
	var conflicts []Conflict

	for key, appts := range idx.bySlot {
		active := make([]*domain.Appointment, 0, len(appts))
		for _, appt := range appts {
			if appt.IsActive() {
				active = append(active, appt)
			}
		}
		if len(active) < 2 {
			continue
		}

		date, err := time.Parse(domain.DateFormat, key.date)
		if err != nil {
			// Ключ построен из уже отформатированной даты, сюда попасть нельзя
			continue
		}

		conflicts = append(conflicts, Conflict{
			StaffID:      key.staffID,
			Date:         date,
			StartTime:    key.start,
			Appointments: active,
		})
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if !conflicts[i].Date.Equal(conflicts[j].Date) {
			return conflicts[i].Date.Before(conflicts[j].Date)
		}
		if conflicts[i].StaffID != conflicts[j].StaffID {
			return conflicts[i].StaffID < conflicts[j].StaffID
		}
		return conflicts[i].StartTime.IsBefore(conflicts[j].StartTime)
	})

	return conflicts
}
