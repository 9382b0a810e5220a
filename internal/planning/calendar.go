package planning

import (
	"time"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// DaySlotRow одна строка дневной сетки: время и записи каждого мастера на это время
type DaySlotRow struct {
	Time types.TimeString
	// ByStaff содержит записи каждого мастера на этот слот.
	// Пустой срез - слот свободен, больше одной записи - двойное бронирование.
	ByStaff map[int64][]*domain.Appointment
}

// WeekDaySummary сводка одного дня недельного представления
type WeekDaySummary struct {
	Date             time.Time
	AppointmentCount int
	Appointments     []*domain.Appointment
}

// MonthDaySummary сводка одного дня месячной сетки
type MonthDaySummary struct {
	Date             time.Time
	AppointmentCount int
	IsCurrentMonth   bool
	IsToday          bool
}

// BuildDayView builds the day grid: for each slot, the appointments of each
// staff member starting at that slot. Ряды идут в порядке слотов, порядок
// мастеров задаётся вызывающим через staffList.
func BuildDayView(date time.Time, staffList []*domain.StaffMember, idx *AppointmentIndex, slots []types.TimeString) []DaySlotRow {
	rows := make([]DaySlotRow, 0, len(slots))

	for _, slot := range slots {
		row := DaySlotRow{
			Time:    slot,
			ByStaff: make(map[int64][]*domain.Appointment, len(staffList)),
		}
		for _, staff := range staffList {
			row.ByStaff[staff.ID] = idx.Lookup(staff.ID, date, slot)
		}
		rows = append(rows, row)
	}

	return rows
}

// BuildWeekView builds the per-day summaries for a week.
// Ключи карты - даты в формате YYYY-MM-DD.
func BuildWeekView(days []GridDay, idx *AppointmentIndex, appointments []*domain.Appointment) map[string]WeekDaySummary {
	view := make(map[string]WeekDaySummary, len(days))

	byDate := make(map[string][]*domain.Appointment)
	for _, appt := range appointments {
		if appt == nil || !appt.IsActive() {
			continue
		}
		key := appt.Date.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], appt)
	}

	for _, day := range days {
		key := day.Date.Format(domain.DateFormat)
		view[key] = WeekDaySummary{
			Date:             day.Date,
			AppointmentCount: idx.CountForDay(day.Date),
			Appointments:     byDate[key],
		}
	}

	return view
}

// BuildMonthView builds the per-day summaries for a month grid.
// today передаётся вызывающим, а не берётся из глобальных часов,
// чтобы представление было детерминированным и тестируемым.
func BuildMonthView(gridDays []GridDay, idx *AppointmentIndex, today time.Time) map[string]MonthDaySummary {
	view := make(map[string]MonthDaySummary, len(gridDays))

	for _, day := range gridDays {
		key := day.Date.Format(domain.DateFormat)
		view[key] = MonthDaySummary{
			Date:             day.Date,
			AppointmentCount: idx.CountForDay(day.Date),
			IsCurrentMonth:   day.IsCurrentMonth,
			IsToday:          SameDay(day.Date, today),
		}
	}

	return view
}
