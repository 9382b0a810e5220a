package planning

import (
	"fmt"
	"time"
)

// ViewMode режим отображения планинга
type ViewMode string

const (
	ModeDay   ViewMode = "day"
	ModeWeek  ViewMode = "week"
	ModeMonth ViewMode = "month"
)

// Direction направление навигации по календарю
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// ParseViewMode validates and converts a query string into a ViewMode
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ModeDay, ModeWeek, ModeMonth:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownViewMode, s)
	}
}

// GridDay один день календарной сетки
type GridDay struct {
	Date           time.Time
	IsCurrentMonth bool // false для хвостов соседних месяцев в месячной сетке
}

// Range holds the inclusive bounds of a planning period and its ordered day sequence.
// Для месячного режима Days содержит полную календарную сетку: ведущие и замыкающие
// дни соседних месяцев добавляются до полных недельных рядов.
type Range struct {
	Start time.Time
	End   time.Time
	Days  []GridDay
}

// BoundsFor computes the period bounds and day sequence for the given reference
// date and view mode. weekStart задаёт первый день недели (понедельник для
// локалей по умолчанию, воскресенье опционально).
//
// All arithmetic is calendar-date based, deliberately ignoring clock time and
// DST transitions.
func BoundsFor(ref time.Time, mode ViewMode, weekStart time.Weekday) (Range, error) {
	day := dateOnly(ref)

	switch mode {
	case ModeDay:
		return Range{
			Start: day,
			End:   day,
			Days:  []GridDay{{Date: day, IsCurrentMonth: true}},
		}, nil

	case ModeWeek:
		start := startOfWeek(day, weekStart)
		end := start.AddDate(0, 0, 6)
		days := make([]GridDay, 0, 7)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, GridDay{Date: d, IsCurrentMonth: true})
		}
		return Range{Start: start, End: end, Days: days}, nil

	case ModeMonth:
		monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		monthEnd := monthStart.AddDate(0, 1, -1)

		// Сетка начинается с начала недели, содержащей первое число,
		// и заканчивается концом недели, содержащей последнее
		gridStart := startOfWeek(monthStart, weekStart)
		gridEnd := startOfWeek(monthEnd, weekStart).AddDate(0, 0, 6)

		days := make([]GridDay, 0, 42)
		for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
			days = append(days, GridDay{
				Date:           d,
				IsCurrentMonth: d.Month() == monthStart.Month() && d.Year() == monthStart.Year(),
			})
		}
		return Range{Start: monthStart, End: monthEnd, Days: days}, nil

	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownViewMode, mode)
	}
}

// Navigate returns the reference date shifted by one unit of mode.
// Для месяцев используется арифметика с ограничением по длине целевого месяца:
// 31 января + 1 месяц даёт 28/29 февраля, а не 2-3 марта.
func Navigate(ref time.Time, mode ViewMode, direction Direction) (time.Time, error) {
	day := dateOnly(ref)

	var sign int
	switch direction {
	case DirectionNext:
		sign = 1
	case DirectionPrev:
		sign = -1
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	switch mode {
	case ModeDay:
		return day.AddDate(0, 0, sign), nil
	case ModeWeek:
		return day.AddDate(0, 0, 7*sign), nil
	case ModeMonth:
		return addMonthClamped(day, sign), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownViewMode, mode)
	}
}

// addMonthClamped сдвигает дату на months месяцев, ограничивая день числом дней
// в целевом месяце (time.AddDate вместо этого нормализует переполнение)
func addMonthClamped(day time.Time, months int) time.Time {
	firstOfMonth := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	target := firstOfMonth.AddDate(0, months, 0)

	dom := day.Day()
	if max := daysInMonth(target); dom > max {
		dom = max
	}

	return time.Date(target.Year(), target.Month(), dom, 0, 0, 0, 0, day.Location())
}

// daysInMonth возвращает число дней в месяце даты t
func daysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// startOfWeek returns the most recent weekStart on or before day
func startOfWeek(day time.Time, weekStart time.Weekday) time.Time {
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two dates fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
