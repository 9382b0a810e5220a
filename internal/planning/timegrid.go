package planning

import (
	"fmt"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

// GenerateSlots generates the fixed list of bookable time-of-day slots for
// the operating window [startHour:00, endHour:00], stepping by stepMinutes.
// Последний слот endHour:00 включается в результат.
//
// Возвращает ErrInvalidRange, если startHour >= endHour, шаг не положительный
// или не делит 60 нацело.
func GenerateSlots(startHour, endHour, stepMinutes int) ([]types.TimeString, error) {
	if startHour < 0 || endHour > 23 {
		return nil, fmt.Errorf("%w: hours must be within 0..23, got %d..%d", ErrInvalidRange, startHour, endHour)
	}
	if startHour >= endHour {
		return nil, fmt.Errorf("%w: start hour %d must be before end hour %d", ErrInvalidRange, startHour, endHour)
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidRange, stepMinutes)
	}
	if 60%stepMinutes != 0 {
		return nil, fmt.Errorf("%w: step %d must divide 60", ErrInvalidRange, stepMinutes)
	}

	totalMinutes := (endHour - startHour) * 60
	slots := make([]types.TimeString, 0, totalMinutes/stepMinutes+1)

	for offset := 0; offset <= totalMinutes; offset += stepMinutes {
		minutes := startHour*60 + offset
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)))
	}

	return slots, nil
}
