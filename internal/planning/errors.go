package planning

import "errors"

var (
	// ErrInvalidRange возвращается при некорректных параметрах генерации сетки слотов
	ErrInvalidRange = errors.New("planning: invalid slot range")

	// ErrUnknownViewMode возвращается при неизвестном режиме отображения
	ErrUnknownViewMode = errors.New("planning: unknown view mode")

	// ErrUnknownDirection возвращается при неизвестном направлении навигации
	ErrUnknownDirection = errors.New("planning: unknown navigation direction")

	// ErrUnknownRevenuePolicy возвращается при неизвестной политике учёта выручки
	ErrUnknownRevenuePolicy = errors.New("planning: unknown revenue policy")
)
