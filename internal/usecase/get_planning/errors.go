package get_planning

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("get_planning: salon not found")

	// ErrInvalidMode возвращается при неизвестном режиме представления
	ErrInvalidMode = errors.New("get_planning: invalid view mode")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_planning: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_planning: internal error")
)
