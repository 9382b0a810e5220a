package salonservice

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salonservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("salonservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что SalonService недоступен и следует использовать
	// окно работы по умолчанию из конфигурации
	ErrServiceDegraded = errors.New("salonservice unavailable: graceful degradation applied")
)
