package create_appointment

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_appointment: salon not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("create_appointment: staff member not found")

	// ErrStaffNotInSalon возвращается, когда мастер принадлежит другому салону
	ErrStaffNotInSalon = errors.New("create_appointment: staff member belongs to another salon")

	// ErrStaffInactive возвращается, когда мастер деактивирован
	ErrStaffInactive = errors.New("create_appointment: staff member is not active")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочие часы салона
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside salon working hours")

	// ErrOutsideStaffHours возвращается, когда слот выходит за рабочее окно мастера
	ErrOutsideStaffHours = errors.New("create_appointment: slot is outside staff active hours")

	// ErrSlotTaken возвращается, когда слот мастера уже занят
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidTimeSlot возвращается, когда время слота некорректно
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
