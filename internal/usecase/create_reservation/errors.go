package create_reservation

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrCourtUnavailable возвращается, когда корт не принимает бронирования (на обслуживании)
	ErrCourtUnavailable = errors.New("create_reservation: court is not available for booking")

	// ErrInvalidTimeOrder возвращается, когда время начала не раньше времени окончания
	ErrInvalidTimeOrder = errors.New("create_reservation: start time must be before end time")

	// ErrPastDate возвращается при попытке забронировать слот в прошлом
	ErrPastDate = errors.New("create_reservation: cannot book a slot in the past")

	// ErrBeforeOpening возвращается, когда время начала раньше открытия корта
	ErrBeforeOpening = errors.New("create_reservation: start time is before court opening")

	// ErrAfterClosing возвращается, когда время окончания позже закрытия корта
	ErrAfterClosing = errors.New("create_reservation: end time is after court closing")

	// ErrQuotaExceeded возвращается при превышении лимита будущих бронирований пользователя
	ErrQuotaExceeded = errors.New("create_reservation: future reservations limit exceeded")

	// ErrSlotTaken возвращается, когда слот пересекается с существующим подтвержденным бронированием
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
