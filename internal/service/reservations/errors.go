package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidState возвращается при операции над бронированием в терминальном статусе
	ErrInvalidState = errors.New("reservation is not in a cancellable state")

	// ErrDeadlinePassed возвращается при отмене позже допустимого срока до начала
	ErrDeadlinePassed = errors.New("cancellation deadline has passed")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrSlotTaken возвращается, когда возврат бронирования в CONFIRMED конфликтует с занятым слотом
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
