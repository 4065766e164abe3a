package create_reservation

import (
	"time"

	"github.com/courtclub/court-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string           // ID пользователя
	CourtID   string           // ID корта
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания (например, "11:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string           // ID созданного бронирования
	UserID    string           // ID пользователя
	CourtID   string           // ID корта
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Status    string           // Статус бронирования
	PaidPrice float64          // Зафиксированная цена на момент бронирования
	Notes     *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
