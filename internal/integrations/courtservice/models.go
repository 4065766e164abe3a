package courtservice

// Court модель корта из CourtService
type Court struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Status              string  `json:"status"` // Статус корта (ACTIVE, MAINTENANCE)
	OpeningTime         string  `json:"opening_time"`
	ClosingTime         string  `json:"closing_time"`
	SlotDurationMinutes int     `json:"slot_duration_minutes"`
	BasePrice           float64 `json:"base_price"`
	MemberPrice         float64 `json:"member_price"`
}

// ErrorResponse модель ошибки от CourtService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
