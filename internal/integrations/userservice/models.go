package userservice

// User модель пользователя из UserService
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"` // Роль пользователя (STANDARD, MEMBER, ADMIN)
	Active   bool   `json:"active"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
