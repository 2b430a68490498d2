package userdirectory

// Роли пользователей в каталоге
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User - профиль пользователя из каталога
type User struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	PushToken  *string  `json:"push_token,omitempty"`
}

// IsProvider проверяет, что пользователь является исполнителем
func (u User) IsProvider() bool {
	return u.Role == RoleProvider
}

// IsAdmin проверяет, что пользователь является администратором
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
