// internal/domain/user.go
package domain

import (
	"time"
)

// User представляет модель пользователя каталога.
// Пароль хранится открытым текстом в документе каталога (как в исходной
// системе) и никогда не попадает в ответы API: хендлеры отдают только
// копию из Sanitized.
type User struct {
	ID        string    `json:"id"` // UUID
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized возвращает копию пользователя без пароля для отдачи клиенту.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// RegisterRequest для регистрации нового пользователя (HTTP).
// Тег strongpassword регистрируется в main: минимум 8 символов,
// заглавная буква, цифра и спецсимвол.
type RegisterRequest struct {
	Login    string `json:"login" validate:"required,min=5,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// LoginRequest для входа пользователя (HTTP).
// Формат email здесь намеренно не проверяется: несуществующий email
// должен давать тот же 401, что и неверный пароль.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse для ответа при успешной регистрации или входе (HTTP).
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}
