// pkg/auth/password.go
package auth

import (
	"github.com/go-playground/validator/v10"
)

// ValidPassword проверяет пароль на соответствие политике сложности:
// минимум 8 символов, хотя бы одна заглавная латинская буква, одна
// цифра и один символ помимо латинских букв и цифр.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			// строчные буквы политику не усиливают
		default:
			hasSymbol = true
		}
	}
	return hasUpper && hasDigit && hasSymbol
}

// PasswordPolicy адаптирует ValidPassword под validator.Func,
// чтобы политику можно было вешать тегом strongpassword.
func PasswordPolicy(fl validator.FieldLevel) bool {
	return ValidPassword(fl.Field().String())
}

// RegisterPasswordPolicy регистрирует тег strongpassword в валидаторе.
func RegisterPasswordPolicy(v *validator.Validate) error {
	return v.RegisterValidation("strongpassword", PasswordPolicy)
}
