package apperrors

import (
	"net/http"
)

// =========================================================================
// Фабричные функции
// =========================================================================

// ErrIdentityUnavailable - провайдер аутентификации не ответил
func ErrIdentityUnavailable(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "identity", "Authentication service is unavailable", http.StatusBadGateway)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ProfileIncomplete - профиль не заполнен, в деталях список полей
func ProfileIncomplete(missingFields []string) *AppError {
	return ErrProfileIncomplete.WithDetails(map[string]interface{}{
		"missing_fields": missingFields,
	})
}

// =========================================================================
// Предопределенные переменные
// =========================================================================

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired session",
	http.StatusUnauthorized,
)

// ErrAuthFailed - обмен кода OAuth на сессию не удался
var ErrAuthFailed = New(
	CodeAuthFailed,
	"auth",
	"Could not complete sign in",
	http.StatusUnauthorized,
)

var ErrUserAlreadyRegistered = New(
	CodeAlreadyExists,
	"auth",
	"User already registered",
	http.StatusConflict,
)

var ErrUnsupportedProvider = New(
	CodeValidationFailed,
	"auth",
	"Unsupported sign in provider",
	http.StatusBadRequest,
)

// --- Profile ---

var ErrProfileNotFound = New(
	CodeProfileNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

var ErrProfileIncomplete = New(
	CodeProfileIncomplete,
	"profile",
	"Please complete your profile to continue",
	http.StatusForbidden,
)

// --- Startups ---

// ErrStartupNotFound - стартап не найден или принадлежит другому пользователю.
// Оба случая отдают одинаковый ответ.
var ErrStartupNotFound = New(
	CodeStartupNotFound,
	"startup",
	"Startup not found",
	http.StatusNotFound,
)

var ErrDescriptionTooLong = New(
	CodeValidationFailed,
	"startup",
	"Description must be 35 words or less",
	http.StatusBadRequest,
)

// --- Meetings ---

var ErrLocationRequired = New(
	CodeValidationFailed,
	"meeting",
	"Location is required for in-person meetings",
	http.StatusBadRequest,
)

var ErrCannotMeetSelf = New(
	CodeInvalidOperation,
	"meeting",
	"You cannot send a meeting request to yourself",
	http.StatusBadRequest,
)

var ErrRecipientNotFound = New(
	CodeNotFound,
	"meeting",
	"Recipient not found",
	http.StatusNotFound,
)
