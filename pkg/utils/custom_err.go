package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")

	ErrDeckNotFound      = errors.New("deck not found")
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrValidation        = errors.New("validation failed")

	ErrPlanNotFound       = errors.New("plan not found")
	ErrAmountMismatch     = errors.New("amount does not match plan price")
	ErrQuotaExceeded      = errors.New("monthly free quota exceeded")
	ErrUnverifiedCallback = errors.New("webhook verification failed")
	ErrUnknownReference   = errors.New("no transaction matches reference")
	ErrInvalidTransition  = errors.New("invalid transaction status transition")
	ErrGenerationFailed   = errors.New("ai generation failed")
)
