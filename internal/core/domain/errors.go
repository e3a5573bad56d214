package domain

import "errors"

// Ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrTokenInvalid       = errors.New("invalid jwt token")

	ErrPieceNotFound    = errors.New("piece not found")
	ErrNotPieceOwner    = errors.New("piece belongs to another user")
	ErrLocationNotFound = errors.New("location not found")
	// ErrLocationNotUnique - чтение по id нашло больше одной строки.
	ErrLocationNotUnique = errors.New("location id is not unique")

	ErrChatbotUnavailable = errors.New("chatbot endpoint unavailable")
)
