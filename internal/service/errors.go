package service

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound signals that the target record does not exist (or is not
	// visible to the caller).
	ErrNotFound = errors.New("registro não encontrado")

	// ErrConflict signals a duplicate unique value (email already taken).
	ErrConflict = errors.New("email já está cadastrado")

	// ErrNotOwned signals a mutation aimed at a record the actor does not
	// own. Mapped to a bare 400 at the boundary.
	ErrNotOwned = errors.New("arquivo não pertence ao usuário")
)

// ValidationError carries the user-facing message for missing or
// inconsistent input. Mapped to 400 at the boundary.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validation(msg string) error { return &ValidationError{Msg: msg} }

// AuthError carries the HTTP status of an authentication failure:
// 401 for a missing token, 403 for an invalid, expired or mismatched one.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	if e.Status == http.StatusUnauthorized {
		return "token ausente"
	}
	return "token inválido"
}

var (
	errNoToken      = &AuthError{Status: http.StatusUnauthorized}
	errInvalidToken = &AuthError{Status: http.StatusForbidden}
)
