package entities

import (
	"errors"
	"fmt"
	"net/http"
)

// Базовые классы ошибок домена.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound       = fmt.Errorf("note %w", ErrNotFound)
	ErrSharedNoteNotFound = fmt.Errorf("shared note %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrMissingRemoteID    = fmt.Errorf("%w: remote id is required", ErrValidation)
	ErrInvalidNote        = fmt.Errorf("%w: invalid note", ErrValidation)
	ErrInvalidNoteID      = fmt.Errorf("%w: note id must be a positive number", ErrValidation)
	ErrMissingCredentials = fmt.Errorf("%w: username and password are required", ErrValidation)
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyResponse      = errors.New("empty response from remote service")
)

// Операции, для которых сервер возвращает коды с особым смыслом.
const (
	OpShareNote          = "share note"
	OpUpdateSharedStatus = "update shared note status"
)

const (
	msgShareNotFound      = "note or user not found"
	msgShareConflict      = "already shared or not friends"
	msgShareForbidden     = "not authorized"
	msgNetworkErrFallback = "network error"
)

// RemoteError - ответ сервера с кодом вне диапазона 2xx.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote %s failed with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("remote %s failed with status %d: %s", e.Op, e.StatusCode, e.Message)
}

// UserMessage возвращает сообщение для пользователя.
func (e *RemoteError) UserMessage() string {
	if e.Op == OpShareNote || e.Op == OpUpdateSharedStatus {
		switch e.StatusCode {
		case http.StatusNotFound:
			return msgShareNotFound
		case http.StatusBadRequest:
			return msgShareConflict
		case http.StatusForbidden:
			return msgShareForbidden
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("remote error (code %d)", e.StatusCode)
}

// NetworkError - сбой транспорта: таймаут, DNS, разрыв соединения.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.UserMessage())
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UserMessage возвращает текст исходной ошибки или общее сообщение.
func (e *NetworkError) UserMessage() string {
	if e.Err == nil || e.Err.Error() == "" {
		return msgNetworkErrFallback
	}
	return e.Err.Error()
}

// IsRemoteStatus сообщает, является ли err ошибкой сервера с указанным кодом.
func IsRemoteStatus(err error, code int) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == code
}
