package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServerNotFound          = errors.New("server does not exist")
	ErrServerNameAlreadyExists = errors.New("server name already exists")
	ErrProviderNotFound        = errors.New("provider does not exist")
	ErrProviderInUse           = errors.New("provider key currently in use")
	ErrNoKeyDataProvided       = errors.New("no new key data provided")
	ErrInvalidCredentials      = errors.New("invalid provider credentials")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrOnlyAdmin               = errors.New("at least one admin must remain")
	ErrInvalidPermission       = errors.New("unknown permission level")
	ErrPermissionUnchanged     = errors.New("permission unchanged")
	ErrInvalidToken            = errors.New("invalid token")
	ErrRefreshTokenNotFound    = errors.New("refresh token not found")
	ErrInvalidPassword         = errors.New("invalid password")
	ErrServerRunning           = errors.New("running server cannot be started")
	ErrServerStopped           = errors.New("stopped server cannot be stopped")
	ErrServerTransitional      = errors.New("server is busy with a pending operation")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
