// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"teamboard/internal/usecase"

	"go.uber.org/zap"
)

// SessionConfig describes the identity cookie issued on login.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Handler serves the REST API using service layer interfaces.
type Handler struct {
	log     *zap.SugaredLogger
	uc      usecase.InterfaceUsecase
	session SessionConfig
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, session SessionConfig) *Handler {
	return &Handler{
		log:     log,
		uc:      usecase,
		session: session,
	}
}
