// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"jpashop/config"
	"jpashop/internal/oapi"
	"jpashop/internal/usecase"

	"go.uber.org/zap"
)

// MemberListPageSize is the page size of GET /members when none is given.
const MemberListPageSize = 5

var _ oapi.ServerInterface = (*Handler)(nil)

// Handler serves the shop API using service layer interfaces.
type Handler struct {
	log             *zap.SugaredLogger
	uc              usecase.InterfaceUsecase
	defaultPageSize int
	maxPageSize     int
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, cfg config.HTTPConfig) *Handler {
	return &Handler{
		log:             log,
		uc:              usecase,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
}
