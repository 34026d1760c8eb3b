// Package usecase exposes the application layer to transports.
package usecase

import (
	"time"

	"jpashop/internal/repository"
	"jpashop/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	MemberUsecaseInterface
	TeamUsecaseInterface
	ItemUsecaseInterface
	OrderUsecaseInterface
	OrderQueryUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, timeout)
}
