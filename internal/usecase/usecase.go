package usecase

import (
	"context"
	"time"

	"teamboard/internal/metrics"
	"teamboard/internal/repository"
	"teamboard/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	TaskUsecaseInterface
	MemberUsecaseInterface
	SearchUsecaseInterface
	AnalyticsUsecaseInterface
	ReportUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	collector metrics.MetricsCollector,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, domain.WithMetrics(collector))
}
