// Package domain contains application Usecases orchestrating identity,
// repository lookups, access policy and validation.
package domain

import (
	"context"
	"errors"
	"time"

	"teamboard/internal/entities"
	"teamboard/internal/metrics"
	"teamboard/internal/report"
	"teamboard/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx       context.Context
	log       *zap.SugaredLogger
	repo      repository.Repository
	timeout   time.Duration
	metrics   metrics.MetricsCollector
	assembler *report.Assembler
	renderers report.Renderers
	now       func() time.Time
}

// Option customises a Usecase.
type Option func(*Usecase)

// WithMetrics records operation outcomes into c.
func WithMetrics(c metrics.MetricsCollector) Option {
	return func(u *Usecase) { u.metrics = c }
}

// WithClock replaces the wall clock used for timestamps and overdue checks.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

// WithRenderers replaces the report renderers.
func WithRenderers(r report.Renderers) Option {
	return func(u *Usecase) { u.renderers = r }
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		ctx:       ctx,
		log:       log.Named("usecase"),
		repo:      repo,
		timeout:   timeout,
		metrics:   metrics.Nop{},
		assembler: report.NewAssembler(),
		renderers: report.DefaultRenderers(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// authenticate rejects the zero identity.
func authenticate(actor entities.User) error {
	if actor.ID == 0 || actor.Role == "" {
		return entities.ErrUnauthenticated
	}
	return nil
}

// record reports the outcome of operation to the metrics collector.
func (u *Usecase) record(operation string, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrUnauthenticated):
		outcome = metrics.OutcomeAnonymous
	case errors.Is(err, entities.ErrForbidden):
		outcome = metrics.OutcomeDenied
	case entities.IsNotFound(err):
		outcome = metrics.OutcomeNotFound
	case entities.IsValidation(err):
		outcome = metrics.OutcomeInvalid
	default:
		outcome = metrics.OutcomeError
	}
	u.metrics.RecordOperation(operation, outcome)
}

func (u *Usecase) today() time.Time {
	y, m, d := u.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
