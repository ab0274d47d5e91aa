package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/regdesk/regdesk/internal/domain/registration"
	"github.com/regdesk/regdesk/internal/mail"
	"github.com/regdesk/regdesk/internal/observability"
)

// Store is the slice of the registration repository the dispatcher needs.
type Store interface {
	GetByID(id string) (registration.Registration, error)
	UpdateStatus(id string, status registration.EmailStatus) error
}

// Preparer is an optional pre-dispatch step invoked before the confirmation
// send, preserving the two-step call order of the surrounding workflow. Its
// failure counts as a delivery failure.
type Preparer interface {
	Prepare(ctx context.Context, reg registration.Registration) error
}

type NoopPreparer struct{}

func (NoopPreparer) Prepare(ctx context.Context, reg registration.Registration) error { return nil }

// Result is the outcome the caller observes. On success Status is sent and
// TransportRef carries the transport message id; on failure Status is failed
// and ErrorKind classifies the fault.
type Result struct {
	Status       registration.EmailStatus `json:"status"`
	TransportRef string                   `json:"transportRef,omitempty"`
	ErrorKind    FailureKind              `json:"errorKind,omitempty"`
}

type Service struct {
	repo     Store
	mailer   mail.Mailer
	preparer Preparer
	log      *slog.Logger
	prom     *observability.Prom
	metrics  *observability.DispatchMetrics
}

func New(repo Store, mailer mail.Mailer, log *slog.Logger, prom *observability.Prom, metrics *observability.DispatchMetrics) *Service {
	return &Service{
		repo:     repo,
		mailer:   mailer,
		preparer: NoopPreparer{},
		log:      log,
		prom:     prom,
		metrics:  metrics,
	}
}

// WithPreparer installs a pre-dispatch step. Nil restores the no-op.
func (s *Service) WithPreparer(p Preparer) *Service {
	if p == nil {
		p = NoopPreparer{}
	}
	s.preparer = p
	return s
}

// Dispatch renders the registration's confirmation, attempts the transport
// send and records the outcome on the store. Transport and rendering faults
// never escape as errors; they come back classified inside the Result. The
// returned error is only ever registration.ErrNotFound for an unknown id.
func (s *Service) Dispatch(ctx context.Context, id string) (Result, error) {
	start := time.Now()

	reg, err := s.repo.GetByID(id)

	if err != nil {
		return Result{}, err
	}

	if s.metrics != nil {
		s.metrics.IncAttempted()
	}

	rendered, err := mail.Render(reg)

	if err != nil {
		// missing union arm: a caller bug, not a transient fault
		return s.fail(ctx, reg, FailureMalformedInput, err, start), nil
	}

	if err := s.preparer.Prepare(ctx, reg); err != nil {
		return s.fail(ctx, reg, FailureDelivery, err, start), nil
	}

	ref, err := s.mailer.Send(ctx, mail.Message{
		To:       reg.Email,
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTMLBody,
	})

	if err != nil {
		if s.prom != nil {
			s.prom.MailSendsTotal.WithLabelValues("error").Inc()
		}

		kind := FailureDelivery

		if errors.Is(err, mail.ErrNotConfigured) {
			kind = FailureConfiguration
		}

		return s.fail(ctx, reg, kind, err, start), nil
	}

	if s.prom != nil {
		s.prom.MailSendsTotal.WithLabelValues("ok").Inc()
	}

	if err := s.repo.UpdateStatus(reg.ID, registration.StatusSent); err != nil {
		s.log.ErrorContext(ctx, "status update after send failed", "id", reg.ID, "err", err)
	}

	s.observe(reg.Kind, "sent", start)

	if s.metrics != nil {
		s.metrics.IncSent()
	}

	s.log.InfoContext(ctx, "confirmation dispatched",
		"id", reg.ID, "kind", reg.Kind, "transport_ref", ref,
	)

	return Result{Status: registration.StatusSent, TransportRef: ref}, nil
}

// Resend resets the registration to pending and runs a fresh dispatch attempt.
// No attempt counter, no backoff: each resend stands on its own. An already
// sent record is re-dispatched as-is.
func (s *Service) Resend(ctx context.Context, id string) (Result, error) {
	if err := s.repo.UpdateStatus(id, registration.StatusPending); err != nil {
		return Result{}, err
	}

	if s.metrics != nil {
		s.metrics.IncResends()
	}

	return s.Dispatch(ctx, id)
}

func (s *Service) fail(ctx context.Context, reg registration.Registration, kind FailureKind, cause error, start time.Time) Result {
	if err := s.repo.UpdateStatus(reg.ID, registration.StatusFailed); err != nil {
		s.log.ErrorContext(ctx, "status update after failure failed", "id", reg.ID, "err", err)
	}

	s.observe(reg.Kind, string(kind), start)

	if s.metrics != nil {
		s.metrics.IncFailed()
	}

	s.log.WarnContext(ctx, "confirmation dispatch failed",
		"id", reg.ID, "kind", reg.Kind, "error_kind", kind, "err", cause,
	)

	return Result{Status: registration.StatusFailed, ErrorKind: kind}
}

func (s *Service) observe(kind registration.Kind, result string, start time.Time) {
	d := time.Since(start)

	if s.prom != nil {
		res := "failed"
		if result == "sent" {
			res = "sent"
		}
		s.prom.DispatchDuration.WithLabelValues(string(kind), res).Observe(d.Seconds())
		s.prom.DispatchResults.WithLabelValues(string(kind), result).Inc()
	}

	if s.metrics != nil {
		s.metrics.ObserveDuration(d)
	}
}
