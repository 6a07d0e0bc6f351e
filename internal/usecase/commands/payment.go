package commands

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/membership"
	"venue-booking/internal/domain/payment"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"
)

var errAlreadyProcessed = errs.New("event already processed")

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

type PaymentCommands interface {
	// HandleWebhook verifies, deduplicates and applies one processor callback.
	// A nil error means the processor may consider the event delivered.
	HandleWebhook(ctx context.Context, payload []byte, signature string) (payment.Outcome, error)
}

type paymentCommandsImpl struct {
	uow         shared.UnitOfWork
	verifier    EventVerifier
	processor   PaymentProcessor
	reporter    ErrorReporter
	clock       clock.Clock
	ledger      ledger
	memberships memberships
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	verifier EventVerifier,
	processor PaymentProcessor,
	reporter ErrorReporter,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:         uow,
		verifier:    verifier,
		processor:   processor,
		reporter:    reporter,
		clock:       clock,
		ledger:      ledger{clock: clock},
		memberships: memberships{clock: clock},
	}
}

func (p *paymentCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) (payment.Outcome, error) {
	env, err := p.verifier.Verify(payload, signature)
	if err != nil {
		return "", err
	}
	log := slog.With("event_id", env.ID, "event_type", string(env.Kind))

	// Fast path only; the authoritative check is the insert inside each mutation.
	processed, err := p.uow.CommandReads().WebhookEventProcessed(ctx, env.ID)
	if err != nil {
		return "", p.fail(ctx, env, err)
	}
	if processed {
		log.Info("duplicate webhook event acknowledged")
		return payment.OutcomeDuplicate, nil
	}

	var outcome payment.Outcome
	switch env.Kind {
	case payment.KindCheckoutCompleted:
		outcome, err = p.checkoutCompleted(ctx, env, log)
	case payment.KindInvoicePaid, payment.KindInvoiceSucceeded:
		outcome, err = p.invoicePaid(ctx, env, log)
	case payment.KindSubscriptionDeleted:
		outcome, err = p.subscriptionDeleted(ctx, env, log)
	default:
		log.Info("unhandled webhook event type")
		return payment.OutcomeIgnored, nil
	}

	if errs.Is(err, errAlreadyProcessed) {
		log.Info("webhook event recorded concurrently, skipping")
		return payment.OutcomeDuplicate, nil
	}
	// Retrying cannot fix these, so they are acknowledged.
	if errs.IsAny(err, errs.ErrUserNotFound, errs.ErrDomainValidation) {
		log.Error("webhook event cannot be applied", "error", err.Error())
		return payment.OutcomeSkipped, nil
	}
	if err != nil {
		return "", p.fail(ctx, env, err)
	}
	log.Info("webhook event reconciled", "outcome", string(outcome))
	return outcome, nil
}

func (p *paymentCommandsImpl) checkoutCompleted(ctx context.Context, env payment.Envelope, log *slog.Logger) (payment.Outcome, error) {
	ev, err := p.processor.DecodeCheckout(env.Raw)
	if err != nil {
		log.Error("undecodable checkout event", "error", err.Error())
		return payment.OutcomeSkipped, nil
	}
	subject, tier, ok := p.resolveSubject(ev.Metadata, log)
	if !ok {
		return payment.OutcomeSkipped, nil
	}
	if ev.SubscriptionRef == "" {
		log.Warn("checkout without subscription", "user_id", subject.UserID)
		return payment.OutcomeSkipped, nil
	}

	periodEnd := p.periodEnd(ctx, ev.SubscriptionRef, log)

	// The old subscription is cancelled before the new one is activated so a
	// user is never billed twice. Failure here must not lose the upgrade.
	if old := ev.OldSubscriptionID(); old != "" && old != ev.SubscriptionRef {
		if err := p.processor.CancelSubscription(ctx, old); err != nil {
			log.Warn("failed to cancel replaced subscription", "old_subscription", old, "error", err.Error())
			p.reporter.Report(ctx, err, map[string]string{"event_id": env.ID, "old_subscription": old})
		}
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := markProcessed(ctx, tx, env); err != nil {
			return err
		}
		if err := p.memberships.activate(ctx, tx, subject.UserID, tier, ev.SubscriptionRef, periodEnd); err != nil {
			return err
		}
		if tier.Credits > 0 {
			if _, err := p.ledger.apply(ctx, tx, subject.UserID, tier.Type, tier.Credits, credit.KindAdd, credit.SourceCheckout); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return payment.OutcomeApplied, nil
}

func (p *paymentCommandsImpl) invoicePaid(ctx context.Context, env payment.Envelope, log *slog.Logger) (payment.Outcome, error) {
	ev, err := p.processor.DecodeInvoice(env.Raw)
	if err != nil {
		log.Error("undecodable invoice event", "error", err.Error())
		return payment.OutcomeSkipped, nil
	}
	if ev.Initial {
		// the checkout event already granted the first period
		return payment.OutcomeSkipped, nil
	}

	meta := ev.Metadata
	periodEnd := ev.PeriodEnd
	if _, err := payment.SubjectFrom(meta); err != nil && ev.SubscriptionRef != "" {
		sub, subErr := p.processor.Subscription(ctx, ev.SubscriptionRef)
		if subErr != nil {
			return "", subErr
		}
		meta = sub.Metadata
		if periodEnd.IsZero() {
			periodEnd = sub.PeriodEnd
		}
	}
	subject, tier, ok := p.resolveSubject(meta, log)
	if !ok {
		return payment.OutcomeSkipped, nil
	}
	if ev.SubscriptionRef == "" {
		log.Warn("renewal invoice without subscription", "user_id", subject.UserID)
		return payment.OutcomeSkipped, nil
	}
	if periodEnd.IsZero() {
		periodEnd = p.periodEnd(ctx, ev.SubscriptionRef, log)
	}

	renewed := false
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := markProcessed(ctx, tx, env); err != nil {
			return err
		}
		ok, err := p.memberships.renew(ctx, tx, subject.UserID, tier, ev.SubscriptionRef, periodEnd)
		if err != nil || !ok {
			return err
		}
		// renewals reset, unused credits do not roll over
		if _, err := p.ledger.apply(ctx, tx, subject.UserID, tier.Type, tier.Credits, credit.KindSet, credit.SourceRenewal); err != nil {
			return err
		}
		renewed = true
		return nil
	})
	if err != nil {
		return "", err
	}
	if !renewed {
		return payment.OutcomeSkipped, nil
	}
	return payment.OutcomeApplied, nil
}

func (p *paymentCommandsImpl) subscriptionDeleted(ctx context.Context, env payment.Envelope, log *slog.Logger) (payment.Outcome, error) {
	ev, err := p.processor.DecodeSubscriptionDeleted(env.Raw)
	if err != nil {
		log.Error("undecodable subscription event", "error", err.Error())
		return payment.OutcomeSkipped, nil
	}
	subject, tier, ok := p.resolveSubject(ev.Metadata, log)
	if !ok {
		return payment.OutcomeSkipped, nil
	}

	if ev.SubscriptionRef == "" {
		log.Warn("subscription cancellation without subscription id", "user_id", subject.UserID)
		return payment.OutcomeSkipped, nil
	}

	deactivated := false
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := markProcessed(ctx, tx, env); err != nil {
			return err
		}
		deactivated, err = p.memberships.deactivate(ctx, tx, subject.UserID, tier.Type, ev.SubscriptionRef)
		return err
	})
	if err != nil {
		return "", err
	}
	if !deactivated {
		return payment.OutcomeSkipped, nil
	}
	return payment.OutcomeApplied, nil
}

// resolveSubject reports ok=false for events this service cannot attribute.
// Those are acknowledged so the processor stops retrying them.
func (p *paymentCommandsImpl) resolveSubject(meta map[string]string, log *slog.Logger) (payment.Subject, membership.Tier, bool) {
	subject, err := payment.SubjectFrom(meta)
	if err != nil {
		log.Warn("webhook event without usable metadata", "error", err.Error())
		return payment.Subject{}, membership.Tier{}, false
	}
	tier, err := membership.LookupTier(subject.TierID)
	if err != nil {
		log.Error("webhook event names unknown tier", "tier", subject.TierID, "user_id", subject.UserID)
		return payment.Subject{}, membership.Tier{}, false
	}
	return subject, tier, true
}

func (p *paymentCommandsImpl) periodEnd(ctx context.Context, subscriptionRef string, log *slog.Logger) time.Time {
	sub, err := p.processor.Subscription(ctx, subscriptionRef)
	if err != nil {
		log.Warn("subscription lookup failed, using default period", "subscription", subscriptionRef, "error", err.Error())
		return payment.DefaultPeriodEnd(p.clock.Now())
	}
	if sub.PeriodEnd.IsZero() {
		return payment.DefaultPeriodEnd(p.clock.Now())
	}
	return sub.PeriodEnd
}

func (p *paymentCommandsImpl) fail(ctx context.Context, env payment.Envelope, err error) error {
	slog.Error("webhook reconciliation failed", "event_id", env.ID, "event_type", string(env.Kind), "error", err.Error())
	p.reporter.Report(ctx, err, map[string]string{"event_id": env.ID, "event_type": string(env.Kind)})
	return errs.Mark(err, errs.ErrUpstreamFailure)
}

func markProcessed(ctx context.Context, tx shared.Tx, env payment.Envelope) error {
	fresh, err := tx.WebhookEvents().MarkProcessed(ctx, env.ID, string(env.Kind))
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !fresh {
		return errAlreadyProcessed
	}
	return nil
}
