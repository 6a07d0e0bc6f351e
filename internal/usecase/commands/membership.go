package commands

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/membership"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=membership.go -destination=../../../tests/mock/commands/membership_mock.go -package=commandsmock

type MembershipCommands interface {
	// ActivateOrUpdate covers first activation, upgrade and billing extension.
	ActivateOrUpdate(ctx context.Context, userID uuid.UUID, tierID membership.TierID, subscriptionRef string, periodEnd time.Time) error
	Deactivate(ctx context.Context, userID uuid.UUID, t equipment.Type) error
}

type membershipCommandsImpl struct {
	uow         shared.UnitOfWork
	memberships memberships
}

func NewMembershipCommands(uow shared.UnitOfWork, clock clock.Clock) MembershipCommands {
	return &membershipCommandsImpl{
		uow:         uow,
		memberships: memberships{clock: clock},
	}
}

func (c *membershipCommandsImpl) ActivateOrUpdate(ctx context.Context, userID uuid.UUID, tierID membership.TierID, subscriptionRef string, periodEnd time.Time) error {
	tier, err := membership.LookupTier(tierID)
	if err != nil {
		return errs.Mark(err, errs.ErrTierNotFound)
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.memberships.activate(ctx, tx, userID, tier, subscriptionRef, periodEnd)
	})
}

func (c *membershipCommandsImpl) Deactivate(ctx context.Context, userID uuid.UUID, t equipment.Type) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := c.memberships.deactivate(ctx, tx, userID, t, "")
		return err
	})
}

// memberships holds the tx-scoped membership transitions. Each takes the user
// row lock first, the same lock the credit ledger takes.
type memberships struct {
	clock clock.Clock
}

func (m memberships) activate(ctx context.Context, tx shared.Tx, userID uuid.UUID, tier membership.Tier, subscriptionRef string, periodEnd time.Time) error {
	if err := lockUser(ctx, tx, userID); err != nil {
		return err
	}
	return m.upsert(ctx, tx, userID, tier, subscriptionRef, periodEnd)
}

// renew extends the membership only while subscriptionRef is still the one it
// is bound to. It reports false for a renewal of a replaced subscription.
func (m memberships) renew(ctx context.Context, tx shared.Tx, userID uuid.UUID, tier membership.Tier, subscriptionRef string, periodEnd time.Time) (bool, error) {
	if err := lockUser(ctx, tx, userID); err != nil {
		return false, err
	}
	current, found, err := tx.Memberships().SubscriptionRef(ctx, userID, tier.Type)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if found && current != subscriptionRef {
		slog.Info("renewal for superseded subscription ignored",
			"user_id", userID, "type", tier.Type, "subscription", subscriptionRef, "current_subscription", current)
		return false, nil
	}
	if err := m.upsert(ctx, tx, userID, tier, subscriptionRef, periodEnd); err != nil {
		return false, err
	}
	return true, nil
}

func (m memberships) upsert(ctx context.Context, tx shared.Tx, userID uuid.UUID, tier membership.Tier, subscriptionRef string, periodEnd time.Time) error {
	ms, err := membership.Activate(userID, tier, subscriptionRef, periodEnd, m.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := tx.Memberships().Upsert(ctx, ms); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("membership activated", "user_id", userID, "type", tier.Type, "tier", tier.ID, "subscription", subscriptionRef)
	return nil
}

// deactivate reports whether a membership was switched off. A non-empty
// subscriptionRef must be the membership's current one; a cancellation of a
// replaced subscription leaves the membership alone.
func (m memberships) deactivate(ctx context.Context, tx shared.Tx, userID uuid.UUID, t equipment.Type, subscriptionRef string) (bool, error) {
	if err := lockUser(ctx, tx, userID); err != nil {
		return false, err
	}

	found, err := tx.Memberships().Deactivate(ctx, userID, t, subscriptionRef, m.clock.Now())
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !found {
		if subscriptionRef == "" {
			slog.Info("no membership to deactivate", "user_id", userID, "type", t)
		} else {
			slog.Info("cancellation for superseded subscription ignored", "user_id", userID, "type", t, "subscription", subscriptionRef)
		}
		return false, nil
	}

	slog.Info("membership deactivated", "user_id", userID, "type", t, "subscription", subscriptionRef)
	return true, nil
}

func lockUser(ctx context.Context, tx shared.Tx, userID uuid.UUID) error {
	if err := tx.Users().Lock(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
