package commands

import (
	"context"
	"errors"
	"log/slog"

	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=credit.go -destination=../../../tests/mock/commands/credit_mock.go -package=commandsmock

type CreditCommands interface {
	AddCredits(ctx context.Context, userID uuid.UUID, t equipment.Type, amount int, source credit.Source) (int, error)
	SetCredits(ctx context.Context, userID uuid.UUID, t equipment.Type, amount int, source credit.Source) (int, error)
	ConsumeCredits(ctx context.Context, userID uuid.UUID, t equipment.Type, amount int, source credit.Source) (int, error)
	// CorrectCredits moves one balance to target through an add or consume entry.
	CorrectCredits(ctx context.Context, userID uuid.UUID, t equipment.Type, target int, source credit.Source) (int, error)
}

type creditCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger ledger
}

func NewCreditCommands(uow shared.UnitOfWork, clock clock.Clock) CreditCommands {
	return &creditCommandsImpl{
		uow:    uow,
		ledger: ledger{clock: clock},
	}
}

func (c *creditCommandsImpl) AddCredits(ctx context.Context, userID uuid.UUID, t equipment.Type, amount int, source credit.Source) (int, error) {
	return c.run(ctx, userID, t, amount, credit.KindAdd, source)
}

func (c *creditCommandsImpl) SetCredits(ctx context.Context, userID uuid.UUID, t equipment.Type, amount int, source credit.Source) (int, error) {
	return c.run(ctx, userID, t, amount, credit.KindSet, source)
}

func (c *creditCommandsImpl) ConsumeCredits(ctx context.Context, userID uuid.UUID, t equipment.Type, amount int, source credit.Source) (int, error) {
	return c.run(ctx, userID, t, amount, credit.KindConsume, source)
}

// SetCredits stays reserved for renewal resets; staff corrections are
// recorded as the add or consume they amount to.
func (c *creditCommandsImpl) CorrectCredits(ctx context.Context, userID uuid.UUID, t equipment.Type, target int, source credit.Source) (int, error) {
	var balance int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		balance, err = c.ledger.correct(ctx, tx, userID, t, target, source)
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.Info("credit balance corrected", "user_id", userID, "type", t, "balance", balance, "source", source)
	return balance, nil
}

func (c *creditCommandsImpl) run(ctx context.Context, userID uuid.UUID, t equipment.Type, amount int, kind credit.EntryKind, source credit.Source) (int, error) {
	var balance int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		balance, err = c.ledger.apply(ctx, tx, userID, t, amount, kind, source)
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.Info("credit ledger updated", "user_id", userID, "type", t, "kind", kind, "amount", amount, "balance", balance, "source", source)
	return balance, nil
}

// ledger is the single read-modify-write path for balances. Callers supply the
// transaction so booking and reconciliation can mutate credits atomically with
// their own writes.
type ledger struct {
	clock clock.Clock
}

func (l ledger) apply(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	t equipment.Type,
	amount int,
	kind credit.EntryKind,
	source credit.Source,
) (int, error) {
	balances, err := l.lockBalances(ctx, tx, userID, t)
	if err != nil {
		return 0, err
	}
	return l.write(ctx, tx, userID, t, balances, amount, kind, source)
}

func (l ledger) correct(ctx context.Context, tx shared.Tx, userID uuid.UUID, t equipment.Type, target int, source credit.Source) (int, error) {
	balances, err := l.lockBalances(ctx, tx, userID, t)
	if err != nil {
		return 0, err
	}
	kind, amount, err := balances.Correction(t, target)
	if err != nil {
		return 0, ledgerError(err)
	}
	if amount == 0 {
		return balances.Get(t), nil
	}
	return l.write(ctx, tx, userID, t, balances, amount, kind, source)
}

func (l ledger) lockBalances(ctx context.Context, tx shared.Tx, userID uuid.UUID, t equipment.Type) (credit.Balances, error) {
	if !t.IsValid() {
		return nil, errs.Mark(equipment.ErrInvalidEquipmentType, errs.ErrDomainValidation)
	}
	if err := lockUser(ctx, tx, userID); err != nil {
		return nil, err
	}
	balances, err := tx.Credits().Balances(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return balances, nil
}

func (l ledger) write(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	t equipment.Type,
	balances credit.Balances,
	amount int,
	kind credit.EntryKind,
	source credit.Source,
) (int, error) {
	var (
		next int
		err  error
	)
	switch kind {
	case credit.KindAdd:
		next, err = balances.Add(t, amount)
	case credit.KindSet:
		next, err = balances.Set(t, amount)
	case credit.KindConsume:
		next, err = balances.Consume(t, amount)
	default:
		return 0, errs.Newf("unknown ledger entry kind %q", kind)
	}
	if err != nil {
		return 0, ledgerError(err)
	}

	if err := tx.Credits().SaveBalance(ctx, userID, t, next); err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	entry := credit.NewEntry(userID, t, amount, kind, next, source, l.clock.Now())
	if err := tx.Credits().AppendEntry(ctx, entry); err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return next, nil
}

func ledgerError(err error) error {
	switch {
	case errors.Is(err, credit.ErrInsufficientCredits):
		return errs.Mark(err, errs.ErrInsufficientCredits)
	case errors.Is(err, credit.ErrInvalidAmount), errors.Is(err, credit.ErrNegativeBalance):
		return errs.Mark(err, errs.ErrInvalidCreditAmount)
	default:
		return err
	}
}
