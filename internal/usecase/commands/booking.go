package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	bookingEndpoint = "POST /api/bookings"
	idempotencyTTL  = 24 * time.Hour
)

type CreateBookingResult struct {
	BookingID  uuid.UUID
	IsReplayed bool
}

type CancelBookingResult struct {
	BookingID uuid.UUID
	Policy    booking.Policy
	Credits   map[equipment.Type]int
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, role user.Role, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*CancelBookingResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	cache    AvailabilityInvalidator
	notifier shared.BookingNotifier
	services *booking.Services
	clock    clock.Clock
	ledger   ledger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	cache AvailabilityInvalidator,
	notifier shared.BookingNotifier,
	schedule venue.Schedule,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		cache:    cache,
		notifier: notifier,
		services: &booking.Services{Clock: clock, Schedule: schedule},
		clock:    clock,
		ledger:   ledger{clock: clock},
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	role user.Role,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	domainReq, err := req.ToDomain(userID, c.services.Schedule)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	b, err := booking.NewBooking(c.services, domainReq)
	if err != nil {
		if errors.Is(err, booking.ErrCreditsNotAllowed) {
			return nil, errs.Mark(err, errs.ErrCreditsNotAllowed)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, venuePay := b.Payment().(booking.Venue); venuePay && role != user.RoleAdmin {
		return nil, errs.ErrPayAtVenueForbidden
	}

	requestHash := calculateRequestHash(req)
	var (
		bookingID uuid.UUID
		replayed  bool
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if idempotencyKey != nil {
			prior, err := c.claimIdempotencyKey(ctx, tx, *idempotencyKey, userID, requestHash)
			if err != nil {
				return err
			}
			if prior != nil {
				bookingID, replayed = *prior, true
				return nil
			}
		}

		id, err := c.admit(ctx, tx, b)
		if err != nil {
			return err
		}
		bookingID = id

		if idempotencyKey != nil {
			if err := tx.Idempotency().MarkCompleted(ctx, *idempotencyKey, userID, id); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayed {
		slog.Info("booking replayed", "booking_id", bookingID, "user_id", userID)
		return &CreateBookingResult{BookingID: bookingID, IsReplayed: true}, nil
	}

	slog.Info("booking created", "booking_id", bookingID, "user_id", userID, "station", b.Station(),
		"date", b.Date().Format(venue.DateLayout), "hour", b.Hour(), "hours", b.Hours(), "drivers", b.Drivers(),
		"payment", b.Payment().Tag())
	c.invalidate(ctx, b)
	c.confirm(ctx, bookingID, b)

	return &CreateBookingResult{BookingID: bookingID, IsReplayed: false}, nil
}

// admit reserves every covered hour, consumes credits and persists the booking.
// Any failure rolls all of it back with the transaction.
func (c *bookingCommandsImpl) admit(ctx context.Context, tx shared.Tx, b *booking.Booking) (uuid.UUID, error) {
	for _, hour := range b.CoveredHours() {
		cell := shared.SlotCell{Date: b.Date(), Hour: hour, Station: b.Station()}
		ok, err := tx.Slots().Reserve(ctx, cell, b.Units(), b.Station().Units())
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !ok {
			return uuid.Nil, errs.Mark(errs.Newf("no capacity at %s %s", cell.Station, venue.FormatSlotTime(hour)), errs.ErrCapacityExceeded)
		}
	}

	if b.CreditsConsumed() > 0 {
		t, ok := equipment.TypeOf(b.Station())
		if !ok {
			return uuid.Nil, errs.ErrCreditsNotAllowed
		}
		if _, err := c.ledger.apply(ctx, tx, b.UserID(), t, b.CreditsConsumed(), credit.KindConsume, credit.SourceBooking); err != nil {
			return uuid.Nil, err
		}
	}

	id, err := tx.Bookings().Create(ctx, b)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

// claimIdempotencyKey returns the earlier booking id when this request was
// already completed. A concurrent holder of the key blocks the insert until it
// commits or rolls back, so "processing" is only seen across crashed attempts.
func (c *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string) (*uuid.UUID, error) {
	now := c.clock.Now()
	expiresAt := now.Add(idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, key, userID, bookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.ExpiresAt.Before(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, key, userID, requestHash, expiresAt)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if claimed {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking id"), errs.ErrIdempotencyCheckFailed)
		}
		return existing.ResultBookingID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), errs.ErrIdempotencyCheckFailed)
	}
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*CancelBookingResult, error) {
	var (
		cancelled *booking.Booking
		refund    booking.Refund
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if b.UserID() != actorID && role != user.RoleAdmin {
			return errs.ErrBookingForbidden
		}

		refund, err = b.Cancel(c.services)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrAlreadyCancelled):
				return errs.Mark(err, errs.ErrBookingAlreadyCancelled)
			case errors.Is(err, booking.ErrCancelAfterDatePassed):
				return errs.Mark(err, errs.ErrBookingInPast)
			default:
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		if err := tx.Bookings().MarkCancelled(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingAlreadyCancelled)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, hour := range b.CoveredHours() {
			cell := shared.SlotCell{Date: b.Date(), Hour: hour, Station: b.Station()}
			if err := tx.Slots().Release(ctx, cell, b.Units()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		// credit-back goes to the owner even when an admin cancels
		for _, t := range equipment.Types {
			amount := refund.Credits[t]
			if amount <= 0 {
				continue
			}
			if _, err := c.ledger.apply(ctx, tx, b.UserID(), t, amount, credit.KindAdd, credit.SourceCancellation); err != nil {
				return err
			}
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking cancelled", "booking_id", bookingID, "actor_id", actorID, "policy", refund.Policy, "credits", refund.Credits)
	c.invalidate(ctx, cancelled)

	return &CancelBookingResult{
		BookingID: bookingID,
		Policy:    refund.Policy,
		Credits:   refund.Credits,
	}, nil
}

func (c *bookingCommandsImpl) invalidate(ctx context.Context, b *booking.Booking) {
	if err := c.cache.Invalidate(ctx, b.Date(), b.Station()); err != nil {
		slog.Warn("availability cache invalidation failed", "date", b.Date().Format(venue.DateLayout), "station", b.Station(), "error", err.Error())
	}
}

func (c *bookingCommandsImpl) confirm(ctx context.Context, id uuid.UUID, b *booking.Booking) {
	confirmation := shared.BookingConfirmation{
		BookingID:     id,
		To:            b.Contact().Email(),
		Name:          b.Contact().Name(),
		Date:          b.Date().Format(venue.DateLayout),
		Time:          venue.FormatSlotTime(b.Hour()),
		Hours:         b.Hours(),
		Station:       b.Station().String(),
		Drivers:       b.Drivers(),
		PaymentMethod: string(b.Payment().Tag()),
	}
	if err := c.notifier.BookingConfirmed(ctx, confirmation); err != nil {
		slog.Warn("booking confirmation not sent", "booking_id", id, "error", err.Error())
	}
}

func calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
