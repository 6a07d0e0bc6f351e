//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/membership"
	"venue-booking/internal/domain/payment"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	f         *txFixture
	verifier  *commandsmock.MockEventVerifier
	processor *commandsmock.MockPaymentProcessor
	reporter  *commandsmock.MockErrorReporter
	commands  commands.PaymentCommands
	userID    uuid.UUID
	periodEnd time.Time
	ctx       context.Context
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.f = newTxFixture(ctrl)
	s.verifier = commandsmock.NewMockEventVerifier(ctrl)
	s.processor = commandsmock.NewMockPaymentProcessor(ctrl)
	s.reporter = commandsmock.NewMockErrorReporter(ctrl)
	s.commands = commands.NewPaymentCommands(s.f.uow, s.verifier, s.processor, s.reporter, s.f.clock)
	s.userID = uuid.New()
	s.periodEnd = time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	s.ctx = context.Background()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) meta(tier string) map[string]string {
	return map[string]string{payment.MetaUserID: s.userID.String(), payment.MetaTierID: tier}
}

// deliver stubs verification and the fast-path dedup read for one event.
func (s *PaymentCommandsTestSuite) deliver(id string, kind payment.Kind) payment.Envelope {
	env := payment.Envelope{ID: id, Kind: kind, Raw: []byte(`{}`)}
	s.verifier.EXPECT().Verify([]byte("payload"), "sig").Return(env, nil)
	s.f.reads.EXPECT().WebhookEventProcessed(gomock.Any(), id).Return(false, nil)
	return env
}

func (s *PaymentCommandsTestSuite) expectActivation(tier membership.TierID) {
	s.f.users.EXPECT().Lock(gomock.Any(), s.userID).Return(nil).Times(2)
	s.f.memberships.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ms *membership.Membership) error {
			s.Equal(tier, ms.TierID())
			s.Equal("sub_new", ms.SubscriptionRef())
			return nil
		})
}

func (s *PaymentCommandsTestSuite) TestCheckoutCompleted() {
	s.Run("activates membership and adds tier credits", func() {
		env := s.deliver("evt_1", payment.KindCheckoutCompleted)
		s.processor.EXPECT().DecodeCheckout(env.Raw).
			Return(payment.CheckoutCompleted{Metadata: s.meta("kart-pro"), SubscriptionRef: "sub_new"}, nil)
		s.processor.EXPECT().Subscription(gomock.Any(), "sub_new").
			Return(payment.Subscription{ID: "sub_new", PeriodEnd: s.periodEnd}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_1", string(payment.KindCheckoutCompleted)).Return(true, nil)
		s.expectActivation("kart-pro")
		s.f.credits.EXPECT().Balances(gomock.Any(), s.userID).Return(credit.Balances{equipment.Kart: 1}, nil)
		s.f.credits.EXPECT().SaveBalance(gomock.Any(), s.userID, equipment.Kart, 9).Return(nil)
		s.f.credits.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e credit.Entry) error {
				s.Equal(credit.SourceCheckout, e.Source)
				s.Equal(credit.KindAdd, e.Kind)
				return nil
			})

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeApplied, outcome)
	})

	s.Run("upgrade still applies when the old subscription cannot be cancelled", func() {
		meta := s.meta("kart-pro")
		meta[payment.MetaOldSubscriptionID] = "sub_old"
		env := s.deliver("evt_2", payment.KindCheckoutCompleted)
		s.processor.EXPECT().DecodeCheckout(env.Raw).
			Return(payment.CheckoutCompleted{Metadata: meta, SubscriptionRef: "sub_new"}, nil)
		s.processor.EXPECT().Subscription(gomock.Any(), "sub_new").
			Return(payment.Subscription{ID: "sub_new", PeriodEnd: s.periodEnd}, nil)
		s.processor.EXPECT().CancelSubscription(gomock.Any(), "sub_old").Return(errs.ErrUpstreamFailure)
		s.reporter.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any())
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_2", gomock.Any()).Return(true, nil)
		s.expectActivation("kart-pro")
		s.f.credits.EXPECT().Balances(gomock.Any(), s.userID).Return(credit.Balances{}, nil)
		s.f.credits.EXPECT().SaveBalance(gomock.Any(), s.userID, equipment.Kart, 8).Return(nil)
		s.f.credits.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeApplied, outcome)
	})

	s.Run("subscription lookup failure falls back to a default period", func() {
		env := s.deliver("evt_3", payment.KindCheckoutCompleted)
		s.processor.EXPECT().DecodeCheckout(env.Raw).
			Return(payment.CheckoutCompleted{Metadata: s.meta("kart-rookie"), SubscriptionRef: "sub_new"}, nil)
		s.processor.EXPECT().Subscription(gomock.Any(), "sub_new").Return(payment.Subscription{}, errs.ErrUpstreamFailure)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_3", gomock.Any()).Return(true, nil)
		s.f.users.EXPECT().Lock(gomock.Any(), s.userID).Return(nil).Times(2)
		s.f.memberships.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ms *membership.Membership) error {
				s.True(ms.NextBillingDate().Equal(payment.DefaultPeriodEnd(s.f.clock.Now())))
				return nil
			})
		s.f.credits.EXPECT().Balances(gomock.Any(), s.userID).Return(credit.Balances{}, nil)
		s.f.credits.EXPECT().SaveBalance(gomock.Any(), s.userID, equipment.Kart, 4).Return(nil)
		s.f.credits.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeApplied, outcome)
	})

	s.Run("metadata without a known tier is acknowledged and skipped", func() {
		env := s.deliver("evt_4", payment.KindCheckoutCompleted)
		s.processor.EXPECT().DecodeCheckout(env.Raw).
			Return(payment.CheckoutCompleted{Metadata: s.meta("kart-legend"), SubscriptionRef: "sub_new"}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeSkipped, outcome)
	})

	s.Run("unknown user is acknowledged and skipped", func() {
		env := s.deliver("evt_5", payment.KindCheckoutCompleted)
		s.processor.EXPECT().DecodeCheckout(env.Raw).
			Return(payment.CheckoutCompleted{Metadata: s.meta("kart-pro"), SubscriptionRef: "sub_new"}, nil)
		s.processor.EXPECT().Subscription(gomock.Any(), "sub_new").
			Return(payment.Subscription{ID: "sub_new", PeriodEnd: s.periodEnd}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_5", gomock.Any()).Return(true, nil)
		s.f.users.EXPECT().Lock(gomock.Any(), s.userID).
			Return(infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeSkipped, outcome)
	})
}

func (s *PaymentCommandsTestSuite) TestDuplicates() {
	s.Run("already recorded event is acknowledged without decoding", func() {
		env := payment.Envelope{ID: "evt_1", Kind: payment.KindCheckoutCompleted}
		s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(env, nil)
		s.f.reads.EXPECT().WebhookEventProcessed(gomock.Any(), "evt_1").Return(true, nil)
		s.processor.EXPECT().DecodeCheckout(gomock.Any()).Times(0)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeDuplicate, outcome)
	})

	s.Run("concurrent delivery loses the insert and applies nothing", func() {
		env := s.deliver("evt_2", payment.KindCheckoutCompleted)
		s.processor.EXPECT().DecodeCheckout(env.Raw).
			Return(payment.CheckoutCompleted{Metadata: s.meta("kart-pro"), SubscriptionRef: "sub_new"}, nil)
		s.processor.EXPECT().Subscription(gomock.Any(), "sub_new").
			Return(payment.Subscription{ID: "sub_new", PeriodEnd: s.periodEnd}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_2", gomock.Any()).Return(false, nil)
		s.f.memberships.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)
		s.f.credits.EXPECT().SaveBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeDuplicate, outcome)
	})
}

func (s *PaymentCommandsTestSuite) TestInvoicePaid() {
	s.Run("renewal resets credits to the tier amount", func() {
		env := s.deliver("evt_1", payment.KindInvoicePaid)
		s.processor.EXPECT().DecodeInvoice(env.Raw).Return(payment.InvoicePaid{
			Metadata: s.meta("kart-pro"), SubscriptionRef: "sub_new", PeriodEnd: s.periodEnd,
		}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_1", string(payment.KindInvoicePaid)).Return(true, nil)
		s.f.memberships.EXPECT().SubscriptionRef(gomock.Any(), s.userID, equipment.Kart).Return("sub_new", true, nil)
		s.expectActivation("kart-pro")
		s.f.credits.EXPECT().Balances(gomock.Any(), s.userID).Return(credit.Balances{equipment.Kart: 3, equipment.Rig: 2}, nil)
		s.f.credits.EXPECT().SaveBalance(gomock.Any(), s.userID, equipment.Kart, 8).Return(nil)
		s.f.credits.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e credit.Entry) error {
				s.Equal(credit.KindSet, e.Kind)
				s.Equal(credit.SourceRenewal, e.Source)
				return nil
			})

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeApplied, outcome)
	})

	s.Run("metadata is read from the subscription when the invoice has none", func() {
		env := s.deliver("evt_2", payment.KindInvoiceSucceeded)
		s.processor.EXPECT().DecodeInvoice(env.Raw).Return(payment.InvoicePaid{SubscriptionRef: "sub_new"}, nil)
		s.processor.EXPECT().Subscription(gomock.Any(), "sub_new").
			Return(payment.Subscription{ID: "sub_new", Metadata: s.meta("kart-rookie"), PeriodEnd: s.periodEnd}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_2", gomock.Any()).Return(true, nil)
		s.f.memberships.EXPECT().SubscriptionRef(gomock.Any(), s.userID, equipment.Kart).Return("", false, nil)
		s.expectActivation("kart-rookie")
		s.f.credits.EXPECT().Balances(gomock.Any(), s.userID).Return(credit.Balances{equipment.Kart: 7}, nil)
		s.f.credits.EXPECT().SaveBalance(gomock.Any(), s.userID, equipment.Kart, 4).Return(nil)
		s.f.credits.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeApplied, outcome)
	})

	s.Run("renewal of a replaced subscription changes nothing", func() {
		env := s.deliver("evt_4", payment.KindInvoicePaid)
		s.processor.EXPECT().DecodeInvoice(env.Raw).Return(payment.InvoicePaid{
			Metadata: s.meta("kart-rookie"), SubscriptionRef: "sub_old", PeriodEnd: s.periodEnd,
		}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_4", gomock.Any()).Return(true, nil)
		gomock.InOrder(
			s.f.users.EXPECT().Lock(gomock.Any(), s.userID).Return(nil),
			s.f.memberships.EXPECT().SubscriptionRef(gomock.Any(), s.userID, equipment.Kart).Return("sub_new", true, nil),
		)
		s.f.memberships.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)
		s.f.credits.EXPECT().SaveBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeSkipped, outcome)
	})

	s.Run("initial invoice is left to the checkout event", func() {
		env := s.deliver("evt_3", payment.KindInvoicePaid)
		s.processor.EXPECT().DecodeInvoice(env.Raw).Return(payment.InvoicePaid{
			Metadata: s.meta("kart-pro"), SubscriptionRef: "sub_new", Initial: true,
		}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeSkipped, outcome)
	})
}

func (s *PaymentCommandsTestSuite) TestSubscriptionDeleted() {
	s.Run("deactivates the membership bound to the subscription", func() {
		env := s.deliver("evt_1", payment.KindSubscriptionDeleted)
		s.processor.EXPECT().DecodeSubscriptionDeleted(env.Raw).
			Return(payment.SubscriptionDeleted{Metadata: s.meta("rig-pro"), SubscriptionRef: "sub_new"}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_1", gomock.Any()).Return(true, nil)
		s.f.users.EXPECT().Lock(gomock.Any(), s.userID).Return(nil)
		s.f.memberships.EXPECT().Deactivate(gomock.Any(), s.userID, equipment.Rig, "sub_new", s.f.clock.Now()).Return(true, nil)
		s.f.credits.EXPECT().SaveBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeApplied, outcome)
	})

	s.Run("cancelling the subscription an upgrade replaced keeps the new membership", func() {
		env := s.deliver("evt_2", payment.KindSubscriptionDeleted)
		s.processor.EXPECT().DecodeSubscriptionDeleted(env.Raw).
			Return(payment.SubscriptionDeleted{Metadata: s.meta("kart-rookie"), SubscriptionRef: "sub_old"}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_2", gomock.Any()).Return(true, nil)
		s.f.users.EXPECT().Lock(gomock.Any(), s.userID).Return(nil)
		s.f.memberships.EXPECT().Deactivate(gomock.Any(), s.userID, equipment.Kart, "sub_old", s.f.clock.Now()).Return(false, nil)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeSkipped, outcome)
	})

	s.Run("event without a subscription id is skipped", func() {
		env := s.deliver("evt_3", payment.KindSubscriptionDeleted)
		s.processor.EXPECT().DecodeSubscriptionDeleted(env.Raw).
			Return(payment.SubscriptionDeleted{Metadata: s.meta("rig-pro")}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.f.memberships.EXPECT().Deactivate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeSkipped, outcome)
	})
}

func (s *PaymentCommandsTestSuite) TestRejectedAndIgnored() {
	s.Run("bad signature reaches nothing", func() {
		s.verifier.EXPECT().Verify(gomock.Any(), "forged").Return(payment.Envelope{}, errs.ErrInvalidSignature)
		s.f.reads.EXPECT().WebhookEventProcessed(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "forged")

		s.True(errs.Is(err, errs.ErrInvalidSignature))
	})

	s.Run("unhandled event type", func() {
		s.deliver("evt_1", payment.Kind("customer.created"))

		outcome, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.Require().NoError(err)
		s.Equal(payment.OutcomeIgnored, outcome)
	})

	s.Run("storage failure is reported and asks for a retry", func() {
		env := s.deliver("evt_2", payment.KindSubscriptionDeleted)
		s.processor.EXPECT().DecodeSubscriptionDeleted(env.Raw).
			Return(payment.SubscriptionDeleted{Metadata: s.meta("rig-pro"), SubscriptionRef: "sub_new"}, nil)
		s.f.webhooks.EXPECT().MarkProcessed(gomock.Any(), "evt_2", gomock.Any()).
			Return(false, infra.WrapRepoErr("failed to record webhook event", errors.New("connection refused")))
		s.reporter.EXPECT().Report(gomock.Any(), gomock.Any(), map[string]string{
			"event_id": "evt_2", "event_type": string(payment.KindSubscriptionDeleted),
		})

		_, err := s.commands.HandleWebhook(s.ctx, []byte("payload"), "sig")

		s.True(errs.Is(err, errs.ErrUpstreamFailure))
	})
}
