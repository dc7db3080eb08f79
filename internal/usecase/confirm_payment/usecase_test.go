package confirm_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/payments"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/bookings"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
)

type fakeBookings struct {
	status    domain.BookingStatus
	missing   bool
	confirmed int
}

func (f *fakeBookings) list() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, PaymentSessionID: "cs_1", CartSessionID: "sess-1", Status: f.status},
		{ID: 2, PaymentSessionID: "cs_1", CartSessionID: "sess-1", Status: f.status},
	}
}

func (f *fakeBookings) GetByPaymentSession(_ context.Context, _ string) ([]*domain.Booking, error) {
	if f.missing {
		return nil, bookings.ErrBookingNotFound
	}
	return f.list(), nil
}

func (f *fakeBookings) Confirm(_ context.Context, _ string) ([]*domain.Booking, error) {
	f.confirmed++
	f.status = domain.StatusConfirmed
	return f.list(), nil
}

// fakePayments отдаёт статусы по очереди, последний повторяется
type fakePayments struct {
	sessions []*payments.Session
	errs     []error
	calls    int
}

func (f *fakePayments) GetSession(_ context.Context, _ string) (*payments.Session, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.sessions) {
		i = len(f.sessions) - 1
	}
	return f.sessions[i], nil
}

type fakeCart struct{ cleared []string }

func (f *fakeCart) Clear(_ context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	return nil
}

type recordingSleeper struct{ sleeps []time.Duration }

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.sleeps = append(s.sleeps, d)
	return nil
}

var (
	unpaid = &payments.Session{ID: "cs_1", Status: "open", PaymentStatus: payments.PaymentUnpaid}
	paid   = &payments.Session{ID: "cs_1", Status: "complete", PaymentStatus: payments.PaymentPaid}
)

func newUseCase(b *fakeBookings, p *fakePayments, c *fakeCart) (*UseCase, *recordingSleeper) {
	uc := NewUseCase(b, p, c, RetryPolicy{MaxAttempts: 3, Delay: 2 * time.Second}, logger.Nop())
	s := &recordingSleeper{}
	uc.sleeper = s
	return uc, s
}

func TestUseCase_ConfirmsAfterRetries(t *testing.T) {
	b := &fakeBookings{status: domain.StatusPending}
	p := &fakePayments{sessions: []*payments.Session{unpaid, unpaid, paid}}
	c := &fakeCart{}
	uc, sleeper := newUseCase(b, p, c)

	resp, err := uc.Execute(context.Background(), &Request{PaymentSessionID: "cs_1"})
	require.NoError(t, err)

	assert.Equal(t, StateConfirmed, resp.State)
	assert.Equal(t, 3, resp.Attempts)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, sleeper.sleeps)
	assert.True(t, domain.AllConfirmed(resp.Bookings))
	assert.Equal(t, 1, b.confirmed)
	assert.Equal(t, []string{"sess-1"}, c.cleared)
}

func TestUseCase_AlreadyConfirmedSkipsProvider(t *testing.T) {
	b := &fakeBookings{status: domain.StatusConfirmed}
	p := &fakePayments{sessions: []*payments.Session{unpaid}}
	uc, sleeper := newUseCase(b, p, &fakeCart{})

	resp, err := uc.Execute(context.Background(), &Request{PaymentSessionID: "cs_1", CartSessionID: "sess-9"})
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, resp.State)
	assert.Equal(t, 1, resp.Attempts)
	assert.Zero(t, p.calls)
	assert.Empty(t, sleeper.sleeps)
}

func TestUseCase_ClearsBookingCartNotRequestedOne(t *testing.T) {
	b := &fakeBookings{status: domain.StatusPending}
	p := &fakePayments{sessions: []*payments.Session{paid}}
	c := &fakeCart{}
	uc, _ := newUseCase(b, p, c)

	resp, err := uc.Execute(context.Background(), &Request{PaymentSessionID: "cs_1", CartSessionID: "sess-other"})
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, resp.State)
	assert.Equal(t, []string{"sess-1"}, c.cleared)
}

func TestUseCase_ExhaustionIsNotAnError(t *testing.T) {
	b := &fakeBookings{status: domain.StatusPending}
	p := &fakePayments{sessions: []*payments.Session{unpaid}}
	c := &fakeCart{}
	uc, sleeper := newUseCase(b, p, c)

	resp, err := uc.Execute(context.Background(), &Request{PaymentSessionID: "cs_1"})
	require.NoError(t, err)
	assert.Equal(t, StateFailed, resp.State)
	assert.Equal(t, 3, resp.Attempts)
	assert.Equal(t, ProcessingMessage, resp.Message)
	assert.Len(t, sleeper.sleeps, 2)
	assert.Empty(t, c.cleared)
}

func TestUseCase_TransientProviderErrorsAreRetried(t *testing.T) {
	b := &fakeBookings{status: domain.StatusPending}
	p := &fakePayments{
		sessions: []*payments.Session{nil, paid},
		errs:     []error{errors.New("connection reset")},
	}
	uc, _ := newUseCase(b, p, &fakeCart{})

	resp, err := uc.Execute(context.Background(), &Request{PaymentSessionID: "cs_1"})
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, resp.State)
	assert.Equal(t, 2, resp.Attempts)
}

func TestUseCase_FatalOutcomes(t *testing.T) {
	uc, _ := newUseCase(&fakeBookings{missing: true}, &fakePayments{sessions: []*payments.Session{paid}}, &fakeCart{})
	_, err := uc.Execute(context.Background(), &Request{PaymentSessionID: "cs_1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	uc, _ = newUseCase(&fakeBookings{status: domain.StatusCancelled}, &fakePayments{sessions: []*payments.Session{paid}}, &fakeCart{})
	_, err = uc.Execute(context.Background(), &Request{PaymentSessionID: "cs_1"})
	assert.ErrorIs(t, err, ErrPaymentExpired)

	expired := &payments.Session{ID: "cs_1", Status: "expired", PaymentStatus: payments.PaymentUnpaid}
	uc, _ = newUseCase(&fakeBookings{status: domain.StatusPending}, &fakePayments{sessions: []*payments.Session{expired}}, &fakeCart{})
	_, err = uc.Execute(context.Background(), &Request{PaymentSessionID: "cs_1"})
	assert.ErrorIs(t, err, ErrPaymentExpired)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRealSleeper_RespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RealSleeper{}.Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
