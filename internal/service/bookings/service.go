package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/booking"
)

// Service сервис бронирований, созданных при оформлении заказа
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreatePending сохраняет бронирования платёжной сессии в статусе pending
// Все позиции сохраняются в одной транзакции
func (s *Service) CreatePending(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	if len(bookings) == 0 {
		return nil, fmt.Errorf("%w: no bookings to create", ErrInvalidInput)
	}

	created := make([]*domain.Booking, 0, len(bookings))
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, b := range bookings {
			b.Status = domain.StatusPending
			saved, err := s.bookingRepo.Create(txCtx, b)
			if err != nil {
				return err
			}
			created = append(created, saved)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CreatePending: failed to store %d bookings for payment session=%s: %v",
			len(bookings), bookings[0].PaymentSessionID, err)
		return nil, fmt.Errorf("%w: CreatePending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePending: stored %d bookings for payment session=%s", len(created), bookings[0].PaymentSessionID)
	return created, nil
}

// GetByPaymentSession получает бронирования платёжной сессии
func (s *Service) GetByPaymentSession(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.GetByPaymentSession(ctx, paymentSessionID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByPaymentSession: repository error for payment session=%s: %v", paymentSessionID, err)
		return nil, fmt.Errorf("%w: GetByPaymentSession - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// Confirm подтверждает pending бронирования оплаченной сессии
// Повторный вызов для подтверждённой сессии ничего не меняет
func (s *Service) Confirm(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error) {
	return s.transition(ctx, "Confirm", paymentSessionID, domain.StatusConfirmed)
}

// Expire отменяет pending бронирования просроченной сессии
func (s *Service) Expire(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error) {
	return s.transition(ctx, "Expire", paymentSessionID, domain.StatusCancelled)
}

func (s *Service) transition(ctx context.Context, op, paymentSessionID string, to domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		bookings, err := s.bookingRepo.GetByPaymentSession(txCtx, paymentSessionID)
		if err != nil {
			return err
		}

		if to == domain.StatusConfirmed && domain.AnyCancelled(bookings) {
			return ErrAlreadyCancelled
		}

		updated, err := s.bookingRepo.UpdateStatusByPaymentSession(txCtx, paymentSessionID, domain.StatusPending, to)
		if err != nil {
			return err
		}
		if updated > 0 {
			s.logger.Info("%s: payment session=%s moved %d bookings to %s", op, paymentSessionID, updated, to)
		}

		result, err = s.bookingRepo.GetByPaymentSession(txCtx, paymentSessionID)
		return err
	})

	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: no bookings for payment session=%s", op, paymentSessionID)
		return nil, ErrBookingNotFound
	case errors.Is(err, ErrAlreadyCancelled):
		s.logger.Warn("%s: payment session=%s was already cancelled", op, paymentSessionID)
		return nil, err
	default:
		s.logger.Error("%s: failed for payment session=%s: %v", op, paymentSessionID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
