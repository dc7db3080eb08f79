package cart

import (
	"context"
	"fmt"
	"regexp"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// Summary состояние корзины для ответа API
type Summary struct {
	SessionID  string
	Items      []domain.CartItem
	ItemCount  int
	TotalPrice float64
}

// Service открывает корзины сессий и сериализует операции над одной сессией
// Между процессами гарантии нет: последняя запись побеждает
type Service struct {
	storage Storage
	locks   *sessionLocks
	logger  Logger
}

// NewService создает сервис корзин
func NewService(storage Storage, logger Logger) *Service {
	return &Service{
		storage: storage,
		locks:   newSessionLocks(),
		logger:  logger,
	}
}

// ValidateSessionID проверяет формат ID сессии корзины
func ValidateSessionID(sessionID string) error {
	if !sessionIDPattern.MatchString(sessionID) {
		return fmt.Errorf("%w: %q", ErrInvalidSession, sessionID)
	}
	return nil
}

// WithCart загружает корзину сессии и выполняет fn под блокировкой сессии
func (s *Service) WithCart(ctx context.Context, sessionID string, fn func(store *Store) error) error {
	if err := ValidateSessionID(sessionID); err != nil {
		return err
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	return fn(NewStore(ctx, s.storage, sessionID, s.logger))
}

// Get возвращает содержимое корзины
func (s *Service) Get(ctx context.Context, sessionID string) (*Summary, error) {
	var summary *Summary
	err := s.WithCart(ctx, sessionID, func(store *Store) error {
		summary = Summarize(sessionID, store)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// RemoveItem удаляет позицию и возвращает обновлённую корзину
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*Summary, error) {
	var summary *Summary
	err := s.WithCart(ctx, sessionID, func(store *Store) error {
		if _, ok := store.Item(itemID); !ok {
			s.logger.Info("RemoveItem: item id=%s not in cart session=%s", itemID, sessionID)
		}
		if err := store.RemoveItem(ctx, itemID); err != nil {
			return err
		}
		summary = Summarize(sessionID, store)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("RemoveItem: session=%s, item=%s, items_left=%d", sessionID, itemID, summary.ItemCount)
	return summary, nil
}

// Clear очищает корзину
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	err := s.WithCart(ctx, sessionID, func(store *Store) error {
		return store.ClearCart(ctx)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Clear: cart session=%s cleared", sessionID)
	return nil
}

// CheckConflicts проверяет кандидата на конфликты с корзиной
func (s *Service) CheckConflicts(ctx context.Context, sessionID, courseID, date, teeTime string) ([]domain.Conflict, error) {
	var conflicts []domain.Conflict
	err := s.WithCart(ctx, sessionID, func(store *Store) error {
		conflicts = store.CheckConflicts(courseID, date, teeTime)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}

// Summarize снимок корзины
func Summarize(sessionID string, store *Store) *Summary {
	return &Summary{
		SessionID:  sessionID,
		Items:      store.Items(),
		ItemCount:  store.ItemCount(),
		TotalPrice: store.TotalPrice(),
	}
}
