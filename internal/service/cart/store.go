package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// Store корзина одной сессии: упорядоченный список позиций, синхронизированный с хранилищем
// Каждая изменяющая операция сразу сохраняет весь список целиком
// Store не потокобезопасен, конкурентный доступ сериализует Service
type Store struct {
	key     string
	items   []domain.CartItem
	storage Storage
	logger  Logger
}

// StorageKey ключ хранилища для сессии корзины
func StorageKey(sessionID string) string {
	return domain.CartStorageKey + ":" + sessionID
}

// NewStore загружает корзину сессии из хранилища
// Ошибки чтения и повреждённые данные не фатальны: корзина начинается пустой
func NewStore(ctx context.Context, storage Storage, sessionID string, logger Logger) *Store {
	s := &Store{
		key:     StorageKey(sessionID),
		items:   make([]domain.CartItem, 0),
		storage: storage,
		logger:  logger,
	}

	data, err := storage.Load(ctx, s.key)
	if err != nil {
		logger.Warn("Cart: failed to load key=%s, starting empty: %v", s.key, err)
		return s
	}
	if len(data) == 0 {
		return s
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("Cart: corrupt data for key=%s, starting empty: %v", s.key, err)
		return s
	}
	if items != nil {
		s.items = items
	}

	return s
}

// Items возвращает копию позиций в порядке добавления
func (s *Store) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Item ищет позицию по ID
func (s *Store) Item(id string) (domain.CartItem, bool) {
	if i := s.indexByID(id); i >= 0 {
		return s.items[i], true
	}
	return domain.CartItem{}, false
}

// AddItem добавляет позицию
// Если позиция с тем же (courseId, time) уже есть, она заменяется на месте
func (s *Store) AddItem(ctx context.Context, item domain.CartItem) error {
	replaced := false
	for i := range s.items {
		if s.items[i].SameSlot(item.CourseID, item.Time) {
			s.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		s.items = append(s.items, item)
	}

	return s.persist(ctx)
}

// RemoveItem удаляет позицию по ID, отсутствие позиции не ошибка
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	i := s.indexByID(id)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.persist(ctx)
}

// UpdateItem применяет частичное обновление, отсутствие позиции не ошибка
func (s *Store) UpdateItem(ctx context.Context, id string, patch domain.CartItemPatch) error {
	i := s.indexByID(id)
	if i < 0 {
		return nil
	}
	patch.Apply(&s.items[i])
	return s.persist(ctx)
}

// ClearCart очищает корзину
func (s *Store) ClearCart(ctx context.Context) error {
	s.items = make([]domain.CartItem, 0)
	return s.persist(ctx)
}

// TotalPrice сумма totalPrice всех позиций
func (s *Store) TotalPrice() float64 {
	var total float64
	for _, item := range s.items {
		total += item.TotalPrice
	}
	return math.Round(total*100) / 100
}

// ItemCount количество позиций
func (s *Store) ItemCount() int {
	return len(s.items)
}

// HasItem проверяет наличие позиции с ключом (courseId, time)
func (s *Store) HasItem(courseID, teeTime string) bool {
	for i := range s.items {
		if s.items[i].SameSlot(courseID, teeTime) {
			return true
		}
	}
	return false
}

// CheckConflicts ищет конфликты кандидата с позициями корзины
func (s *Store) CheckConflicts(courseID, date, teeTime string) []domain.Conflict {
	return domain.DetectConflicts(s.items, courseID, date, teeTime)
}

func (s *Store) indexByID(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("Cart: failed to encode key=%s: %v", s.key, err)
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}
	if err := s.storage.Save(ctx, s.key, data); err != nil {
		s.logger.Error("Cart: failed to save key=%s: %v", s.key, err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}
