package teetimes

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// Query запрос доступных тии-таймов одного поля
type Query struct {
	Course  domain.Course
	Date    time.Time
	Players int
}

// DateParam дата запроса в формате провайдеров
func (q Query) DateParam() string {
	return q.Date.Format(domain.DateFormat)
}

// SlotID идентификатор тии-тайма, уникальный между провайдерами
func SlotID(provider domain.ProviderType, courseID, providerSlotID string) string {
	return fmt.Sprintf("%s:%s:%s", provider, courseID, providerSlotID)
}

// ParseUnit приводит единицу тарификации провайдера к AddOnUnit
// Неизвестное значение считается ценой за игрока
func ParseUnit(s string) domain.AddOnUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buggy", "cart", "per_buggy", "per_cart", "buggie":
		return domain.UnitPerBuggy
	case "booking", "flat", "per_booking", "group", "reserva":
		return domain.UnitPerBooking
	default:
		return domain.UnitPerPlayer
	}
}
