package add_cart_item

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

// Request модель запроса на добавление тии-тайма в корзину
type Request struct {
	SessionID            string               // ID сессии корзины
	CourseID             string               // ID поля
	Date                 string               // Дата игры "2006-01-02", пусто = дата из Time
	Time                 string               // Время старта (полный timestamp)
	Players              int                  // Количество игроков, 1..4
	Package              domain.Package       // Выбранный пакет, значим только ID
	AddOns               []domain.AddOnOption // Выбранные доп. услуги, значимы только ID
	AcknowledgeConflicts bool                 // Подтверждение некритичных конфликтов
}

// Response модель ответа
type Response struct {
	Item      domain.CartItem
	Replaced  bool              // Позиция с тем же (courseId, time) заменена
	Conflicts []domain.Conflict // Подтверждённые некритичные конфликты
	Cart      *cart.Summary
}
