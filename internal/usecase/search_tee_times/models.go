package search_tee_times

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// Request модель запроса поиска тии-таймов
type Request struct {
	Date      time.Time // Дата игры (без времени)
	Players   int       // Количество игроков, 1..4
	CourseIDs []string  // Пусто = все активные поля
}

// Warning поле, по которому провайдер не ответил
type Warning struct {
	CourseID     string
	CourseName   string
	ProviderType domain.ProviderType
	Message      string
}

// Response модель ответа
type Response struct {
	Date     time.Time
	Players  int
	TeeTimes []domain.TeeTime
	Warnings []Warning
}
