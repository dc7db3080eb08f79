package offers

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// Selection выбор клиента: значимы только идентификаторы
type Selection struct {
	Course    domain.Course
	TeeTime   time.Time
	Players   int
	PackageID string
	AddOnIDs  []string
}

// Offer пакет и доп. услуги с ценами провайдера
type Offer struct {
	Package domain.Package
	AddOns  []domain.AddOnOption
}
