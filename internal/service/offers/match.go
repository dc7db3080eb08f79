package offers

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// findSlot ищет тии-тайм того же дня с тем же временем старта
// Провайдеры отдают время по часам поля, поэтому сравниваем дату и часы с минутами
func findSlot(teeTimes []domain.TeeTime, teeTime time.Time) (*domain.TeeTime, bool) {
	y, m, d := teeTime.Date()
	for i := range teeTimes {
		tt := &teeTimes[i]
		ty, tm, td := tt.Time.Date()
		if ty == y && tm == m && td == d &&
			tt.Time.Hour() == teeTime.Hour() && tt.Time.Minute() == teeTime.Minute() {
			return tt, true
		}
	}
	return nil, false
}

func findPackage(slot *domain.TeeTime, id string) (domain.RatePackage, bool) {
	for _, pkg := range slot.Packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return domain.RatePackage{}, false
}

// findAddOns возвращает доп. услуги провайдера в порядке выбора
func findAddOns(slot *domain.TeeTime, ids []string) ([]domain.AddOnOption, error) {
	offered := make(map[string]domain.AddOnOption, len(slot.AddOns))
	for _, a := range slot.AddOns {
		offered[a.ID] = a
	}

	result := make([]domain.AddOnOption, 0, len(ids))
	for _, id := range ids {
		a, ok := offered[id]
		if !ok {
			return nil, fmt.Errorf("%w: addOn %s", ErrPackageNotOffered, id)
		}
		result = append(result, a)
	}
	return result, nil
}
