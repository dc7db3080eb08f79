package search_tee_times

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// selectBookable оставляет тии-таймы, доступные компании из players игроков
// Пакеты фильтруются по времени старта, слоты без подходящих пакетов отбрасываются
func selectBookable(teeTimes []domain.TeeTime, players int, filter PackageFilter, date, now time.Time) []domain.TeeTime {
	result := make([]domain.TeeTime, 0, len(teeTimes))
	today := isSameDay(date, now)

	for _, tt := range teeTimes {
		if !tt.HasRoomFor(players) {
			continue
		}
		if !isSameDay(tt.Time, date) {
			continue
		}
		// Сегодня прошедшие старты не показываем
		if today && !clockAfter(tt.Time, now) {
			continue
		}

		tt.Packages = filter.Apply(tt.Packages, tt.Time)
		if len(tt.Packages) == 0 {
			continue
		}
		result = append(result, tt)
	}

	return result
}

// sortTeeTimes сортирует по времени старта, затем по названию поля
func sortTeeTimes(teeTimes []domain.TeeTime) {
	sort.SliceStable(teeTimes, func(i, j int) bool {
		ci, cj := clockMinutes(teeTimes[i].Time), clockMinutes(teeTimes[j].Time)
		if ci != cj {
			return ci < cj
		}
		if teeTimes[i].CourseName != teeTimes[j].CourseName {
			return teeTimes[i].CourseName < teeTimes[j].CourseName
		}
		return teeTimes[i].ID < teeTimes[j].ID
	})
}

// Время старта провайдеры отдают по часам поля, сравниваем только часы и минуты
func clockAfter(teeTime, now time.Time) bool {
	return clockMinutes(teeTime) > clockMinutes(now)
}

func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
