package eligibility

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// Class time-of-day classification of a rate package
type Class string

const (
	ClassRegular   Class = "regular"
	ClassEarlyBird Class = "early_bird"
	ClassTwilight  Class = "twilight"
)

// Rules configuration of the early-bird and twilight windows
type Rules struct {
	EarlyBirdCutoffHour int      // early bird eligible when hour < cutoff
	TwilightStartHour   int      // twilight eligible when hour >= start
	EarlyBirdKeywords   []string // lowercase name fragments, one per locale
	TwilightKeywords    []string
}

// DefaultRules canonical windows and the en/es keyword lists
func DefaultRules() Rules {
	return Rules{
		EarlyBirdCutoffHour: domain.DefaultEarlyBirdCutoffHour,
		TwilightStartHour:   domain.DefaultTwilightStartHour,
		EarlyBirdKeywords:   []string{"early bird", "madrugador"},
		TwilightKeywords:    []string{"twilight", "crepuscular"},
	}
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
}

// Filter отбирает пакеты, доступные для времени тии-тайма
type Filter struct {
	rules  Rules
	logger Logger
}

// NewFilter создает фильтр с переданными правилами
func NewFilter(rules Rules, logger Logger) *Filter {
	return &Filter{
		rules:  normalizeRules(rules),
		logger: logger,
	}
}

// Rules возвращает действующие правила
func (f *Filter) Rules() Rules {
	return f.rules
}

// Classify определяет класс пакета
// Сначала смотрим на структурированные флаги, затем на ключевые слова в названии
func (f *Filter) Classify(pkg domain.RatePackage) Class {
	switch {
	case pkg.IsEarlyBird:
		return ClassEarlyBird
	case pkg.IsTwilight:
		return ClassTwilight
	}

	name := strings.ToLower(pkg.Name)
	if containsAny(name, f.rules.EarlyBirdKeywords) {
		return ClassEarlyBird
	}
	if containsAny(name, f.rules.TwilightKeywords) {
		return ClassTwilight
	}
	return ClassRegular
}

// IsEligible проверяет, можно ли выбрать пакет для тии-тайма в указанное время
func (f *Filter) IsEligible(pkg domain.RatePackage, teeTime time.Time) bool {
	class := f.Classify(pkg)
	if class == ClassRegular {
		return true
	}

	clock := types.NewTimeString(teeTime)

	// Явное ограничение провайдера имеет приоритет над окном по умолчанию
	if pkg.TimeRestriction != "" {
		window, err := domain.ParseTimeRestriction(pkg.TimeRestriction)
		if err == nil {
			return window.Contains(clock)
		}
		f.logger.Debug("eligibility: package id=%s has unparseable restriction %q, using default window: %v",
			pkg.ID, pkg.TimeRestriction, err)
	}

	hour := teeTime.Hour()
	if class == ClassEarlyBird {
		return hour < f.rules.EarlyBirdCutoffHour
	}
	return hour >= f.rules.TwilightStartHour
}

// Apply возвращает доступные пакеты в исходном порядке
func (f *Filter) Apply(packages []domain.RatePackage, teeTime time.Time) []domain.RatePackage {
	result := make([]domain.RatePackage, 0, len(packages))
	for _, pkg := range packages {
		if f.IsEligible(pkg, teeTime) {
			result = append(result, pkg)
		}
	}
	return result
}

func normalizeRules(r Rules) Rules {
	defaults := DefaultRules()
	if r.EarlyBirdCutoffHour <= 0 || r.EarlyBirdCutoffHour > 24 {
		r.EarlyBirdCutoffHour = defaults.EarlyBirdCutoffHour
	}
	if r.TwilightStartHour <= 0 || r.TwilightStartHour > 24 {
		r.TwilightStartHour = defaults.TwilightStartHour
	}
	if len(r.EarlyBirdKeywords) == 0 {
		r.EarlyBirdKeywords = defaults.EarlyBirdKeywords
	}
	if len(r.TwilightKeywords) == 0 {
		r.TwilightKeywords = defaults.TwilightKeywords
	}
	r.EarlyBirdKeywords = lowerAll(r.EarlyBirdKeywords)
	r.TwilightKeywords = lowerAll(r.TwilightKeywords)
	return r
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
