package metrics

import "time"

// ObserveProviderRequest фиксирует обращение к провайдеру тии-таймов
// Безопасен для nil-получателя, чтобы клиенты работали без метрик
func (m *Metrics) ObserveProviderRequest(provider string, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ProviderRequestsTotal.WithLabelValues(provider, outcome).Inc()
	m.ProviderRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// ObserveConflict увеличивает счетчик обнаруженных конфликтов корзины
func (m *Metrics) ObserveConflict(conflictType string) {
	if m == nil {
		return
	}
	m.CartConflictsTotal.WithLabelValues(conflictType).Inc()
}
