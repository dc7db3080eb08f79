package teetimes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Исходы запроса для метрик провайдеров
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeCircuitOpen = "circuit_open"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учёт обращений к провайдерам
type Metrics interface {
	ObserveProviderRequest(provider string, outcome string, duration time.Duration)
}

// Config параметры подключения к провайдеру
type Config struct {
	Name           string
	BaseURL        string
	APIKey         string
	AuthHeader     string // заголовок, в котором передаётся ключ
	AuthScheme     string // префикс значения, например "Bearer"
	Timeout        time.Duration
	RateLimit      float64 // запросов в секунду, 0 = без ограничения
	RateBurst      int
	BreakerTimeout time.Duration
}

// Transport HTTP-транспорт провайдера с ограничением частоты и circuit breaker
type Transport struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	metrics    Metrics
	log        Logger
}

// NewTransport создает транспорт провайдера
func NewTransport(cfg Config, metrics Metrics, log Logger) *Transport {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		// Отсутствие поля у провайдера не говорит о его недоступности
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrCourseNotFound)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Provider %s: circuit breaker state changed from %s to %s", name, from.String(), to.String())
		},
	}

	return &Transport{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		metrics:    metrics,
		log:        log,
	}
}

// Name имя провайдера
func (t *Transport) Name() string {
	return t.cfg.Name
}

// GetJSON выполняет GET-запрос и декодирует JSON-ответ в out
func (t *Transport) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	start := time.Now()

	if err := t.limiter.Wait(ctx); err != nil {
		t.metrics.ObserveProviderRequest(t.cfg.Name, OutcomeError, time.Since(start))
		return fmt.Errorf("%w: %s: rate limiter: %v", ErrUnavailable, t.cfg.Name, err)
	}

	_, err := t.breaker.Execute(func() (interface{}, error) {
		return nil, t.get(ctx, path, query, out)
	})

	switch {
	case err == nil:
		t.metrics.ObserveProviderRequest(t.cfg.Name, OutcomeSuccess, time.Since(start))
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		t.metrics.ObserveProviderRequest(t.cfg.Name, OutcomeCircuitOpen, time.Since(start))
		return fmt.Errorf("%w: %s", ErrCircuitOpen, t.cfg.Name)
	default:
		t.metrics.ObserveProviderRequest(t.cfg.Name, OutcomeError, time.Since(start))
		return err
	}
}

func (t *Transport) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := strings.TrimRight(t.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to create request: %v", ErrUnavailable, t.cfg.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	if t.cfg.AuthHeader != "" && t.cfg.APIKey != "" {
		value := t.cfg.APIKey
		if t.cfg.AuthScheme != "" {
			value = t.cfg.AuthScheme + " " + value
		}
		req.Header.Set(t.cfg.AuthHeader, value)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to execute request: %v", ErrUnavailable, t.cfg.Name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrCourseNotFound, t.cfg.Name)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, t.cfg.Name)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: unexpected status code %d: %s", ErrUnavailable, t.cfg.Name, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, t.cfg.Name, err)
	}
	return nil
}
