package search_tee_times

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	searchTeeTimes "github.com/m04kA/SMC-TeeTimeService/internal/usecase/search_tee_times"
)

// TeeTimeResponse тии-тайм в ответе API
type TeeTimeResponse struct {
	ID             string               `json:"id"`
	CourseID       string               `json:"courseId"`
	CourseName     string               `json:"courseName"`
	ProviderType   string               `json:"providerType"`
	Time           string               `json:"time"` // RFC3339
	Date           string               `json:"date"`
	Holes          int                  `json:"holes"`
	AvailableSpots int                  `json:"availableSpots"`
	Packages       []domain.RatePackage `json:"packages"`
	AddOns         []domain.AddOnOption `json:"addOns"`
}

// WarningResponse поле, пропущенное из-за ошибки провайдера
type WarningResponse struct {
	CourseID     string `json:"courseId"`
	CourseName   string `json:"courseName"`
	ProviderType string `json:"providerType"`
	Message      string `json:"message"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Date     string            `json:"date"`
	Players  int               `json:"players"`
	TeeTimes []TeeTimeResponse `json:"teeTimes"`
	Warnings []WarningResponse `json:"warnings"`
}

// ParseQuery разбирает ?date=2025-06-01&players=2&courseId=a&courseId=b (или courseId=a,b)
func ParseQuery(q url.Values) (*searchTeeTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, q.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	players := 1
	if raw := q.Get("players"); raw != "" {
		players, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid players: %w", err)
		}
	}

	var courseIDs []string
	for _, value := range q["courseId"] {
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id != "" {
				courseIDs = append(courseIDs, id)
			}
		}
	}

	return &searchTeeTimes.Request{
		Date:      date,
		Players:   players,
		CourseIDs: courseIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchTeeTimes.Response) *SearchResponse {
	result := &SearchResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Players:  resp.Players,
		TeeTimes: make([]TeeTimeResponse, 0, len(resp.TeeTimes)),
		Warnings: make([]WarningResponse, 0, len(resp.Warnings)),
	}

	for _, t := range resp.TeeTimes {
		addOns := t.AddOns
		if addOns == nil {
			addOns = []domain.AddOnOption{}
		}
		result.TeeTimes = append(result.TeeTimes, TeeTimeResponse{
			ID:             t.ID,
			CourseID:       t.CourseID,
			CourseName:     t.CourseName,
			ProviderType:   string(t.ProviderType),
			Time:           t.Time.Format(time.RFC3339),
			Date:           t.Time.Format(domain.DateFormat),
			Holes:          t.Holes,
			AvailableSpots: t.AvailableSpots,
			Packages:       t.Packages,
			AddOns:         addOns,
		})
	}

	for _, w := range resp.Warnings {
		result.Warnings = append(result.Warnings, WarningResponse{
			CourseID:     w.CourseID,
			CourseName:   w.CourseName,
			ProviderType: string(w.ProviderType),
			Message:      w.Message,
		})
	}

	return result
}
