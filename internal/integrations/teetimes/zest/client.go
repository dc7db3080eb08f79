package zest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
)

// Client клиент Zest
// Zest сам помечает ранние и вечерние тарифы флагами
type Client struct {
	transport *teetimes.Transport
	log       teetimes.Logger
}

// NewClient создает клиент Zest
func NewClient(cfg teetimes.Config, metrics teetimes.Metrics, log teetimes.Logger) *Client {
	cfg.Name = string(domain.ProviderZest)
	cfg.AuthHeader = "Authorization"
	cfg.AuthScheme = "Bearer"
	return &Client{
		transport: teetimes.NewTransport(cfg, metrics, log),
		log:       log,
	}
}

// Type тип провайдера
func (c *Client) Type() domain.ProviderType {
	return domain.ProviderZest
}

// FetchTeeTimes получает тии-таймы поля на дату
func (c *Client) FetchTeeTimes(ctx context.Context, q teetimes.Query) ([]domain.TeeTime, error) {
	params := url.Values{}
	params.Set("facilityId", q.Course.ProviderCourseID)
	params.Set("date", q.DateParam())
	params.Set("players", strconv.Itoa(q.Players))

	var resp teeTimesResponse
	if err := c.transport.GetJSON(ctx, "/api/v1/teetimes", params, &resp); err != nil {
		return nil, err
	}

	result := make([]domain.TeeTime, 0, len(resp.Data))
	for _, slot := range resp.Data {
		teeTime, err := normalize(q.Course, slot)
		if err != nil {
			c.log.Warn("Zest: skipping slot id=%s of course=%s: %v", slot.ID, q.Course.ID, err)
			continue
		}
		result = append(result, teeTime)
	}
	return result, nil
}

func normalize(course domain.Course, slot teeTime) (domain.TeeTime, error) {
	start, err := domain.ParseTeeTime(slot.TeeTime)
	if err != nil {
		return domain.TeeTime{}, fmt.Errorf("%w: bad teeTime %q", teetimes.ErrInvalidResponse, slot.TeeTime)
	}

	packages := make([]domain.RatePackage, 0, len(slot.Rates))
	for _, r := range slot.Rates {
		packages = append(packages, domain.RatePackage{
			ID:              r.RateID,
			Name:            r.Name,
			Price:           r.Price,
			IncludesBuggy:   r.BuggyIncluded,
			IncludesLunch:   r.LunchIncluded,
			IsEarlyBird:     r.EarlyBird,
			IsTwilight:      r.Twilight,
			TimeRestriction: r.TimeRestriction,
		})
	}

	addOns := make([]domain.AddOnOption, 0, len(slot.Extras))
	for _, e := range slot.Extras {
		addOns = append(addOns, domain.AddOnOption{
			ID:    e.ID,
			Name:  e.Name,
			Price: e.Price,
			Unit:  teetimes.ParseUnit(e.Per),
		})
	}

	return domain.TeeTime{
		ID:             teetimes.SlotID(domain.ProviderZest, course.ID, slot.ID),
		CourseID:       course.ID,
		CourseName:     course.Name,
		ProviderType:   domain.ProviderZest,
		Time:           start,
		Holes:          slot.Holes,
		AvailableSpots: slot.AvailablePlayers,
		Packages:       packages,
		AddOns:         addOns,
	}, nil
}
