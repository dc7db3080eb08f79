package golfmanager

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
)

const startLayout = "2006-01-02 15:04:05"

// Client клиент Golfmanager
type Client struct {
	transport *teetimes.Transport
	log       teetimes.Logger
}

// NewClient создает клиент Golfmanager
func NewClient(cfg teetimes.Config, metrics teetimes.Metrics, log teetimes.Logger) *Client {
	cfg.Name = string(domain.ProviderGolfmanager)
	cfg.AuthHeader = "key"
	cfg.AuthScheme = ""
	return &Client{
		transport: teetimes.NewTransport(cfg, metrics, log),
		log:       log,
	}
}

// Type тип провайдера
func (c *Client) Type() domain.ProviderType {
	return domain.ProviderGolfmanager
}

// FetchTeeTimes получает тии-таймы поля на дату
func (c *Client) FetchTeeTimes(ctx context.Context, q teetimes.Query) ([]domain.TeeTime, error) {
	params := url.Values{}
	params.Set("tenant", q.Course.ProviderCourseID)
	params.Set("date", q.DateParam())
	params.Set("slots", strconv.Itoa(q.Players))

	var resp []availability
	if err := c.transport.GetJSON(ctx, "/api/availability", params, &resp); err != nil {
		return nil, err
	}

	result := make([]domain.TeeTime, 0, len(resp))
	for _, slot := range resp {
		teeTime, err := normalize(q.Course, slot)
		if err != nil {
			c.log.Warn("Golfmanager: skipping slot id=%d of course=%s: %v", slot.ID, q.Course.ID, err)
			continue
		}
		result = append(result, teeTime)
	}
	return result, nil
}

func normalize(course domain.Course, slot availability) (domain.TeeTime, error) {
	start, err := time.Parse(startLayout, slot.Start)
	if err != nil {
		return domain.TeeTime{}, fmt.Errorf("%w: bad start %q", teetimes.ErrInvalidResponse, slot.Start)
	}

	// Классификация по названию выполняется фильтром пакетов
	packages := make([]domain.RatePackage, 0, len(slot.Types))
	for _, t := range slot.Types {
		packages = append(packages, domain.RatePackage{
			ID:            strconv.FormatInt(t.ID, 10),
			Name:          t.Name,
			Price:         t.Price,
			IncludesBuggy: t.Buggy,
			IncludesLunch: t.Lunch,
		})
	}

	addOns := make([]domain.AddOnOption, 0, len(slot.Extras))
	for _, p := range slot.Extras {
		addOns = append(addOns, domain.AddOnOption{
			ID:    strconv.FormatInt(p.ID, 10),
			Name:  p.Name,
			Price: p.Price,
			Unit:  teetimes.ParseUnit(p.Unit),
		})
	}

	holes := slot.Holes
	if holes == 0 {
		holes = 18
	}

	return domain.TeeTime{
		ID:             teetimes.SlotID(domain.ProviderGolfmanager, course.ID, strconv.FormatInt(slot.ID, 10)),
		CourseID:       course.ID,
		CourseName:     course.Name,
		ProviderType:   domain.ProviderGolfmanager,
		Time:           start,
		Holes:          holes,
		AvailableSpots: slot.Slots,
		Packages:       packages,
		AddOns:         addOns,
	}, nil
}
