package teeone

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// Client клиент TeeOne
type Client struct {
	transport *teetimes.Transport
	log       teetimes.Logger
}

// NewClient создает клиент TeeOne
func NewClient(cfg teetimes.Config, metrics teetimes.Metrics, log teetimes.Logger) *Client {
	cfg.Name = string(domain.ProviderTeeOne)
	cfg.AuthHeader = "X-Api-Key"
	cfg.AuthScheme = ""
	return &Client{
		transport: teetimes.NewTransport(cfg, metrics, log),
		log:       log,
	}
}

// Type тип провайдера
func (c *Client) Type() domain.ProviderType {
	return domain.ProviderTeeOne
}

// FetchTeeTimes получает лист стартов поля на дату
func (c *Client) FetchTeeTimes(ctx context.Context, q teetimes.Query) ([]domain.TeeTime, error) {
	path := fmt.Sprintf("/clubs/%s/tee-sheet", url.PathEscape(q.Course.ProviderCourseID))
	params := url.Values{}
	params.Set("date", q.DateParam())

	var resp teeSheetResponse
	if err := c.transport.GetJSON(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	result := make([]domain.TeeTime, 0, len(resp.Times))
	for _, slot := range resp.Times {
		teeTime, err := normalize(q, slot)
		if err != nil {
			c.log.Warn("TeeOne: skipping slot %s of course=%s: %v", slot.Time, q.Course.ID, err)
			continue
		}
		result = append(result, teeTime)
	}
	return result, nil
}

func normalize(q teetimes.Query, slot teeSheet) (domain.TeeTime, error) {
	clock, err := types.NewTimeStringFromString(slot.Time)
	if err != nil {
		return domain.TeeTime{}, fmt.Errorf("%w: bad time %q", teetimes.ErrInvalidResponse, slot.Time)
	}
	day := time.Date(q.Date.Year(), q.Date.Month(), q.Date.Day(), 0, 0, 0, 0, q.Date.Location())
	start := day.Add(time.Duration(clock.Minutes()) * time.Minute)

	packages := make([]domain.RatePackage, 0, len(slot.Tariffs))
	for _, t := range slot.Tariffs {
		packages = append(packages, domain.RatePackage{
			ID:              t.Code,
			Name:            t.Description,
			Price:           t.Amount,
			IncludesBuggy:   includes(t.Includes, "buggy"),
			IncludesLunch:   includes(t.Includes, "lunch"),
			TimeRestriction: t.Restriction,
		})
	}

	addOns := make([]domain.AddOnOption, 0, len(slot.Supplements))
	for _, s := range slot.Supplements {
		addOns = append(addOns, domain.AddOnOption{
			ID:    s.Code,
			Name:  s.Description,
			Price: s.Amount,
			Unit:  teetimes.ParseUnit(s.Basis),
		})
	}

	return domain.TeeTime{
		ID:             teetimes.SlotID(domain.ProviderTeeOne, q.Course.ID, q.DateParam()+"T"+clock.String()),
		CourseID:       q.Course.ID,
		CourseName:     q.Course.Name,
		ProviderType:   domain.ProviderTeeOne,
		Time:           start,
		Holes:          slot.Holes,
		AvailableSpots: slot.Free,
		Packages:       packages,
		AddOns:         addOns,
	}, nil
}

func includes(list []string, what string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), what) {
			return true
		}
	}
	return false
}
