package offers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/eligibility"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
)

type stubProvider struct {
	teeTimes []domain.TeeTime
	err      error
	queries  []teetimes.Query
}

func (p *stubProvider) Type() domain.ProviderType { return domain.ProviderZest }

func (p *stubProvider) FetchTeeTimes(_ context.Context, q teetimes.Query) ([]domain.TeeTime, error) {
	p.queries = append(p.queries, q)
	return p.teeTimes, p.err
}

var valderrama = domain.Course{ID: "valderrama", Name: "Valderrama", ProviderType: domain.ProviderZest, Active: true}

func offered(hour, spots int) domain.TeeTime {
	return domain.TeeTime{
		ID:             "slot",
		CourseID:       "valderrama",
		Time:           time.Date(2030, 6, 1, hour, 0, 0, 0, time.UTC),
		AvailableSpots: spots,
		Packages: []domain.RatePackage{
			{ID: "gf18", Name: "Green fee 18", Price: 80, IncludesBuggy: true},
			{ID: "eb", Name: "Early Bird 18", Price: 50},
			{ID: "tw", Name: "Sunset", Price: 45, IsTwilight: true},
		},
		AddOns: []domain.AddOnOption{
			{ID: "buggy", Name: "Buggy", Price: 40, Unit: domain.UnitPerBuggy},
			{ID: "lunch", Name: "Lunch", Price: 15, Unit: domain.UnitPerPlayer},
		},
	}
}

func newService(p *stubProvider) *Service {
	return NewService([]Provider{p}, eligibility.NewFilter(eligibility.DefaultRules(), logger.Nop()), logger.Nop())
}

func selection(hour int, packageID string, addOns ...string) Selection {
	return Selection{
		Course:    valderrama,
		TeeTime:   time.Date(2030, 6, 1, hour, 0, 0, 0, time.UTC),
		Players:   3,
		PackageID: packageID,
		AddOnIDs:  addOns,
	}
}

func TestService_ResolveUsesProviderPrices(t *testing.T) {
	p := &stubProvider{teeTimes: []domain.TeeTime{offered(8, 4), offered(9, 4)}}

	offer, err := newService(p).Resolve(context.Background(), selection(9, "gf18", "lunch", "buggy"))
	require.NoError(t, err)

	assert.Equal(t, domain.Package{ID: "gf18", Name: "Green fee 18", Price: 80, IncludesBuggy: true}, offer.Package)
	require.Len(t, offer.AddOns, 2)
	assert.Equal(t, "lunch", offer.AddOns[0].ID)
	assert.Equal(t, domain.UnitPerBuggy, offer.AddOns[1].Unit)

	require.Len(t, p.queries, 1)
	assert.Equal(t, "2030-06-01", p.queries[0].DateParam())
	assert.Equal(t, 3, p.queries[0].Players)
}

func TestService_ResolveEligibility(t *testing.T) {
	p := &stubProvider{teeTimes: []domain.TeeTime{offered(8, 4), offered(16, 4)}}
	svc := newService(p)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, selection(16, "eb"))
	assert.ErrorIs(t, err, ErrPackageNotEligible)

	_, err = svc.Resolve(ctx, selection(8, "tw"))
	assert.ErrorIs(t, err, ErrPackageNotEligible)

	offer, err := svc.Resolve(ctx, selection(8, "eb"))
	require.NoError(t, err)
	assert.Equal(t, 50.0, offer.Package.Price)
}

func TestService_ResolveRejections(t *testing.T) {
	p := &stubProvider{teeTimes: []domain.TeeTime{offered(9, 4), offered(10, 2)}}
	svc := newService(p)
	ctx := context.Background()

	tests := []struct {
		name string
		sel  Selection
		want error
	}{
		{"no such start", selection(11, "gf18"), ErrTeeTimeUnavailable},
		{"no room", selection(10, "gf18"), ErrTeeTimeUnavailable},
		{"unknown package", selection(9, "vip"), ErrPackageNotOffered},
		{"unknown add-on", selection(9, "gf18", "caddie"), ErrPackageNotOffered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Resolve(ctx, tt.sel)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_ResolveProviderFailures(t *testing.T) {
	_, err := newService(&stubProvider{err: errors.New("timeout")}).Resolve(context.Background(), selection(9, "gf18"))
	assert.ErrorIs(t, err, ErrProviderUnavailable)

	sel := selection(9, "gf18")
	sel.Course.ProviderType = domain.ProviderTeeOne
	_, err = newService(&stubProvider{}).Resolve(context.Background(), sel)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
