package add_cart_item

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	cartStorage "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/cart"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/courses"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/eligibility"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/offers"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
)

type stubCourses map[string]*domain.Course

func (s stubCourses) GetActive(_ context.Context, id string) (*domain.Course, error) {
	if c, ok := s[id]; ok {
		return c, nil
	}
	return nil, courses.ErrCourseNotFound
}

// stubProvider предлагает старты каждые 30 минут с 07:00 до 19:00
type stubProvider struct {
	providerType domain.ProviderType
	spots        int
	err          error
}

func (p *stubProvider) Type() domain.ProviderType { return p.providerType }

func (p *stubProvider) FetchTeeTimes(_ context.Context, q teetimes.Query) ([]domain.TeeTime, error) {
	if p.err != nil {
		return nil, p.err
	}
	result := make([]domain.TeeTime, 0)
	for start := q.Date.Add(7 * time.Hour); start.Hour() < 19; start = start.Add(30 * time.Minute) {
		result = append(result, domain.TeeTime{
			ID:             start.Format("1504"),
			CourseID:       q.Course.ID,
			Time:           start,
			AvailableSpots: p.spots,
			Packages: []domain.RatePackage{
				{ID: "gf18", Name: "Green fee 18", Price: 80},
				{ID: "eb", Name: "Early Bird 18", Price: 50},
			},
			AddOns: []domain.AddOnOption{
				{ID: "buggy", Name: "Buggy", Price: 40, Unit: domain.UnitPerBuggy},
			},
		})
	}
	return result, nil
}

type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *countingMetrics) ObserveConflict(conflictType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[conflictType]++
}

type sequentialIDs struct{ n int }

func (g *sequentialIDs) NewID() string {
	g.n++
	return fmt.Sprintf("item-%d", g.n)
}

func newUseCase(providers ...offers.Provider) (*UseCase, *countingMetrics) {
	if len(providers) == 0 {
		providers = []offers.Provider{
			&stubProvider{providerType: domain.ProviderZest, spots: 4},
			&stubProvider{providerType: domain.ProviderTeeOne, spots: 4},
		}
	}
	m := &countingMetrics{counts: map[string]int{}}
	uc := NewUseCase(
		cart.NewService(cartStorage.NewMemoryStorage(), logger.Nop()),
		stubCourses{
			"valderrama": {ID: "valderrama", Name: "Valderrama", ProviderType: domain.ProviderZest, Active: true},
			"sotogrande": {ID: "sotogrande", Name: "Sotogrande", ProviderType: domain.ProviderTeeOne, Active: true},
		},
		offers.NewService(providers, eligibility.NewFilter(eligibility.DefaultRules(), logger.Nop()), logger.Nop()),
		m,
		logger.Nop(),
	)
	uc.ids = &sequentialIDs{}
	return uc, m
}

func request(courseID, teeTime string) *Request {
	return &Request{
		SessionID: "sess-1",
		CourseID:  courseID,
		Time:      teeTime,
		Players:   3,
		Package:   domain.Package{ID: "gf18", Name: "Green fee 18", Price: 80},
		AddOns: []domain.AddOnOption{
			{ID: "buggy", Name: "Buggy", Price: 40, Unit: domain.UnitPerBuggy},
		},
	}
}

func TestUseCase_AddsItemWithPricing(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), request("valderrama", "2025-06-01T09:00:00"))
	require.NoError(t, err)

	assert.Equal(t, "item-1", resp.Item.ID)
	assert.Equal(t, "Valderrama", resp.Item.CourseName)
	assert.Equal(t, domain.ProviderZest, resp.Item.ProviderType)
	assert.Equal(t, "2025-06-01", resp.Item.Date)
	require.Len(t, resp.Item.AddOns, 1)
	assert.Equal(t, 80.0, resp.Item.AddOns[0].TotalPrice)
	assert.Equal(t, 320.0, resp.Item.TotalPrice)
	assert.Equal(t, 1, resp.Cart.ItemCount)
	assert.False(t, resp.Replaced)
}

func TestUseCase_TimeOverlapBlocks(t *testing.T) {
	uc, m := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, request("valderrama", "2025-06-01T09:00:00"))
	require.NoError(t, err)

	req := request("sotogrande", "2025-06-01T12:30:00")
	req.AcknowledgeConflicts = true
	_, err = uc.Execute(ctx, req)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.ErrorIs(t, err, ErrConflict)
	assert.True(t, conflictErr.Blocking)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, domain.ConflictTimeOverlap, conflictErr.Conflicts[0].Type)
	assert.Equal(t, 1, m.counts[string(domain.ConflictTimeOverlap)])
}

func TestUseCase_SameCourseSameDayNeedsAcknowledge(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, request("valderrama", "2025-06-01T09:00:00"))
	require.NoError(t, err)

	req := request("valderrama", "2025-06-01T16:00:00")
	_, err = uc.Execute(ctx, req)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.False(t, conflictErr.Blocking)

	req.AcknowledgeConflicts = true
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Len(t, resp.Conflicts, 1)
	assert.Equal(t, 2, resp.Cart.ItemCount)
}

func TestUseCase_SameSlotReplaces(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, request("valderrama", "2025-06-01T09:00:00"))
	require.NoError(t, err)

	req := request("valderrama", "2025-06-01T09:00:00")
	req.Players = 4
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.True(t, resp.Replaced)
	assert.Empty(t, resp.Conflicts)
	assert.Equal(t, 1, resp.Cart.ItemCount)
	assert.Equal(t, 4, resp.Cart.Items[0].Players)
}

func TestUseCase_Validation(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"too many players", func(r *Request) { r.Players = 5 }},
		{"no players", func(r *Request) { r.Players = 0 }},
		{"bad time", func(r *Request) { r.Time = "tomorrow morning" }},
		{"date mismatch", func(r *Request) { r.Date = "2025-06-02" }},
		{"no package", func(r *Request) { r.Package.ID = "" }},
		{"bad session", func(r *Request) { r.SessionID = "a b" }},
		{"duplicate add-on", func(r *Request) { r.AddOns = append(r.AddOns, r.AddOns[0]) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request("valderrama", "2025-06-01T09:00:00")
			tt.mutate(req)
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_UnknownCourse(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Execute(context.Background(), request("nowhere", "2025-06-01T09:00:00"))
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUseCase_PricesComeFromProvider(t *testing.T) {
	uc, _ := newUseCase()

	req := request("valderrama", "2025-06-01T09:00:00")
	req.Package = domain.Package{ID: "gf18", Name: "Free round", Price: 0}
	req.AddOns = []domain.AddOnOption{{ID: "buggy", Price: 0, Unit: domain.UnitPerPlayer}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Green fee 18", resp.Item.Package.Name)
	assert.Equal(t, 80.0, resp.Item.Package.Price)
	require.Len(t, resp.Item.AddOns, 1)
	assert.Equal(t, domain.UnitPerBuggy, resp.Item.AddOns[0].Unit)
	assert.Equal(t, 320.0, resp.Item.TotalPrice)
}

func TestUseCase_RejectsIneligiblePackage(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	req := request("valderrama", "2030-06-01T16:00:00")
	req.Package = domain.Package{ID: "eb", Name: "Early Bird 18", Price: 0}

	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrPackageNotEligible)

	// До отсечки тот же пакет доступен по цене провайдера
	req.Time = "2030-06-01T08:00:00"
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 50.0, resp.Item.Package.Price)
	assert.Equal(t, 1, resp.Cart.ItemCount)
}

func TestUseCase_RejectsWhatProviderDoesNotOffer(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	req := request("valderrama", "2025-06-01T09:00:00")
	req.Package.ID = "vip"
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrPackageNotOffered)

	req = request("valderrama", "2025-06-01T09:00:00")
	req.AddOns = []domain.AddOnOption{{ID: "caddie"}}
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrPackageNotOffered)

	_, err = uc.Execute(ctx, request("valderrama", "2025-06-01T09:10:00"))
	assert.ErrorIs(t, err, ErrTeeTimeUnavailable)
}

func TestUseCase_SlotWithoutRoom(t *testing.T) {
	uc, _ := newUseCase(&stubProvider{providerType: domain.ProviderZest, spots: 2})

	_, err := uc.Execute(context.Background(), request("valderrama", "2025-06-01T09:00:00"))
	assert.ErrorIs(t, err, ErrTeeTimeUnavailable)
}

func TestUseCase_ProviderFailures(t *testing.T) {
	uc, _ := newUseCase(&stubProvider{providerType: domain.ProviderZest, err: errors.New("timeout")})
	ctx := context.Background()

	_, err := uc.Execute(ctx, request("valderrama", "2025-06-01T09:00:00"))
	assert.ErrorIs(t, err, ErrProviderUnavailable)

	// TeeOne не подключен
	_, err = uc.Execute(ctx, request("sotogrande", "2025-06-01T09:00:00"))
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
