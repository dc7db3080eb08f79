package update_cart_item

import (
	"context"
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
	"github.com/m04kA/SMC-TeeTimeService/pkg/ptr"
)

type stubCourses map[string]*domain.Course

func (s stubCourses) GetActive(_ context.Context, id string) (*domain.Course, error) {
	if c, ok := s[id]; ok {
		return c, nil
	}
	return nil, courses.ErrCourseNotFound
}

// stubProvider предлагает один старт в 09:00
type stubProvider struct{ spots int }

func (stubProvider) Type() domain.ProviderType { return domain.ProviderZest }

func (p stubProvider) FetchTeeTimes(_ context.Context, q teetimes.Query) ([]domain.TeeTime, error) {
	return []domain.TeeTime{{
		ID:             "v-9",
		CourseID:       q.Course.ID,
		Time:           q.Date.Add(9 * time.Hour),
		AvailableSpots: p.spots,
		Packages: []domain.RatePackage{
			{ID: "gf18", Name: "Green fee 18", Price: 80},
			{ID: "eb", Name: "Early Bird", Price: 50, IsEarlyBird: true},
			{ID: "tw", Name: "Twilight", Price: 45, IsTwilight: true},
		},
		AddOns: []domain.AddOnOption{
			{ID: "buggy", Name: "Buggy", Price: 40, Unit: domain.UnitPerBuggy},
			{ID: "lunch", Name: "Lunch", Price: 15, Unit: domain.UnitPerPlayer},
		},
	}}, nil
}

func seeded(t *testing.T, addOns []domain.AddOn) *UseCase {
	t.Helper()
	return seededWith(t, addOns, 4, stubCourses{
		"valderrama": {ID: "valderrama", Name: "Valderrama", ProviderType: domain.ProviderZest, Active: true},
	})
}

func seededWith(t *testing.T, addOns []domain.AddOn, spots int, activeCourses stubCourses) *UseCase {
	t.Helper()
	ctx := context.Background()
	svc := cart.NewService(cartStorage.NewMemoryStorage(), logger.Nop())

	err := svc.WithCart(ctx, "sess-1", func(store *cart.Store) error {
		return store.AddItem(ctx, domain.CartItem{
			ID:           "item-1",
			CourseID:     "valderrama",
			CourseName:   "Valderrama",
			Date:         "2025-06-01",
			Time:         "2025-06-01T09:00:00",
			Players:      2,
			Package:      domain.Package{ID: "gf18", Name: "Green fee 18", Price: 80},
			AddOns:       addOns,
			TotalPrice:   160,
			ProviderType: domain.ProviderZest,
		})
	})
	require.NoError(t, err)

	offerService := offers.NewService(
		[]offers.Provider{stubProvider{spots: spots}},
		eligibility.NewFilter(eligibility.DefaultRules(), logger.Nop()),
		logger.Nop(),
	)
	return NewUseCase(svc, activeCourses, offerService, logger.Nop())
}

func TestUseCase_ChangePlayersRecomputesTotal(t *testing.T) {
	uc := seeded(t, []domain.AddOn{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		ItemID:    "item-1",
		Players:   ptr.Ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Item.Players)
	assert.Equal(t, 320.0, resp.Item.TotalPrice)
	assert.Equal(t, 320.0, resp.Cart.TotalPrice)
	assert.Equal(t, "2025-06-01T09:00:00", resp.Item.Time)
}

func TestUseCase_ReplaceAddOnsAndPackageAtProviderPrices(t *testing.T) {
	uc := seeded(t, []domain.AddOn{{ID: "lunch", Name: "Lunch", Price: 15, TotalPrice: 30}})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		ItemID:    "item-1",
		Players:   ptr.Ptr(3),
		Package:   &domain.Package{ID: "eb", Name: "Early Bird", Price: 0},
		AddOns:    []domain.AddOnOption{{ID: "buggy", Price: 0}},
	})
	require.NoError(t, err)
	assert.Equal(t, "eb", resp.Item.Package.ID)
	assert.Equal(t, 50.0, resp.Item.Package.Price)
	require.Len(t, resp.Item.AddOns, 1)
	assert.Equal(t, 80.0, resp.Item.AddOns[0].TotalPrice)
	assert.Equal(t, 230.0, resp.Item.TotalPrice)
}

func TestUseCase_PlayersChangeRepricesStoredAddOns(t *testing.T) {
	uc := seeded(t, []domain.AddOn{{ID: "lunch", Name: "Lunch", Price: 15, TotalPrice: 30}})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		ItemID:    "item-1",
		Players:   ptr.Ptr(3),
	})
	require.NoError(t, err)
	require.Len(t, resp.Item.AddOns, 1)
	assert.Equal(t, 45.0, resp.Item.AddOns[0].TotalPrice)
	assert.Equal(t, 285.0, resp.Item.TotalPrice)
}

func TestUseCase_RejectsPackageNotEligibleForStart(t *testing.T) {
	uc := seeded(t, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID: "sess-1",
		ItemID:    "item-1",
		Package:   &domain.Package{ID: "tw", Price: 0},
	})
	assert.ErrorIs(t, err, ErrPackageNotEligible)

	_, err = uc.Execute(ctx, &Request{
		SessionID: "sess-1",
		ItemID:    "item-1",
		Package:   &domain.Package{ID: "vip"},
	})
	assert.ErrorIs(t, err, ErrPackageNotOffered)

	// Позиция не изменилась
	resp, err := uc.Execute(ctx, &Request{SessionID: "sess-1", ItemID: "item-1", Players: ptr.Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, "gf18", resp.Item.Package.ID)
	assert.Equal(t, 160.0, resp.Item.TotalPrice)
}

func TestUseCase_TeeTimeNoLongerAvailable(t *testing.T) {
	active := stubCourses{
		"valderrama": {ID: "valderrama", Name: "Valderrama", ProviderType: domain.ProviderZest, Active: true},
	}
	uc := seededWith(t, nil, 2, active)
	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", ItemID: "item-1", Players: ptr.Ptr(3)})
	assert.ErrorIs(t, err, ErrTeeTimeUnavailable)

	uc = seededWith(t, nil, 4, stubCourses{})
	_, err = uc.Execute(context.Background(), &Request{SessionID: "sess-1", ItemID: "item-1", Players: ptr.Ptr(3)})
	assert.ErrorIs(t, err, ErrTeeTimeUnavailable)
}

func TestUseCase_Errors(t *testing.T) {
	uc := seeded(t, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SessionID: "sess-1", ItemID: "missing", Players: ptr.Ptr(1)})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = uc.Execute(ctx, &Request{SessionID: "sess-1", ItemID: "item-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{SessionID: "sess-1", ItemID: "item-1", Players: ptr.Ptr(5)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{
		SessionID: "sess-1",
		ItemID:    "item-1",
		AddOns:    []domain.AddOnOption{{ID: "buggy"}, {ID: "buggy"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
