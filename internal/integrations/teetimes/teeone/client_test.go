package teeone

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
	"github.com/m04kA/SMC-TeeTimeService/pkg/metrics"
)

func TestClient_FetchTeeTimes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clubs/club-42/tee-sheet", r.URL.Path)
		assert.Equal(t, "2025-06-01", r.URL.Query().Get("date"))
		assert.Equal(t, "t1-key", r.Header.Get("X-Api-Key"))
		_, _ = w.Write([]byte(`{
			"date": "2025-06-01",
			"times": [
				{"time": "08:30", "holes": 18, "free": 3,
				 "tariffs": [
					{"code": "GF18", "description": "Green fee 18", "amount": 75},
					{"code": "MADR", "description": "Madrugador", "amount": 50, "restriction": "07:00-10:00", "includes": ["Buggy"]}
				 ],
				 "supplements": [{"code": "LUN", "description": "Lunch", "amount": 20, "basis": "player"}]},
				{"time": "25:99", "holes": 18, "free": 4}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(teetimes.Config{BaseURL: srv.URL, APIKey: "t1-key", Timeout: time.Second}, (*metrics.Metrics)(nil), logger.Nop())

	course := domain.Course{ID: "sotogrande", Name: "Sotogrande", ProviderCourseID: "club-42"}
	result, err := client.FetchTeeTimes(context.Background(), teetimes.Query{
		Course:  course,
		Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Players: 2,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)

	slot := result[0]
	assert.Equal(t, time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC), slot.Time)
	assert.Equal(t, "teeone:sotogrande:2025-06-01T08:30", slot.ID)
	assert.Equal(t, 3, slot.AvailableSpots)
	require.Len(t, slot.Packages, 2)
	assert.Equal(t, "07:00-10:00", slot.Packages[1].TimeRestriction)
	assert.True(t, slot.Packages[1].IncludesBuggy)
	assert.False(t, slot.Packages[0].IncludesBuggy)
	require.Len(t, slot.AddOns, 1)
	assert.Equal(t, domain.UnitPerPlayer, slot.AddOns[0].Unit)
}

func TestClient_UnknownClub(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(teetimes.Config{BaseURL: srv.URL, Timeout: time.Second}, (*metrics.Metrics)(nil), logger.Nop())
	_, err := client.FetchTeeTimes(context.Background(), teetimes.Query{
		Course: domain.Course{ID: "x", ProviderCourseID: "missing"},
		Date:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, teetimes.ErrCourseNotFound)
}
