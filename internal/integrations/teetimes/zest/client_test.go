package zest

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

const teeTimesJSON = `{
  "data": [
    {
      "id": "t-900",
      "teeTime": "2025-06-01T09:00:00",
      "holes": 18,
      "availablePlayers": 4,
      "rates": [
        {"rateId": "gf", "name": "Green Fee", "price": 80, "buggyIncluded": false},
        {"rateId": "eb", "name": "Early Bird", "price": 55, "earlyBird": true, "timeRestriction": "07:00-10:00"},
        {"rateId": "gfb", "name": "Green Fee + Buggy", "price": 100, "buggyIncluded": true, "lunchIncluded": true}
      ],
      "extras": [
        {"id": "buggy", "name": "Buggy", "price": 40, "per": "buggy"},
        {"id": "balls", "name": "Range balls", "price": 5, "per": "player"}
      ]
    },
    {"id": "broken", "teeTime": "not-a-time", "holes": 18, "availablePlayers": 4}
  ]
}`

func TestClient_FetchTeeTimes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/teetimes", r.URL.Path)
		assert.Equal(t, "fac-1", r.URL.Query().Get("facilityId"))
		assert.Equal(t, "2025-06-01", r.URL.Query().Get("date"))
		assert.Equal(t, "2", r.URL.Query().Get("players"))
		assert.Equal(t, "Bearer zest-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(teeTimesJSON))
	}))
	defer srv.Close()

	var m *metrics.Metrics
	client := NewClient(teetimes.Config{BaseURL: srv.URL, APIKey: "zest-key", Timeout: time.Second}, m, logger.Nop())

	course := domain.Course{ID: "valderrama", Name: "Real Club Valderrama", ProviderType: domain.ProviderZest, ProviderCourseID: "fac-1"}
	result, err := client.FetchTeeTimes(context.Background(), teetimes.Query{
		Course:  course,
		Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Players: 2,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)

	slot := result[0]
	assert.Equal(t, "zest:valderrama:t-900", slot.ID)
	assert.Equal(t, "Real Club Valderrama", slot.CourseName)
	assert.Equal(t, 9, slot.Time.Hour())
	assert.Equal(t, 4, slot.AvailableSpots)
	require.Len(t, slot.Packages, 3)
	assert.True(t, slot.Packages[1].IsEarlyBird)
	assert.Equal(t, "07:00-10:00", slot.Packages[1].TimeRestriction)
	assert.True(t, slot.Packages[2].IncludesLunch)
	require.Len(t, slot.AddOns, 2)
	assert.Equal(t, domain.UnitPerBuggy, slot.AddOns[0].Unit)
	assert.Equal(t, domain.UnitPerPlayer, slot.AddOns[1].Unit)
}

func TestClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(teetimes.Config{BaseURL: srv.URL, Timeout: time.Second}, (*metrics.Metrics)(nil), logger.Nop())
	_, err := client.FetchTeeTimes(context.Background(), teetimes.Query{
		Course:  domain.Course{ID: "c1", ProviderCourseID: "fac-1"},
		Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Players: 1,
	})
	assert.ErrorIs(t, err, teetimes.ErrUnavailable)
}
