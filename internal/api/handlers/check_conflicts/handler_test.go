package check_conflicts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	cartStorage "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/cart"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	service := cart.NewService(cartStorage.NewMemoryStorage(), logger.Nop())
	err := service.WithCart(context.Background(), "sess-1", func(store *cart.Store) error {
		return store.AddItem(context.Background(), domain.CartItem{
			ID: "i1", CourseID: "c1", Date: "2030-06-01", Time: "2030-06-01T09:00:00Z", Players: 2,
		})
	})
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/carts/{sessionId}/conflicts", NewHandler(service, logger.Nop()).Handle)
	return r
}

func get(r *mux.Router, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_BlockingOverlap(t *testing.T) {
	rec := get(newRouter(t), "/carts/sess-1/conflicts?courseId=c2&time=2030-06-01T11:00:00Z")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConflictsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.HasConflict)
	assert.True(t, resp.HasBlocking)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, domain.ConflictTimeOverlap, resp.Conflicts[0].Type)
}

func TestHandler_NoConflictOtherDay(t *testing.T) {
	rec := get(newRouter(t), "/carts/sess-1/conflicts?courseId=c1&date=2030-06-02&time=2030-06-02T09:00:00Z")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"conflicts":[],"hasConflict":false,"hasBlocking":false}`, rec.Body.String())
}

func TestHandler_MissingParams(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(newRouter(t), "/carts/sess-1/conflicts?courseId=c1").Code)
}
