package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "нет")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusNotFound, Message: "нет"}, body)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Players int `json:"players"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"players":3,"extra":true}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, 3, dst.Players)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"players":"x"}`))
	assert.Error(t, DecodeJSON(r, &dst))
}
