package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MrNetsudo/NetAssets/internal/classify"
)

func newTestMux() *http.ServeMux {
	return newServeMux(classify.NewEngine(zap.NewNop(), 1))
}

func TestServeHealth(t *testing.T) {
	mux := newTestMux()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeAnalyze(t *testing.T) {
	mux := newTestMux()

	body := `{"sheet_name":"Texas","device_name":"txdca3-swleaf01","system_location":"Austin, TX"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result classify.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Location.Validated)
	assert.Equal(t, "Texas", result.Location.State)
	assert.Equal(t, "DCA3", result.Parse.SiteType)
}

func TestServeAnalyze_BadRequest(t *testing.T) {
	mux := newTestMux()

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty device", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
