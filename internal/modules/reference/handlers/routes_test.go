package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/database"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/reference"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/pkg/logger"
)

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "reference-handlers-test-*.db")
	require.NoError(t, err)
	tmpPath := tmpFile.Name()
	require.NoError(t, tmpFile.Close())

	db, err := database.New(database.Config{
		Path:    tmpPath,
		Profile: database.ProfileStandard,
		Name:    "config",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(tmpPath)
	})

	require.NoError(t, reference.InitSchema(db.Conn()))

	log := logger.New(logger.Config{Level: "error", Pretty: false})
	repo := reference.NewRepository(db.Conn(), log)
	require.NoError(t, repo.Seed())

	router := chi.NewRouter()
	NewHandler(reference.NewService(repo, log), repo, log).RegisterRoutes(router)
	return router
}

func TestHandleGetProfiles(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/reference/profiles", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response struct {
		Profiles map[string]struct {
			TargetReturn float64 `json:"target_return"`
		} `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Profiles, 3)
	assert.InDelta(t, 0.08, response.Profiles["medium"].TargetReturn, 1e-12)
}

func TestHandleGetAssetStats(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/reference/asset-stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response struct {
		AssetStats map[string]struct {
			ExpectedReturn float64 `json:"expected_return"`
			Risk           float64 `json:"risk"`
		} `json:"asset_stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.AssetStats, 4)
	assert.InDelta(t, 0.16, response.AssetStats["stocks"].Risk, 1e-12)
}

func TestRiskFreeRate_RoundTrip(t *testing.T) {
	router := setupRouter(t)

	// Default before any tuning
	req := httptest.NewRequest(http.MethodGet, "/reference/risk-free-rate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rate map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rate))
	assert.InDelta(t, 0.02, rate["risk_free_rate"], 1e-12)

	// Tune it
	body, _ := json.Marshal(map[string]float64{"risk_free_rate": 0.03})
	req = httptest.NewRequest(http.MethodPut, "/reference/risk-free-rate", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Read it back
	req = httptest.NewRequest(http.MethodGet, "/reference/risk-free-rate", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rate))
	assert.InDelta(t, 0.03, rate["risk_free_rate"], 1e-12)
}

func TestSetRiskFreeRate_Invalid(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(map[string]float64{"risk_free_rate": -0.01})
	req := httptest.NewRequest(http.MethodPut, "/reference/risk-free-rate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
