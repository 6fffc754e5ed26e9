package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/lumina-app/lumina-engine/internal/adapters/handler/http"
	"github.com/lumina-app/lumina-engine/internal/adapters/repository"
	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
)

func setupStatsRouter(gen services.TextGenerator) (*gin.Engine, *services.JournalService, *services.TaskService) {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryBlobStore()
	journal := services.NewJournalService(store)
	tasks := services.NewTaskService(store)
	meds := services.NewMedicationService(store)
	settings := services.NewSettingsService(store)

	statsService := services.NewStatsService(journal, tasks, meds)
	aiService := services.NewAIService(gen)
	reportService := services.NewReportService(store, journal, tasks, aiService)

	handler := adapterHTTP.NewStatsHandler(statsService, reportService, settings)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return router, journal, tasks
}

func TestGetStats(t *testing.T) {
	t.Run("Success: returns analytics for the requested window", func(t *testing.T) {
		router, journal, _ := setupStatsRouter(nil)

		ctx := context.Background()
		_, err := journal.UpsertMood(ctx, services.UpsertMoodInput{Date: "2025-03-10", Mood: domain.MoodHappy})
		require.NoError(t, err)
		_, err = journal.UpsertMood(ctx, services.UpsertMoodInput{Date: "2025-03-12", Mood: domain.MoodSad})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats?timeframe=MONTH&date=2025-03-15", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var stats domain.Statistics
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, domain.TimeFrameMonth, stats.TimeFrame)
		assert.Equal(t, 2, stats.RecordedDays)
		assert.True(t, stats.Trend.HasEnoughData)
	})

	t.Run("Fail: unknown timeframe yields 400", func(t *testing.T) {
		router, _, _ := setupStatsRouter(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats?timeframe=WEEK", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: malformed date yields 400", func(t *testing.T) {
		router, _, _ := setupStatsRouter(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats?date=15-03-2025", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMonthlyReport(t *testing.T) {
	t.Run("Success: empty month returns the no-data prompt", func(t *testing.T) {
		router, _, _ := setupStatsRouter(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reports/monthly?year=2025&month=3", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Registra tu ánimo")
	})

	t.Run("Success: generated report is served for a month with data", func(t *testing.T) {
		gen := &stubGenerator{response: "Un mes valiente."}
		router, journal, _ := setupStatsRouter(gen)

		ctx := context.Background()
		_, err := journal.UpsertMood(ctx, services.UpsertMoodInput{Date: "2025-03-10", Mood: domain.MoodHappy})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reports/monthly?year=2025&month=3", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"report": "Un mes valiente."}`, w.Body.String())
	})

	t.Run("Fail: out-of-range month yields 400", func(t *testing.T) {
		router, _, _ := setupStatsRouter(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reports/monthly?year=2025&month=13", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: non-numeric year yields 400", func(t *testing.T) {
		router, _, _ := setupStatsRouter(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reports/monthly?year=now", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
