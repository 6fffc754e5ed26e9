package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
)

func newReportService(store *MockStore, gen services.TextGenerator) *services.ReportService {
	journal := services.NewJournalService(store)
	tasks := services.NewTaskService(store)
	ai := services.NewAIService(gen)
	return services.NewReportService(store, journal, tasks, ai)
}

func seedMarch(t *testing.T, store *MockStore) {
	store.seed(t, domain.KeyMoods, []domain.DayRecord{
		{Date: "2025-03-10", Mood: domain.MoodHappy},
		{Date: "2025-03-12", Mood: domain.MoodSad},
	})
	store.seed(t, domain.KeyTasks, []domain.TaskRecord{
		{Date: "2025-03-10", Completed: 2, Target: 3},
	})
}

func TestReportService_MonthlyReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: generates and caches on first request", func(t *testing.T) {
		store := NewMockStore()
		seedMarch(t, store)
		gen := &StubGenerator{responses: []string{"Un mes valiente."}}
		svc := newReportService(store, gen)

		report, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, "Un mes valiente.", report)
		assert.Equal(t, 1, gen.Calls())

		_, cached := store.raw(domain.ReportKey("Ana", 2025, 3))
		assert.True(t, cached)
	})

	t.Run("Success: unchanged data serves the cache without a gateway call", func(t *testing.T) {
		store := NewMockStore()
		seedMarch(t, store)
		gen := &StubGenerator{responses: []string{"Un mes valiente."}}
		svc := newReportService(store, gen)

		first, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)
		second, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, gen.Calls())
	})

	t.Run("Success: an edited mood invalidates the cache", func(t *testing.T) {
		store := NewMockStore()
		seedMarch(t, store)
		gen := &StubGenerator{responses: []string{"Primera versión.", "Segunda versión."}}
		svc := newReportService(store, gen)

		_, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)

		store.seed(t, domain.KeyMoods, []domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodCalm},
			{Date: "2025-03-12", Mood: domain.MoodSad},
		})

		report, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, "Segunda versión.", report)
		assert.Equal(t, 2, gen.Calls())
	})

	t.Run("Edge Case: a note edit does not invalidate the cache", func(t *testing.T) {
		store := NewMockStore()
		seedMarch(t, store)
		gen := &StubGenerator{responses: []string{"Única versión."}}
		svc := newReportService(store, gen)

		_, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)

		store.seed(t, domain.KeyMoods, []domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodHappy, Note: "nota nueva"},
			{Date: "2025-03-12", Mood: domain.MoodSad},
		})

		report, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, "Única versión.", report)
		assert.Equal(t, 1, gen.Calls())
	})

	t.Run("Edge Case: no mood records yields the no-data prompt", func(t *testing.T) {
		store := NewMockStore()
		gen := &StubGenerator{}
		svc := newReportService(store, gen)

		report, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, services.MsgNoMonthData, report)
		assert.Zero(t, gen.Calls())
	})

	t.Run("Fail: gateway failure returns the fallback and caches nothing", func(t *testing.T) {
		store := NewMockStore()
		seedMarch(t, store)
		gen := &StubGenerator{err: errors.New("unreachable")}
		svc := newReportService(store, gen)

		report, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, services.FallbackMonthly, report)

		_, cached := store.raw(domain.ReportKey("Ana", 2025, 3))
		assert.False(t, cached)

		// The next request retries the gateway.
		gen.err = nil
		gen.responses = []string{"Recuperado."}
		report, err = svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, "Recuperado.", report)
	})

	t.Run("Edge Case: reports for different users do not collide", func(t *testing.T) {
		store := NewMockStore()
		seedMarch(t, store)
		gen := &StubGenerator{responses: []string{"Para Ana.", "Para Luis."}}
		svc := newReportService(store, gen)

		reportA, err := svc.MonthlyReport(ctx, "Ana", 2025, 3)
		require.NoError(t, err)
		reportB, err := svc.MonthlyReport(ctx, "Luis", 2025, 3)
		require.NoError(t, err)

		assert.Equal(t, "Para Ana.", reportA)
		assert.Equal(t, "Para Luis.", reportB)
	})
}

func TestDataSignature(t *testing.T) {
	moods := []domain.DayRecord{
		{Date: "2025-03-10", Mood: domain.MoodHappy},
		{Date: "2025-03-12", Mood: domain.MoodSad},
	}
	tasks := []domain.TaskRecord{
		{Date: "2025-03-10", Completed: 2, Target: 3},
	}

	t.Run("Success: stable format over dates, moods and completed counts", func(t *testing.T) {
		signature := services.DataSignature(moods, tasks)
		assert.Equal(t, "v1_2025-03-10:HAPPY|2025-03-12:SAD__2025-03-10:2", signature)
	})

	t.Run("Edge Case: empty inputs still produce a versioned signature", func(t *testing.T) {
		assert.Equal(t, "v1___", services.DataSignature(nil, nil))
	})

	t.Run("Edge Case: target changes do not affect the signature", func(t *testing.T) {
		before := services.DataSignature(moods, tasks)
		tasks[0].Target = 10
		assert.Equal(t, before, services.DataSignature(moods, tasks))
	})
}
