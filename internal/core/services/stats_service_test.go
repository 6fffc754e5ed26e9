package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
)

func TestInTimeFrame(t *testing.T) {
	ref := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		tf   domain.TimeFrame
		want bool
	}{
		{"same day matches DAY", "2025-03-15", domain.TimeFrameDay, true},
		{"other day misses DAY", "2025-03-14", domain.TimeFrameDay, false},
		{"same month matches MONTH", "2025-03-01", domain.TimeFrameMonth, true},
		{"next month misses MONTH", "2025-04-01", domain.TimeFrameMonth, false},
		{"same year matches YEAR", "2025-12-31", domain.TimeFrameYear, true},
		{"prior year misses YEAR", "2024-03-15", domain.TimeFrameYear, false},
		{"timestamp suffix is tolerated", "2025-03-15T09:30:00Z", domain.TimeFrameDay, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, services.InTimeFrame(tc.date, tc.tf, ref))
		})
	}
}

func TestMoodTrendSeries(t *testing.T) {
	t.Run("Success: two moods spread across the 5-95 band", func(t *testing.T) {
		trend := services.MoodTrendSeries([]domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodHappy},
			{Date: "2025-03-12", Mood: domain.MoodSad},
		})

		require.True(t, trend.HasEnoughData)
		require.Len(t, trend.Points, 2)

		assert.InDelta(t, 5, trend.Points[0].X, 0.001)
		assert.InDelta(t, 10, trend.Points[0].Y, 0.001)
		assert.InDelta(t, 95, trend.Points[1].X, 0.001)
		assert.InDelta(t, 58, trend.Points[1].Y, 0.001)

		assert.True(t, strings.HasPrefix(trend.LinePath, "M 5.00,10.00 C "))
		assert.True(t, strings.HasSuffix(trend.AreaPath, " L 95.00,100 L 5.00,100 Z"))
	})

	t.Run("Success: points are sorted by date regardless of input order", func(t *testing.T) {
		trend := services.MoodTrendSeries([]domain.DayRecord{
			{Date: "2025-03-12", Mood: domain.MoodSad},
			{Date: "2025-03-10", Mood: domain.MoodHappy},
			{Date: "2025-03-11", Mood: domain.MoodCalm},
		})

		require.Len(t, trend.Points, 3)
		assert.Equal(t, "2025-03-10", trend.Points[0].Date)
		assert.Equal(t, "2025-03-11", trend.Points[1].Date)
		assert.Equal(t, "2025-03-12", trend.Points[2].Date)

		assert.InDelta(t, 5, trend.Points[0].X, 0.001)
		assert.InDelta(t, 50, trend.Points[1].X, 0.001)
		assert.InDelta(t, 95, trend.Points[2].X, 0.001)
	})

	t.Run("Edge Case: a single mood is not enough for a line", func(t *testing.T) {
		trend := services.MoodTrendSeries([]domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodHappy},
		})

		assert.False(t, trend.HasEnoughData)
		assert.Empty(t, trend.LinePath)
		assert.Empty(t, trend.AreaPath)
	})

	t.Run("Edge Case: activity-only records are skipped", func(t *testing.T) {
		trend := services.MoodTrendSeries([]domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodHappy},
			{Date: "2025-03-11", Activities: []string{"Hacerte un té"}},
			{Date: "2025-03-12", Mood: domain.MoodCalm},
		})

		require.Len(t, trend.Points, 2)
		assert.Equal(t, "2025-03-10", trend.Points[0].Date)
		assert.Equal(t, "2025-03-12", trend.Points[1].Date)
	})
}

func TestGroupFactors(t *testing.T) {
	t.Run("Success: counts per mood, most frequent first", func(t *testing.T) {
		groups := services.GroupFactors([]domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodSad, Factors: []string{"Trabajo", "Sueño"}},
			{Date: "2025-03-11", Mood: domain.MoodSad, Factors: []string{"Trabajo"}},
			{Date: "2025-03-12", Mood: domain.MoodHappy, Factors: []string{"Ejercicio"}},
		})

		require.Len(t, groups, 2)

		// Fixed chart order puts Happy before Sad.
		assert.Equal(t, domain.MoodHappy, groups[0].Mood)
		assert.Equal(t, domain.MoodSad, groups[1].Mood)

		require.Len(t, groups[1].Factors, 2)
		assert.Equal(t, domain.FactorCount{Name: "Trabajo", Count: 2}, groups[1].Factors[0])
		assert.Equal(t, domain.FactorCount{Name: "Sueño", Count: 1}, groups[1].Factors[1])
	})

	t.Run("Edge Case: ties break alphabetically", func(t *testing.T) {
		groups := services.GroupFactors([]domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodAnxious, Factors: []string{"Café", "Agenda"}},
		})

		require.Len(t, groups, 1)
		require.Len(t, groups[0].Factors, 2)
		assert.Equal(t, "Agenda", groups[0].Factors[0].Name)
		assert.Equal(t, "Café", groups[0].Factors[1].Name)
	})

	t.Run("Edge Case: no factors yields no groups", func(t *testing.T) {
		groups := services.GroupFactors([]domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodHappy},
		})
		assert.Empty(t, groups)
	})
}

func TestAdherenceFor(t *testing.T) {
	ref := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Success: daily medication over a month", func(t *testing.T) {
		med := domain.Medication{
			ID: "med-1", Name: "Sertralina",
			Frequency: domain.FrequencyDaily, DosageCount: 2,
			History: map[string]int{},
		}
		for day := 1; day <= 20; day++ {
			med.History[time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")] = 2
		}

		progress := services.AdherenceFor(med, domain.TimeFrameMonth, ref)

		assert.Equal(t, 40, progress.Taken)
		assert.Equal(t, 62, progress.Expected) // 2 a day across 31 days
		assert.InDelta(t, 64.516, progress.Pct, 0.01)
		assert.False(t, progress.IsComplete)
	})

	t.Run("Success: weekly medication uses flat approximations", func(t *testing.T) {
		med := domain.Medication{
			ID: "med-2", Name: "Inyección",
			Frequency: domain.FrequencyWeekly, DosageCount: 1,
			History: map[string]int{"2025-03-03": 1, "2025-03-10": 1},
		}

		progress := services.AdherenceFor(med, domain.TimeFrameMonth, ref)
		assert.Equal(t, 4, progress.Expected)
		assert.InDelta(t, 50, progress.Pct, 0.001)

		progress = services.AdherenceFor(med, domain.TimeFrameYear, ref)
		assert.Equal(t, 52, progress.Expected)
	})

	t.Run("Edge Case: weekly DAY expectation floors at one unit", func(t *testing.T) {
		med := domain.Medication{
			ID: "med-3", Name: "Inyección",
			Frequency: domain.FrequencyWeekly, DosageCount: 1,
			History: map[string]int{"2025-03-15": 1},
		}

		progress := services.AdherenceFor(med, domain.TimeFrameDay, ref)
		assert.Equal(t, 1, progress.Expected)
		assert.InDelta(t, 100, progress.Pct, 0.001)
		assert.True(t, progress.IsComplete)
	})

	t.Run("Edge Case: overtaking caps the percentage at 100", func(t *testing.T) {
		med := domain.Medication{
			ID: "med-4", Name: "Sertralina",
			Frequency: domain.FrequencyDaily, DosageCount: 1,
			History: map[string]int{"2025-03-15": 3},
		}

		progress := services.AdherenceFor(med, domain.TimeFrameDay, ref)
		assert.Equal(t, 3, progress.Taken)
		assert.Equal(t, 1, progress.Expected)
		assert.InDelta(t, 100, progress.Pct, 0.001)
	})
}

func TestStatsService_Get(t *testing.T) {
	ctx := context.Background()

	newStatsService := func(store *MockStore) *services.StatsService {
		journal := services.NewJournalService(store)
		tasks := services.NewTaskService(store)
		meds := services.NewMedicationService(store)
		return services.NewStatsService(journal, tasks, meds)
	}

	t.Run("Success: aggregates only records inside the window", func(t *testing.T) {
		store := NewMockStore()
		store.seed(t, domain.KeyMoods, []domain.DayRecord{
			{Date: "2025-03-10", Mood: domain.MoodHappy, Factors: []string{"Ejercicio"}},
			{Date: "2025-03-12", Mood: domain.MoodSad},
			{Date: "2025-04-01", Mood: domain.MoodCalm},
		})
		store.seed(t, domain.KeyTasks, []domain.TaskRecord{
			{Date: "2025-03-10", Completed: 2, Target: 3},
			{Date: "2025-04-01", Completed: 5, Target: 5},
		})

		stats, err := newStatsService(store).Get(ctx, domain.StatsInput{
			TimeFrame: domain.TimeFrameMonth,
			Date:      time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		assert.Equal(t, 2, stats.RecordedDays)
		assert.Equal(t, 2, stats.TotalCompleted)
		assert.True(t, stats.Trend.HasEnoughData)
		require.Len(t, stats.Factors, 1)
		assert.Equal(t, domain.MoodHappy, stats.Factors[0].Mood)
	})

	t.Run("Fail: unknown time frame is rejected", func(t *testing.T) {
		store := NewMockStore()

		_, err := newStatsService(store).Get(ctx, domain.StatsInput{
			TimeFrame: "WEEK",
			Date:      time.Now(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTimeFrame)
	})
}
