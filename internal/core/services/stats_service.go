package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// StatsService derives the analytics view (mood trend, factor groupings,
// medication adherence) from the record stores. All computation is pure;
// the service only gathers inputs.
type StatsService struct {
	journal *JournalService
	tasks   *TaskService
	meds    *MedicationService
}

func NewStatsService(journal *JournalService, tasks *TaskService, meds *MedicationService) *StatsService {
	return &StatsService{
		journal: journal,
		tasks:   tasks,
		meds:    meds,
	}
}

func (s *StatsService) Get(ctx context.Context, input domain.StatsInput) (*domain.Statistics, error) {
	if !domain.ValidTimeFrame(input.TimeFrame) {
		return nil, domain.ErrInvalidTimeFrame
	}

	moods, err := s.journal.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	meds, err := s.meds.List(ctx)
	if err != nil {
		return nil, err
	}

	filteredMoods := make([]domain.DayRecord, 0, len(moods))
	for _, r := range moods {
		if InTimeFrame(r.Date, input.TimeFrame, input.Date) {
			filteredMoods = append(filteredMoods, r)
		}
	}

	totalCompleted := 0
	for _, t := range tasks {
		if InTimeFrame(t.Date, input.TimeFrame, input.Date) {
			totalCompleted += t.Completed
		}
	}

	progress := make([]domain.MedicationProgress, 0, len(meds))
	for _, m := range meds {
		progress = append(progress, AdherenceFor(m, input.TimeFrame, input.Date))
	}

	return &domain.Statistics{
		TimeFrame:      input.TimeFrame,
		ReferenceDate:  input.Date.Format("2006-01-02"),
		RecordedDays:   len(filteredMoods),
		TotalCompleted: totalCompleted,
		Trend:          MoodTrendSeries(filteredMoods),
		Factors:        GroupFactors(filteredMoods),
		Medications:    progress,
	}, nil
}

// InTimeFrame reports whether a YYYY-MM-DD date string falls inside the
// window around ref. Matching is lexical prefix comparison on the date
// string, deliberately avoiding any time-zone re-interpretation of
// stored dates.
func InTimeFrame(dateStr string, tf domain.TimeFrame, ref time.Time) bool {
	// Tolerate full timestamps in hand-imported data.
	if i := strings.IndexByte(dateStr, 'T'); i >= 0 {
		dateStr = dateStr[:i]
	}

	switch tf {
	case domain.TimeFrameDay:
		return dateStr == ref.Format("2006-01-02")
	case domain.TimeFrameMonth:
		return strings.HasPrefix(dateStr, ref.Format("2006-01"))
	case domain.TimeFrameYear:
		return strings.HasPrefix(dateStr, ref.Format("2006"))
	default:
		return false
	}
}

// moodY maps each mood to its fixed ordinal row on the 0-100 chart plane.
// Lower Y is "better": Happy sits near the top, Angry at the bottom.
func moodY(mood domain.MoodType) float64 {
	switch mood {
	case domain.MoodHappy:
		return 10
	case domain.MoodCalm:
		return 26
	case domain.MoodHormonal:
		return 42
	case domain.MoodSad:
		return 58
	case domain.MoodAnxious:
		return 74
	case domain.MoodAngry:
		return 90
	default:
		return 50
	}
}

// MoodTrendSeries builds the smoothed mood-flow chart from the records in
// the window. Activity-only records (no mood) are skipped. Points are
// sorted ascending by date and spread across the 5-95 X band; fewer than
// two points yield the empty state.
func MoodTrendSeries(records []domain.DayRecord) domain.MoodTrend {
	withMood := make([]domain.DayRecord, 0, len(records))
	for _, r := range records {
		if r.HasMood() {
			withMood = append(withMood, r)
		}
	}

	sort.Slice(withMood, func(i, j int) bool {
		return withMood[i].Date < withMood[j].Date
	})

	points := make([]domain.TrendPoint, len(withMood))
	span := float64(len(withMood) - 1)
	if span < 1 {
		span = 1
	}
	for i, r := range withMood {
		points[i] = domain.TrendPoint{
			X:    5 + (float64(i)/span)*90,
			Y:    moodY(r.Mood),
			Date: r.Date,
			Mood: r.Mood,
		}
	}

	trend := domain.MoodTrend{Points: points}
	if len(points) < 2 {
		return trend
	}

	trend.HasEnoughData = true
	trend.LinePath = trendPath(points, false)
	trend.AreaPath = trendPath(points, true)
	return trend
}

// trendPath converts the point series into an SVG path using Catmull-Rom
// tangents rewritten as cubic Bezier segments. closeArea appends the
// baseline edges for the gradient fill variant.
func trendPath(points []domain.TrendPoint, closeArea bool) string {
	if len(points) < 2 {
		return ""
	}

	at := func(i int) domain.TrendPoint {
		if i < 0 {
			i = 0
		}
		if i > len(points)-1 {
			i = len(points) - 1
		}
		return points[i]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %s,%s", coord(points[0].X), coord(points[0].Y))

	for i := 0; i < len(points)-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)

		cp1x := p1.X + (p2.X-p0.X)/6
		cp1y := p1.Y + (p2.Y-p0.Y)/6
		cp2x := p2.X - (p3.X-p1.X)/6
		cp2y := p2.Y - (p3.Y-p1.Y)/6

		fmt.Fprintf(&b, " C %s,%s %s,%s %s,%s",
			coord(cp1x), coord(cp1y),
			coord(cp2x), coord(cp2y),
			coord(p2.X), coord(p2.Y))
	}

	if closeArea {
		fmt.Fprintf(&b, " L %s,100 L %s,100 Z",
			coord(points[len(points)-1].X), coord(points[0].X))
	}

	return b.String()
}

func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// GroupFactors counts factor tags per co-occurring mood, most frequent
// first within each group. Groups follow the fixed chart mood order.
func GroupFactors(records []domain.DayRecord) []domain.FactorGroup {
	counts := map[domain.MoodType]map[string]int{}
	for _, r := range records {
		if !r.HasMood() || len(r.Factors) == 0 {
			continue
		}
		if counts[r.Mood] == nil {
			counts[r.Mood] = map[string]int{}
		}
		for _, f := range r.Factors {
			counts[r.Mood][f]++
		}
	}

	moodOrder := []domain.MoodType{
		domain.MoodHappy, domain.MoodCalm, domain.MoodHormonal,
		domain.MoodSad, domain.MoodAnxious, domain.MoodAngry,
	}

	groups := make([]domain.FactorGroup, 0, len(counts))
	for _, mood := range moodOrder {
		byName, ok := counts[mood]
		if !ok {
			continue
		}

		factors := make([]domain.FactorCount, 0, len(byName))
		for name, n := range byName {
			factors = append(factors, domain.FactorCount{Name: name, Count: n})
		}
		sort.Slice(factors, func(i, j int) bool {
			if factors[i].Count != factors[j].Count {
				return factors[i].Count > factors[j].Count
			}
			return factors[i].Name < factors[j].Name
		})

		groups = append(groups, domain.FactorGroup{Mood: mood, Factors: factors})
	}
	return groups
}

// AdherenceFor computes taken vs. expected units for one medication over
// the window. The WEEKLY expectations are flat approximations: 4 weeks per
// month, 52 per year.
func AdherenceFor(med domain.Medication, tf domain.TimeFrame, ref time.Time) domain.MedicationProgress {
	taken := 0
	for date, units := range med.History {
		if InTimeFrame(date, tf, ref) {
			taken += units
		}
	}

	dosage := float64(med.DosageCount)
	var expected float64
	switch tf {
	case domain.TimeFrameDay:
		if med.Frequency == domain.FrequencyDaily {
			expected = dosage
		} else {
			expected = dosage / 7
		}
	case domain.TimeFrameMonth:
		if med.Frequency == domain.FrequencyDaily {
			expected = dosage * float64(daysInMonth(ref))
		} else {
			expected = dosage * 4
		}
	case domain.TimeFrameYear:
		if med.Frequency == domain.FrequencyDaily {
			expected = dosage * 365
		} else {
			expected = dosage * 52
		}
	}

	expectedUnits := int(math.Round(expected))
	if expectedUnits < 1 {
		expectedUnits = 1
	}

	pct := math.Min(float64(taken)/float64(expectedUnits)*100, 100)

	return domain.MedicationProgress{
		MedicationID: med.ID,
		Name:         med.Name,
		Taken:        taken,
		Expected:     expectedUnits,
		Pct:          pct,
		IsComplete:   taken >= expectedUnits,
	}
}

func daysInMonth(ref time.Time) int {
	firstOfNext := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
