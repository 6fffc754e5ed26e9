package services

import (
	"context"
	"sync"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// JournalService owns the mood-record collection. Every mutation rebuilds
// the collection (filter-out-then-append) and writes it through to the
// store before returning.
type JournalService struct {
	store domain.BlobStore

	mu sync.Mutex
}

func NewJournalService(store domain.BlobStore) *JournalService {
	return &JournalService{store: store}
}

type UpsertMoodInput struct {
	Date             string
	Mood             domain.MoodType
	SpecificEmotions []string
	Factors          []string
	Note             string
	Therapy          bool
}

// List returns every day record in stored order, never nil.
func (s *JournalService) List(ctx context.Context) ([]domain.DayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadCollection[[]domain.DayRecord](ctx, s.store, domain.KeyMoods)
	if records == nil {
		records = []domain.DayRecord{}
	}
	return records, err
}

// Get returns the record for one date, or domain.ErrDayRecordNotFound.
func (s *JournalService) Get(ctx context.Context, date string) (*domain.DayRecord, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Date == date {
			return &records[i], nil
		}
	}
	return nil, domain.ErrDayRecordNotFound
}

// UpsertMood replaces (or creates) the day record for input.Date. A prior
// activities list on that date survives the replacement: selecting a mood
// after logging activities must not wipe them.
func (s *JournalService) UpsertMood(ctx context.Context, input UpsertMoodInput) (*domain.DayRecord, error) {
	if !domain.ValidDate(input.Date) {
		return nil, domain.ErrInvalidDate
	}
	if !domain.ValidMood(input.Mood) {
		return nil, domain.ErrInvalidMood
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadCollection[[]domain.DayRecord](ctx, s.store, domain.KeyMoods)
	if err != nil {
		return nil, err
	}

	var activities []string
	others := make([]domain.DayRecord, 0, len(records))
	for _, r := range records {
		if r.Date == input.Date {
			activities = r.Activities
			continue
		}
		others = append(others, r)
	}

	record := domain.DayRecord{
		Date:             input.Date,
		Mood:             input.Mood,
		SpecificEmotions: input.SpecificEmotions,
		Factors:          input.Factors,
		Note:             input.Note,
		Therapy:          input.Therapy,
		Activities:       activities,
	}
	records = append(others, record)

	if err := saveCollection(ctx, s.store, domain.KeyMoods, records); err != nil {
		return nil, err
	}
	return &record, nil
}

// AppendActivities merges new activities into the record for date,
// creating a mood-less record when none exists yet.
func (s *JournalService) AppendActivities(ctx context.Context, date string, activities []string) (*domain.DayRecord, error) {
	if !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}
	if len(activities) == 0 {
		return nil, domain.ErrNoActivities
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadCollection[[]domain.DayRecord](ctx, s.store, domain.KeyMoods)
	if err != nil {
		return nil, err
	}

	record := domain.DayRecord{Date: date}
	others := make([]domain.DayRecord, 0, len(records))
	for _, r := range records {
		if r.Date == date {
			record = r
			continue
		}
		others = append(others, r)
	}
	record.Activities = append(record.Activities, activities...)
	records = append(others, record)

	if err := saveCollection(ctx, s.store, domain.KeyMoods, records); err != nil {
		return nil, err
	}
	return &record, nil
}
