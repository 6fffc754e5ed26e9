package services

import (
	"context"
	"sync"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// TaskService owns the task-record collection (daily intention vs. reality).
type TaskService struct {
	store domain.BlobStore

	mu sync.Mutex
}

func NewTaskService(store domain.BlobStore) *TaskService {
	return &TaskService{store: store}
}

type UpsertTaskInput struct {
	Date      string
	Completed int
	Target    int

	// Message is the cached AI encouragement. Empty means "retain whatever
	// the previous record had", so a plain progress update does not clobber
	// an already-generated message.
	Message string
}

func (s *TaskService) List(ctx context.Context) ([]domain.TaskRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadCollection[[]domain.TaskRecord](ctx, s.store, domain.KeyTasks)
	if records == nil {
		records = []domain.TaskRecord{}
	}
	return records, err
}

func (s *TaskService) Get(ctx context.Context, date string) (*domain.TaskRecord, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Date == date {
			return &records[i], nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// Upsert replaces the task record for input.Date.
func (s *TaskService) Upsert(ctx context.Context, input UpsertTaskInput) (*domain.TaskRecord, error) {
	record := domain.TaskRecord{
		Date:      input.Date,
		Completed: input.Completed,
		Target:    input.Target,
		Message:   input.Message,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadCollection[[]domain.TaskRecord](ctx, s.store, domain.KeyTasks)
	if err != nil {
		return nil, err
	}

	others := make([]domain.TaskRecord, 0, len(records))
	for _, r := range records {
		if r.Date == input.Date {
			if record.Message == "" {
				record.Message = r.Message
			}
			continue
		}
		others = append(others, r)
	}
	records = append(others, record)

	if err := saveCollection(ctx, s.store, domain.KeyTasks, records); err != nil {
		return nil, err
	}
	return &record, nil
}

// AttachMessage stores a freshly generated message on an existing record.
// Used by the message worker after a debounced AI call completes.
func (s *TaskService) AttachMessage(ctx context.Context, date, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadCollection[[]domain.TaskRecord](ctx, s.store, domain.KeyTasks)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].Date == date {
			records[i].Message = message
			return saveCollection(ctx, s.store, domain.KeyTasks, records)
		}
	}
	return domain.ErrTaskNotFound
}
