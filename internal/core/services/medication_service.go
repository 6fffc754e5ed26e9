package services

import (
	"context"
	"log"
	"sync"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// MedicationService owns the medication collection. Loading runs the legacy
// schema migration once: if a migration fires, the upgraded collection is
// persisted immediately so the gate short-circuits on every later load.
type MedicationService struct {
	store domain.BlobStore

	mu sync.Mutex
}

func NewMedicationService(store domain.BlobStore) *MedicationService {
	return &MedicationService{store: store}
}

func (s *MedicationService) List(ctx context.Context) ([]domain.Medication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meds, err := s.load(ctx)
	if meds == nil {
		meds = []domain.Medication{}
	}
	return meds, err
}

// load reads the collection and applies the legacy migration when needed.
// Callers must hold s.mu.
func (s *MedicationService) load(ctx context.Context) ([]domain.Medication, error) {
	meds, err := loadCollection[[]domain.Medication](ctx, s.store, domain.KeyMeds)
	if err != nil {
		return nil, err
	}

	migrated, changed := domain.MigrateMedications(meds)
	if changed {
		log.Printf("[MEDS] Migrated %d legacy medication record(s)", len(migrated))
		if err := saveCollection(ctx, s.store, domain.KeyMeds, migrated); err != nil {
			return nil, err
		}
	}
	return migrated, nil
}

func (s *MedicationService) Add(ctx context.Context, name string) (*domain.Medication, error) {
	med, err := domain.NewMedication(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	meds = append(meds, *med)

	if err := saveCollection(ctx, s.store, domain.KeyMeds, meds); err != nil {
		return nil, err
	}
	return med, nil
}

// Update replaces the medication with the same ID.
func (s *MedicationService) Update(ctx context.Context, med domain.Medication) (*domain.Medication, error) {
	if err := med.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range meds {
		if meds[i].ID == med.ID {
			if med.History == nil {
				med.History = meds[i].History
			}
			meds[i] = med
			if err := saveCollection(ctx, s.store, domain.KeyMeds, meds); err != nil {
				return nil, err
			}
			return &med, nil
		}
	}
	return nil, domain.ErrMedicationNotFound
}

func (s *MedicationService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meds, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Medication, 0, len(meds))
	for _, m := range meds {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(meds) {
		return domain.ErrMedicationNotFound
	}

	return saveCollection(ctx, s.store, domain.KeyMeds, kept)
}

// ToggleDose flips the dose slot at index for a given medication and date
// and persists the collection. Returns the updated medication.
func (s *MedicationService) ToggleDose(ctx context.Context, id, date string, index int) (*domain.Medication, error) {
	if !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range meds {
		if meds[i].ID == id {
			meds[i].ToggleDose(date, index)
			if err := saveCollection(ctx, s.store, domain.KeyMeds, meds); err != nil {
				return nil, err
			}
			return &meds[i], nil
		}
	}
	return nil, domain.ErrMedicationNotFound
}
