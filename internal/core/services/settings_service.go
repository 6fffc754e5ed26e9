package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

func decodeSettings(raw []byte) (domain.UserSettings, error) {
	var settings domain.UserSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Printf("[STORE] Corrupted settings blob, using defaults: %v", err)
		return domain.UserSettings{}, err
	}
	return settings, nil
}

// SettingsService owns the single user's settings blob and the global
// clear-all operation.
type SettingsService struct {
	store domain.BlobStore

	mu sync.Mutex
}

func NewSettingsService(store domain.BlobStore) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context) (domain.UserSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Get(ctx, domain.KeySettings)
	if err != nil {
		return domain.UserSettings{}, err
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}

	settings, err := decodeSettings(raw)
	if err != nil {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, settings domain.UserSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return saveCollection(ctx, s.store, domain.KeySettings, settings)
}

// CompleteOnboarding records the user's name and questionnaire profile,
// preserving the rest of the settings.
func (s *SettingsService) CompleteOnboarding(ctx context.Context, name string, profile domain.UserProfile) (domain.UserSettings, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.UserSettings{}, domain.ErrNameRequired
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return domain.UserSettings{}, err
	}
	settings.Name = name
	settings.Profile = &profile

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveCollection(ctx, s.store, domain.KeySettings, settings); err != nil {
		return domain.UserSettings{}, err
	}
	return settings, nil
}

// ClearAll wipes every persisted key (collections and cached reports alike)
// and restores the default settings profile. Callers must have obtained an
// explicit confirmation from the user first.
func (s *SettingsService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteAll(ctx); err != nil {
		return err
	}
	return saveCollection(ctx, s.store, domain.KeySettings, domain.DefaultSettings())
}
