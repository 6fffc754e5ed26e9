package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// ExportDocument is the full-state backup: every persisted collection in
// one JSON document. Field names match the browser build's export so the
// two stay mutually importable.
type ExportDocument struct {
	User        domain.UserSettings `json:"user"`
	Moods       []domain.DayRecord  `json:"moods"`
	Medications []domain.Medication `json:"medications"`
	Tasks       []domain.TaskRecord `json:"tasks"`
}

// ExportService assembles downloadable full-state backups.
type ExportService struct {
	journal  *JournalService
	tasks    *TaskService
	meds     *MedicationService
	settings *SettingsService
}

func NewExportService(journal *JournalService, tasks *TaskService, meds *MedicationService, settings *SettingsService) *ExportService {
	return &ExportService{
		journal:  journal,
		tasks:    tasks,
		meds:     meds,
		settings: settings,
	}
}

func (s *ExportService) Snapshot(ctx context.Context) (*ExportDocument, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	moods, err := s.journal.List(ctx)
	if err != nil {
		return nil, err
	}
	meds, err := s.meds.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportDocument{
		User:        settings,
		Moods:       moods,
		Medications: meds,
		Tasks:       tasks,
	}, nil
}

// Render serializes the snapshot with indentation, ready for download.
func (s *ExportService) Render(ctx context.Context) ([]byte, error) {
	doc, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// FileName returns the dated download name for a backup taken at now.
func (s *ExportService) FileName(now time.Time) string {
	return fmt.Sprintf("lumina_backup_%s.json", now.Format("2006-01-02"))
}
