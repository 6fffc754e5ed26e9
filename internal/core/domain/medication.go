package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMedicationNotFound  = errors.New("medication not found")
	ErrMedicationNameEmpty = errors.New("medication name cannot be empty")
	ErrInvalidFrequency    = errors.New("invalid frequency (must be DAILY or WEEKLY)")
	ErrInvalidDosageCount  = errors.New("dosage count must be at least 1")
)

const (
	FrequencyDaily  = "DAILY"
	FrequencyWeekly = "WEEKLY"

	DefaultDosageLabel = "pastilla"
	legacyDosageLabel  = "dosis"
)

// Medication is a tracked medication with a per-day intake history.
// History maps a YYYY-MM-DD date to the number of units taken that day.
//
// CurrentDosage and TakenDates are the legacy pre-history shape; they are
// only populated on records loaded from old backups and are folded into
// History by MigrateMedications.
type Medication struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DosageCount int    `json:"dosageCount"`
	DosageLabel string `json:"dosageLabel"`
	Frequency   string `json:"frequency"`

	WeaningMode  bool   `json:"weaningMode"`
	TargetDosage string `json:"targetDosage,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`

	History map[string]int `json:"history"`

	CurrentDosage string   `json:"currentDosage,omitempty"`
	TakenDates    []string `json:"takenDates,omitempty"`
}

// NewMedication creates a daily single-dose medication with a fresh ID.
func NewMedication(name string) (*Medication, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrMedicationNameEmpty
	}

	return &Medication{
		ID:          uuid.NewString(),
		Name:        trimmed,
		Frequency:   FrequencyDaily,
		DosageCount: 1,
		DosageLabel: DefaultDosageLabel,
		History:     map[string]int{},
		WeaningMode: false,
	}, nil
}

func (m *Medication) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrMedicationNameEmpty
	}
	if m.Frequency != FrequencyDaily && m.Frequency != FrequencyWeekly {
		return ErrInvalidFrequency
	}
	if m.DosageCount < 1 {
		return ErrInvalidDosageCount
	}
	return nil
}

// ToggleDose flips the dose slot at index for the given date.
// Indices are 0-based slot positions, not counts: tapping the next empty
// slot (index == current count) marks one more unit taken; tapping an
// already-marked slot (index < count) rolls the count back to that index.
// Tapping beyond the next slot is a no-op.
func (m *Medication) ToggleDose(date string, index int) {
	if m.History == nil {
		m.History = map[string]int{}
	}

	current := m.History[date]
	switch {
	case index == current:
		m.History[date] = current + 1
	case index < current:
		m.History[date] = index
	}
}

// TakenOn returns the units recorded for the given date.
func (m *Medication) TakenOn(date string) int {
	return m.History[date]
}

// MigrateMedications upgrades a legacy medication collection in which
// records track intake as a flat takenDates list instead of a history map.
// The gate is the first element lacking a history; a partially-migrated
// collection is not detected. Each legacy date becomes one unit taken.
// Returns the (possibly new) slice and whether a migration ran.
func MigrateMedications(meds []Medication) ([]Medication, bool) {
	if len(meds) == 0 || meds[0].History != nil {
		return meds, false
	}

	migrated := make([]Medication, len(meds))
	for i, m := range meds {
		history := map[string]int{}
		for _, date := range m.TakenDates {
			history[date] = 1
		}
		m.History = history
		m.TakenDates = nil

		if m.Frequency == "" {
			m.Frequency = FrequencyDaily
		}
		if m.DosageCount == 0 {
			m.DosageCount = 1
		}
		if m.DosageLabel == "" {
			m.DosageLabel = legacyDosageLabel
		}
		migrated[i] = m
	}

	return migrated, true
}
