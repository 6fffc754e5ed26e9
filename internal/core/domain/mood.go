package domain

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidDate       = errors.New("invalid date (must be YYYY-MM-DD)")
	ErrInvalidMood       = errors.New("invalid mood value")
	ErrDayRecordNotFound = errors.New("day record not found")
	ErrNoActivities      = errors.New("no activities provided")
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// MoodType is one of the six core moods tracked by the journal.
// The wire values match the browser build so exported backups stay portable.
type MoodType string

const (
	MoodHappy    MoodType = "HAPPY"
	MoodCalm     MoodType = "CALM"
	MoodSad      MoodType = "SAD"
	MoodAnxious  MoodType = "ANXIOUS"
	MoodAngry    MoodType = "ANGRY"
	MoodHormonal MoodType = "HORMONAL"
)

// DayRecord is one calendar day's journal entry. The Date string is the
// natural key; there is at most one record per date.
// Mood is empty for activity-only records.
type DayRecord struct {
	Date             string   `json:"date"`
	Mood             MoodType `json:"mood,omitempty"`
	SpecificEmotions []string `json:"specificEmotions,omitempty"`
	Factors          []string `json:"factors,omitempty"`
	Activities       []string `json:"activities,omitempty"`
	Note             string   `json:"note,omitempty"`
	Therapy          bool     `json:"therapy,omitempty"`
}

// ValidDate reports whether s is a YYYY-MM-DD date string.
func ValidDate(s string) bool {
	return dateRegex.MatchString(s)
}

// ValidMood reports whether m is one of the six known moods.
func ValidMood(m MoodType) bool {
	switch m {
	case MoodHappy, MoodCalm, MoodSad, MoodAnxious, MoodAngry, MoodHormonal:
		return true
	}
	return false
}

// HasMood reports whether the record carries a mood (activity-only records do not).
func (r DayRecord) HasMood() bool {
	return r.Mood != ""
}
