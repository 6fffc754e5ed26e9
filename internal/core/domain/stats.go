package domain

import (
	"errors"
	"time"
)

var ErrInvalidTimeFrame = errors.New("invalid time frame (must be DAY, MONTH or YEAR)")

// TimeFrame is the analytics aggregation granularity relative to a reference date.
type TimeFrame string

const (
	TimeFrameDay   TimeFrame = "DAY"
	TimeFrameMonth TimeFrame = "MONTH"
	TimeFrameYear  TimeFrame = "YEAR"
)

func ValidTimeFrame(tf TimeFrame) bool {
	return tf == TimeFrameDay || tf == TimeFrameMonth || tf == TimeFrameYear
}

type StatsInput struct {
	TimeFrame TimeFrame
	Date      time.Time
}

// TrendPoint is one charted mood sample on the 0-100 SVG plane.
type TrendPoint struct {
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	Date string   `json:"date"`
	Mood MoodType `json:"mood"`
}

// MoodTrend is the smoothed mood-flow series. LinePath and AreaPath are
// SVG path strings; both are empty when fewer than two moods were recorded
// in the window (HasEnoughData signals the empty state).
type MoodTrend struct {
	Points        []TrendPoint `json:"points"`
	LinePath      string       `json:"line_path"`
	AreaPath      string       `json:"area_path"`
	HasEnoughData bool         `json:"has_enough_data"`
}

type FactorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FactorGroup lists the factor tags that co-occurred with a mood,
// most frequent first.
type FactorGroup struct {
	Mood    MoodType      `json:"mood"`
	Factors []FactorCount `json:"factors"`
}

// MedicationProgress is the adherence computation for one medication
// over the selected window.
type MedicationProgress struct {
	MedicationID string  `json:"medication_id"`
	Name         string  `json:"name"`
	Taken        int     `json:"taken"`
	Expected     int     `json:"expected"`
	Pct          float64 `json:"pct"`
	IsComplete   bool    `json:"is_complete"`
}

// Statistics is the full derived-analytics view for one window.
type Statistics struct {
	TimeFrame      TimeFrame            `json:"time_frame"`
	ReferenceDate  string               `json:"reference_date"`
	RecordedDays   int                  `json:"recorded_days"`
	TotalCompleted int                  `json:"total_completed"`
	Trend          MoodTrend            `json:"trend"`
	Factors        []FactorGroup        `json:"factors"`
	Medications    []MedicationProgress `json:"medications"`
}
