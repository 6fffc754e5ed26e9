package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

const signatureVersion = "v1"

// cachedReport is the persisted cache entry for one (user, year, month).
type cachedReport struct {
	Signature string `json:"signature"`
	Report    string `json:"report"`
}

// ReportService serves the monthly AI narrative through a content-addressed
// cache: the entry is reused only while the signature of the underlying
// mood/task data still matches, so any edit to a mood or a completed count
// forces a regeneration. Notes, activities and medication data are
// deliberately outside the signature and never invalidate the cache.
type ReportService struct {
	store   domain.BlobStore
	journal *JournalService
	tasks   *TaskService
	ai      *AIService

	mu sync.Mutex
}

func NewReportService(store domain.BlobStore, journal *JournalService, tasks *TaskService, ai *AIService) *ReportService {
	return &ReportService{
		store:   store,
		journal: journal,
		tasks:   tasks,
		ai:      ai,
	}
}

// MonthlyReport returns the narrative for the given month, from cache when
// the data is unchanged. With no mood records in the month it returns the
// fixed "no data" prompt; on gateway failure the fixed fallback, uncached.
func (s *ReportService) MonthlyReport(ctx context.Context, userName string, year, month int) (string, error) {
	moods, err := s.journal.List(ctx)
	if err != nil {
		return "", err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return "", err
	}

	prefix := fmt.Sprintf("%04d-%02d", year, month)

	monthMoods := make([]domain.DayRecord, 0, len(moods))
	for _, r := range moods {
		if strings.HasPrefix(r.Date, prefix) {
			monthMoods = append(monthMoods, r)
		}
	}
	monthTasks := make([]domain.TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		if strings.HasPrefix(t.Date, prefix) {
			monthTasks = append(monthTasks, t)
		}
	}

	signature := DataSignature(monthMoods, monthTasks)
	key := domain.ReportKey(userName, year, month)

	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok, err := s.store.Get(ctx, key); err == nil && ok {
		var entry cachedReport
		if err := json.Unmarshal(raw, &entry); err == nil {
			if entry.Signature == signature && entry.Report != "" {
				return entry.Report, nil
			}
		} else {
			log.Printf("[CACHE] Corrupted report entry %q, regenerating: %v", key, err)
		}
	}

	if len(monthMoods) == 0 {
		return MsgNoMonthData, nil
	}

	report, err := s.ai.MonthlyNarrative(ctx, userName, monthMoods, monthTasks)
	if err != nil {
		// Fallback copy is returned but never cached, so the next request
		// retries the gateway.
		log.Printf("[CACHE] Monthly narrative failed for %q: %v", key, err)
		return report, nil
	}

	entry, err := json.Marshal(cachedReport{Signature: signature, Report: report})
	if err != nil {
		return report, nil
	}
	if err := s.store.Set(ctx, key, entry); err != nil {
		log.Printf("[CACHE] Failed to store report entry %q: %v", key, err)
	}
	return report, nil
}

// DataSignature summarizes the inputs that affect a monthly narrative:
// date:mood pairs and date:completed pairs in stored order, joined by "|",
// version-tagged. Any field not in the signature cannot invalidate the
// cache.
func DataSignature(moods []domain.DayRecord, tasks []domain.TaskRecord) string {
	moodParts := make([]string, len(moods))
	for i, r := range moods {
		moodParts[i] = fmt.Sprintf("%s:%s", r.Date, r.Mood)
	}
	taskParts := make([]string, len(tasks))
	for i, t := range tasks {
		taskParts[i] = fmt.Sprintf("%s:%d", t.Date, t.Completed)
	}
	return signatureVersion + "_" + strings.Join(moodParts, "|") + "__" + strings.Join(taskParts, "|")
}
