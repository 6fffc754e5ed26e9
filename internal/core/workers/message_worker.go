package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// DefaultDebounce is the quiet period after the last edit before the AI
// call fires; rapid slider edits collapse into a single request.
const DefaultDebounce = 1 * time.Second

const (
	fallbackAttach = "Bien hecho."

	// MsgDefineIntent is stored when nothing was completed yet; no gateway
	// call is made for an empty day.
	MsgDefineIntent = "Define tu intención mentalmente. Luego marca lo que logres."
)

// MessageSink receives the generated message for a task record.
type MessageSink interface {
	AttachMessage(ctx context.Context, date, message string) error
}

// MotivationalSource produces the encouragement text. Implementations fail
// soft and always return a usable string.
type MotivationalSource interface {
	MotivationalMessage(ctx context.Context, completed, target int, userName string) string
}

// MessageJob is one pending regeneration for a task date.
type MessageJob struct {
	Date      string
	Completed int
	Target    int
	UserName  string
}

// MessageWorker coalesces task edits per date and regenerates the AI
// encouragement after a quiet period. Each enqueue bumps a per-date
// generation token; a response is applied only while its token is still
// the latest, so a slow older response can never overwrite the message
// belonging to a newer edit.
type MessageWorker struct {
	sink     MessageSink
	ai       MotivationalSource
	debounce time.Duration
	timeout  time.Duration

	mu      sync.Mutex
	tokens  map[string]uint64
	pending map[string]*pendingJob

	wg sync.WaitGroup
}

type pendingJob struct {
	job   MessageJob
	token uint64
	timer *time.Timer
}

func NewMessageWorker(sink MessageSink, ai MotivationalSource, debounce time.Duration) *MessageWorker {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &MessageWorker{
		sink:     sink,
		ai:       ai,
		debounce: debounce,
		timeout:  30 * time.Second,
		tokens:   make(map[string]uint64),
		pending:  make(map[string]*pendingJob),
	}
}

// Enqueue schedules a regeneration for job.Date, superseding any pending
// one for the same date.
func (w *MessageWorker) Enqueue(job MessageJob) {
	w.mu.Lock()
	defer w.mu.Unlock()

	token := w.tokens[job.Date] + 1
	w.tokens[job.Date] = token

	if prev, ok := w.pending[job.Date]; ok {
		prev.timer.Stop()
	}

	p := &pendingJob{job: job, token: token}
	p.timer = time.AfterFunc(w.debounce, func() {
		w.fire(job.Date, token)
	})
	w.pending[job.Date] = p
}

// Stop cancels every pending timer and waits for in-flight generations.
func (w *MessageWorker) Stop() {
	w.mu.Lock()
	for _, p := range w.pending {
		p.timer.Stop()
	}
	w.pending = make(map[string]*pendingJob)
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *MessageWorker) fire(date string, token uint64) {
	w.mu.Lock()
	p, ok := w.pending[date]
	if !ok || p.token != token || w.tokens[date] != token {
		w.mu.Unlock()
		return
	}
	delete(w.pending, date)
	job := p.job
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()

		var message string
		if job.Completed == 0 {
			// Nothing achieved yet: a fixed local nudge, no gateway call.
			message = MsgDefineIntent
		} else {
			message = w.ai.MotivationalMessage(ctx, job.Completed, job.Target, job.UserName)
			if message == "" {
				message = fallbackAttach
			}
		}

		w.mu.Lock()
		stale := w.tokens[date] != token
		w.mu.Unlock()
		if stale {
			log.Printf("[WORKER] Discarding stale message for %s (superseded)", date)
			return
		}

		if err := w.sink.AttachMessage(ctx, date, message); err != nil {
			log.Printf("[WORKER] Failed to attach message for %s: %v", date, err)
		}
	}()
}

// ShouldRegenerate is the pure decision: regenerate when the date has no
// record yet, the progress or target changed, or no message was ever
// generated. Kept free of timer machinery so it is trivially testable.
func ShouldRegenerate(existing *domain.TaskRecord, completed, target int) bool {
	if existing == nil {
		return true
	}
	if existing.Completed != completed || existing.Target != target {
		return true
	}
	return existing.Message == ""
}
