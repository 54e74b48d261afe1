package stats

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-1024/internal/engine"
)

// Sink persists finished games.
type Sink interface {
	SaveRecord(r Record) error
}

// Recorder collects finished games reported by an engine.
// It is safe for concurrent use; SSH sessions share one recorder.
type Recorder struct {
	mu     sync.Mutex
	table  *Table
	sink   Sink
	logger *log.Logger
	now    func() time.Time
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithSink persists every record through s.
func WithSink(s Sink) RecorderOption {
	return func(r *Recorder) { r.sink = s }
}

// WithLogger sets the logger used for save failures.
func WithLogger(l *log.Logger) RecorderOption {
	return func(r *Recorder) { r.logger = l }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// NewRecorder creates a recorder seeded with existing records.
func NewRecorder(existing []Record, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		table:  NewTable(existing...),
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle records a terminal result. Non-terminal results are ignored.
// A sink failure is logged and the record is still kept in memory.
func (r *Recorder) Handle(res engine.Result) {
	if !res.Outcome.Terminal() {
		return
	}

	rec := FromResult(res, r.now())

	r.mu.Lock()
	r.table.Add(rec)
	r.mu.Unlock()

	r.logger.Info("Game finished",
		"outcome", rec.Outcome,
		"score", rec.Score,
		"steps", rec.Steps,
		"board", rec.BoardSize)

	if r.sink == nil {
		return
	}
	if err := r.sink.SaveRecord(rec); err != nil {
		r.logger.Error("Failed to save record", "id", rec.ID, "error", err)
	}
}

// SetField changes the sort field.
func (r *Recorder) SetField(f SortField) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table.SetField(f)
}

// ToggleOrder flips the sort order.
func (r *Recorder) ToggleOrder() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table.ToggleOrder()
}

// View returns the sorted records with the current field and order.
func (r *Recorder) View() ([]Record, SortField, SortOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table.Records(), r.table.Field(), r.table.Order()
}
