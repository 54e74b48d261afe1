package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-1024/internal/engine"
	"github.com/vovakirdan/tui-1024/internal/stats"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id string, score, steps int, minutes int, outcome engine.Outcome) stats.Record {
	return stats.Record{
		ID:        id,
		CreatedAt: base.Add(time.Duration(minutes) * time.Minute),
		BoardSize: 4,
		Target:    2048,
		Score:     score,
		Steps:     steps,
		Outcome:   outcome,
	}
}

func ids(records []stats.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := record("a", 2048, 310, 0, engine.Won)
	want.BoardSize = 5
	want.Target = 1024
	if err := store.SaveRecord(want); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}

	got, err := store.Records(stats.SortByDate, stats.Ascending, 0)
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(got))
	}

	r := got[0]
	if r.ID != want.ID || r.BoardSize != 5 || r.Target != 1024 ||
		r.Score != 2048 || r.Steps != 310 || r.Outcome != engine.Won {
		t.Errorf("Record = %+v, want %+v", r, want)
	}
	if !r.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", r.CreatedAt, want.CreatedAt)
	}
}

func TestStoreDuplicateID(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveRecord(record("dup", 8, 1, 0, engine.Lost)); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	if err := store.SaveRecord(record("dup", 16, 2, 1, engine.Lost)); err == nil {
		t.Error("SaveRecord() should reject a duplicate ID")
	}
}

func TestStoreRecordsOrdering(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []stats.Record{
		record("a", 256, 120, 2, engine.Lost),
		record("b", 2048, 300, 0, engine.Won),
		record("c", 128, 80, 1, engine.Lost),
		record("d", 256, 120, 3, engine.Lost),
	} {
		if err := store.SaveRecord(r); err != nil {
			t.Fatalf("SaveRecord() failed: %v", err)
		}
	}

	tests := []struct {
		field stats.SortField
		order stats.SortOrder
		want  string
	}{
		{stats.SortBySteps, stats.Ascending, "[c a d b]"},
		{stats.SortBySteps, stats.Descending, "[b a d c]"},
		{stats.SortByScore, stats.Ascending, "[c a d b]"},
		{stats.SortByScore, stats.Descending, "[b a d c]"},
		{stats.SortByDate, stats.Ascending, "[b c a d]"},
		{stats.SortByDate, stats.Descending, "[d a c b]"},
	}

	for _, tt := range tests {
		t.Run(tt.field.String()+"_"+tt.order.String(), func(t *testing.T) {
			got, err := store.Records(tt.field, tt.order, 0)
			if err != nil {
				t.Fatalf("Records() failed: %v", err)
			}
			if s := fmt.Sprint(ids(got)); s != tt.want {
				t.Errorf("Records() = %s, want %s", s, tt.want)
			}
		})
	}
}

func TestStoreRecordsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 10 {
		if err := store.SaveRecord(record(fmt.Sprintf("r%d", i), 2<<i, i, i, engine.Lost)); err != nil {
			t.Fatalf("SaveRecord() failed: %v", err)
		}
	}

	got, err := store.Records(stats.SortByScore, stats.Descending, 3)
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 records with limit, got %d", len(got))
	}
	if got[0].Score != 1024 || got[2].Score != 256 {
		t.Errorf("Records not in expected order: %v", ids(got))
	}
}

func TestStoreRecordsUnknownField(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Records(stats.SortField(42), stats.Ascending, 0); err == nil {
		t.Error("Records() should reject an unknown sort field")
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if empty != (Summary{}) {
		t.Errorf("Expected zero summary for empty store, got %+v", empty)
	}

	for _, r := range []stats.Record{
		record("a", 256, 100, 0, engine.Lost),
		record("b", 2048, 300, 5, engine.Won),
		record("c", 512, 200, 2, engine.Lost),
	} {
		if err := store.SaveRecord(r); err != nil {
			t.Fatalf("SaveRecord() failed: %v", err)
		}
	}

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Games != 3 || sum.Wins != 1 || sum.BestScore != 2048 || sum.AvgSteps != 200 {
		t.Errorf("Summary() = %+v", sum)
	}
	if !sum.LastPlayed.Equal(base.Add(5 * time.Minute)) {
		t.Errorf("LastPlayed = %v", sum.LastPlayed)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	for i := range 3 {
		if err := store.SaveRecord(record(fmt.Sprintf("r%d", i), 4, 1, i, engine.Lost)); err != nil {
			t.Fatalf("SaveRecord() failed: %v", err)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	got, err := store.Records(stats.SortBySteps, stats.Ascending, 0)
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected 0 records after clear, got %d", len(got))
	}
}

func TestStoreReopenKeepsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveRecord(record("keep", 64, 30, 0, engine.Lost)); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Records(stats.SortBySteps, stats.Ascending, 0)
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "keep" {
		t.Errorf("Records after reopen = %v", ids(got))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreIsSink(t *testing.T) {
	store := openTestStore(t)

	rec := stats.NewRecorder(nil, stats.WithSink(store), stats.WithClock(func() time.Time { return base }))
	rec.Handle(engine.Result{
		Outcome:     engine.Lost,
		Steps:       42,
		Grid:        engine.GridFromRows([]int{2, 4, 2}, []int{4, 2, 4}, []int{2, 4, 128}),
		BoardSize:   3,
		TargetScore: 1024,
	})

	got, err := store.Records(stats.SortByDate, stats.Ascending, 0)
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	if len(got) != 1 || got[0].Score != 128 || got[0].Steps != 42 || got[0].BoardSize != 3 {
		t.Errorf("Recorder did not persist the result: %+v", got)
	}
}
