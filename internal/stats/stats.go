// Package stats records finished games and orders them for display.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-1024/internal/engine"
)

// Record is one finished game.
type Record struct {
	ID        string
	CreatedAt time.Time
	BoardSize int
	Target    int
	Score     int
	Steps     int
	Outcome   engine.Outcome
}

// Score derives the display score of a final grid: its highest tile.
func Score(g engine.Grid) int {
	return g.MaxTile()
}

// FromResult builds a record from a terminal engine result.
func FromResult(res engine.Result, at time.Time) Record {
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: at,
		BoardSize: res.BoardSize,
		Target:    res.TargetScore,
		Score:     Score(res.Grid),
		Steps:     res.Steps,
		Outcome:   res.Outcome,
	}
}

// SortField selects the column records are ordered by.
type SortField int

const (
	SortBySteps SortField = iota
	SortByScore
	SortByDate
)

// SortFields lists fields in display order.
var SortFields = []SortField{SortBySteps, SortByScore, SortByDate}

// String returns the field name.
func (f SortField) String() string {
	switch f {
	case SortBySteps:
		return "steps"
	case SortByScore:
		return "score"
	case SortByDate:
		return "date"
	default:
		return "unknown"
	}
}

// Next cycles to the following field.
func (f SortField) Next() SortField {
	return SortFields[(int(f)+1)%len(SortFields)]
}

// ParseSortField maps "steps", "score" or "date" to a SortField.
func ParseSortField(s string) (SortField, error) {
	for _, f := range SortFields {
		if f.String() == s {
			return f, nil
		}
	}
	return SortBySteps, fmt.Errorf("stats: unknown sort field %q", s)
}

// SortOrder is ascending or descending.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// String returns the order name.
func (o SortOrder) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// Toggle flips the order.
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// Sort orders records in place. Equal keys keep their relative order.
func Sort(records []Record, field SortField, order SortOrder) {
	less := func(a, b Record) bool {
		switch field {
		case SortByScore:
			return a.Score < b.Score
		case SortByDate:
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.Steps < b.Steps
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if order == Descending {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})
}
