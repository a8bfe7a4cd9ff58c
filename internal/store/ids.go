package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new tasks, subtasks, lists and tags
type IDGenerator interface {
	NewID() string
}

// TimestampIDs renders the current Unix millisecond time as a decimal
// string. IDs are strictly increasing: when the clock has not moved past
// the last issued value the next ID is last+1.
type TimestampIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestampIDs creates a generator reading the given clock
func NewTimestampIDs(now func() time.Time) *TimestampIDs {
	if now == nil {
		now = time.Now
	}
	return &TimestampIDs{now: now}
}

func (g *TimestampIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// UUIDs generates random version 4 UUIDs
type UUIDs struct{}

func (UUIDs) NewID() string {
	return uuid.NewString()
}
