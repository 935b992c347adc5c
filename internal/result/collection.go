package result

import (
	"time"

	"github.com/google/uuid"
)

// Collection is the caller-owned list of records accumulated during one
// session. It is append-only and not safe for concurrent use.
type Collection struct {
	ID        uuid.UUID
	StartedAt time.Time

	records []Record
}

// NewCollection starts an empty collection with a fresh session ID
func NewCollection() *Collection {
	return &Collection{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
}

// Append commits records to the collection. Records from one calculator
// call should be appended in a single call.
func (c *Collection) Append(records ...Record) {
	c.records = append(c.records, records...)
}

// Records returns a copy of the committed records in insertion order
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of committed records
func (c *Collection) Len() int {
	return len(c.records)
}

// TotalWeight sums the weight of every record (kg)
func (c *Collection) TotalWeight() float64 {
	var total float64
	for _, r := range c.records {
		total += r.Weight()
	}
	return total
}
