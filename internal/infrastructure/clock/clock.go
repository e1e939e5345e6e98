package clock

import (
	"fmt"
	"time"
	// Bundle tzdata so the fixed timezone loads on scratch containers.
	_ "time/tzdata"
)

// Fixed yields day and entry keys anchored to one civil timezone for all
// actors.
type Fixed struct {
	loc *time.Location
}

// NewFixed creates a clock anchored to the named IANA timezone.
func NewFixed(timezone string) (*Fixed, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &Fixed{loc: loc}, nil
}

// DayKey returns the current calendar date in the fixed timezone.
func (c *Fixed) DayKey() string {
	return time.Now().In(c.loc).Format("2006-01-02")
}

// EntryKey returns the current timestamp in the fixed timezone, precise
// enough to key one log entry within a day partition.
func (c *Fixed) EntryKey() string {
	return time.Now().In(c.loc).Format(time.RFC3339Nano)
}
