package config

import (
	"fmt"
	"strings"
	"time"
)

// WeekStart parses the week_start setting. Only sunday and monday are
// accepted.
func (c *Config) WeekStart() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.Defaults.WeekStart)) {
	case "", "monday", "mon":
		return time.Monday, nil
	case "sunday", "sun":
		return time.Sunday, nil
	default:
		return time.Monday, fmt.Errorf("week_start %q: expected monday or sunday", c.Defaults.WeekStart)
	}
}
