// Package scheduler derives read-only views from the entity store: bucket
// membership, ordering inside a bucket, and deadline alerts. Every function
// is pure and receives its settings explicitly.
package scheduler

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"golang.org/x/text/language"
)

// Context carries the read-only inputs shared by the derived views.
type Context struct {
	Settings   domain.AppSettings
	Categories domain.CategoryConfig
	Schedule   []domain.ScheduleItem
	Today      time.Time
	// Locale drives name collation. The zero tag collates with root rules.
	Locale language.Tag
}

// NewContext builds a Context with today truncated to local midnight.
func NewContext(settings domain.AppSettings, categories domain.CategoryConfig, schedule []domain.ScheduleItem, today time.Time) Context {
	return Context{
		Settings:   settings,
		Categories: categories,
		Schedule:   schedule,
		Today:      domain.StartOfDay(today),
		Locale:     language.Und,
	}
}
