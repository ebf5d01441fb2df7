package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/alexanderramin/cadence/internal/scheduler"
)

func (s *plannerService) Settings(ctx context.Context) (*SettingsView, error) {
	return settingsView(s.load(ctx)), nil
}

// UpdateSettings applies fn to a copy of the settings. Unknown modes and
// negative thresholds are reset to defaults; other misconfigurations are
// kept and reported as warnings. Settings changes are not undoable.
func (s *plannerService) UpdateSettings(ctx context.Context, fn func(*domain.AppSettings) error) (view *SettingsView, err error) {
	err = s.mutate(ctx, "update-settings", nil, func(e *engine.Engine) error {
		next := e.Settings()
		if err := fn(&next); err != nil {
			return err
		}
		e.SetSettings(importer.RepairSettings(next))
		view = settingsView(e)
		return nil
	})
	return view, err
}

// SetCategory adds or replaces one category entry. The key is upper-cased.
func (s *plannerService) SetCategory(ctx context.Context, key string, c domain.Category) (view *SettingsView, err error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	err = s.mutate(ctx, "set-category", map[string]any{"category": key}, func(e *engine.Engine) error {
		if key == "" {
			return fmt.Errorf("category key is required")
		}
		cats := e.Categories()
		cats[key] = c
		e.SetCategories(importer.RepairCategories(cats))
		view = settingsView(e)
		return nil
	})
	return view, err
}

func settingsView(e *engine.Engine) *SettingsView {
	settings, categories := e.Settings(), e.Categories()
	return &SettingsView{
		Settings:   settings,
		Categories: categories,
		Warnings:   scheduler.ValidateSettings(settings, categories),
	}
}
