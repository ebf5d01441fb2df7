package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/alexanderramin/cadence/internal/importer"
)

// Import replaces the whole state with doc as one undoable step. A document
// that fails validation leaves state and history untouched.
func (s *plannerService) Import(ctx context.Context, doc *importer.Document) (result *app.ImportResult, err error) {
	fields := map[string]any{"version": doc.Version}
	err = s.mutate(ctx, "import", fields, func(e *engine.Engine) error {
		if err := importer.Validate(doc); err != nil {
			return err
		}
		state, settings, categories, report := importer.Convert(doc)
		e.Replace(state, settings, categories)

		result = &app.ImportResult{
			ProjectCount:  len(state.Projects),
			ScheduleCount: len(state.Schedule),
			Repairs:       report,
		}
		fields["projects"] = result.ProjectCount
		fields["schedule"] = result.ScheduleCount
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing: %w", err)
	}
	return result, nil
}

func (s *plannerService) Export(ctx context.Context) (*importer.Document, error) {
	e := s.load(ctx)
	return importer.FromState(e.State(), e.Settings(), e.Categories(), s.now()), nil
}
