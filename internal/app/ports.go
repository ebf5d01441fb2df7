package app

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/calendar"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/alexanderramin/cadence/internal/importer"
)

type BoardUseCase interface {
	Board(ctx context.Context, req BoardRequest) (*BoardResponse, error)
}

type AlertsUseCase interface {
	Alerts(ctx context.Context, req AlertsRequest) (*AlertsResponse, error)
}

type IntentUseCase interface {
	ApplyIntent(ctx context.Context, in engine.Intent) (domain.State, error)
}

type UndoUseCase interface {
	Undo(ctx context.Context) (domain.State, error)
	HistoryDepth(ctx context.Context) (int, error)
}

type CalendarUseCase interface {
	Month(ctx context.Context, year int, month time.Month, today time.Time, weekStart time.Weekday) (calendar.Month, error)
}

type ImportResult struct {
	ProjectCount  int
	ScheduleCount int
	Repairs       importer.RepairReport
}

type ImportUseCase interface {
	Import(ctx context.Context, doc *importer.Document) (*ImportResult, error)
	Export(ctx context.Context) (*importer.Document, error)
}
