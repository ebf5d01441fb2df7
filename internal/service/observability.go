package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/alexanderramin/cadence/internal/importer"
	"go.uber.org/zap"
)

// UseCaseEvent describes one completed mutating use case.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// multiObserver delivers each event to every observer in order.
type multiObserver []UseCaseObserver

func (m multiObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, o := range m {
		o.ObserveUseCase(ctx, event)
	}
}

func combineObservers(observers []UseCaseObserver) UseCaseObserver {
	var live multiObserver
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	default:
		return live
	}
}

type logUseCaseObserver struct {
	logger *zap.Logger
}

// NewLogUseCaseObserver writes use-case events to logger. Rejected input
// logs at Warn; storage failures log at Error.
func NewLogUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger.Named("usecase")}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, 4+len(keys))
	fields = append(fields,
		zap.String("use_case", event.Name),
		zap.Int64("duration_ms", event.Duration.Milliseconds()),
		zap.Bool("success", event.Success),
	)
	for _, k := range keys {
		fields = append(fields, zap.Any(k, event.Fields[k]))
	}

	switch {
	case event.Err == nil:
		o.logger.Info("service_use_case", fields...)
	case isRejection(event.Err):
		o.logger.Warn("service_use_case", append(fields, zap.Error(event.Err))...)
	default:
		o.logger.Error("service_use_case", append(fields, zap.Error(event.Err))...)
	}
}

// isRejection reports whether err is the caller's mistake rather than a
// failure of the store.
func isRejection(err error) bool {
	for _, target := range []error{
		engine.ErrProjectNotFound,
		engine.ErrScheduleNotFound,
		engine.ErrInvalidStatus,
		engine.ErrInvalidIntent,
		engine.ErrChecklistItemNotFound,
		engine.ErrInvalidChecklistOp,
		engine.ErrNothingToUndo,
		ErrAmbiguousRef,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	var ve *importer.ValidationError
	var be *app.BoardError
	return errors.As(err, &ve) || errors.As(err, &be)
}
