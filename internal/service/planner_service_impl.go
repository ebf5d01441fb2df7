package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/alexanderramin/cadence/internal/history"
	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/alexanderramin/cadence/internal/repository"
	"go.uber.org/zap"
)

// PlannerDeps wires a planner service. Blobs and UOW are required; the rest
// have defaults.
type PlannerDeps struct {
	Blobs repository.BlobRepo
	UOW   db.UnitOfWork
	// TxBlobs builds a transaction-scoped repository. Defaults to
	// repository.NewSQLiteBlobRepo.
	TxBlobs func(tx db.DBTX) repository.BlobRepo
	Logger  *zap.Logger
	// Defaults seeds the settings when the store holds none.
	Defaults *domain.AppSettings
	Now      func() time.Time
	NewID    func() string
}

type plannerService struct {
	blobs    repository.BlobRepo
	uow      db.UnitOfWork
	txBlobs  func(tx db.DBTX) repository.BlobRepo
	logger   *zap.Logger
	observer UseCaseObserver
	defaults domain.AppSettings
	now      func() time.Time
	newID    func() string

	eng *engine.Engine
}

func NewPlannerService(deps PlannerDeps, observers ...UseCaseObserver) PlannerService {
	s := &plannerService{
		blobs:    deps.Blobs,
		uow:      deps.UOW,
		txBlobs:  deps.TxBlobs,
		logger:   deps.Logger,
		observer: combineObservers(observers),
		defaults: domain.DefaultAppSettings(),
		now:      deps.Now,
		newID:    deps.NewID,
	}
	if s.txBlobs == nil {
		s.txBlobs = func(tx db.DBTX) repository.BlobRepo { return repository.NewSQLiteBlobRepo(tx) }
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if deps.Defaults != nil {
		s.defaults = importer.RepairSettings(*deps.Defaults)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// load returns the engine, reading the store on first use. Unreadable or
// malformed keys fall back to defaults and are logged; load itself never
// fails.
func (s *plannerService) load(ctx context.Context) *engine.Engine {
	if s.eng != nil {
		return s.eng
	}

	state := domain.State{Projects: []domain.Project{}, Schedule: []domain.ScheduleItem{}}
	settings := s.defaults.Clone()
	categories := domain.DefaultCategoryConfig()
	var entries []domain.State

	if data, ok := s.read(ctx, repository.KeyProjects); ok {
		if v, err := importer.DecodeProjects(data); err != nil {
			s.warnDefault(repository.KeyProjects, err)
		} else {
			state.Projects = v
		}
	}
	if data, ok := s.read(ctx, repository.KeySchedule); ok {
		if v, err := importer.DecodeSchedule(data); err != nil {
			s.warnDefault(repository.KeySchedule, err)
		} else {
			state.Schedule = v
		}
	}
	if data, ok := s.read(ctx, repository.KeyCategoryConfig); ok {
		if v, err := importer.DecodeCategories(data); err != nil {
			s.warnDefault(repository.KeyCategoryConfig, err)
		} else {
			categories = v
		}
	}
	if data, ok := s.read(ctx, repository.KeyAppSettings); ok {
		if v, err := importer.DecodeSettings(data); err != nil {
			s.warnDefault(repository.KeyAppSettings, err)
		} else {
			settings = v
		}
	}
	if data, ok := s.read(ctx, repository.KeyHistory); ok {
		if v, err := importer.DecodeHistory(data); err != nil {
			s.warnDefault(repository.KeyHistory, err)
		} else {
			entries = v
		}
	}

	state, settings, categories, report := importer.Repair(state, settings, categories)
	if report.Changed() {
		s.logger.Info("repaired stored data",
			zap.Int("dropped_projects", report.DroppedProjects),
			zap.Int("fixed_types", report.FixedTypes),
			zap.Int("fixed_statuses", report.FixedStatuses),
			zap.Int("fixed_priorities", report.FixedPriorities),
			zap.Int("dropped_schedule", report.DroppedSchedule),
			zap.Int("duplicate_schedule", report.DuplicateSchedule),
		)
	}

	stack := history.NewStack(history.DefaultCapacity)
	stack.Restore(entries)

	opts := []engine.Option{engine.WithHistory(stack)}
	if s.newID != nil {
		opts = append(opts, engine.WithIDGenerator(s.newID))
	}
	s.eng = engine.New(state, settings, categories, opts...)
	return s.eng
}

func (s *plannerService) read(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.blobs.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		s.warnDefault(key, err)
		return nil, false
	}
	return b.Value, true
}

func (s *plannerService) warnDefault(key string, err error) {
	s.logger.Warn("stored value unusable, using defaults", zap.String("key", key), zap.Error(err))
}

// save writes every key in one transaction. On failure the in-memory engine
// is dropped so the next call reloads what was last committed.
func (s *plannerService) save(ctx context.Context, e *engine.Engine) error {
	state := e.State()
	encoded := make(map[string][]byte, len(repository.AllKeys))
	var err error
	if encoded[repository.KeyProjects], err = importer.EncodeProjects(state.Projects); err != nil {
		return err
	}
	if encoded[repository.KeySchedule], err = importer.EncodeSchedule(state.Schedule); err != nil {
		return err
	}
	if encoded[repository.KeyCategoryConfig], err = importer.EncodeCategories(e.Categories()); err != nil {
		return err
	}
	if encoded[repository.KeyAppSettings], err = importer.EncodeSettings(e.Settings()); err != nil {
		return err
	}
	if encoded[repository.KeyHistory], err = importer.EncodeHistory(e.History().Entries()); err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		blobs := s.txBlobs(tx)
		for _, key := range repository.AllKeys {
			if err := blobs.Put(ctx, key, encoded[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.eng = nil
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// mutate runs fn against the loaded engine and persists the result. fn
// returns an error to abort before anything is written.
func (s *plannerService) mutate(ctx context.Context, name string, fields map[string]any, fn func(e *engine.Engine) error) (err error) {
	startedAt := time.Now().UTC()
	if fields == nil {
		fields = map[string]any{}
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	e := s.load(ctx)
	if err = fn(e); err != nil {
		return err
	}
	fields["history_depth"] = e.History().Len()
	return s.save(ctx, e)
}

func (s *plannerService) State(ctx context.Context) (domain.State, error) {
	return s.load(ctx).State(), nil
}

func (s *plannerService) today(now *time.Time) time.Time {
	if now != nil {
		return domain.StartOfDay(*now)
	}
	return domain.StartOfDay(s.now())
}
