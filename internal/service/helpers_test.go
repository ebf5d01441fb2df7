package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)

type testEnv struct {
	db      *sql.DB
	svc     PlannerService
	events  *captureObserver
	counter int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{db: testutil.NewTestDB(t), events: &captureObserver{}}
	env.svc = env.newService(zap.NewNop(), testutil.NewTestUoW(env.db))
	return env
}

// newService opens a second service over the same database, as a new CLI
// invocation would.
func (env *testEnv) newService(logger *zap.Logger, uow db.UnitOfWork) PlannerService {
	return NewPlannerService(PlannerDeps{
		Blobs:  repository.NewSQLiteBlobRepo(env.db),
		UOW:    uow,
		Logger: logger,
		Now:    func() time.Time { return fixedNow },
		NewID: func() string {
			env.counter++
			return fmt.Sprintf("id-%03d", env.counter)
		},
	}, env.events)
}

func (env *testEnv) putRaw(t *testing.T, key, value string) {
	t.Helper()
	testutil.WriteBlob(t, env.db, key, value)
}

func (env *testEnv) addProject(t *testing.T, name string, opts ...testutil.ProjectOption) domain.Project {
	t.Helper()
	p, err := env.svc.AddProject(context.Background(), testutil.NewTestProject(name, opts...))
	if err != nil {
		t.Fatalf("add project %s: %v", name, err)
	}
	return p
}

type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (c *captureObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureObserver) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.events))
	for i, e := range c.events {
		out[i] = e.Name
	}
	return out
}

func viewIDs(views []app.ProjectView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ProjectID
	}
	return out
}
