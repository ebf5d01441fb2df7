package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func proj(id, name string, opts ...func(*domain.Project)) domain.Project {
	p := domain.Project{ID: id, Name: name, Status: domain.StatusInProgress, Type: "VIDEO"}
	for _, o := range opts {
		o(&p)
	}
	return p
}

func withStatus(s string) func(*domain.Project) {
	return func(p *domain.Project) { p.Status = s }
}

func withType(c string) func(*domain.Project) {
	return func(p *domain.Project) { p.Type = c }
}

func withPriority(pr domain.Priority) func(*domain.Project) {
	return func(p *domain.Project) { p.Priority = pr }
}

func ids(projects []domain.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}
