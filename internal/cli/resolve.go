package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

func (a *App) resolveProject(ctx context.Context, ref string) (domain.Project, error) {
	if ref == "" {
		return domain.Project{}, fmt.Errorf("project ID is required")
	}
	return a.Planner.ResolveProject(ctx, ref)
}

// resolveChecklistItem accepts a 1-based position or an item ID prefix.
func resolveChecklistItem(p domain.Project, ref string) (string, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(p.Checklist) {
			return "", fmt.Errorf("checklist item #%d out of range (1-%d)", n, len(p.Checklist))
		}
		return p.Checklist[n-1].ID, nil
	}

	var matches []string
	for _, c := range p.Checklist {
		if c.ID == ref {
			return c.ID, nil
		}
		if strings.HasPrefix(c.ID, ref) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("checklist item not found: %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("checklist item prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}
