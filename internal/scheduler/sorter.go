package scheduler

import (
	"sort"

	"github.com/alexanderramin/cadence/internal/domain"
	"golang.org/x/text/collate"
)

// unknownCategoryIndex places unlisted categories after every listed one.
const unknownCategoryIndex = 999

// PriorityWeight maps a priority to its sort weight (higher = more urgent).
// An absent priority weighs like MEDIUM.
func PriorityWeight(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 3
	case domain.PriorityLow:
		return 1
	default:
		return 2
	}
}

// CategoryIndex returns the position of category in order, or a large
// sentinel for categories missing from the list.
func CategoryIndex(category string, order []string) int {
	for i, k := range order {
		if k == category {
			return i
		}
	}
	return unknownCategoryIndex
}

// Sort returns a new slice ordered by mode. The input is not modified and
// the sort is stable, so repeated sorts never reorder equal projects:
//
//	DEFAULT:  priority desc, category index asc, name asc
//	ALPHA:    name asc
//	CATEGORY: category index asc, priority desc, name asc
//	PRIORITY: priority desc, category index asc, name asc
//	DATE:     dated before undated, date asc
//
// Names compare with locale-aware collation. Unknown modes sort as DEFAULT.
func Sort(projects []domain.Project, mode domain.SortMode, ctx Context) []domain.Project {
	out := append([]domain.Project(nil), projects...)

	col := collate.New(ctx.Locale)
	order := ctx.Settings.CategoryOrder
	byName := func(a, b domain.Project) int {
		return col.CompareString(a.Name, b.Name)
	}
	byPriority := func(a, b domain.Project) int {
		return PriorityWeight(b.Priority) - PriorityWeight(a.Priority)
	}
	byCategory := func(a, b domain.Project) int {
		return CategoryIndex(a.Type, order) - CategoryIndex(b.Type, order)
	}

	var keys []func(a, b domain.Project) int
	switch mode {
	case domain.SortAlpha:
		keys = append(keys, byName)
	case domain.SortCategory:
		keys = append(keys, byCategory, byPriority, byName)
	case domain.SortDate:
		idx := indexSchedule(ctx.Schedule)
		keys = append(keys, func(a, b domain.Project) int {
			da, aOK := idx[a.ID]
			db, bOK := idx[b.ID]
			switch {
			case aOK && !bOK:
				return -1
			case !aOK && bOK:
				return 1
			case !aOK && !bOK:
				return 0
			}
			return domain.DaysBetween(da.Date, db.Date)
		})
	default:
		keys = append(keys, byPriority, byCategory, byName)
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range keys {
			if c := key(out[i], out[j]); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out
}
