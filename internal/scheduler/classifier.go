package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Partition is the bucket split of a project collection.
type Partition struct {
	Pipeline  []domain.Project
	Published []domain.Project
}

// indexSchedule maps project id to its schedule item. The first row wins if
// the one-item-per-project invariant was ever violated in storage.
func indexSchedule(schedule []domain.ScheduleItem) map[string]domain.ScheduleItem {
	idx := make(map[string]domain.ScheduleItem, len(schedule))
	for _, it := range schedule {
		if _, ok := idx[it.ProjectID]; !ok {
			idx[it.ProjectID] = it
		}
	}
	return idx
}

// ScheduledDateOf returns the scheduled date of a project, if any.
func ScheduledDateOf(projectID string, schedule []domain.ScheduleItem) (time.Time, bool) {
	for _, it := range schedule {
		if it.ProjectID == projectID {
			return it.Date, true
		}
	}
	return time.Time{}, false
}

// IsScheduledInPast reports whether the project has a schedule date strictly
// before today. Only the calendar day is compared.
func IsScheduledInPast(projectID string, schedule []domain.ScheduleItem, today time.Time) bool {
	d, ok := ScheduledDateOf(projectID, schedule)
	if !ok {
		return false
	}
	return domain.DaysBetween(d, today) < 0
}

// BucketOf returns which bucket a single project belongs to.
func BucketOf(p domain.Project, schedule []domain.ScheduleItem, today time.Time) domain.Bucket {
	if domain.IsArchivedStatus(p.Status) || IsScheduledInPast(p.ID, schedule, today) {
		return domain.BucketPublished
	}
	return domain.BucketPipeline
}

// PartitionProjects splits projects into pipeline and published. An archived
// project is published even when its schedule date is still in the future.
//
// Published is ordered with scheduled projects first, most recent date
// first, followed by unscheduled archived projects in input order.
// Pipeline keeps input order; callers apply Sort.
func PartitionProjects(projects []domain.Project, schedule []domain.ScheduleItem, today time.Time) Partition {
	idx := indexSchedule(schedule)
	var out Partition
	for _, p := range projects {
		it, scheduled := idx[p.ID]
		past := scheduled && domain.DaysBetween(it.Date, today) < 0
		if past || domain.IsArchivedStatus(p.Status) {
			out.Published = append(out.Published, p)
			continue
		}
		out.Pipeline = append(out.Pipeline, p)
	}

	sort.SliceStable(out.Published, func(i, j int) bool {
		a, aOK := idx[out.Published[i].ID]
		b, bOK := idx[out.Published[j].ID]
		if aOK != bOK {
			return aOK
		}
		if !aOK {
			return false
		}
		return a.Date.After(b.Date)
	})
	return out
}
