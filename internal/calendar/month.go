// Package calendar lays scheduled projects out on a month grid and throttles
// view navigation.
package calendar

import (
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Entry joins a schedule item with the project it references.
type Entry struct {
	Item    domain.ScheduleItem
	Project domain.Project
}

type Day struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Entries []Entry
}

type Month struct {
	Year  int
	Month time.Month
	Weeks [][7]Day
}

// Join pairs schedule items with their projects. Items whose project no
// longer exists are dropped. The result is ordered by date, then by schedule
// position.
func Join(state domain.State) []Entry {
	byID := make(map[string]domain.Project, len(state.Projects))
	for _, p := range state.Projects {
		byID[p.ID] = p
	}
	var out []Entry
	for _, it := range state.Schedule {
		p, ok := byID[it.ProjectID]
		if !ok {
			continue
		}
		out = append(out, Entry{Item: it, Project: p})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return domain.DaysBetween(out[i].Item.Date, out[j].Item.Date) < 0
	})
	return out
}

// BuildMonth returns the grid for year/month. Weeks start on weekStart and
// include leading and trailing days from adjacent months.
func BuildMonth(year int, month time.Month, state domain.State, today time.Time, weekStart time.Weekday) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	cursor := first.AddDate(0, 0, -offset)

	byDay := make(map[string][]Entry)
	for _, e := range Join(state) {
		k := domain.FormatDate(e.Item.Date)
		byDay[k] = append(byDay[k], e)
	}

	m := Month{Year: year, Month: month}
	for {
		var week [7]Day
		for i := range week {
			week[i] = Day{
				Date:    cursor,
				InMonth: cursor.Month() == month,
				IsToday: domain.SameDay(cursor, today),
				Entries: byDay[domain.FormatDate(cursor)],
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		m.Weeks = append(m.Weeks, week)
		if cursor.Month() != month {
			break
		}
	}
	return m
}
