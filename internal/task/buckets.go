package task

import (
	"sort"
	"strconv"
	"time"

	"github.com/ayush/donepath/internal/models"
)

// Buckets is the three-way partition of a user's tasks rendered on the home
// view. The sets are disjoint and together cover every task passed in.
type Buckets struct {
	Overdue   []models.Task
	Upcoming  []models.Task
	Completed []models.Task
}

// Categorize splits tasks into overdue, upcoming, and completed buckets
// relative to today (a date-only value). Completed tasks land in Completed
// regardless of due date; incomplete tasks with a due date before today are
// overdue, everything else (including tasks with no due date) is upcoming.
// Each bucket is sorted by due date ascending with missing dates last, ties
// broken by priority descending.
func Categorize(tasks []models.Task, today time.Time) Buckets {
	today = DateOnly(today)

	var b Buckets
	for _, t := range tasks {
		switch {
		case t.Completed:
			b.Completed = append(b.Completed, t)
		case t.DueDate != nil && DateOnly(*t.DueDate).Before(today):
			b.Overdue = append(b.Overdue, t)
		default:
			b.Upcoming = append(b.Upcoming, t)
		}
	}

	sortBucket(b.Overdue)
	sortBucket(b.Upcoming)
	sortBucket(b.Completed)
	return b
}

// FilterPriority restricts tasks to the given priority. A blank or
// non-numeric value leaves the set unchanged: the read path is lenient.
func FilterPriority(tasks []models.Task, raw string) []models.Task {
	if raw == "" {
		return tasks
	}
	p, err := strconv.Atoi(raw)
	if err != nil {
		return tasks
	}
	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Priority == p {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// DateOnly truncates t to midnight UTC so calendar dates compare cleanly.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortBucket(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return a.Priority > b.Priority
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		default:
			return a.Priority > b.Priority
		}
	})
}
