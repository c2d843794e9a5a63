package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/donepath/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ids(tasks []models.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestCategorizePartition(t *testing.T) {
	today := *date(2024, 6, 1)
	tasks := []models.Task{
		{ID: 1, Content: "past", DueDate: date(2024, 1, 1)},
		{ID: 2, Content: "today", DueDate: date(2024, 6, 1)},
		{ID: 3, Content: "future", DueDate: date(2024, 12, 24)},
		{ID: 4, Content: "dateless"},
		{ID: 5, Content: "done past", Completed: true, DueDate: date(2023, 3, 3)},
		{ID: 6, Content: "done dateless", Completed: true},
	}

	b := Categorize(tasks, today)

	assert.Equal(t, []int64{1}, ids(b.Overdue))
	assert.Equal(t, []int64{2, 3, 4}, ids(b.Upcoming))
	assert.Equal(t, []int64{5, 6}, ids(b.Completed))

	// every task lands in exactly one bucket
	assert.Equal(t, len(tasks), len(b.Overdue)+len(b.Upcoming)+len(b.Completed))
	seen := map[int64]int{}
	for _, bucket := range [][]models.Task{b.Overdue, b.Upcoming, b.Completed} {
		for _, task := range bucket {
			seen[task.ID]++
		}
	}
	for id, n := range seen {
		assert.Equalf(t, 1, n, "task %d appears %d times", id, n)
	}
}

func TestCategorizeDueTodayIsUpcoming(t *testing.T) {
	b := Categorize([]models.Task{{ID: 1, DueDate: date(2024, 6, 1)}}, *date(2024, 6, 1))
	assert.Empty(t, b.Overdue)
	assert.Equal(t, []int64{1}, ids(b.Upcoming))
}

func TestCategorizeCompletedIgnoresDueDate(t *testing.T) {
	b := Categorize([]models.Task{
		{ID: 1, Completed: true, DueDate: date(2020, 1, 1)},
		{ID: 2, Completed: true, DueDate: date(2030, 1, 1)},
		{ID: 3, Completed: true},
	}, *date(2024, 6, 1))
	assert.Empty(t, b.Overdue)
	assert.Empty(t, b.Upcoming)
	assert.Equal(t, []int64{1, 2, 3}, ids(b.Completed))
}

func TestCategorizeSortOrder(t *testing.T) {
	today := *date(2024, 6, 1)
	tasks := []models.Task{
		{ID: 1, DueDate: date(2024, 7, 1), Priority: 1},
		{ID: 2, Priority: 3},
		{ID: 3, DueDate: date(2024, 6, 10), Priority: 1},
		{ID: 4, DueDate: date(2024, 6, 10), Priority: 5},
		{ID: 5, Priority: 1},
	}

	b := Categorize(tasks, today)

	// due date ascending, nils last; same date ordered by priority descending
	assert.Equal(t, []int64{4, 3, 1, 2, 5}, ids(b.Upcoming))
}

func TestCategorizeOverdueSortOrder(t *testing.T) {
	today := *date(2024, 6, 1)
	tasks := []models.Task{
		{ID: 1, DueDate: date(2024, 5, 1), Priority: 1},
		{ID: 2, DueDate: date(2024, 5, 1), Priority: 9},
		{ID: 3, DueDate: date(2024, 4, 1), Priority: 1},
	}

	b := Categorize(tasks, today)
	assert.Equal(t, []int64{3, 2, 1}, ids(b.Overdue))
}

func TestFilterPriority(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Priority: 1},
		{ID: 2, Priority: 2},
		{ID: 3, Priority: 1},
	}

	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{"exact match", "1", []int64{1, 3}},
		{"no match", "7", []int64{}},
		{"blank is ignored", "", []int64{1, 2, 3}},
		{"garbage is ignored", "high", []int64{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(FilterPriority(tasks, tc.raw)))
		})
	}
}

func TestPayBillsScenario(t *testing.T) {
	today := *date(2024, 6, 1)
	task := models.Task{ID: 1, Content: "pay bills", DueDate: date(2024, 1, 1), Priority: 2}

	b := Categorize([]models.Task{task}, today)
	require.Equal(t, []int64{1}, ids(b.Overdue))
	assert.Empty(t, b.Upcoming)
	assert.Empty(t, b.Completed)

	task.Completed = true
	b = Categorize([]models.Task{task}, today)
	assert.Empty(t, b.Overdue)
	require.Equal(t, []int64{1}, ids(b.Completed))

	task.Completed = false
	b = Categorize([]models.Task{task}, today)
	assert.Equal(t, []int64{1}, ids(b.Overdue))
}
