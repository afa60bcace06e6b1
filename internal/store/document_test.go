package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.Local)

func projectDoc(tasks ...string) *Document {
	doc := NewDocument()
	doc.ReplaceProject("learn go", len(tasks), tasks, monday)
	return doc
}

func TestCompleteTask(t *testing.T) {
	doc := projectDoc("a", "b", "c")

	task, err := doc.CompleteTask(1, monday)
	require.NoError(t, err)
	assert.Equal(t, "b", task)
	assert.Equal(t, []string{"b"}, doc.Current.Completed)
	assert.Equal(t, []string{"b"}, doc.DailyLogs["2026-10-19"].CompletedTasks)
	assert.Empty(t, doc.DailyLogs["2026-10-19"].Notes)
}

func TestCompleteTaskTwice(t *testing.T) {
	doc := projectDoc("a", "b")

	_, err := doc.CompleteTask(0, monday)
	require.NoError(t, err)

	task, err := doc.CompleteTask(0, monday)
	require.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, "a", task)
	assert.Equal(t, []string{"a"}, doc.Current.Completed)
	assert.Equal(t, []string{"a"}, doc.DailyLogs["2026-10-19"].CompletedTasks)
}

func TestCompleteTaskDuplicateNames(t *testing.T) {
	doc := projectDoc("same", "same")

	_, err := doc.CompleteTask(0, monday)
	require.NoError(t, err)
	_, err = doc.CompleteTask(1, monday)
	require.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Len(t, doc.Current.Completed, 1)
}

func TestCompleteTaskOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3, 100} {
		doc := projectDoc("a", "b", "c")
		before := doc.Clone()

		_, err := doc.CompleteTask(idx, monday)
		require.ErrorIs(t, err, ErrTaskIndex, "index %d", idx)
		assert.Equal(t, before, doc)
	}
}

func TestCompleteTaskNoProject(t *testing.T) {
	doc := NewDocument()
	_, err := doc.CompleteTask(0, monday)
	require.ErrorIs(t, err, ErrNoProject)
}

func TestAddNote(t *testing.T) {
	doc := projectDoc("a")

	require.NoError(t, doc.AddNote("read chapter 1", monday))
	require.NoError(t, doc.AddNote("did exercises", monday.Add(2*time.Hour)))

	log := doc.DailyLogs["2026-10-19"]
	assert.Equal(t, []Note{
		{Text: "read chapter 1", Time: "09:30"},
		{Text: "did exercises", Time: "11:30"},
	}, log.Notes)
	assert.Empty(t, log.CompletedTasks)

	assert.ErrorIs(t, NewDocument().AddNote("x", monday), ErrNoProject)
}

func TestReplaceProjectResetsCompletion(t *testing.T) {
	doc := projectDoc("a", "b")
	_, err := doc.CompleteTask(0, monday)
	require.NoError(t, err)

	doc.ReplaceProject("ship app", 2, []string{"x", "y"}, monday.AddDate(0, 0, 1))

	assert.Equal(t, "ship app", doc.Current.Goal)
	assert.Equal(t, "2026-10-20", doc.Current.CreatedAt)
	assert.Empty(t, doc.Current.Completed)
	// the audit trail survives a project change
	assert.Equal(t, []string{"a"}, doc.DailyLogs["2026-10-19"].CompletedTasks)
}

func TestReplaceTasks(t *testing.T) {
	doc := NewDocument()
	require.ErrorIs(t, doc.ReplaceTasks(nil, monday), ErrEmptyTasks)
	assert.Nil(t, doc.Current)

	require.NoError(t, doc.ReplaceTasks([]string{"a", "b", "c"}, monday))
	assert.Equal(t, ChatPlanGoal, doc.Current.Goal)
	assert.Equal(t, 3, doc.Current.Days)

	doc.Current.Goal = "ship app"
	_, err := doc.CompleteTask(0, monday)
	require.NoError(t, err)

	require.NoError(t, doc.ReplaceTasks([]string{"x"}, monday))
	assert.Equal(t, "ship app", doc.Current.Goal)
	assert.Equal(t, []string{"x"}, doc.Current.Tasks)
	assert.Empty(t, doc.Current.Completed)
}

func TestCloneIsDeep(t *testing.T) {
	doc := projectDoc("a", "b")
	require.NoError(t, doc.AddNote("n", monday))

	c := doc.Clone()
	c.Current.Tasks[0] = "changed"
	c.Current.Completed = append(c.Current.Completed, "b")
	log := c.DailyLogs["2026-10-19"]
	log.Notes[0].Text = "changed"

	assert.Equal(t, "a", doc.Current.Tasks[0])
	assert.Empty(t, doc.Current.Completed)
	assert.Equal(t, "n", doc.DailyLogs["2026-10-19"].Notes[0].Text)
}
