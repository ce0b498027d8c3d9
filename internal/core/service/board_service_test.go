package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/apperror"
	"taskboard/internal/core/model"
	"taskboard/internal/core/repository"
)

func newBoardService() BoardService {
	return NewBoardService(repository.NewInMemoryBoardRepository())
}

func TestCreateBoard(t *testing.T) {
	svc := newBoardService()

	board, existed, err := svc.Create(CreateBoardInput{
		Title:     "T",
		Priority:  "HIGH",
		Checklist: "a,b,c",
		DueDate:   "01/02/2024",
	})
	require.NoError(t, err)
	assert.False(t, existed)

	assert.Equal(t, []string{"a", "b", "c"}, board.Checklist)
	assert.Equal(t, model.StatusTodo, board.Status)
	assert.True(t, board.Completed)
	require.NotNil(t, board.DueDate)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *board.DueDate)
}

func TestCreateBoardMissingFields(t *testing.T) {
	svc := newBoardService()

	cases := []CreateBoardInput{
		{Priority: "HIGH", Checklist: "a"},
		{Title: "T", Checklist: "a"},
		{Title: "T", Priority: "HIGH"},
	}
	for _, in := range cases {
		_, _, err := svc.Create(in)
		assert.True(t, apperror.IsType(err, apperror.ValidationError), "input %+v", in)
	}
}

func TestCreateBoardDuplicate(t *testing.T) {
	svc := newBoardService()

	in := CreateBoardInput{Title: "T", Priority: "HIGH", Checklist: "a,b", DueDate: "01/02/2024"}

	_, existed, err := svc.Create(in)
	require.NoError(t, err)
	assert.False(t, existed)

	_, existed, err = svc.Create(in)
	require.NoError(t, err)
	assert.True(t, existed)

	// Only one record made it into the store.
	boards, err := svc.QueryByWindow("today", model.StatusTodo)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}

func TestCreateBoardInvalidStatus(t *testing.T) {
	svc := newBoardService()

	_, _, err := svc.Create(CreateBoardInput{Title: "T", Priority: "HIGH", Checklist: "a", Status: "Archived"})
	assert.True(t, apperror.IsType(err, apperror.ValidationError))
}

func TestUpdateStatus(t *testing.T) {
	svc := newBoardService()

	board, _, err := svc.Create(CreateBoardInput{Title: "T", Priority: "HIGH", Checklist: "a,b", DueDate: "01/02/2024"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(board.ID, model.StatusDone))

	got, err := svc.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, got.Status)

	// Everything else untouched.
	assert.Equal(t, board.Title, got.Title)
	assert.Equal(t, board.Priority, got.Priority)
	assert.Equal(t, board.Checklist, got.Checklist)
	assert.Equal(t, board.DueDate, got.DueDate)
	assert.True(t, got.Completed)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc := newBoardService()

	err := svc.UpdateStatus("missing", model.StatusDone)
	assert.True(t, apperror.IsType(err, apperror.NotFoundError))
}

func TestUpdateStatusMissingFields(t *testing.T) {
	svc := newBoardService()

	assert.True(t, apperror.IsType(svc.UpdateStatus("", model.StatusDone), apperror.ValidationError))
	assert.True(t, apperror.IsType(svc.UpdateStatus("some-id", ""), apperror.ValidationError))
}

func TestEditBoard(t *testing.T) {
	svc := newBoardService()

	board, _, err := svc.Create(CreateBoardInput{Title: "T", Priority: "HIGH", Checklist: "a,b"})
	require.NoError(t, err)

	completed := false
	err = svc.Edit(board.ID, EditBoardInput{
		Title:     "T2",
		Priority:  "LOW",
		Checklist: "x,y,z",
		DueDate:   "2024-06-01",
		Completed: &completed,
		Status:    model.StatusBacklog,
		CB:        []string{"alice"},
	})
	require.NoError(t, err)

	got, err := svc.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "LOW", got.Priority)
	assert.Equal(t, []string{"x", "y", "z"}, got.Checklist)
	assert.Equal(t, model.StatusBacklog, got.Status)
	assert.Equal(t, []string{"alice"}, got.CB)
	assert.False(t, got.Completed)
	require.NotNil(t, got.DueDate)
}

func TestEditBoardPartialFieldsUntouched(t *testing.T) {
	svc := newBoardService()

	board, _, err := svc.Create(CreateBoardInput{
		Title: "T", Priority: "HIGH", Checklist: "a,b", DueDate: "01/02/2024",
		CB: []string{"alice"}, Status: model.StatusDone,
	})
	require.NoError(t, err)

	err = svc.Edit(board.ID, EditBoardInput{Title: "T2", Priority: "HIGH", Checklist: "a,b"})
	require.NoError(t, err)

	got, err := svc.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, model.StatusDone, got.Status)
	assert.Equal(t, []string{"alice"}, got.CB)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.Completed)
}

func TestEditBoardMissingRequiredFields(t *testing.T) {
	svc := newBoardService()

	board, _, err := svc.Create(CreateBoardInput{Title: "T", Priority: "HIGH", Checklist: "a"})
	require.NoError(t, err)

	err = svc.Edit(board.ID, EditBoardInput{Priority: "HIGH", Checklist: "a"})
	assert.True(t, apperror.IsType(err, apperror.ValidationError))
}

func TestEditBoardRejectedInputLeavesRecordUntouched(t *testing.T) {
	svc := newBoardService()

	board, _, err := svc.Create(CreateBoardInput{
		Title: "orig", Priority: "HIGH", Checklist: "a,b", DueDate: "01/02/2024",
	})
	require.NoError(t, err)

	// A rejected edit must not apply any of its fields.
	err = svc.Edit(board.ID, EditBoardInput{
		Title: "mutated", Priority: "LOW", Checklist: "x,y", DueDate: "not-a-date",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.ValidationError))

	got, err := svc.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", got.Title)
	assert.Equal(t, "HIGH", got.Priority)
	assert.Equal(t, []string{"a", "b"}, got.Checklist)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *got.DueDate)

	// Same for an invalid status.
	err = svc.Edit(board.ID, EditBoardInput{
		Title: "mutated", Priority: "LOW", Checklist: "x,y", Status: "Archived",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.ValidationError))

	got, err = svc.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", got.Title)
	assert.Equal(t, model.StatusTodo, got.Status)
}

func TestEditBoardUnknownID(t *testing.T) {
	svc := newBoardService()

	err := svc.Edit("missing", EditBoardInput{Title: "T", Priority: "HIGH", Checklist: "a"})
	assert.True(t, apperror.IsType(err, apperror.NotFoundError))
}

func TestDeleteBoard(t *testing.T) {
	svc := newBoardService()

	board, _, err := svc.Create(CreateBoardInput{Title: "T", Priority: "HIGH", Checklist: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(board.ID))

	_, err = svc.Get(board.ID)
	assert.True(t, apperror.IsType(err, apperror.NotFoundError))

	err = svc.Delete(board.ID)
	assert.True(t, apperror.IsType(err, apperror.NotFoundError))
}

func TestSweepOverdue(t *testing.T) {
	svc := newBoardService()

	overdue, _, err := svc.Create(CreateBoardInput{Title: "past", Priority: "HIGH", Checklist: "a", DueDate: "01/02/2024"})
	require.NoError(t, err)
	future, _, err := svc.Create(CreateBoardInput{Title: "future", Priority: "HIGH", Checklist: "a", DueDate: "01/02/2099"})
	require.NoError(t, err)
	undated, _, err := svc.Create(CreateBoardInput{Title: "undated", Priority: "HIGH", Checklist: "a"})
	require.NoError(t, err)

	// Sweep runs regardless of status.
	require.NoError(t, svc.UpdateStatus(overdue.ID, model.StatusDone))

	require.NoError(t, svc.SweepOverdue(time.Now()))

	got, err := svc.Get(overdue.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)

	got, err = svc.Get(future.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	got, err = svc.Get(undated.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestQueryByWindow(t *testing.T) {
	svc := newBoardService()

	_, _, err := svc.Create(CreateBoardInput{Title: "todo", Priority: "HIGH", Checklist: "a"})
	require.NoError(t, err)
	done, _, err := svc.Create(CreateBoardInput{Title: "done", Priority: "HIGH", Checklist: "b", Status: model.StatusDone})
	require.NoError(t, err)

	boards, err := svc.QueryByWindow("today", model.StatusTodo)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "todo", boards[0].Title)

	boards, err = svc.QueryByWindow("week", model.StatusDone)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, done.ID, boards[0].ID)

	// Status is an exact required match: a bogus status matches nothing.
	boards, err = svc.QueryByWindow("month", "nonsense")
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestQueryByWindowInvalidDuration(t *testing.T) {
	svc := newBoardService()

	_, err := svc.QueryByWindow("year", model.StatusTodo)
	assert.True(t, apperror.IsType(err, apperror.ValidationError))
}

func TestAnalytics(t *testing.T) {
	svc := newBoardService()

	_, _, err := svc.Create(CreateBoardInput{Title: "h1", Priority: model.PriorityHigh, Checklist: "a"})
	require.NoError(t, err)
	_, _, err = svc.Create(CreateBoardInput{Title: "h2", Priority: model.PriorityHigh, Checklist: "b"})
	require.NoError(t, err)
	_, _, err = svc.Create(CreateBoardInput{Title: "m1", Priority: model.PriorityModerate, Checklist: "c", Status: model.StatusInProgress})
	require.NoError(t, err)

	// A done, past-due, swept board counts as an incomplete due task.
	_, _, err = svc.Create(CreateBoardInput{
		Title: "late", Priority: model.PriorityLow, Checklist: "d",
		DueDate: "01/02/2024", Status: model.StatusDone,
	})
	require.NoError(t, err)
	require.NoError(t, svc.SweepOverdue(time.Now()))

	snapshot, err := svc.Analytics()
	require.NoError(t, err)

	assert.Equal(t, int64(2), snapshot.HighPriority)
	assert.Equal(t, int64(1), snapshot.ModeratePriority)
	assert.Equal(t, int64(1), snapshot.LowPriority)
	assert.Equal(t, int64(2), snapshot.Todo)
	assert.Equal(t, int64(1), snapshot.InProgress)
	assert.Equal(t, int64(1), snapshot.Done)
	assert.Equal(t, int64(0), snapshot.Backlog)
	assert.Equal(t, int64(1), snapshot.IncompleteDueTasks)
}
