package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/apperror"
)

func TestSplitChecklist(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitChecklist("a,b,c"))
	assert.Equal(t, []string{"single"}, SplitChecklist("single"))
	// No escaping: an empty segment stays an empty item.
	assert.Equal(t, []string{"a", "", "b"}, SplitChecklist("a,,b"))
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("01/02/2024")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDueDateAbsent(t *testing.T) {
	got, err := ParseDueDate("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseDueDateInvalid(t *testing.T) {
	_, err := ParseDueDate("2024-01-02")
	require.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.ValidationError))
}

func TestParseEditDueDateLayouts(t *testing.T) {
	for _, raw := range []string{"2024-03-04", "03/04/2024", "2024-03-04T10:30:00Z"} {
		got, err := ParseEditDueDate(raw)
		require.NoError(t, err, "layout %q", raw)
		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.March, got.Month())
	}

	_, err := ParseEditDueDate("next tuesday")
	assert.True(t, apperror.IsType(err, apperror.ValidationError))
}

func TestValidateStatus(t *testing.T) {
	for _, status := range []string{StatusTodo, StatusDone, StatusBacklog, StatusInProgress} {
		got, err := ValidateStatus(status)
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	got, err := ValidateStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusTodo, got)

	_, err = ValidateStatus("Archived")
	assert.True(t, apperror.IsType(err, apperror.ValidationError))
}

func TestNewBoardDefaults(t *testing.T) {
	board := NewBoard("T", "HIGH", []string{"a"}, nil, nil, StatusTodo)

	assert.NotEmpty(t, board.ID)
	assert.True(t, board.Completed)
	assert.Equal(t, StatusTodo, board.Status)
	assert.Nil(t, board.DueDate)
	assert.WithinDuration(t, time.Now(), board.CreatedDate, time.Second)
}
