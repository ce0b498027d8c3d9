package model

import (
	"strings"
	"time"

	"taskboard/internal/apperror"
	"taskboard/internal/core/util"
)

// The four board statuses. Status is validated against this set on
// every write path; the default is StatusTodo.
const (
	StatusTodo       = "To do"
	StatusDone       = "Done"
	StatusBacklog    = "Backlog"
	StatusInProgress = "In progress"
)

// Priority literals counted by the analytics snapshot. Board creation
// accepts priority as free text, so boards written with other literals
// simply fall outside these counts.
const (
	PriorityHigh     = "HIGH PRIORITY"
	PriorityLow      = "LOW PRIORITY"
	PriorityModerate = "MODERATE PRIORITY"
)

type Board struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Priority    string     `json:"priority"`
	Checklist   []string   `json:"checklist"`
	CB          []string   `json:"cb"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedDate time.Time  `json:"createdDate"`
	// Completed defaults to true and means "not yet swept as overdue";
	// the due-date sweep flips it to false.
	Completed bool   `json:"completed"`
	Status    string `json:"status"`
}

func NewBoard(title, priority string, checklist, cb []string, dueDate *time.Time, status string) *Board {
	return &Board{
		ID:          util.GenerateID(),
		Title:       title,
		Priority:    priority,
		Checklist:   checklist,
		CB:          cb,
		DueDate:     dueDate,
		CreatedDate: time.Now(),
		Completed:   true,
		Status:      status,
	}
}

// ValidateStatus checks a client-supplied status against the closed
// set. An empty status falls back to StatusTodo.
func ValidateStatus(status string) (string, error) {
	if status == "" {
		return StatusTodo, nil
	}
	switch status {
	case StatusTodo, StatusDone, StatusBacklog, StatusInProgress:
		return status, nil
	}
	return "", apperror.NewValidation("invalid status value")
}

// SplitChecklist turns the comma-joined wire form into an ordered
// sequence. There is no escaping, so items cannot contain commas.
func SplitChecklist(checklist string) []string {
	return strings.Split(checklist, ",")
}

// ParseDueDate normalizes the create-path due date from MM/DD/YYYY into
// a timezone-naive calendar date. Empty input means no due date.
func ParseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("01/02/2006", raw)
	if err != nil {
		return nil, apperror.New(apperror.ValidationError, "invalid due date, expected MM/DD/YYYY", err)
	}
	t = t.UTC()
	return &t, nil
}

// editDueDateLayouts are the formats accepted on the edit path, which
// takes due dates as-is instead of normalizing like the create path.
var editDueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
}

// ParseEditDueDate parses the edit-path due date without the create
// path's calendar-date normalization.
func ParseEditDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range editDueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperror.NewValidation("invalid due date")
}
