package service

import (
	"context"
	"time"

	"taskboard/internal/apperror"
	"taskboard/internal/cache"
	"taskboard/internal/core/model"
	"taskboard/internal/core/repository"
)

// CreateBoardInput carries the create-path fields as they arrive on
// the wire: checklist comma-joined, due date as MM/DD/YYYY.
type CreateBoardInput struct {
	Title     string
	Priority  string
	Checklist string
	DueDate   string
	CB        []string
	Status    string
}

// EditBoardInput carries the edit-path fields. DueDate, Completed,
// Status and CB apply only when present; title, priority and checklist
// are required like on create.
type EditBoardInput struct {
	Title     string
	Priority  string
	Checklist string
	DueDate   string
	Completed *bool
	Status    string
	CB        []string
}

type BoardService interface {
	// Create persists a new board unless one with identical title,
	// priority, checklist and due date already exists. The returned
	// bool reports whether a pre-existing match was found.
	Create(in CreateBoardInput) (*model.Board, bool, error)
	Edit(id string, in EditBoardInput) error
	Get(id string) (*model.Board, error)
	UpdateStatus(id, newStatus string) error
	Delete(id string) error
	SweepOverdue(cutoff time.Time) error
	QueryByWindow(duration, status string) ([]*model.Board, error)
	Analytics() (*model.AnalyticsSnapshot, error)
}

type boardService struct {
	boardRepo repository.BoardRepository
}

func NewBoardService(boardRepo repository.BoardRepository) BoardService {
	return &boardService{
		boardRepo: boardRepo,
	}
}

func (s *boardService) Create(in CreateBoardInput) (*model.Board, bool, error) {
	if in.Title == "" || in.Priority == "" || in.Checklist == "" {
		return nil, false, apperror.NewValidation("Bad Request")
	}

	dueDate, err := model.ParseDueDate(in.DueDate)
	if err != nil {
		return nil, false, err
	}

	status, err := model.ValidateStatus(in.Status)
	if err != nil {
		return nil, false, err
	}

	checklist := model.SplitChecklist(in.Checklist)

	existing, err := s.boardRepo.FindByDetails(in.Title, in.Priority, checklist, dueDate)
	if err != nil {
		return nil, false, apperror.NewInternal("Internal Server Error", err)
	}
	if existing != nil {
		return existing, true, nil
	}

	board := model.NewBoard(in.Title, in.Priority, checklist, in.CB, dueDate, status)
	if err := s.boardRepo.Create(board); err != nil {
		return nil, false, apperror.NewInternal("Internal Server Error", err)
	}

	cache.InvalidateAnalytics(context.Background())
	return board, false, nil
}

func (s *boardService) Edit(id string, in EditBoardInput) error {
	if in.Title == "" || in.Priority == "" || in.Checklist == "" {
		return apperror.NewValidation("Bad Request")
	}

	// Parse and validate every input before touching the stored record,
	// so a rejected edit leaves it untouched.
	var dueDate *time.Time
	if in.DueDate != "" {
		var err error
		// Unlike create, the edit path takes the due date as-is.
		dueDate, err = model.ParseEditDueDate(in.DueDate)
		if err != nil {
			return err
		}
	}

	var status string
	if in.Status != "" {
		var err error
		status, err = model.ValidateStatus(in.Status)
		if err != nil {
			return err
		}
	}

	board, err := s.boardRepo.FindByID(id)
	if err != nil {
		return apperror.NewInternal("Internal Server Error", err)
	}
	if board == nil {
		return apperror.NewNotFound("Board not found")
	}

	// Apply the edit to a copy; repositories may hand back live records.
	updated := *board
	updated.Title = in.Title
	updated.Priority = in.Priority
	updated.Checklist = model.SplitChecklist(in.Checklist)

	if dueDate != nil {
		updated.DueDate = dueDate
	}
	if in.Completed != nil {
		updated.Completed = *in.Completed
	}
	if status != "" {
		updated.Status = status
	}
	if in.CB != nil {
		updated.CB = in.CB
	}

	if err := s.boardRepo.Update(&updated); err != nil {
		return apperror.NewInternal("Internal Server Error", err)
	}

	cache.InvalidateAnalytics(context.Background())
	return nil
}

func (s *boardService) Get(id string) (*model.Board, error) {
	if id == "" {
		return nil, apperror.NewValidation("Bad Request: Missing board ID")
	}

	board, err := s.boardRepo.FindByID(id)
	if err != nil {
		return nil, apperror.NewInternal("Internal Server Error", err)
	}
	if board == nil {
		return nil, apperror.NewNotFound("Board not found")
	}
	return board, nil
}

func (s *boardService) UpdateStatus(id, newStatus string) error {
	if id == "" || newStatus == "" {
		return apperror.NewValidation("Missing required fields in the request")
	}

	status, err := model.ValidateStatus(newStatus)
	if err != nil {
		return err
	}

	board, err := s.boardRepo.FindByID(id)
	if err != nil {
		return apperror.NewInternal("Internal Server Error", err)
	}
	if board == nil {
		return apperror.NewNotFound("Board not found")
	}

	if err := s.boardRepo.UpdateStatus(id, status); err != nil {
		return apperror.NewInternal("Internal Server Error", err)
	}

	cache.InvalidateAnalytics(context.Background())
	return nil
}

func (s *boardService) Delete(id string) error {
	board, err := s.boardRepo.FindByID(id)
	if err != nil {
		return apperror.NewInternal("Internal Server Error", err)
	}
	if board == nil {
		return apperror.NewNotFound("Board not found")
	}

	if err := s.boardRepo.Delete(id); err != nil {
		return apperror.NewInternal("Internal Server Error", err)
	}

	cache.InvalidateAnalytics(context.Background())
	return nil
}

// SweepOverdue flips completed to false on every board due before
// cutoff, regardless of its status.
func (s *boardService) SweepOverdue(cutoff time.Time) error {
	if err := s.boardRepo.MarkOverdue(cutoff); err != nil {
		return apperror.NewInternal("Internal Server Error", err)
	}

	cache.InvalidateAnalytics(context.Background())
	return nil
}

func (s *boardService) QueryByWindow(duration, status string) ([]*model.Board, error) {
	now := time.Now()

	var start time.Time
	switch duration {
	case "week":
		start = now.Add(-7 * 24 * time.Hour)
	case "month":
		start = now.Add(-30 * 24 * time.Hour)
	case "today":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	default:
		return nil, apperror.NewValidation("Invalid duration")
	}

	boards, err := s.boardRepo.FindByWindow(start, status)
	if err != nil {
		return nil, apperror.NewInternal("Internal Server Error", err)
	}
	return boards, nil
}

func (s *boardService) Analytics() (*model.AnalyticsSnapshot, error) {
	ctx := context.Background()
	if snapshot := cache.GetAnalytics(ctx); snapshot != nil {
		return snapshot, nil
	}

	snapshot := &model.AnalyticsSnapshot{}
	now := time.Now()

	counts := []struct {
		dest  *int64
		count func() (int64, error)
	}{
		{&snapshot.HighPriority, func() (int64, error) { return s.boardRepo.CountByPriority(model.PriorityHigh) }},
		{&snapshot.LowPriority, func() (int64, error) { return s.boardRepo.CountByPriority(model.PriorityLow) }},
		{&snapshot.ModeratePriority, func() (int64, error) { return s.boardRepo.CountByPriority(model.PriorityModerate) }},
		{&snapshot.Todo, func() (int64, error) { return s.boardRepo.CountByStatus(model.StatusTodo) }},
		{&snapshot.Backlog, func() (int64, error) { return s.boardRepo.CountByStatus(model.StatusBacklog) }},
		{&snapshot.Done, func() (int64, error) { return s.boardRepo.CountByStatus(model.StatusDone) }},
		{&snapshot.InProgress, func() (int64, error) { return s.boardRepo.CountByStatus(model.StatusInProgress) }},
		{&snapshot.IncompleteDueTasks, func() (int64, error) { return s.boardRepo.CountOverdueDone(now) }},
	}

	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			return nil, apperror.NewInternal("Internal Server Error", err)
		}
		*c.dest = n
	}

	cache.SetAnalytics(ctx, snapshot)
	return snapshot, nil
}
