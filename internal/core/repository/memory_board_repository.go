package repository

import (
	"sync"
	"time"

	"taskboard/internal/core/model"
)

type inMemoryBoardRepository struct {
	boards map[string]*model.Board
	mutex  sync.RWMutex
}

func NewInMemoryBoardRepository() BoardRepository {
	return &inMemoryBoardRepository{
		boards: make(map[string]*model.Board),
	}
}

func (r *inMemoryBoardRepository) Create(board *model.Board) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.boards[board.ID] = board
	return nil
}

func (r *inMemoryBoardRepository) Update(board *model.Board) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.boards[board.ID] = board
	return nil
}

func (r *inMemoryBoardRepository) UpdateStatus(id, status string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if board, exists := r.boards[id]; exists {
		board.Status = status
	}
	return nil
}

func (r *inMemoryBoardRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.boards, id)
	return nil
}

func (r *inMemoryBoardRepository) FindByID(id string) (*model.Board, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if board, exists := r.boards[id]; exists {
		return board, nil
	}
	return nil, nil
}

func (r *inMemoryBoardRepository) FindByDetails(title, priority string, checklist []string, dueDate *time.Time) (*model.Board, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, board := range r.boards {
		if board.Title == title && board.Priority == priority &&
			equalStrings(board.Checklist, checklist) && equalDates(board.DueDate, dueDate) {
			return board, nil
		}
	}
	return nil, nil
}

func (r *inMemoryBoardRepository) FindByWindow(start time.Time, status string) ([]*model.Board, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Board
	for _, board := range r.boards {
		if !board.CreatedDate.Before(start) && board.Status == status {
			result = append(result, board)
		}
	}
	return result, nil
}

func (r *inMemoryBoardRepository) MarkOverdue(cutoff time.Time) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, board := range r.boards {
		if board.DueDate != nil && board.DueDate.Before(cutoff) {
			board.Completed = false
		}
	}
	return nil
}

func (r *inMemoryBoardRepository) CountByPriority(priority string) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var count int64
	for _, board := range r.boards {
		if board.Priority == priority {
			count++
		}
	}
	return count, nil
}

func (r *inMemoryBoardRepository) CountByStatus(status string) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var count int64
	for _, board := range r.boards {
		if board.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *inMemoryBoardRepository) CountOverdueDone(now time.Time) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var count int64
	for _, board := range r.boards {
		if board.Status == model.StatusDone && !board.Completed &&
			board.DueDate != nil && board.DueDate.Before(now) {
			count++
		}
	}
	return count, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalDates(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
