package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"taskboard/internal/apperror"
	"taskboard/internal/core/model"
	"taskboard/internal/core/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

type createBoardRequest struct {
	Title     string   `json:"title"`
	Priority  string   `json:"priority"`
	Checklist string   `json:"checklist"`
	DueDate   string   `json:"dueDate"`
	CB        []string `json:"cb"`
	Status    string   `json:"status"`
}

func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewValidation("Invalid request body"))
		return
	}

	_, existed, err := h.boardService.Create(service.CreateBoardInput{
		Title:     req.Title,
		Priority:  req.Priority,
		Checklist: req.Checklist,
		DueDate:   req.DueDate,
		CB:        req.CB,
		Status:    req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	message := "New board created successfully"
	if existed {
		message = "Board with the same details already exists"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

type editBoardRequest struct {
	Title     string   `json:"title"`
	Priority  string   `json:"priority"`
	Checklist string   `json:"checklist"`
	DueDate   string   `json:"dueDate"`
	Completed *bool    `json:"completed"`
	Status    string   `json:"status"`
	CB        []string `json:"cb"`
}

func (h *BoardHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req editBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewValidation("Invalid request body"))
		return
	}

	err := h.boardService.Edit(chi.URLParam(r, "id"), service.EditBoardInput{
		Title:     req.Title,
		Priority:  req.Priority,
		Checklist: req.Checklist,
		DueDate:   req.DueDate,
		Completed: req.Completed,
		Status:    req.Status,
		CB:        req.CB,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Board data updated successfully"})
}

type boardDetailResponse struct {
	Message   string     `json:"message"`
	Title     string     `json:"title"`
	Priority  string     `json:"priority"`
	Checklist []string   `json:"checklist"`
	CB        []string   `json:"cb"`
	DueDate   *time.Time `json:"dueDate"`
}

// Get serves the board detail used by the edit form. This is the one
// board route that does not require a session.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	board, err := h.boardService.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	cb := board.CB
	if cb == nil {
		cb = []string{}
	}

	writeJSON(w, http.StatusOK, boardDetailResponse{
		Message:   "Success",
		Title:     board.Title,
		Priority:  board.Priority,
		Checklist: board.Checklist,
		CB:        cb,
		DueDate:   board.DueDate,
	})
}

type updateStatusRequest struct {
	ID        string `json:"id"`
	NewStatus string `json:"newStatus"`
}

func (h *BoardHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewValidation("Invalid request body"))
		return
	}

	if err := h.boardService.UpdateStatus(req.ID, req.NewStatus); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Section updated successfully"})
}

func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.boardService.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"success": "Board deleted successfully"})
}

type updateDueTaskRequest struct {
	Date string `json:"date"`
}

// UpdateDueTask runs the bulk overdue sweep: every board due before
// the supplied date is marked not completed.
func (h *BoardHandler) UpdateDueTask(w http.ResponseWriter, r *http.Request) {
	var req updateDueTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewValidation("Invalid request body"))
		return
	}

	cutoff, err := model.ParseEditDueDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	if cutoff == nil {
		writeError(w, apperror.NewValidation("Missing date"))
		return
	}

	if err := h.boardService.SweepOverdue(*cutoff); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "updated successfully"})
}

func (h *BoardHandler) GetCardData(w http.ResponseWriter, r *http.Request) {
	duration := r.URL.Query().Get("duration")
	status := r.URL.Query().Get("status")

	boards, err := h.boardService.QueryByWindow(duration, status)
	if err != nil {
		writeError(w, err)
		return
	}
	if boards == nil {
		boards = []*model.Board{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": boards})
}

func (h *BoardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.boardService.Analytics()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
