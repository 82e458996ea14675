package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/service/goal"
)

type goalService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.GoalProgress, error)
	Get(ctx context.Context, userID, goalID uuid.UUID) (*domain.GoalProgress, error)
	CurrentYear(ctx context.Context, userID uuid.UUID) (*domain.GoalProgress, error)
	Create(ctx context.Context, userID uuid.UUID, input goal.CreateGoalInput) (*domain.GoalProgress, error)
	Update(ctx context.Context, userID uuid.UUID, input goal.UpdateGoalInput) (*domain.GoalProgress, error)
	Delete(ctx context.Context, userID, goalID uuid.UUID) error
}

// GoalHandler serves the caller's reading goals.
type GoalHandler struct {
	svc      goalService
	validate *requestValidator
	log      *slog.Logger
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{
		svc:      svc,
		validate: newRequestValidator(),
		log:      logger.With("handler", "reading_goals"),
	}
}

type goalResponse struct {
	ID             string    `json:"id"`
	Year           int       `json:"year"`
	TargetBooks    int       `json:"target_books"`
	TargetPages    int       `json:"target_pages"`
	BooksCompleted int       `json:"books_completed"`
	PagesRead      int       `json:"pages_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func toGoalResponse(g *domain.GoalProgress) goalResponse {
	return goalResponse{
		ID:             g.ID.String(),
		Year:           g.Year,
		TargetBooks:    g.TargetBooks,
		TargetPages:    g.TargetPages,
		BooksCompleted: g.BooksCompleted,
		PagesRead:      g.PagesRead,
		CreatedAt:      g.CreatedAt,
	}
}

type createGoalRequest struct {
	Year        int  `json:"year"         validate:"required,gte=1,lte=9999"`
	TargetBooks *int `json:"target_books" validate:"omitempty,gte=1"`
	TargetPages *int `json:"target_pages" validate:"omitempty,gte=1"`
}

// updateGoalRequest serves both PUT and PATCH. None of the fields is
// nullable.
type updateGoalRequest struct {
	Year        optional[int] `json:"year"`
	TargetBooks optional[int] `json:"target_books"`
	TargetPages optional[int] `json:"target_pages"`
}

func (req updateGoalRequest) toInput(id uuid.UUID, full bool) (goal.UpdateGoalInput, error) {
	var errs []domain.FieldError
	if full && !req.Year.Set {
		errs = append(errs, domain.FieldError{Field: "year", Message: "required"})
	}
	if req.Year.cleared() {
		errs = append(errs, domain.FieldError{Field: "year", Message: "may not be null"})
	}
	if req.TargetBooks.cleared() {
		errs = append(errs, domain.FieldError{Field: "target_books", Message: "may not be null"})
	}
	if req.TargetPages.cleared() {
		errs = append(errs, domain.FieldError{Field: "target_pages", Message: "may not be null"})
	}
	if len(errs) > 0 {
		return goal.UpdateGoalInput{}, domain.NewValidationErrors(errs)
	}

	return goal.UpdateGoalInput{
		GoalID:      id,
		Year:        req.Year.ptr(),
		TargetBooks: req.TargetBooks.ptr(),
		TargetPages: req.TargetPages.ptr(),
	}, nil
}

// List handles GET /api/reading-goals/.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	goals, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/reading-goals/. Omitted targets take the
// defaults.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.validate.Validate(req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	g, err := h.svc.Create(r.Context(), userID, goal.CreateGoalInput{
		Year:        req.Year,
		TargetBooks: req.TargetBooks,
		TargetPages: req.TargetPages,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(g))
}

// Get handles GET /api/reading-goals/{id}/.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	g, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// CurrentYear handles GET /api/reading-goals/current_year/.
func (h *GoalHandler) CurrentYear(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	g, err := h.svc.CurrentYear(r.Context(), userID)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No goal set for current year")
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Replace handles PUT /api/reading-goals/{id}/.
func (h *GoalHandler) Replace(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH /api/reading-goals/{id}/.
func (h *GoalHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *GoalHandler) update(w http.ResponseWriter, r *http.Request, full bool) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := req.toInput(id, full)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	g, err := h.svc.Update(r.Context(), userID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Delete handles DELETE /api/reading-goals/{id}/.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
