package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
	"github.com/heartmarshall/readlog-backend/internal/service/library"
)

type libraryService interface {
	List(ctx context.Context, userID uuid.UUID, input library.ListEntriesInput) ([]*domain.LibraryEntry, error)
	Get(ctx context.Context, userID, entryID uuid.UUID) (*domain.LibraryEntry, error)
	Create(ctx context.Context, userID uuid.UUID, input library.CreateEntryInput) (*domain.LibraryEntry, error)
	Update(ctx context.Context, userID uuid.UUID, input library.UpdateEntryInput) (*domain.LibraryEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	Statistics(ctx context.Context, userID uuid.UUID, year int) (*domain.ReadingStats, error)
	Recommendations(ctx context.Context, userID uuid.UUID) ([]provider.CatalogBook, error)
}

// UserBookHandler serves a user's library. Every route requires an
// authenticated user; entries of other users are invisible.
type UserBookHandler struct {
	svc      libraryService
	validate *requestValidator
	log      *slog.Logger
}

// NewUserBookHandler creates a UserBookHandler.
func NewUserBookHandler(svc libraryService, logger *slog.Logger) *UserBookHandler {
	return &UserBookHandler{
		svc:      svc,
		validate: newRequestValidator(),
		log:      logger.With("handler", "user_books"),
	}
}

type userBookResponse struct {
	ID                 string        `json:"id"`
	Book               *bookResponse `json:"book"`
	BookID             string        `json:"book_id"`
	Status             string        `json:"status"`
	Rating             *int          `json:"rating"`
	StartDate          *string       `json:"start_date"`
	FinishDate         *string       `json:"finish_date"`
	Notes              string        `json:"notes"`
	ProgressPercentage int           `json:"progress_percentage"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func toUserBookResponse(e *domain.LibraryEntry) userBookResponse {
	resp := userBookResponse{
		ID:                 e.ID.String(),
		BookID:             e.BookID.String(),
		Status:             e.Status.String(),
		Rating:             e.Rating,
		StartDate:          formatDate(e.StartDate),
		FinishDate:         formatDate(e.FinishDate),
		Notes:              e.Notes,
		ProgressPercentage: e.ProgressPercentage,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	if e.Book != nil {
		b := toBookResponse(e.Book)
		resp.Book = &b
	}
	return resp
}

func toUserBookResponses(entries []*domain.LibraryEntry) []userBookResponse {
	out := make([]userBookResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toUserBookResponse(e))
	}
	return out
}

type createUserBookRequest struct {
	BookID             string           `json:"book_id"             validate:"required,uuid"`
	Status             string           `json:"status"              validate:"omitempty,oneof=want_to_read reading completed"`
	Rating             *int             `json:"rating"              validate:"omitempty,gte=1,lte=5"`
	StartDate          optional[string] `json:"start_date"`
	FinishDate         optional[string] `json:"finish_date"`
	Notes              string           `json:"notes"               validate:"max=10000"`
	ProgressPercentage *int             `json:"progress_percentage" validate:"omitempty,gte=0,lte=100"`
}

// updateUserBookRequest serves both PUT and PATCH. The book of an entry
// cannot be changed.
type updateUserBookRequest struct {
	Status             optional[string] `json:"status"`
	Rating             optional[int]    `json:"rating"`
	StartDate          optional[string] `json:"start_date"`
	FinishDate         optional[string] `json:"finish_date"`
	Notes              optional[string] `json:"notes"`
	ProgressPercentage optional[int]    `json:"progress_percentage"`
}

func (req updateUserBookRequest) toInput(id uuid.UUID, full bool) (library.UpdateEntryInput, error) {
	var errs []domain.FieldError

	if full && !req.Status.Set {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	}
	if req.Status.cleared() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "may not be null"})
	}
	if req.ProgressPercentage.cleared() {
		errs = append(errs, domain.FieldError{Field: "progress_percentage", Message: "may not be null"})
	}
	start, err := parseDate("start_date", req.StartDate)
	errs = appendFieldErrors(errs, err)
	finish, err := parseDate("finish_date", req.FinishDate)
	errs = appendFieldErrors(errs, err)
	if len(errs) > 0 {
		return library.UpdateEntryInput{}, domain.NewValidationErrors(errs)
	}

	input := library.UpdateEntryInput{
		EntryID:            id,
		Rating:             req.Rating.ptr(),
		ClearRating:        req.Rating.cleared(),
		StartDate:          start,
		ClearStartDate:     req.StartDate.cleared(),
		FinishDate:         finish,
		ClearFinishDate:    req.FinishDate.cleared(),
		Notes:              stringOrEmpty(req.Notes),
		ProgressPercentage: req.ProgressPercentage.ptr(),
	}
	if s := req.Status.ptr(); s != nil {
		status := domain.ReadingStatus(*s)
		input.Status = &status
	}
	return input, nil
}

type genreCountResponse struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

type monthCountResponse struct {
	Month     string `json:"month"`
	BooksRead int    `json:"books_read"`
}

type statisticsResponse struct {
	Year                  int                  `json:"year"`
	TotalBooksCompleted   int                  `json:"total_books_completed"`
	TotalPagesRead        int                  `json:"total_pages_read"`
	AverageRating         *float64             `json:"average_rating"`
	GenreDistribution     []genreCountResponse `json:"genre_distribution"`
	MonthlyReading        []monthCountResponse `json:"monthly_reading"`
	CurrentlyReadingCount int                  `json:"currently_reading_count"`
	WantToReadCount       int                  `json:"want_to_read_count"`
}

func toStatisticsResponse(s *domain.ReadingStats) statisticsResponse {
	resp := statisticsResponse{
		Year:                  s.Year,
		TotalBooksCompleted:   s.TotalBooksCompleted,
		TotalPagesRead:        s.TotalPagesRead,
		AverageRating:         s.AverageRating,
		GenreDistribution:     make([]genreCountResponse, 0, len(s.GenreDistribution)),
		MonthlyReading:        make([]monthCountResponse, 0, len(s.MonthlyReading)),
		CurrentlyReadingCount: s.CurrentlyReadingCount,
		WantToReadCount:       s.WantToReadCount,
	}
	for _, g := range s.GenreDistribution {
		resp.GenreDistribution = append(resp.GenreDistribution, genreCountResponse{Genre: g.Genre, Count: g.Count})
	}
	for _, m := range s.MonthlyReading {
		resp.MonthlyReading = append(resp.MonthlyReading, monthCountResponse{Month: m.Month, BooksRead: m.BooksRead})
	}
	return resp
}

type recommendationsResponse struct {
	Recommendations []catalogBookResponse `json:"recommendations"`
}

// List handles GET /api/user-books/?status=&limit=&offset=.
func (h *UserBookHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *domain.ReadingStatus
	if s := queryString(r, "status"); s != nil && *s != "" {
		rs := domain.ReadingStatus(*s)
		status = &rs
	}
	h.list(w, r, status)
}

// CurrentlyReading handles GET /api/user-books/currently_reading/.
func (h *UserBookHandler) CurrentlyReading(w http.ResponseWriter, r *http.Request) {
	h.listStatus(w, r, domain.ReadingStatusReading)
}

// Completed handles GET /api/user-books/completed/.
func (h *UserBookHandler) Completed(w http.ResponseWriter, r *http.Request) {
	h.listStatus(w, r, domain.ReadingStatusCompleted)
}

// WantToRead handles GET /api/user-books/want_to_read/.
func (h *UserBookHandler) WantToRead(w http.ResponseWriter, r *http.Request) {
	h.listStatus(w, r, domain.ReadingStatusWantToRead)
}

func (h *UserBookHandler) listStatus(w http.ResponseWriter, r *http.Request, status domain.ReadingStatus) {
	h.list(w, r, &status)
}

func (h *UserBookHandler) list(w http.ResponseWriter, r *http.Request, status *domain.ReadingStatus) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.List(r.Context(), userID, library.ListEntriesInput{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserBookResponses(entries))
}

// Create handles POST /api/user-books/. The owner is always the caller.
func (h *UserBookHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createUserBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.validate.Validate(req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("book_id", "must be a valid UUID"))
		return
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	finish, err := parseDate("finish_date", req.FinishDate)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Create(r.Context(), userID, library.CreateEntryInput{
		BookID:             bookID,
		Status:             domain.ReadingStatus(req.Status),
		Rating:             req.Rating,
		StartDate:          start,
		FinishDate:         finish,
		Notes:              req.Notes,
		ProgressPercentage: req.ProgressPercentage,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserBookResponse(entry))
}

// Get handles GET /api/user-books/{id}/.
func (h *UserBookHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	entry, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserBookResponse(entry))
}

// Replace handles PUT /api/user-books/{id}/.
func (h *UserBookHandler) Replace(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH /api/user-books/{id}/.
func (h *UserBookHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *UserBookHandler) update(w http.ResponseWriter, r *http.Request, full bool) {
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

	var req updateUserBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := req.toInput(id, full)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Update(r.Context(), userID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserBookResponse(entry))
}

// Delete handles DELETE /api/user-books/{id}/.
func (h *UserBookHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Statistics handles GET /api/user-books/statistics/?year=.
// A missing year selects the current one.
func (h *UserBookHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stats, err := h.svc.Statistics(r.Context(), userID, year)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatisticsResponse(stats))
}

// Recommendations handles GET /api/user-books/recommendations/.
func (h *UserBookHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	books, err := h.svc.Recommendations(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: toCatalogBookResponses(books)})
}
