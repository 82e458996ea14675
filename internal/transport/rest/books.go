package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
	"github.com/heartmarshall/readlog-backend/internal/service/book"
)

// catalogStatusHeader tells clients that an empty search result is due to
// the catalog being unreachable rather than having no matches.
const catalogStatusHeader = "X-Catalog-Status"

type bookService interface {
	List(ctx context.Context, input book.ListBooksInput) ([]*domain.Book, error)
	Get(ctx context.Context, bookID uuid.UUID) (*domain.Book, error)
	Create(ctx context.Context, input book.CreateBookInput) (*domain.Book, error)
	Update(ctx context.Context, input book.UpdateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, bookID uuid.UUID) error
	AddFromCatalog(ctx context.Context, googleBookID string) (*domain.Book, error)
	Search(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error)
}

// BookHandler serves the public book registry endpoints.
type BookHandler struct {
	svc               bookService
	validate          *requestValidator
	log               *slog.Logger
	defaultMaxResults int
}

// NewBookHandler creates a BookHandler. defaultMaxResults is the catalog
// page size used when a search does not ask for one.
func NewBookHandler(svc bookService, logger *slog.Logger, defaultMaxResults int) *BookHandler {
	return &BookHandler{
		svc:               svc,
		validate:          newRequestValidator(),
		log:               logger.With("handler", "books"),
		defaultMaxResults: defaultMaxResults,
	}
}

type bookResponse struct {
	ID            string    `json:"id"`
	GoogleBookID  string    `json:"google_book_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	Pages         *int      `json:"pages"`
	CoverURL      string    `json:"cover_url"`
	Description   string    `json:"description"`
	PublishedDate string    `json:"published_date"`
	AverageRating *float64  `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:            b.ID.String(),
		GoogleBookID:  b.GoogleBookID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		Pages:         b.Pages,
		CoverURL:      b.CoverURL,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
		AverageRating: b.AverageRating,
		CreatedAt:     b.CreatedAt,
	}
}

type imageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

type catalogBookResponse struct {
	GoogleBookID  string      `json:"google_book_id"`
	Title         string      `json:"title"`
	Authors       []string    `json:"authors"`
	Description   string      `json:"description"`
	PageCount     *int        `json:"page_count"`
	Categories    []string    `json:"categories"`
	ImageLinks    *imageLinks `json:"image_links,omitempty"`
	PublishedDate string      `json:"published_date"`
	AverageRating *float64    `json:"average_rating"`
}

func toCatalogBookResponses(books []provider.CatalogBook) []catalogBookResponse {
	out := make([]catalogBookResponse, 0, len(books))
	for _, cb := range books {
		resp := catalogBookResponse{
			GoogleBookID:  cb.ExternalID,
			Title:         cb.Title,
			Authors:       nonNilStrings(cb.Authors),
			Description:   cb.Description,
			PageCount:     cb.PageCount,
			Categories:    nonNilStrings(cb.Categories),
			PublishedDate: cb.PublishedDate,
			AverageRating: cb.AverageRating,
		}
		if cb.ThumbnailURL != nil {
			resp.ImageLinks = &imageLinks{Thumbnail: *cb.ThumbnailURL}
		}
		out = append(out, resp)
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type createBookRequest struct {
	GoogleBookID  string   `json:"google_book_id" validate:"required,max=64"`
	Title         string   `json:"title"          validate:"required,max=500"`
	Author        string   `json:"author"`
	Genre         string   `json:"genre"`
	Pages         *int     `json:"pages"          validate:"omitempty,gte=0"`
	CoverURL      string   `json:"cover_url"`
	Description   string   `json:"description"`
	PublishedDate string   `json:"published_date"`
	AverageRating *float64 `json:"average_rating" validate:"omitempty,gte=0,lte=5"`
}

// updateBookRequest serves both PUT and PATCH. A null string field is
// stored as "".
type updateBookRequest struct {
	GoogleBookID  optional[string]  `json:"google_book_id"`
	Title         optional[string]  `json:"title"`
	Author        optional[string]  `json:"author"`
	Genre         optional[string]  `json:"genre"`
	Pages         optional[int]     `json:"pages"`
	CoverURL      optional[string]  `json:"cover_url"`
	Description   optional[string]  `json:"description"`
	PublishedDate optional[string]  `json:"published_date"`
	AverageRating optional[float64] `json:"average_rating"`
}

func (req updateBookRequest) requireFull() error {
	var errs []domain.FieldError
	if !req.GoogleBookID.Set {
		errs = append(errs, domain.FieldError{Field: "google_book_id", Message: "required"})
	}
	if !req.Title.Set {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (req updateBookRequest) toInput(id uuid.UUID) book.UpdateBookInput {
	return book.UpdateBookInput{
		BookID:             id,
		GoogleBookID:       stringOrEmpty(req.GoogleBookID),
		Title:              stringOrEmpty(req.Title),
		Author:             stringOrEmpty(req.Author),
		Genre:              stringOrEmpty(req.Genre),
		Pages:              req.Pages.ptr(),
		ClearPages:         req.Pages.cleared(),
		CoverURL:           stringOrEmpty(req.CoverURL),
		Description:        stringOrEmpty(req.Description),
		PublishedDate:      stringOrEmpty(req.PublishedDate),
		AverageRating:      req.AverageRating.ptr(),
		ClearAverageRating: req.AverageRating.cleared(),
	}
}

func stringOrEmpty(o optional[string]) *string {
	if o.cleared() {
		empty := ""
		return &empty
	}
	return o.ptr()
}

type addFromGoogleRequest struct {
	GoogleBookID string `json:"google_book_id"`
}

// List handles GET /api/books/.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
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

	books, err := h.svc.List(r.Context(), book.ListBooksInput{
		Search: queryString(r, "search"),
		Genre:  queryString(r, "genre"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/books/.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.validate.Validate(req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.Create(r.Context(), book.CreateBookInput{
		GoogleBookID:  req.GoogleBookID,
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		Pages:         req.Pages,
		CoverURL:      req.CoverURL,
		Description:   req.Description,
		PublishedDate: req.PublishedDate,
		AverageRating: req.AverageRating,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookResponse(b))
}

// Get handles GET /api/books/{id}/.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(b))
}

// Replace handles PUT /api/books/{id}/.
func (h *BookHandler) Replace(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH /api/books/{id}/.
func (h *BookHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *BookHandler) update(w http.ResponseWriter, r *http.Request, full bool) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if full {
		if err := req.requireFull(); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	b, err := h.svc.Update(r.Context(), req.toInput(id))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(b))
}

// Delete handles DELETE /api/books/{id}/.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchGoogleBooks handles GET /api/books/search_google_books/?q=.
// A catalog outage yields an empty list flagged by catalogStatusHeader.
func (h *BookHandler) SearchGoogleBooks(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}
	maxResults, err := queryInt(r, "max_results", h.defaultMaxResults)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	books, err := h.svc.Search(r.Context(), query, maxResults)
	if errors.Is(err, provider.ErrUnavailable) {
		h.log.WarnContext(r.Context(), "catalog search degraded",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		w.Header().Set(catalogStatusHeader, "unavailable")
		writeJSON(w, http.StatusOK, []catalogBookResponse{})
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogBookResponses(books))
}

// AddFromGoogle handles POST /api/books/add_from_google/.
func (h *BookHandler) AddFromGoogle(w http.ResponseWriter, r *http.Request) {
	var req addFromGoogleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	req.GoogleBookID = strings.TrimSpace(req.GoogleBookID)
	if req.GoogleBookID == "" {
		writeError(w, http.StatusBadRequest, "google_book_id is required")
		return
	}

	b, err := h.svc.AddFromCatalog(r.Context(), req.GoogleBookID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookResponse(b))
}
