package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
	"github.com/heartmarshall/readlog-backend/internal/service/book"
)

var _ bookService = &bookServiceMock{}

type bookServiceMock struct {
	AddFromCatalogFunc func(ctx context.Context, googleBookID string) (*domain.Book, error)
	CreateFunc         func(ctx context.Context, input book.CreateBookInput) (*domain.Book, error)
	DeleteFunc         func(ctx context.Context, bookID uuid.UUID) error
	GetFunc            func(ctx context.Context, bookID uuid.UUID) (*domain.Book, error)
	ListFunc           func(ctx context.Context, input book.ListBooksInput) ([]*domain.Book, error)
	SearchFunc         func(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error)
	UpdateFunc         func(ctx context.Context, input book.UpdateBookInput) (*domain.Book, error)

	calls struct {
		AddFromCatalog []struct {
			Ctx          context.Context
			GoogleBookID string
		}
		Create []struct {
			Ctx   context.Context
			Input book.CreateBookInput
		}
		Delete []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
		Get []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input book.ListBooksInput
		}
		Search []struct {
			Ctx        context.Context
			Query      string
			MaxResults int
		}
		Update []struct {
			Ctx   context.Context
			Input book.UpdateBookInput
		}
	}
	lockAddFromCatalog sync.RWMutex
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockGet            sync.RWMutex
	lockList           sync.RWMutex
	lockSearch         sync.RWMutex
	lockUpdate         sync.RWMutex
}

func (mock *bookServiceMock) AddFromCatalog(ctx context.Context, googleBookID string) (*domain.Book, error) {
	if mock.AddFromCatalogFunc == nil {
		panic("bookServiceMock.AddFromCatalogFunc: method is nil but bookService.AddFromCatalog was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		GoogleBookID string
	}{Ctx: ctx, GoogleBookID: googleBookID}
	mock.lockAddFromCatalog.Lock()
	mock.calls.AddFromCatalog = append(mock.calls.AddFromCatalog, callInfo)
	mock.lockAddFromCatalog.Unlock()
	return mock.AddFromCatalogFunc(ctx, googleBookID)
}

func (mock *bookServiceMock) AddFromCatalogCalls() []struct {
	Ctx          context.Context
	GoogleBookID string
} {
	mock.lockAddFromCatalog.RLock()
	calls := mock.calls.AddFromCatalog
	mock.lockAddFromCatalog.RUnlock()
	return calls
}

func (mock *bookServiceMock) Create(ctx context.Context, input book.CreateBookInput) (*domain.Book, error) {
	if mock.CreateFunc == nil {
		panic("bookServiceMock.CreateFunc: method is nil but bookService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input book.CreateBookInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *bookServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input book.CreateBookInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bookServiceMock) Delete(ctx context.Context, bookID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("bookServiceMock.DeleteFunc: method is nil but bookService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID uuid.UUID
	}{Ctx: ctx, BookID: bookID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, bookID)
}

func (mock *bookServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *bookServiceMock) Get(ctx context.Context, bookID uuid.UUID) (*domain.Book, error) {
	if mock.GetFunc == nil {
		panic("bookServiceMock.GetFunc: method is nil but bookService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID uuid.UUID
	}{Ctx: ctx, BookID: bookID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, bookID)
}

func (mock *bookServiceMock) GetCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *bookServiceMock) List(ctx context.Context, input book.ListBooksInput) ([]*domain.Book, error) {
	if mock.ListFunc == nil {
		panic("bookServiceMock.ListFunc: method is nil but bookService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input book.ListBooksInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *bookServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input book.ListBooksInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *bookServiceMock) Search(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error) {
	if mock.SearchFunc == nil {
		panic("bookServiceMock.SearchFunc: method is nil but bookService.Search was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Query      string
		MaxResults int
	}{Ctx: ctx, Query: query, MaxResults: maxResults}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query, maxResults)
}

func (mock *bookServiceMock) SearchCalls() []struct {
	Ctx        context.Context
	Query      string
	MaxResults int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *bookServiceMock) Update(ctx context.Context, input book.UpdateBookInput) (*domain.Book, error) {
	if mock.UpdateFunc == nil {
		panic("bookServiceMock.UpdateFunc: method is nil but bookService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input book.UpdateBookInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *bookServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input book.UpdateBookInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
