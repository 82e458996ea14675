package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
	"github.com/heartmarshall/readlog-backend/internal/service/library"
)

var _ libraryService = &libraryServiceMock{}

type libraryServiceMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, input library.CreateEntryInput) (*domain.LibraryEntry, error)
	DeleteFunc          func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error
	GetFunc             func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.LibraryEntry, error)
	ListFunc            func(ctx context.Context, userID uuid.UUID, input library.ListEntriesInput) ([]*domain.LibraryEntry, error)
	RecommendationsFunc func(ctx context.Context, userID uuid.UUID) ([]provider.CatalogBook, error)
	StatisticsFunc      func(ctx context.Context, userID uuid.UUID, year int) (*domain.ReadingStats, error)
	UpdateFunc          func(ctx context.Context, userID uuid.UUID, input library.UpdateEntryInput) (*domain.LibraryEntry, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  library.CreateEntryInput
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		Get []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  library.ListEntriesInput
		}
		Recommendations []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Statistics []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Year   int
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  library.UpdateEntryInput
		}
	}
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockGet             sync.RWMutex
	lockList            sync.RWMutex
	lockRecommendations sync.RWMutex
	lockStatistics      sync.RWMutex
	lockUpdate          sync.RWMutex
}

func (mock *libraryServiceMock) Create(ctx context.Context, userID uuid.UUID, input library.CreateEntryInput) (*domain.LibraryEntry, error) {
	if mock.CreateFunc == nil {
		panic("libraryServiceMock.CreateFunc: method is nil but libraryService.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  library.CreateEntryInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, input)
}

func (mock *libraryServiceMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  library.CreateEntryInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *libraryServiceMock) Delete(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("libraryServiceMock.DeleteFunc: method is nil but libraryService.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, entryID)
}

func (mock *libraryServiceMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *libraryServiceMock) Get(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.LibraryEntry, error) {
	if mock.GetFunc == nil {
		panic("libraryServiceMock.GetFunc: method is nil but libraryService.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, entryID)
}

func (mock *libraryServiceMock) GetCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *libraryServiceMock) List(ctx context.Context, userID uuid.UUID, input library.ListEntriesInput) ([]*domain.LibraryEntry, error) {
	if mock.ListFunc == nil {
		panic("libraryServiceMock.ListFunc: method is nil but libraryService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  library.ListEntriesInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, input)
}

func (mock *libraryServiceMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  library.ListEntriesInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *libraryServiceMock) Recommendations(ctx context.Context, userID uuid.UUID) ([]provider.CatalogBook, error) {
	if mock.RecommendationsFunc == nil {
		panic("libraryServiceMock.RecommendationsFunc: method is nil but libraryService.Recommendations was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockRecommendations.Lock()
	mock.calls.Recommendations = append(mock.calls.Recommendations, callInfo)
	mock.lockRecommendations.Unlock()
	return mock.RecommendationsFunc(ctx, userID)
}

func (mock *libraryServiceMock) RecommendationsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockRecommendations.RLock()
	calls := mock.calls.Recommendations
	mock.lockRecommendations.RUnlock()
	return calls
}

func (mock *libraryServiceMock) Statistics(ctx context.Context, userID uuid.UUID, year int) (*domain.ReadingStats, error) {
	if mock.StatisticsFunc == nil {
		panic("libraryServiceMock.StatisticsFunc: method is nil but libraryService.Statistics was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Year   int
	}{Ctx: ctx, UserID: userID, Year: year}
	mock.lockStatistics.Lock()
	mock.calls.Statistics = append(mock.calls.Statistics, callInfo)
	mock.lockStatistics.Unlock()
	return mock.StatisticsFunc(ctx, userID, year)
}

func (mock *libraryServiceMock) StatisticsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Year   int
} {
	mock.lockStatistics.RLock()
	calls := mock.calls.Statistics
	mock.lockStatistics.RUnlock()
	return calls
}

func (mock *libraryServiceMock) Update(ctx context.Context, userID uuid.UUID, input library.UpdateEntryInput) (*domain.LibraryEntry, error) {
	if mock.UpdateFunc == nil {
		panic("libraryServiceMock.UpdateFunc: method is nil but libraryService.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  library.UpdateEntryInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, input)
}

func (mock *libraryServiceMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  library.UpdateEntryInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
