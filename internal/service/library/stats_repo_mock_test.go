package library

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	CompletedSummaryFunc func(ctx context.Context, userID uuid.UUID, year int) (domain.CompletedSummary, error)
	GenreCountsFunc      func(ctx context.Context, userID uuid.UUID, year int, limit int) ([]domain.GenreCount, error)
	MonthlyCompletedFunc func(ctx context.Context, userID uuid.UUID, year int) (map[int]int, error)
	CountByStatusFunc    func(ctx context.Context, userID uuid.UUID) (map[domain.ReadingStatus]int, error)
	FavoriteGenresFunc   func(ctx context.Context, userID uuid.UUID, minRating int, limit int) ([]domain.GenreCount, error)

	calls struct {
		CompletedSummary []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Year   int
		}
		GenreCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Year   int
			Limit  int
		}
		MonthlyCompleted []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Year   int
		}
		CountByStatus []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		FavoriteGenres []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			MinRating int
			Limit     int
		}
	}
	lockCompletedSummary sync.RWMutex
	lockGenreCounts      sync.RWMutex
	lockMonthlyCompleted sync.RWMutex
	lockCountByStatus    sync.RWMutex
	lockFavoriteGenres   sync.RWMutex
}

func (mock *statsRepoMock) CompletedSummary(ctx context.Context, userID uuid.UUID, year int) (domain.CompletedSummary, error) {
	if mock.CompletedSummaryFunc == nil {
		panic("statsRepoMock.CompletedSummaryFunc: method is nil but statsRepo.CompletedSummary was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Year   int
	}{Ctx: ctx, UserID: userID, Year: year}
	mock.lockCompletedSummary.Lock()
	mock.calls.CompletedSummary = append(mock.calls.CompletedSummary, callInfo)
	mock.lockCompletedSummary.Unlock()
	return mock.CompletedSummaryFunc(ctx, userID, year)
}

func (mock *statsRepoMock) CompletedSummaryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Year   int
} {
	mock.lockCompletedSummary.RLock()
	calls := mock.calls.CompletedSummary
	mock.lockCompletedSummary.RUnlock()
	return calls
}

func (mock *statsRepoMock) GenreCounts(ctx context.Context, userID uuid.UUID, year int, limit int) ([]domain.GenreCount, error) {
	if mock.GenreCountsFunc == nil {
		panic("statsRepoMock.GenreCountsFunc: method is nil but statsRepo.GenreCounts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Year   int
		Limit  int
	}{Ctx: ctx, UserID: userID, Year: year, Limit: limit}
	mock.lockGenreCounts.Lock()
	mock.calls.GenreCounts = append(mock.calls.GenreCounts, callInfo)
	mock.lockGenreCounts.Unlock()
	return mock.GenreCountsFunc(ctx, userID, year, limit)
}

func (mock *statsRepoMock) GenreCountsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Year   int
	Limit  int
} {
	mock.lockGenreCounts.RLock()
	calls := mock.calls.GenreCounts
	mock.lockGenreCounts.RUnlock()
	return calls
}

func (mock *statsRepoMock) MonthlyCompleted(ctx context.Context, userID uuid.UUID, year int) (map[int]int, error) {
	if mock.MonthlyCompletedFunc == nil {
		panic("statsRepoMock.MonthlyCompletedFunc: method is nil but statsRepo.MonthlyCompleted was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Year   int
	}{Ctx: ctx, UserID: userID, Year: year}
	mock.lockMonthlyCompleted.Lock()
	mock.calls.MonthlyCompleted = append(mock.calls.MonthlyCompleted, callInfo)
	mock.lockMonthlyCompleted.Unlock()
	return mock.MonthlyCompletedFunc(ctx, userID, year)
}

func (mock *statsRepoMock) MonthlyCompletedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Year   int
} {
	mock.lockMonthlyCompleted.RLock()
	calls := mock.calls.MonthlyCompleted
	mock.lockMonthlyCompleted.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ReadingStatus]int, error) {
	if mock.CountByStatusFunc == nil {
		panic("statsRepoMock.CountByStatusFunc: method is nil but statsRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, userID)
}

func (mock *statsRepoMock) CountByStatusCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *statsRepoMock) FavoriteGenres(ctx context.Context, userID uuid.UUID, minRating int, limit int) ([]domain.GenreCount, error) {
	if mock.FavoriteGenresFunc == nil {
		panic("statsRepoMock.FavoriteGenresFunc: method is nil but statsRepo.FavoriteGenres was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		MinRating int
		Limit     int
	}{Ctx: ctx, UserID: userID, MinRating: minRating, Limit: limit}
	mock.lockFavoriteGenres.Lock()
	mock.calls.FavoriteGenres = append(mock.calls.FavoriteGenres, callInfo)
	mock.lockFavoriteGenres.Unlock()
	return mock.FavoriteGenresFunc(ctx, userID, minRating, limit)
}

func (mock *statsRepoMock) FavoriteGenresCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	MinRating int
	Limit     int
} {
	mock.lockFavoriteGenres.RLock()
	calls := mock.calls.FavoriteGenres
	mock.lockFavoriteGenres.RUnlock()
	return calls
}
