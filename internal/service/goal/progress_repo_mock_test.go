package goal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	CompletedSummaryFunc func(ctx context.Context, userID uuid.UUID, year int) (domain.CompletedSummary, error)

	calls struct {
		CompletedSummary []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Year   int
		}
	}
	lockCompletedSummary sync.RWMutex
}

func (mock *progressRepoMock) CompletedSummary(ctx context.Context, userID uuid.UUID, year int) (domain.CompletedSummary, error) {
	if mock.CompletedSummaryFunc == nil {
		panic("progressRepoMock.CompletedSummaryFunc: method is nil but progressRepo.CompletedSummary was just called")
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

func (mock *progressRepoMock) CompletedSummaryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Year   int
} {
	mock.lockCompletedSummary.RLock()
	calls := mock.calls.CompletedSummary
	mock.lockCompletedSummary.RUnlock()
	return calls
}
