package goal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

var _ goalRepo = &goalRepoMock{}

type goalRepoMock struct {
	GetByIDFunc   func(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) (*domain.ReadingGoal, error)
	GetByYearFunc func(ctx context.Context, userID uuid.UUID, year int) (*domain.ReadingGoal, error)
	ListFunc      func(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingGoal, error)
	CreateFunc    func(ctx context.Context, g *domain.ReadingGoal) (*domain.ReadingGoal, error)
	UpdateFunc    func(ctx context.Context, userID uuid.UUID, goalID uuid.UUID, params domain.GoalUpdateParams) (*domain.ReadingGoal, error)
	DeleteFunc    func(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			GoalID uuid.UUID
		}
		GetByYear []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Year   int
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			G   *domain.ReadingGoal
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			GoalID uuid.UUID
			Params domain.GoalUpdateParams
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			GoalID uuid.UUID
		}
	}
	lockGetByID   sync.RWMutex
	lockGetByYear sync.RWMutex
	lockList      sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *goalRepoMock) GetByID(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) (*domain.ReadingGoal, error) {
	if mock.GetByIDFunc == nil {
		panic("goalRepoMock.GetByIDFunc: method is nil but goalRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		GoalID uuid.UUID
	}{Ctx: ctx, UserID: userID, GoalID: goalID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, goalID)
}

func (mock *goalRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	GoalID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *goalRepoMock) GetByYear(ctx context.Context, userID uuid.UUID, year int) (*domain.ReadingGoal, error) {
	if mock.GetByYearFunc == nil {
		panic("goalRepoMock.GetByYearFunc: method is nil but goalRepo.GetByYear was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Year   int
	}{Ctx: ctx, UserID: userID, Year: year}
	mock.lockGetByYear.Lock()
	mock.calls.GetByYear = append(mock.calls.GetByYear, callInfo)
	mock.lockGetByYear.Unlock()
	return mock.GetByYearFunc(ctx, userID, year)
}

func (mock *goalRepoMock) GetByYearCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Year   int
} {
	mock.lockGetByYear.RLock()
	calls := mock.calls.GetByYear
	mock.lockGetByYear.RUnlock()
	return calls
}

func (mock *goalRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingGoal, error) {
	if mock.ListFunc == nil {
		panic("goalRepoMock.ListFunc: method is nil but goalRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *goalRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *goalRepoMock) Create(ctx context.Context, g *domain.ReadingGoal) (*domain.ReadingGoal, error) {
	if mock.CreateFunc == nil {
		panic("goalRepoMock.CreateFunc: method is nil but goalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.ReadingGoal
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *goalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.ReadingGoal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *goalRepoMock) Update(ctx context.Context, userID uuid.UUID, goalID uuid.UUID, params domain.GoalUpdateParams) (*domain.ReadingGoal, error) {
	if mock.UpdateFunc == nil {
		panic("goalRepoMock.UpdateFunc: method is nil but goalRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		GoalID uuid.UUID
		Params domain.GoalUpdateParams
	}{Ctx: ctx, UserID: userID, GoalID: goalID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, goalID, params)
}

func (mock *goalRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	GoalID uuid.UUID
	Params domain.GoalUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *goalRepoMock) Delete(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("goalRepoMock.DeleteFunc: method is nil but goalRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		GoalID uuid.UUID
	}{Ctx: ctx, UserID: userID, GoalID: goalID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, goalID)
}

func (mock *goalRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	GoalID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
