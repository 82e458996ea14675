package library

import (
	"context"
	"sync"

	"github.com/heartmarshall/readlog-backend/internal/provider"
)

var _ catalogSearcher = &catalogSearcherMock{}

type catalogSearcherMock struct {
	SearchFunc func(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error)

	calls struct {
		Search []struct {
			Ctx        context.Context
			Query      string
			MaxResults int
		}
	}
	lockSearch sync.RWMutex
}

func (mock *catalogSearcherMock) Search(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error) {
	if mock.SearchFunc == nil {
		panic("catalogSearcherMock.SearchFunc: method is nil but catalogSearcher.Search was just called")
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

func (mock *catalogSearcherMock) SearchCalls() []struct {
	Ctx        context.Context
	Query      string
	MaxResults int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
