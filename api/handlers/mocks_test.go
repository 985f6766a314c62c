package handlers

import (
	"context"
	"sync/atomic"

	"github.com/stretchr/testify/mock"

	"talk-search-api/core/domain"
)

// mockSearchService is a testify mock of the board search service
type mockSearchService struct {
	mock.Mock
}

func (m *mockSearchService) SearchBoard(ctx context.Context, boardID, term string, startPage, endPage, pageSize int) (*domain.SearchResult, error) {
	args := m.Called(ctx, boardID, term, startPage, endPage, pageSize)
	if r := args.Get(0); r != nil {
		return r.(*domain.SearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// countingSource serves empty discussion pages and counts fetches
type countingSource struct {
	fetches atomic.Int32
}

func (c *countingSource) FetchDiscussions(ctx context.Context, boardID string, page, pageSize int) (*domain.DiscussionPage, error) {
	c.fetches.Add(1)
	return &domain.DiscussionPage{Page: page, PageSize: pageSize, Discussions: []domain.Discussion{}}, nil
}
