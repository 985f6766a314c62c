package search

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"talk-search-api/core/domain"
)

// MockDiscussionSource is a testify mock of the DiscussionSource interface
type MockDiscussionSource struct {
	mock.Mock
}

func (m *MockDiscussionSource) FetchDiscussions(ctx context.Context, boardID string, page, pageSize int) (*domain.DiscussionPage, error) {
	args := m.Called(ctx, boardID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscussionPage), args.Error(1)
}

// LogEntry is one recorded log call
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// MockLogger records log calls for assertions
type MockLogger struct {
	mu   sync.Mutex
	logs []LogEntry
}

func (m *MockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

func (m *MockLogger) byLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, l := range m.logs {
		if l.Level == level {
			out = append(out, l)
		}
	}
	return out
}

func discussion(title, body string, commentID string) domain.Discussion {
	return domain.Discussion{
		Title:       title,
		BoardID:     "123",
		ProjectSlug: "owner/stars",
		LatestComment: domain.Comment{
			ID:                      commentID,
			DiscussionID:            "d-" + commentID,
			Body:                    body,
			UpdatedAt:               "2024-05-01T10:00:00.000Z",
			UserDisplayName:         "Star Gazer",
			UserLogin:               "stargazer",
			DiscussionUsersCount:    2,
			DiscussionCommentsCount: 5,
		},
	}
}

func page(n int, discussions ...domain.Discussion) *domain.DiscussionPage {
	return &domain.DiscussionPage{Page: n, PageSize: 100, Discussions: discussions}
}
