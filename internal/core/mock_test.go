package core

import (
	"context"
	"strings"
	"sync"

	"github.com/agenthands/chronicle/internal/core/model"
)

// MockDriver answers queries by matching the office entity ID in the query text.
type MockDriver struct {
	mu       sync.Mutex
	Queries  []string
	Results  map[string][]model.OfficeHolderRecord
	Failures map[string]error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string) ([]model.OfficeHolderRecord, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	m.mu.Unlock()

	for id, err := range m.Failures {
		if strings.Contains(query, "wd:"+id+" ") {
			return nil, err
		}
	}
	for id, recs := range m.Results {
		if strings.Contains(query, "wd:"+id+" ") {
			return recs, nil
		}
	}
	return nil, nil
}
