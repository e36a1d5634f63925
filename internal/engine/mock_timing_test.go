package engine

import (
	"context"
	"sync"
	"time"

	"t2c/internal/domain"
)

// mockTimingService implements timing.Service as a scripted fake source. It
// records every fetch window so driver tests can assert which days and
// ranges were visited.
type mockTimingService struct {
	mu sync.Mutex

	// recordsByDay maps "2006-01-02" to that day's records
	recordsByDay map[string][]domain.SourceRecord

	// recent is returned by CompletedSince
	recent []domain.SourceRecord

	// betweenCalls records every CompletedBetween window, in order
	betweenCalls [][2]time.Time

	// sinceCalls records every CompletedSince min instant, in order
	sinceCalls []time.Time

	// err, when set, makes every fetch fail
	err error
}

// newMockTimingService creates a new empty fake source
func newMockTimingService() *mockTimingService {
	return &mockTimingService{
		recordsByDay: make(map[string][]domain.SourceRecord),
	}
}

func (m *mockTimingService) CompletedBetween(ctx context.Context, min, max time.Time) ([]domain.SourceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.betweenCalls = append(m.betweenCalls, [2]time.Time{min, max})
	if m.err != nil {
		return nil, m.err
	}
	return m.recordsByDay[min.Format("2006-01-02")], nil
}

func (m *mockTimingService) CompletedSince(ctx context.Context, min time.Time) ([]domain.SourceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sinceCalls = append(m.sinceCalls, min)
	if m.err != nil {
		return nil, m.err
	}
	return m.recent, nil
}

// mockNotifier records every delivered message
type mockNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (m *mockNotifier) Notify(ctx context.Context, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, message)
	return nil
}

func (m *mockNotifier) sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}
