package draft

import (
	"context"
	"sync"
	"time"

	"github.com/goldclean/goldclean-system/internal/model"
)

type memoryEntry struct {
	draft     model.OrderDraft
	expiresAt time.Time
}

// MemoryStore хранит черновики в памяти процесса с ограниченным временем жизни.
// Используется, когда Redis не настроен, и в тестах.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore создаёт хранилище черновиков в памяти с указанным TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Save записывает черновик сессии, перезаписывая предыдущий.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, d *model.OrderDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		draft:     *d,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// Get возвращает черновик сессии либо ErrNotFound, если его нет или он истёк.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*model.OrderDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, sessionID)
		return nil, ErrNotFound
	}

	d := e.draft
	return &d, nil
}

// Delete удаляет черновик сессии. Отсутствие черновика не является ошибкой.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}
