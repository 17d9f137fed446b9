package state

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/whiteboardproductions/site/go/internal/models"
)

// MemoryStore is used when no DATABASE_URL is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*models.OrderDB
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders: make(map[uuid.UUID]*models.OrderDB),
	}
}

func (s *MemoryStore) SaveOrder(ctx context.Context, order *models.OrderDB) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *order
	s.orders[order.ID] = &stored
	return nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id uuid.UUID) (*models.OrderDB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	result := *order
	return &result, nil
}

func (s *MemoryStore) ListOrders(ctx context.Context, offset, limit int) ([]*models.OrderDB, error) {
	s.mu.RLock()
	all := make([]*models.OrderDB, 0, len(s.orders))
	for _, o := range s.orders {
		c := *o
		all = append(all, &c)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*models.OrderDB{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (s *MemoryStore) Close() error {
	return nil
}
