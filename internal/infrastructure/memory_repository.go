package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
)

// MemoryRepository guarda investimentos em memória, sem durabilidade. Usado
// em desenvolvimento (DB_DRIVER=memory) e nos testes de integração.
type MemoryRepository struct {
	mu          sync.RWMutex
	investments map[string]investment.Investment
}

var _ investment.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		investments: make(map[string]investment.Investment),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, inv *investment.Investment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.investments[inv.Id] = *inv
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*investment.Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*investment.Investment, 0, len(r.investments))
	for _, inv := range r.investments {
		copied := inv
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Id < out[j].Id
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*investment.Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.investments[id]
	if !ok {
		return nil, appErrors.ErrInvestmentNotFound
	}
	copied := inv
	return &copied, nil
}

func (r *MemoryRepository) Update(ctx context.Context, inv *investment.Investment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.investments[inv.Id]; !ok {
		return appErrors.ErrInvestmentNotFound
	}
	r.investments[inv.Id] = *inv
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.investments[id]; !ok {
		return appErrors.ErrInvestmentNotFound
	}
	delete(r.investments, id)
	return nil
}
