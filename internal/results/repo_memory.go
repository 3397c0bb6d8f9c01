package results

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores quiz results in memory and is safe for concurrent use.
// It backs the API when no database is configured or reachable.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]QuizResult
	order []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]QuizResult)}
}

// Create stores the result.
func (r *MemoryRepo) Create(ctx context.Context, result QuizResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[result.ID]; !exists {
		r.order = append(r.order, result.ID)
	}
	r.byID[result.ID] = result
	return nil
}

// GetByID returns a result by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, resultID string) (QuizResult, error) {
	if err := ctx.Err(); err != nil {
		return QuizResult{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.byID[resultID]
	if !ok {
		return QuizResult{}, ErrNotFound
	}
	return result, nil
}

// List returns stored results, newest first, with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]QuizResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]QuizResult, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}
	r.mu.RUnlock()

	if len(all) == 0 || offset >= len(all) {
		return []QuizResult{}, nil
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
