package results

import "context"

// Repo defines persistence operations for quiz results.
type Repo interface {
	Create(ctx context.Context, result QuizResult) error
	GetByID(ctx context.Context, resultID string) (QuizResult, error)
	List(ctx context.Context, limit, offset int) ([]QuizResult, error)
}
