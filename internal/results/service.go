package results

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"hairquiz-backend/internal/engine"
	"hairquiz-backend/internal/shared/metrics"
	"hairquiz-backend/internal/shared/telemetry"
	"hairquiz-backend/internal/shared/util"
)

// Submission is the inbound payload for a quiz result.
type Submission struct {
	Answers        engine.Answers `json:"answers"`
	Recommendation map[string]any `json:"recommendation,omitempty"`
	Name           string         `json:"name,omitempty"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	State          string         `json:"state,omitempty"`
}

var errEmptyAnswers = errors.New("answers are required")

// Service contains business logic for quiz results.
type Service struct {
	Repo Repo
}

// Submit stores a quiz submission. When the payload carries no
// recommendation the engine computes one. A storage failure never fails
// the submission: the result is returned with persisted=false so the
// caller can acknowledge it without an ID.
func (s *Service) Submit(ctx context.Context, sub Submission) (QuizResult, bool, error) {
	if len(sub.Answers) == 0 {
		return QuizResult{}, false, errEmptyAnswers
	}

	metrics.IncSubmissionStarted()

	recommendation := sub.Recommendation
	if recommendation == nil {
		recommendation = s.evaluateToMap(sub.Answers)
	}

	now := time.Now().UTC()
	result := QuizResult{
		ID:             uuid.NewString(),
		Answers:        sub.Answers,
		Recommendation: recommendation,
		Name:           sub.Name,
		Email:          sub.Email,
		Phone:          sub.Phone,
		State:          sub.State,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, result); err != nil {
		fields := map[string]any{
			"result_id": result.ID,
			"error":     err.Error(),
		}
		if result.Email != "" {
			fields["contact_hash"] = util.HashContactKey(result.Email)
		}
		telemetry.Error("quiz_result.persist_failed", fields)
		metrics.IncSubmissionFallback()
		return result, false, nil
	}

	metrics.IncSubmissionPersisted()
	return result, true, nil
}

// Evaluate runs the engine without persisting anything.
func (s *Service) Evaluate(ctx context.Context, answers engine.Answers) (engine.Evaluation, error) {
	if len(answers) == 0 {
		return engine.Evaluation{}, errEmptyAnswers
	}
	start := time.Now()
	eval := engine.Evaluate(answers)
	metrics.ObserveEvaluationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return eval, nil
}

// Get returns a stored quiz result by ID.
func (s *Service) Get(ctx context.Context, resultID string) (QuizResult, error) {
	return s.Repo.GetByID(ctx, resultID)
}

// List returns stored quiz results, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]QuizResult, error) {
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) evaluateToMap(answers engine.Answers) map[string]any {
	start := time.Now()
	eval := engine.Evaluate(answers)
	metrics.ObserveEvaluationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	data, err := json.Marshal(eval)
	if err != nil {
		return nil
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
