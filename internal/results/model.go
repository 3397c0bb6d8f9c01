package results

import (
	"time"

	"hairquiz-backend/internal/engine"
)

// QuizResult is a persisted quiz submission together with the
// recommendation computed for it.
type QuizResult struct {
	ID             string         `json:"id"`
	Answers        engine.Answers `json:"answers"`
	Recommendation map[string]any `json:"recommendation,omitempty"`
	Name           string         `json:"name,omitempty"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	State          string         `json:"state,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
