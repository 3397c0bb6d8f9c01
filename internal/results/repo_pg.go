package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"hairquiz-backend/internal/engine"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new quiz result.
func (r *PGRepo) Create(ctx context.Context, result QuizResult) error {
	const query = `
INSERT INTO quiz_results (
	id, answers, recommendation, name, email, phone, state, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	answersPayload, err := json.Marshal(result.Answers)
	if err != nil {
		return err
	}
	var recPayload any
	if result.Recommendation != nil {
		recPayload, err = json.Marshal(result.Recommendation)
		if err != nil {
			return err
		}
	}

	_, err = r.DB.ExecContext(ctx, query,
		result.ID,
		answersPayload,
		recPayload,
		nullString(result.Name),
		nullString(result.Email),
		nullString(result.Phone),
		nullString(result.State),
		result.CreatedAt,
		result.UpdatedAt,
	)
	return err
}

// GetByID returns a quiz result by ID.
func (r *PGRepo) GetByID(ctx context.Context, resultID string) (QuizResult, error) {
	const query = `
SELECT id, answers, recommendation, name, email, phone, state, created_at, updated_at
FROM quiz_results
WHERE id = $1
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, resultID)
	result, err := scanResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QuizResult{}, ErrNotFound
		}
		return QuizResult{}, err
	}
	return result, nil
}

// List returns quiz results ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]QuizResult, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, answers, recommendation, name, email, phone, state, created_at, updated_at
FROM quiz_results
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuizResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (QuizResult, error) {
	var result QuizResult
	var answers sql.NullString
	var recommendation sql.NullString
	var name sql.NullString
	var email sql.NullString
	var phone sql.NullString
	var state sql.NullString

	if err := row.Scan(
		&result.ID,
		&answers,
		&recommendation,
		&name,
		&email,
		&phone,
		&state,
		&result.CreatedAt,
		&result.UpdatedAt,
	); err != nil {
		return QuizResult{}, err
	}

	if answers.Valid {
		result.Answers = engine.Answers{}
		if err := json.Unmarshal([]byte(answers.String), &result.Answers); err != nil {
			result.Answers = nil
		}
	}
	if recommendation.Valid {
		result.Recommendation = map[string]any{}
		if err := json.Unmarshal([]byte(recommendation.String), &result.Recommendation); err != nil {
			result.Recommendation = nil
		}
	}
	if name.Valid {
		result.Name = name.String
	}
	if email.Valid {
		result.Email = email.String
	}
	if phone.Valid {
		result.Phone = phone.String
	}
	if state.Valid {
		result.State = state.String
	}
	return result, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
