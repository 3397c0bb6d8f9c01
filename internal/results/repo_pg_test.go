package results

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"hairquiz-backend/internal/engine"
)

func TestPGRepoCreateInsertsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	result := QuizResult{
		ID: "result-1",
		Answers: engine.Answers{
			engine.QAgeRange:       engine.Single("26-35"),
			engine.QPrimaryConcern: engine.Single("edges-thinning"),
		},
		Recommendation: map[string]any{"summary": "ok"},
		Name:           "Ada",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO quiz_results").
		WithArgs(
			result.ID,
			sqlmock.AnyArg(), // answers jsonb
			sqlmock.AnyArg(), // recommendation jsonb
			result.Name,
			nil,
			nil,
			nil,
			result.CreatedAt,
			result.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), result); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScansJSONB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "answers", "recommendation", "name", "email", "phone", "state", "created_at", "updated_at",
	}).AddRow(
		"result-1",
		`{"age-range":"26-35","protective-styles-often":["Box braids","Wigs (glued or sewn)"]}`,
		`{"summary":"Primary finding: Traction Alopecia."}`,
		"Ada",
		nil,
		nil,
		"TX",
		now,
		now,
	)

	mock.ExpectQuery("SELECT (.+) FROM quiz_results").
		WithArgs("result-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "result-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != "result-1" {
		t.Fatalf("expected id result-1, got %s", got.ID)
	}
	if got.Answers.Str(engine.QAgeRange) != "26-35" {
		t.Fatalf("expected answers jsonb to decode")
	}
	if styles := got.Answers.List(engine.QProtectiveStyles); len(styles) != 2 {
		t.Fatalf("expected 2 protective styles, got %d", len(styles))
	}
	if got.Recommendation["summary"] == "" {
		t.Fatalf("expected recommendation jsonb to decode")
	}
	if got.State != "TX" {
		t.Fatalf("expected state TX, got %q", got.State)
	}
	if got.Email != "" {
		t.Fatalf("expected empty email for NULL column, got %q", got.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMissingReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM quiz_results").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "answers", "recommendation", "name", "email", "phone", "state", "created_at", "updated_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListClampsPagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "answers", "recommendation", "name", "email", "phone", "state", "created_at", "updated_at",
	}).AddRow("result-1", `{}`, nil, nil, nil, nil, nil, now, now)

	// limit 0 defaults to 20, negative offset clamps to 0
	mock.ExpectQuery("SELECT (.+) FROM quiz_results ORDER BY created_at DESC").
		WithArgs(20, 0).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 0, -5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Recommendation != nil {
		t.Fatalf("expected nil recommendation for NULL column")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
