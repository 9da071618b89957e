package coverletters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsAllFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	letter := CoverLetter{
		ID:             "letter-1",
		UserID:         "user-1",
		Content:        "Dear Hiring Manager...",
		JobDescription: "Build APIs",
		CompanyName:    "Acme",
		JobTitle:       "Backend Engineer",
		Status:         StatusCompleted,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO cover_letters").
		WithArgs(
			letter.ID,
			letter.UserID,
			letter.Content,
			letter.JobDescription,
			letter.CompanyName,
			letter.JobTitle,
			letter.Status,
			letter.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), letter); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func letterColumns() []string {
	return []string{"id", "user_id", "content", "job_description", "company_name", "job_title", "status", "created_at"}
}

func TestPGRepoGetByIDOtherOwnerReadsAsAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	rows := sqlmock.NewRows(letterColumns()).
		AddRow("letter-1", "owner-a", "content", "jd", "Acme", "Backend Engineer", StatusCompleted, time.Now().UTC())
	mock.ExpectQuery("SELECT id, user_id, content").
		WithArgs("letter-1").
		WillReturnRows(rows)

	_, err = repo.GetByID(context.Background(), "owner-b", "letter-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other owner, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, user_id, content").
		WithArgs("letter-x").
		WillReturnRows(sqlmock.NewRows(letterColumns()))

	_, err = repo.GetByID(context.Background(), "owner-a", "letter-x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing row, got %v", err)
	}
}

func TestPGRepoDeleteByIDChecksOwnerBeforeDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	rows := sqlmock.NewRows(letterColumns()).
		AddRow("letter-1", "owner-a", "content", "jd", "Acme", "Backend Engineer", StatusCompleted, created)
	mock.ExpectQuery("SELECT id, user_id, content").
		WithArgs("letter-1").
		WillReturnRows(rows)
	mock.ExpectExec("DELETE FROM cover_letters").
		WithArgs("letter-1", "owner-a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	letter, err := repo.DeleteByID(context.Background(), "owner-a", "letter-1")
	if err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if letter.ID != "letter-1" {
		t.Fatalf("expected deleted letter returned, got %+v", letter)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteByIDOtherOwnerNeverDeletes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	rows := sqlmock.NewRows(letterColumns()).
		AddRow("letter-1", "owner-a", "content", "jd", "Acme", "Backend Engineer", StatusCompleted, time.Now().UTC())
	mock.ExpectQuery("SELECT id, user_id, content").
		WithArgs("letter-1").
		WillReturnRows(rows)
	// No DELETE expectation: the ownership check must stop the operation.

	_, err = repo.DeleteByID(context.Background(), "owner-b", "letter-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
