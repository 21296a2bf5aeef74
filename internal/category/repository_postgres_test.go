package category

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var categoryColumns = []string{
	"id", "name", "slug", "description", "industry_type", "color", "icon",
	"active", "priority", "attributes", "created_at", "updated_at",
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(categoryColumns).
		AddRow(1, "Food", "food", "street food", "food", "#4ECDC4", nil, true, 2, []byte(`{"region":"eu"}`), "2026-01-02T10:00:00Z", "2026-01-02T10:00:00Z").
		AddRow(2, "Retail", "retail", nil, "retail", nil, nil, false, 0, nil, nil, nil)
	mock.ExpectQuery("SELECT id, name, slug").WillReturnRows(rows)

	cats, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if cats[0].Attributes["region"] != "eu" {
		t.Errorf("attributes not decoded: %v", cats[0].Attributes)
	}
	if cats[1].Description != nil || cats[1].Active {
		t.Errorf("null columns mishandled: %+v", cats[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO categories").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	c := New()
	c.Name = "Education"
	c.Slug = "education"
	created, err := repo.Create(c)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("id = %d, want 7", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateUnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE categories").WillReturnResult(sqlmock.NewResult(0, 0))

	c := New()
	c.Name = "Ghost"
	if _, err := repo.Update(42, c); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM categories").WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM categories").WithArgs(6).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(5); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(6); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSlugExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT EXISTS").WithArgs("food", 0).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.SlugExists("food", 0)
	if err != nil {
		t.Fatalf("slug check failed: %v", err)
	}
	if !taken {
		t.Error("expected slug to be reported as taken")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
