package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"cryptonews-collector/internal/domain/entity"
)

func newSourceMock(t *testing.T) (sqlmock.Sqlmock, *SourceRepo) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return mock, &SourceRepo{db: db}
}

func TestSourceRepo_List(t *testing.T) {
	mock, repo := newSourceMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "url", "language", "country", "category"}).
		AddRow(int64(1), "coindesk", "https://coindesk.com/rss", "en", "us", "news").
		AddRow(int64(2), "kr-crypto", "https://example.kr/rss", "ko", "kr", "news")
	mock.ExpectQuery(`SELECT id, name, url, language, country, category`).
		WillReturnRows(rows)

	sources, err := repo.List(context.Background())

	if err != nil {
		t.Fatalf("List() error = %v, want nil", err)
	}
	if len(sources) != 2 {
		t.Fatalf("List() returned %d sources, want 2", len(sources))
	}
	if sources[1].Language != "ko" {
		t.Errorf("Language = %q, want ko", sources[1].Language)
	}
}

func TestSourceRepo_Upsert(t *testing.T) {
	mock, repo := newSourceMock(t)

	src := &entity.Source{Name: "coindesk", URL: "https://coindesk.com/rss", Language: "en", Country: "us", Category: "news"}
	mock.ExpectQuery(`INSERT INTO sources`).
		WithArgs(src.Name, src.URL, src.Language, src.Country, src.Category).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	if err := repo.Upsert(context.Background(), src); err != nil {
		t.Fatalf("Upsert() error = %v, want nil", err)
	}
	if src.ID != 3 {
		t.Errorf("ID = %d, want 3", src.ID)
	}
}

func TestSourceRepo_Upsert_InvalidSource(t *testing.T) {
	_, repo := newSourceMock(t)

	err := repo.Upsert(context.Background(), &entity.Source{URL: "https://example.com/rss"})

	if err == nil {
		t.Fatal("Upsert() error = nil, want validation error for missing name")
	}
}

func TestSourceRepo_Upsert_DefaultsLanguage(t *testing.T) {
	mock, repo := newSourceMock(t)

	src := &entity.Source{Name: "coindesk", URL: "https://coindesk.com/rss"}
	mock.ExpectQuery(`INSERT INTO sources`).
		WithArgs(src.Name, src.URL, "en", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	if err := repo.Upsert(context.Background(), src); err != nil {
		t.Fatalf("Upsert() error = %v, want nil", err)
	}
	if src.Language != "en" {
		t.Errorf("Language = %q, want defaulted en", src.Language)
	}
}

func TestSourceRepo_CountSources(t *testing.T) {
	mock, repo := newSourceMock(t)

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	count, err := repo.CountSources(context.Background())

	if err != nil {
		t.Fatalf("CountSources() error = %v, want nil", err)
	}
	if count != 5 {
		t.Errorf("CountSources() = %d, want 5", count)
	}
}
