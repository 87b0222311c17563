package repo

import (
	"context"

	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/repo/memdb"
	"github.com/Egor213/NewsReport/internal/repo/pgdb"
	"github.com/Egor213/NewsReport/internal/repo/repotypes"
	"github.com/Egor213/NewsReport/pkg/postgres"
)

type Report interface {
	TopArticles(ctx context.Context, limit uint64) ([]domain.ArticleViews, error)
	TopAuthors(ctx context.Context) ([]domain.AuthorViews, error)
	ErrorDays(ctx context.Context, filter repotypes.ErrorDaysFilter) ([]domain.ErrorDay, error)
}

type Repositories struct {
	Report
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Report: pgdb.NewReportRepo(pg),
	}
}

// NewFixtureRepositories answers reports from a loaded fixture instead of
// the database.
func NewFixtureRepositories(store *memdb.Store) *Repositories {
	return &Repositories{
		Report: store,
	}
}
