package pgdb

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/repo/repoerrs"
	"github.com/Egor213/NewsReport/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/Egor213/NewsReport/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*ReportRepo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	pg := &postgres.Postgres{
		Builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		CtxGetter: trmpgx.DefaultCtxGetter,
		Pool:      mock,
	}
	return NewReportRepo(pg), mock
}

var errDaysFilter = repotypes.ErrorDaysFilter{
	OkStatus:    domain.StatusOK,
	ErrorStatus: domain.StatusNotFound,
	Threshold:   1,
}

func TestReportRepo_Queries(t *testing.T) {
	r, _ := newMockRepo(t)

	sql, args, err := r.topArticlesQuery(3).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT articles.title, COUNT(*) AS views FROM articles "+
			"JOIN log ON split_part(log.path, '/', 3) = articles.slug "+
			"GROUP BY articles.title ORDER BY views DESC, articles.title LIMIT 3",
		sql)
	assert.Empty(t, args)

	sql, args, err = r.topAuthorsQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT authors.name, COUNT(*) AS views FROM articles "+
			"JOIN log ON split_part(log.path, '/', 3) = articles.slug "+
			"JOIN authors ON articles.author = authors.id "+
			"GROUP BY authors.name ORDER BY views DESC, authors.name",
		sql)
	assert.Empty(t, args)

	sql, args, err = r.errorDaysQuery(errDaysFilter).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"WITH daily AS (SELECT split_part(log.time::text, ' ', 1) AS day, log.status, COUNT(*) AS num FROM log GROUP BY day, log.status), "+
			"ok AS (SELECT day, num FROM daily WHERE status = $1), "+
			"nok AS (SELECT day, num FROM daily WHERE status = $2) "+
			"SELECT ok.day, ok.num AS ok_count, nok.num AS error_count, "+
			"round(100.0 * nok.num / (nok.num + ok.num), 2)::float8 AS error_percentage "+
			"FROM ok JOIN nok ON nok.day = ok.day "+
			"WHERE round(100.0 * nok.num / (nok.num + ok.num), 2) >= $3 "+
			"ORDER BY ok.day",
		sql)
	assert.Equal(t, []any{"200 OK", "404 NOT FOUND", 1.0}, args)
}

func TestReportRepo_TopArticles(t *testing.T) {
	testCases := []struct {
		name    string
		rows    *pgxmock.Rows
		err     error
		want    []domain.ArticleViews
		wantErr error
	}{
		{
			name: "success",
			rows: pgxmock.NewRows([]string{"title", "views"}).
				AddRow("Candidate is jerk, alleges rival", int64(338647)).
				AddRow("Bears love berries, alleges bear", int64(253801)),
			want: []domain.ArticleViews{
				{Title: "Candidate is jerk, alleges rival", Views: 338647},
				{Title: "Bears love berries, alleges bear", Views: 253801},
			},
		},
		{
			name: "empty",
			rows: pgxmock.NewRows([]string{"title", "views"}),
			want: []domain.ArticleViews{},
		},
		{
			name:    "missing relation",
			err:     &pgconn.PgError{Code: errorsUtils.CodeUndefinedTable, Message: `relation "articles" does not exist`},
			wantErr: repoerrs.ErrSchemaMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, mock := newMockRepo(t)

			exp := mock.ExpectQuery(regexp.QuoteMeta("split_part(log.path, '/', 3) = articles.slug"))
			if tc.err != nil {
				exp.WillReturnError(tc.err)
			} else {
				exp.WillReturnRows(tc.rows)
			}

			got, err := r.TopArticles(context.Background(), 3)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReportRepo_TopAuthors(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN authors ON articles.author = authors.id")).
		WillReturnRows(pgxmock.NewRows([]string{"name", "views"}).
			AddRow("Ursula La Multa", int64(507594)).
			AddRow("Rudolf von Treppenwitz", int64(423457)))

	got, err := r.TopAuthors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.AuthorViews{
		{Name: "Ursula La Multa", Views: 507594},
		{Name: "Rudolf von Treppenwitz", Views: 423457},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepo_TopAuthorsQueryError(t *testing.T) {
	r, mock := newMockRepo(t)

	queryErr := errors.New("connection reset")
	mock.ExpectQuery("FROM articles").WillReturnError(queryErr)

	_, err := r.TopAuthors(context.Background())
	assert.ErrorIs(t, err, queryErr)
	assert.NotErrorIs(t, err, repoerrs.ErrSchemaMismatch)
}

func TestReportRepo_ErrorDays(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WITH daily AS")).
		WithArgs("200 OK", "404 NOT FOUND", 1.0).
		WillReturnRows(pgxmock.NewRows([]string{"day", "ok_count", "error_count", "error_percentage"}).
			AddRow("2016-07-17", int64(38431), int64(1265), 3.19))

	got, err := r.ErrorDays(context.Background(), errDaysFilter)
	require.NoError(t, err)
	assert.Equal(t, []domain.ErrorDay{
		{Date: "2016-07-17", OkCount: 38431, ErrorCount: 1265, ErrorPercentage: 3.19},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepo_ErrorDaysRowError(t *testing.T) {
	r, mock := newMockRepo(t)

	rowErr := &pgconn.PgError{Code: errorsUtils.CodeUndefinedColumn}
	mock.ExpectQuery(regexp.QuoteMeta("WITH daily AS")).
		WithArgs("200 OK", "404 NOT FOUND", 1.0).
		WillReturnRows(pgxmock.NewRows([]string{"day", "ok_count", "error_count", "error_percentage"}).
			AddRow("2016-07-17", int64(1), int64(1), 50.0).
			RowError(0, rowErr))

	_, err := r.ErrorDays(context.Background(), errDaysFilter)
	assert.ErrorIs(t, err, repoerrs.ErrSchemaMismatch)
}

func TestReportRepo_TopAuthorsRowError(t *testing.T) {
	r, mock := newMockRepo(t)

	rowErr := &pgconn.PgError{Code: errorsUtils.CodeUndefinedTable}
	mock.ExpectQuery(regexp.QuoteMeta("JOIN authors ON articles.author = authors.id")).
		WillReturnRows(pgxmock.NewRows([]string{"name", "views"}).
			AddRow("Ursula La Multa", int64(1)).
			RowError(0, rowErr))

	_, err := r.TopAuthors(context.Background())
	assert.ErrorIs(t, err, repoerrs.ErrSchemaMismatch)
	assert.ErrorIs(t, err, rowErr)
}
