package pgdb

import (
	"context"

	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/Egor213/NewsReport/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
)

type ReportRepo struct {
	*postgres.Postgres
}

func NewReportRepo(pg *postgres.Postgres) *ReportRepo {
	return &ReportRepo{pg}
}

func (r *ReportRepo) topArticlesQuery(limit uint64) sq.SelectBuilder {
	return r.Builder.
		Select("articles.title", "COUNT(*) AS views").
		From("articles").
		Join(articleViewsJoin()).
		GroupBy("articles.title").
		OrderBy("views DESC", "articles.title").
		Limit(limit)
}

func (r *ReportRepo) topAuthorsQuery() sq.SelectBuilder {
	return r.Builder.
		Select("authors.name", "COUNT(*) AS views").
		From("articles").
		Join(articleViewsJoin()).
		Join("authors ON articles.author = authors.id").
		GroupBy("authors.name").
		OrderBy("views DESC", "authors.name")
}

func (r *ReportRepo) errorDaysQuery(filter repotypes.ErrorDaysFilter) sq.SelectBuilder {
	daily := sq.
		Select(dayOf("log.time")+" AS day", "log.status", "COUNT(*) AS num").
		From("log").
		GroupBy("day", "log.status")

	okCond, errCond := BuildErrorDaysStatusFilters(filter.OkStatus, filter.ErrorStatus)
	okDays := sq.Select("day", "num").From("daily").Where(okCond)
	errDays := sq.Select("day", "num").From("daily").Where(errCond)

	pct := errorPercentageOf("ok.num", "nok.num")

	return r.Builder.
		Select("ok.day", "ok.num AS ok_count", "nok.num AS error_count", pct+"::float8 AS error_percentage").
		PrefixExpr(sq.Expr("WITH daily AS (?), ok AS (?), nok AS (?)", daily, okDays, errDays)).
		From("ok").
		Join("nok ON nok.day = ok.day").
		Where(sq.Expr(pct+" >= ?", filter.Threshold)).
		OrderBy("ok.day")
}

func (r *ReportRepo) TopArticles(ctx context.Context, limit uint64) ([]domain.ArticleViews, error) {
	sql, args, err := r.topArticlesQuery(limit).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(classify(err))
	}
	defer rows.Close()

	articles := []domain.ArticleViews{}
	for rows.Next() {
		var a domain.ArticleViews
		if err := rows.Scan(&a.Title, &a.Views); err != nil {
			return nil, errorsUtils.WrapPathErr(classify(err))
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(classify(err))
	}

	return articles, nil
}

func (r *ReportRepo) TopAuthors(ctx context.Context) ([]domain.AuthorViews, error) {
	sql, args, err := r.topAuthorsQuery().ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(classify(err))
	}
	defer rows.Close()

	authors := []domain.AuthorViews{}
	for rows.Next() {
		var a domain.AuthorViews
		if err := rows.Scan(&a.Name, &a.Views); err != nil {
			return nil, errorsUtils.WrapPathErr(classify(err))
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(classify(err))
	}

	return authors, nil
}

func (r *ReportRepo) ErrorDays(ctx context.Context, filter repotypes.ErrorDaysFilter) ([]domain.ErrorDay, error) {
	sql, args, err := r.errorDaysQuery(filter).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(classify(err))
	}
	defer rows.Close()

	days := []domain.ErrorDay{}
	for rows.Next() {
		var d domain.ErrorDay
		if err := rows.Scan(&d.Date, &d.OkCount, &d.ErrorCount, &d.ErrorPercentage); err != nil {
			return nil, errorsUtils.WrapPathErr(classify(err))
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(classify(err))
	}

	return days, nil
}
