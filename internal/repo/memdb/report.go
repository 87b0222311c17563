// Package memdb answers the news reports from fixture data held in memory,
// with the same join and grouping rules as the Postgres queries.
package memdb

import (
	"context"
	"sort"

	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/repo/repotypes"
)

const dateLayout = "2006-01-02"

type Store struct {
	Articles []domain.Article
	Authors  []domain.Author
	Log      []domain.LogEntry
}

func NewStore(articles []domain.Article, authors []domain.Author, log []domain.LogEntry) *Store {
	return &Store{
		Articles: articles,
		Authors:  authors,
		Log:      log,
	}
}

// viewsBySlug counts log entries per slug. An article slug is expected to be
// unique, as in the articles table.
func (s *Store) viewsBySlug() map[string]int64 {
	views := make(map[string]int64)
	for _, entry := range s.Log {
		if slug, ok := domain.SlugFromPath(entry.Path); ok {
			views[slug]++
		}
	}
	return views
}

func (s *Store) TopArticles(ctx context.Context, limit uint64) ([]domain.ArticleViews, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	views := s.viewsBySlug()
	byTitle := make(map[string]int64)
	for _, a := range s.Articles {
		if n := views[a.Slug]; n > 0 {
			byTitle[a.Title] += n
		}
	}

	result := make([]domain.ArticleViews, 0, len(byTitle))
	for title, n := range byTitle {
		result = append(result, domain.ArticleViews{Title: title, Views: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Views != result[j].Views {
			return result[i].Views > result[j].Views
		}
		return result[i].Title < result[j].Title
	})

	if uint64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *Store) TopAuthors(ctx context.Context) ([]domain.AuthorViews, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := make(map[int]string, len(s.Authors))
	for _, a := range s.Authors {
		names[a.ID] = a.Name
	}

	views := s.viewsBySlug()
	byName := make(map[string]int64)
	for _, a := range s.Articles {
		name, ok := names[a.Author]
		if !ok {
			continue
		}
		if n := views[a.Slug]; n > 0 {
			byName[name] += n
		}
	}

	result := make([]domain.AuthorViews, 0, len(byName))
	for name, n := range byName {
		result = append(result, domain.AuthorViews{Name: name, Views: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Views != result[j].Views {
			return result[i].Views > result[j].Views
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (s *Store) ErrorDays(ctx context.Context, filter repotypes.ErrorDaysFilter) ([]domain.ErrorDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	okByDay := make(map[string]int64)
	errByDay := make(map[string]int64)
	for _, entry := range s.Log {
		day := entry.Time.Format(dateLayout)
		switch entry.Status {
		case filter.OkStatus:
			okByDay[day]++
		case filter.ErrorStatus:
			errByDay[day]++
		}
	}

	result := []domain.ErrorDay{}
	for day, okCount := range okByDay {
		errCount, ok := errByDay[day]
		if !ok {
			continue
		}
		pct := domain.ErrorPercentage(okCount, errCount)
		if pct < filter.Threshold {
			continue
		}
		result = append(result, domain.ErrorDay{
			Date:            day,
			OkCount:         okCount,
			ErrorCount:      errCount,
			ErrorPercentage: pct,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}
