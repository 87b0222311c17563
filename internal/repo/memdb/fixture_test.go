package memdb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/repo/memdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore(t *testing.T) {
	store, err := memdb.LoadStore("testdata/news.yaml")
	require.NoError(t, err)

	require.Len(t, store.Articles, 2)
	require.Len(t, store.Authors, 2)
	require.Len(t, store.Log, 5)
	assert.Equal(t, domain.Author{ID: 2, Name: "Rudolf von Treppenwitz"}, store.Authors[1])
	assert.Equal(t, "2016-07-01", store.Log[0].Time.Format("2006-01-02"))

	ctx := context.Background()

	articles, err := store.TopArticles(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.ArticleViews{
		{Title: "Candidate is jerk, alleges rival", Views: 3},
		{Title: "Bears love berries, alleges bear", Views: 1},
	}, articles)

	authors, err := store.TopAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.AuthorViews{
		{Name: "Rudolf von Treppenwitz", Views: 3},
		{Name: "Ursula La Multa", Views: 1},
	}, authors)

	days, err := store.ErrorDays(ctx, defaultFilter)
	require.NoError(t, err)
	assert.Equal(t, []domain.ErrorDay{
		{Date: "2016-07-01", OkCount: 3, ErrorCount: 1, ErrorPercentage: 25},
	}, days)
}

func TestLoadStore_Errors(t *testing.T) {
	_, err := memdb.LoadStore(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("articles: [\n"), 0o600))
	_, err = memdb.LoadStore(broken)
	assert.Error(t, err)
}

func TestNoTx(t *testing.T) {
	called := false
	err := memdb.NoTx{}.Do(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
