package text_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Egor213/NewsReport/internal/controller/text"
	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Print(t *testing.T) {
	report := &domain.Report{
		ArticlesLimit:  3,
		ErrorThreshold: 1,
		Articles: []domain.ArticleViews{
			{Title: "Candidate is jerk, alleges rival", Views: 338647},
			{Title: "Bears love berries, alleges bear", Views: 253801},
			{Title: `Bad things gone, say "good" people`, Views: 170098},
		},
		Authors: []domain.AuthorViews{
			{Name: "Ursula La Multa", Views: 507594},
			{Name: "Anonymous Contributor", Views: 170098},
		},
		ErrorDays: []domain.ErrorDay{
			{Date: "2016-07-17", OkCount: 38431, ErrorCount: 1265, ErrorPercentage: 3.19},
			{Date: "2016-07-18", OkCount: 100, ErrorCount: 1, ErrorPercentage: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, text.NewPrinter().Print(&buf, report))

	want := "Finding the most popular three articles of all time:\n\n" +
		"\"Candidate is jerk, alleges rival\" -- 338647 views\n" +
		"\"Bears love berries, alleges bear\" -- 253801 views\n" +
		"\"Bad things gone, say \"good\" people\" -- 170098 views\n" +
		"\n\nThe most popular article authors of all time:\n\n" +
		"Ursula La Multa -- 507594 views\n" +
		"Anonymous Contributor -- 170098 views\n" +
		"\n\nDays with more than 1% of requests lead to errors:\n\n" +
		"2016-07-17 -- 3.19% errors\n" +
		"2016-07-18 -- 1.00% errors\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_PrintEmptySections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, text.NewPrinter().Print(&buf, &domain.Report{ArticlesLimit: 5, ErrorThreshold: 2.5}))

	want := "Finding the most popular five articles of all time:\n\n" +
		"\n\nThe most popular article authors of all time:\n\n" +
		"\n\nDays with more than 2.5% of requests lead to errors:\n\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_PrintIsDeterministic(t *testing.T) {
	report := &domain.Report{
		ArticlesLimit:  3,
		ErrorThreshold: 1,
		Articles:       []domain.ArticleViews{{Title: "Hello World", Views: 5}},
		Authors:        []domain.AuthorViews{{Name: "Ada", Views: 5}},
	}

	var first, second bytes.Buffer
	require.NoError(t, text.NewPrinter().Print(&first, report))
	require.NoError(t, text.NewPrinter().Print(&second, report))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestPrinter_PrintLargeLimit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, text.NewPrinter().Print(&buf, &domain.Report{ArticlesLimit: 25, ErrorThreshold: 1}))
	assert.Contains(t, buf.String(), "Finding the most popular 25 articles of all time:\n\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestPrinter_PrintWriteError(t *testing.T) {
	err := text.NewPrinter().Print(failingWriter{}, &domain.Report{ArticlesLimit: 3})
	assert.Error(t, err)
}
