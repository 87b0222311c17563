package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	cnt := NewTestCounters()

	cnt.ReportQueries.Inc("top_articles", StatusOK)
	cnt.ReportQueries.Inc("top_articles", StatusOK)
	cnt.ReportQueries.Inc("error_days", StatusFailed)
	cnt.ReportRows.Add(3, "top_articles")

	queries := cnt.ReportQueries.(*PrometheusCounter).counter
	rows := cnt.ReportRows.(*PrometheusCounter).counter

	assert.Equal(t, 2.0, testutil.ToFloat64(queries.WithLabelValues("top_articles", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(queries.WithLabelValues("error_days", StatusFailed)))
	assert.Equal(t, 3.0, testutil.ToFloat64(rows.WithLabelValues("top_articles")))
}

func TestNew_Twice(t *testing.T) {
	first := New()
	second := New()

	first.ReportRows.Add(2, "top_authors")

	rows := second.ReportRows.(*PrometheusCounter).counter
	assert.Equal(t, 2.0, testutil.ToFloat64(rows.WithLabelValues("top_authors")))
}
