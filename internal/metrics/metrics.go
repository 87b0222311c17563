package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

type Counter interface {
	Inc(labels ...string)
	Add(value float64, labels ...string)
}

type Counters struct {
	ReportQueries Counter
	ReportRows    Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := newPrometheusCounter(name, help, labels)
	if err := prometheus.Register(c.counter); err != nil {
		// A second New in the same process shares the registered vector.
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		c.counter = are.ExistingCollector.(*prometheus.CounterVec)
	}
	return c
}

func newPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(value float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(value)
}

const (
	reportQueriesName = "report_queries_total"
	reportQueriesHelp = "Number of report queries run against the news database"
	reportRowsName    = "report_rows_total"
	reportRowsHelp    = "Number of rows returned by report queries"
)

func New() *Counters {
	return &Counters{
		ReportQueries: NewPrometheusCounter(reportQueriesName, reportQueriesHelp, []string{"report", "status"}),
		ReportRows:    NewPrometheusCounter(reportRowsName, reportRowsHelp, []string{"report"}),
	}
}

// NewTestCounters registers on a private registry, so it can be called once
// per test without duplicate registration panics.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	reportQueries := newPrometheusCounter(reportQueriesName, reportQueriesHelp, []string{"report", "status"})
	reportRows := newPrometheusCounter(reportRowsName, reportRowsHelp, []string{"report"})

	reg.MustRegister(reportQueries.counter)
	reg.MustRegister(reportRows.counter)

	return &Counters{
		ReportQueries: reportQueries,
		ReportRows:    reportRows,
	}
}
