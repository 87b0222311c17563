package logger

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type runIDKey struct{}

func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

func withRun(ctx context.Context) *log.Entry {
	entry := log.NewEntry(log.StandardLogger())
	if id := RunID(ctx); id != "" {
		entry = entry.WithField("run_id", id)
	}
	return entry
}

func LogReportDone(ctx context.Context, report string, rows int, took time.Duration) {
	withRun(ctx).WithFields(log.Fields{
		"report":  report,
		"rows":    rows,
		"took_ms": took.Milliseconds(),
	}).Info("Report query finished")
}

func LogReportFailed(ctx context.Context, report string, err error) {
	withRun(ctx).WithFields(log.Fields{
		"report": report,
		"error":  err,
	}).Error("Report query failed")
}
