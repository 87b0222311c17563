package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Egor213/NewsReport/internal/broker"
	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/metrics"
	"github.com/Egor213/NewsReport/internal/repo"
	"github.com/Egor213/NewsReport/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/Egor213/NewsReport/pkg/logger"
	"github.com/google/uuid"
)

const (
	ReportTopArticles = "top_articles"
	ReportTopAuthors  = "top_authors"
	ReportErrorDays   = "error_days"
)

// StatusConfig names the log statuses ErrorDays compares. Only an exact match
// counts: other error statuses fall in neither group.
type StatusConfig struct {
	OkStatus    string
	ErrorStatus string
}

func DefaultStatuses() StatusConfig {
	return StatusConfig{
		OkStatus:    domain.StatusOK,
		ErrorStatus: domain.StatusNotFound,
	}
}

type ReportService struct {
	reportRepo     repo.Report
	txManager      TxManager
	counters       *metrics.Counters
	brokerProducer broker.Producer
	statuses       StatusConfig
}

func NewReportService(rr repo.Report, tm TxManager, cnt *metrics.Counters, p broker.Producer, st StatusConfig) *ReportService {
	if p == nil {
		p = broker.NopProducer{}
	}
	if st.OkStatus == "" || st.ErrorStatus == "" {
		st = DefaultStatuses()
	}
	return &ReportService{
		reportRepo:     rr,
		txManager:      tm,
		counters:       cnt,
		brokerProducer: p,
		statuses:       st,
	}
}

func (s *ReportService) observe(report string, rows int, err error) {
	if err != nil {
		s.counters.ReportQueries.Inc(report, metrics.StatusFailed)
		return
	}
	s.counters.ReportQueries.Inc(report, metrics.StatusOK)
	s.counters.ReportRows.Add(float64(rows), report)
}

func (s *ReportService) TopArticles(ctx context.Context, limit int) ([]domain.ArticleViews, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	start := time.Now()
	articles, err := s.reportRepo.TopArticles(ctx, uint64(limit))
	s.observe(ReportTopArticles, len(articles), err)
	if err != nil {
		logger.LogReportFailed(ctx, ReportTopArticles, err)
		return nil, errorsUtils.WrapPathErr(err)
	}
	logger.LogReportDone(ctx, ReportTopArticles, len(articles), time.Since(start))

	return articles, nil
}

func (s *ReportService) TopAuthors(ctx context.Context) ([]domain.AuthorViews, error) {
	start := time.Now()
	authors, err := s.reportRepo.TopAuthors(ctx)
	s.observe(ReportTopAuthors, len(authors), err)
	if err != nil {
		logger.LogReportFailed(ctx, ReportTopAuthors, err)
		return nil, errorsUtils.WrapPathErr(err)
	}
	logger.LogReportDone(ctx, ReportTopAuthors, len(authors), time.Since(start))

	return authors, nil
}

func (s *ReportService) ErrorDays(ctx context.Context, threshold float64) ([]domain.ErrorDay, error) {
	if threshold < 0 || threshold > 100 {
		return nil, ErrInvalidThreshold
	}

	filter := repotypes.ErrorDaysFilter{
		OkStatus:    s.statuses.OkStatus,
		ErrorStatus: s.statuses.ErrorStatus,
		Threshold:   threshold,
	}

	start := time.Now()
	days, err := s.reportRepo.ErrorDays(ctx, filter)
	s.observe(ReportErrorDays, len(days), err)
	if err != nil {
		logger.LogReportFailed(ctx, ReportErrorDays, err)
		return nil, errorsUtils.WrapPathErr(err)
	}
	logger.LogReportDone(ctx, ReportErrorDays, len(days), time.Since(start))

	return days, nil
}

// Generate runs the three reports in order inside one transaction and stops
// at the first failure.
func (s *ReportService) Generate(ctx context.Context, opts domain.ReportOptions) (*domain.Report, error) {
	if opts.ArticlesLimit <= 0 {
		return nil, ErrInvalidLimit
	}
	if opts.ErrorThreshold < 0 || opts.ErrorThreshold > 100 {
		return nil, ErrInvalidThreshold
	}

	if logger.RunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, uuid.NewString())
	}

	report := &domain.Report{
		ArticlesLimit:  opts.ArticlesLimit,
		ErrorThreshold: opts.ErrorThreshold,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		if report.Articles, err = s.TopArticles(ctx, opts.ArticlesLimit); err != nil {
			return err
		}
		if report.Authors, err = s.TopAuthors(ctx); err != nil {
			return err
		}
		if report.ErrorDays, err = s.ErrorDays(ctx, opts.ErrorThreshold); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotBuildReport, err))
	}

	return report, nil
}

// Publish sends the report as JSON, keyed by the run id from ctx or a fresh
// one when ctx has none.
func (s *ReportService) Publish(ctx context.Context, report *domain.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	key := logger.RunID(ctx)
	if key == "" {
		key = uuid.NewString()
	}

	if err := s.brokerProducer.SendMessage(ctx, []byte(key), payload); err != nil {
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotPublish, err))
	}
	return nil
}
