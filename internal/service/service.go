package service

import (
	"context"

	"github.com/Egor213/NewsReport/internal/broker"
	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/metrics"
	"github.com/Egor213/NewsReport/internal/repo"
)

type Report interface {
	TopArticles(ctx context.Context, limit int) ([]domain.ArticleViews, error)
	TopAuthors(ctx context.Context) ([]domain.AuthorViews, error)
	ErrorDays(ctx context.Context, threshold float64) ([]domain.ErrorDay, error)
	Generate(ctx context.Context, opts domain.ReportOptions) (*domain.Report, error)
	Publish(ctx context.Context, report *domain.Report) error
}

// TxManager runs fn inside a transaction carried by ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Services struct {
	Report
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	TxManager      TxManager
	BrokerProducer broker.Producer
	Statuses       StatusConfig
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Report: NewReportService(deps.Repos.Report, deps.TxManager, deps.Counters, deps.BrokerProducer, deps.Statuses),
	}
}
