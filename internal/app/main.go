package app

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/NewsReport/internal/broker"
	kafkabroker "github.com/Egor213/NewsReport/internal/broker/kafka"
	"github.com/Egor213/NewsReport/internal/config"
	httpv1 "github.com/Egor213/NewsReport/internal/controller/http/v1"
	"github.com/Egor213/NewsReport/internal/controller/text"
	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/metrics"
	"github.com/Egor213/NewsReport/internal/repo"
	"github.com/Egor213/NewsReport/internal/repo/memdb"
	"github.com/Egor213/NewsReport/internal/service"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/Egor213/NewsReport/pkg/grpcserver"
	"github.com/Egor213/NewsReport/pkg/httpserver"
	"github.com/Egor213/NewsReport/pkg/logger"
	"github.com/Egor213/NewsReport/pkg/postgres"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	if err := run(os.Stdout, postgres.New); err != nil {
		log.Fatal(err)
	}
}

type connectFunc func(pgUrl string, opts ...postgres.Option) (*postgres.Postgres, error)

// run returns instead of exiting so the deferred pool and producer closes
// happen on every path.
func run(out io.Writer, connect connectFunc) error {
	// Config
	cfg, err := config.New()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.WithFields(log.Fields{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
	}).Info("Logger has been set up")

	var (
		repositories *repo.Repositories
		txManager    service.TxManager
	)

	if cfg.Fixture.Enabled() {
		// Fixture
		log.WithField("path", cfg.Fixture.Path).Info("Loading fixture")
		store, err := memdb.LoadStore(cfg.Fixture.Path)
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}
		repositories = repo.NewFixtureRepositories(store)
		txManager = memdb.NoTx{}
	} else {
		// Migrations
		if cfg.PG.Migrate {
			if err := Migrate(cfg.PG.MigrateURL()); err != nil {
				return err
			}
		}

		// DB connecting
		log.WithField("database", cfg.PG.Name).Info("Connecting to DB")
		pg, err := connect(cfg.PG.DSN(), postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}
		defer pg.Close()
		log.Info("Connected to DB")

		repositories = repo.NewRepositories(pg)
		txManager = pg.SnapshotManager()
	}

	// Producer
	var producer broker.Producer = broker.NopProducer{}
	if cfg.Kafka.Enabled() {
		kafkaProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	// Services
	metricsCnt := metrics.New()
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       metricsCnt,
		TxManager:      txManager,
		BrokerProducer: producer,
		Statuses: service.StatusConfig{
			OkStatus:    cfg.Report.OkStatus,
			ErrorStatus: cfg.Report.ErrorStatus,
		},
	}
	services := service.NewServices(deps)

	if cfg.App.Mode == config.ModeServe {
		return serve(cfg, services)
	}
	return report(context.Background(), cfg, services, out)
}

func report(ctx context.Context, cfg *config.Config, services *service.Services, out io.Writer) error {
	ctx = logger.WithRunID(ctx, uuid.NewString())

	rep, err := services.Report.Generate(ctx, domain.ReportOptions{
		ArticlesLimit:  cfg.Report.ArticlesLimit,
		ErrorThreshold: cfg.Report.ErrorThreshold,
	})
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := text.NewPrinter().Print(out, rep); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if cfg.Kafka.Enabled() {
		if err := services.Report.Publish(ctx, rep); err != nil {
			return errorsUtils.WrapPathErr(err)
		}
		log.WithField("topic", cfg.Kafka.Topic).Info("Report published")
	}

	return nil
}

func serve(cfg *config.Config, services *service.Services) error {
	// gRPC health
	log.Infof("Starting gRPC health server...")
	log.Debugf("gRPC server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(nil, grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	// HTTP reports and metrics
	log.Infof("Starting HTTP server...")
	log.Debugf("HTTP server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	handler.HideBanner = true
	metrics.ConfigureRouter(handler)
	httpv1.RegisterRoutes(handler, services, httpv1.ReportDefaults{
		ArticlesLimit:  cfg.Report.ArticlesLimit,
		ErrorThreshold: cfg.Report.ErrorThreshold,
	})
	httpServer := httpserver.New(handler, httpserver.Port(cfg.HTTP.Port))

	grpcServer.SetServing(true)

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var serveErr error
	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-httpServer.Notify():
		serveErr = errorsUtils.WrapPathErr(err)
	case err := <-grpcServer.Notify():
		serveErr = errorsUtils.WrapPathErr(err)
	}

	// Graceful shutdown
	shutdownApp(grpcServer, httpServer)
	return serveErr
}

func shutdownApp(grpcServer *grpcserver.Server, httpServer *httpserver.Server) {
	log.Info("Shutting down...")
	grpcServer.SetServing(false)
	err := httpServer.Shutdown()
	if err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
}
