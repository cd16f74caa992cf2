package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	kafkabroker "github.com/logwise-app/logwise/internal/broker/kafka"
	"github.com/logwise-app/logwise/internal/config"
	v1 "github.com/logwise-app/logwise/internal/controller/http/v1"
	"github.com/logwise-app/logwise/internal/metrics"
	"github.com/logwise-app/logwise/internal/repo"
	"github.com/logwise-app/logwise/internal/scoring"
	"github.com/logwise-app/logwise/internal/service"
	errorsUtils "github.com/logwise-app/logwise/pkg/errors"
	"github.com/logwise-app/logwise/pkg/httpserver"
	"github.com/logwise-app/logwise/pkg/logger"
	"github.com/logwise-app/logwise/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config

	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Producer
	brokerProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer brokerProducer.Close()

	// Services
	metricsCnt := metrics.New()
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Scorer:         scoring.NewDetector(scoring.MinSamples(cfg.Pipeline.MinSamples)),
		Threshold:      cfg.Pipeline.Threshold,
		Counters:       metricsCnt,
		BrokerProducer: brokerProducer,
	}
	services := service.NewServices(deps)

	// API server
	log.Infof("Starting API server...")
	log.Debugf("API server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	v1.ConfigureRouter(apiHandler, services, metricsCnt, cfg.Pipeline.MaxUploadSize)
	apiServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(apiServer, metricsServer)
}

func shutdownApp(servers ...*httpserver.Server) {
	log.Info("Shutting down...")
	for _, server := range servers {
		if err := server.Shutdown(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
}
