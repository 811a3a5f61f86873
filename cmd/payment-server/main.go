package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/k-code-yt/payment-service/internal/config"
	"github.com/k-code-yt/payment-service/internal/events"
	"github.com/k-code-yt/payment-service/internal/httpapi"
	"github.com/k-code-yt/payment-service/internal/metrics"
	"github.com/k-code-yt/payment-service/internal/payment"
	"github.com/k-code-yt/payment-service/pkg/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	dbCfg := postgres.NewPostgresConfig("")
	db, err := postgres.NewDBConn(dbCfg)
	if err != nil {
		logrus.Fatalf("unable to connect to postgres: %v", err)
	}
	defer db.Close()

	busCfg := config.NewRabbitMQConfig()
	conn, err := amqp.Dial(busCfg.URL)
	if err != nil {
		logrus.Fatalf("unable to connect to rabbitmq: %v", err)
	}
	defer conn.Close()

	metrics.Register()

	repo := payment.NewPaymentRepo(db)
	pub := events.NewPublisher(conn, busCfg.Exchange)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := events.NewConsumer(conn, busCfg, events.OrderCreatedHandler(repo, pub))
	if err := consumer.Start(ctx); err != nil {
		logrus.Fatalf("unable to start consumer: %v", err)
	}

	httpCfg := config.NewHTTPConfig()
	srv := &http.Server{
		Addr:         ":" + httpCfg.Port,
		Handler:      httpapi.NewRouter(repo),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("port", httpCfg.Port).Info("payment-service listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("http server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logrus.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %v", err)
	}
}
