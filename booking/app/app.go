package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stayhub/stay-booking/booking/config"
	"github.com/stayhub/stay-booking/booking/internal/handler"
	"github.com/stayhub/stay-booking/booking/internal/repository"
	"github.com/stayhub/stay-booking/booking/internal/server"
	"github.com/stayhub/stay-booking/booking/internal/service"
	"github.com/stayhub/stay-booking/booking/migrations"
	"github.com/stayhub/stay-booking/pkg/kafka"
	"github.com/stayhub/stay-booking/pkg/logger"
	"github.com/stayhub/stay-booking/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "booking")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo booking %v", err)
	}

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled {
		if producer, err = kafka.NewProducer(cfg.Kafka); err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
		defer producer.Close() //nolint:errcheck
	}

	policy := service.Policy{
		AllowSameDay:  cfg.Booking.AllowSameDay,
		PendingBlocks: cfg.Booking.PendingBlocks,
	}
	svc := service.NewService(repo, producer, policy, cfg.Kafka.Topic, log)
	h := handler.New(svc, log)

	var sweeper *cron.Cron
	if cfg.Booking.SweepSchedule != "" {
		sweeper = cron.New()
		if _, err := sweeper.AddFunc(cfg.Booking.SweepSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := svc.RejectStalePending(ctx); err != nil {
				log.Error("stale pending sweep", zap.Error(err))
			}
		}); err != nil {
			return fmt.Errorf("sweep schedule %v", err)
		}
		sweeper.Start()
	}

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		if sweeper != nil {
			<-sweeper.Stop().Done()
		}
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
