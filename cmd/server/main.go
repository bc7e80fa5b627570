package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/MjedAl/Fyyur/internal/booking"
	"github.com/MjedAl/Fyyur/internal/config"
	"github.com/MjedAl/Fyyur/internal/database"
	"github.com/MjedAl/Fyyur/internal/handler"
	"github.com/MjedAl/Fyyur/internal/middleware"
	"github.com/MjedAl/Fyyur/internal/queue"
	"github.com/MjedAl/Fyyur/internal/repository"
	"github.com/MjedAl/Fyyur/internal/router"
)

func main() {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if cfg.Env == "prod" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("open store")
	}
	defer closeStore()

	var events booking.EventPublisher
	if cfg.Events.Enabled {
		events = queue.NewPublisher(cfg.Events.URL, cfg.Events.Queue)
		log.WithField("queue", cfg.Events.Queue).Info("activity events enabled")
	}
	if cfg.Events.ConsumerEnabled {
		consumer := queue.NewActivityConsumer(cfg.Events.URL, cfg.Events.Queue, cfg.Events.LogDir)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Error("activity consumer stopped")
			}
		}()
		log.WithField("dir", cfg.Events.LogDir).Info("activity consumer started")
	}

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.WithField("addr", cfg.Redis.Addr).Warn("redis unavailable; cache and rate limit disabled")
	} else {
		defer rdb.Close()
	}

	svc := booking.NewService(store, events, time.Now)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	router.Register(e, handler.New(svc), router.Middlewares{
		Cache:      middleware.NewRedisCache(cfg.Cache, rdb),
		Invalidate: middleware.InvalidateCache(cfg.Cache, rdb),
		RateLimit:  middleware.NewTokenBucket(cfg.RateLimit, rdb),
	})

	addr := ":" + cfg.Port
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "store": cfg.StoreDriver}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("server stopped")
}

// openStore returns the configured Store and a function releasing it.
func openStore(ctx context.Context, cfg config.Config) (repository.Store, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		return repository.NewMemoryStore(), func() {}, nil
	}
	db, err := database.Open(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return repository.NewMySQLStore(db), func() { _ = db.Close() }, nil
}
