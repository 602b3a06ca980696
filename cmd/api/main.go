package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/pauloryan091/agmais/internal/audit"
	"github.com/pauloryan091/agmais/internal/config"
	dbpkg "github.com/pauloryan091/agmais/internal/db"
	"github.com/pauloryan091/agmais/internal/imaging"
	"github.com/pauloryan091/agmais/internal/logging"
	"github.com/pauloryan091/agmais/internal/notifier"
	"github.com/pauloryan091/agmais/internal/routes"
	"github.com/pauloryan091/agmais/internal/session"
	"github.com/pauloryan091/agmais/internal/timezone"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	// ======================================================
	// 💾 STORE
	// ======================================================
	store := dbpkg.NewStore(cfg, log)
	ready, err := store.Bootstrap(context.Background())
	if err != nil {
		log.WithError(err).Fatal("database bootstrap failed")
	}
	if !ready {
		log.Warn("starting without a database")
	}

	// ======================================================
	// 🔐 SESSÕES
	// ======================================================
	var sessionStore session.Store = session.NewMemoryStore()
	if cfg.SessionStore == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.WithError(err).Fatal("redis unreachable")
		}
		defer client.Close()
		sessionStore = session.NewRedisStore(client)
	}

	codec := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	sessions := session.NewManager(sessionStore, codec, cfg.SessionTTL)

	// ======================================================
	// 📣 AUDITORIA / NOTIFICAÇÕES
	// ======================================================
	dispatcher := audit.NewDispatcher(audit.New(store), log)

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Log:      log,
		Store:    store,
		Sessions: sessions,
		Notifier: notifier.FromConfig(cfg, log),
		Audit:    dispatcher,
		Images:   imaging.FromConfig(cfg),
		Clock:    timezone.NewClock(cfg.Timezone),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}

	dispatcher.Close()

	if err := store.Close(); err != nil {
		log.WithError(err).Error("database close")
	}
}
