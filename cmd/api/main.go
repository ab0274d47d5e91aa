package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/regdesk/regdesk/internal/config"
	"github.com/regdesk/regdesk/internal/dispatch"
	httpx "github.com/regdesk/regdesk/internal/http"
	"github.com/regdesk/regdesk/internal/mail"
	"github.com/regdesk/regdesk/internal/observability"
	"github.com/regdesk/regdesk/internal/redisclient"
	"github.com/regdesk/regdesk/internal/repo/memory"
)

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)

	// tracing is optional; skip when no collector endpoint is configured
	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(context.Background(), "regdesk", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
		} else {
			defer func() {
				ctx, cancel := config.WithTimeout(5 * time.Second)
				defer cancel()
				_ = shutdownTracer(ctx)
			}()
		}
	}

	// metrics registry
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom := observability.NewProm(promReg)
	dispatchMetrics := observability.NewDispatchMetrics()

	// redis backs the shared rate limit window; the engine runs without it
	var redisClient *redisclient.Client

	if cfg.RedisAddr != "" {
		redisClient = redisclient.New(redisclient.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()
	}

	// outbound transport: real SMTP when credentials exist, log transport
	// otherwise, both behind the circuit breaker
	var mailer mail.Mailer

	smtpMailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	switch {
	case cfg.MailerMode == "log":
		mailer = mail.NewLogMailer()
	case !smtpMailer.IsConfigured() && cfg.Env == "dev":
		log.Warn("SMTP credentials missing, using log mailer")
		mailer = mail.NewLogMailer()
	default:
		mailer = smtpMailer
	}

	mailer = mail.NewProtectedMailer(mailer, mail.ProtectedMailerConfig{})

	// volatile store + dispatch service
	repo := memory.NewRegistrationsRepo()

	if cfg.SeedDemo {
		repo.SeedDemo()
		log.Info("seeded demo registrations", "count", repo.Count())
	}

	svc := dispatch.New(repo, mailer, log, prom, dispatchMetrics)

	router := httpx.NewRouter(log, cfg, httpx.RouterDeps{
		Repo:        repo,
		Dispatcher:  svc,
		Metrics:     dispatchMetrics,
		Prom:        prom,
		PromReg:     promReg,
		RedisClient: redisClient,
	})

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// start server using a concurrent go-routine driven anonymous function.

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)

			return
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
