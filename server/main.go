package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter-agent/agent"
	"go-currency-converter-agent/config"
	"go-currency-converter-agent/exchange"
	"go-currency-converter-agent/http"
	"go-currency-converter-agent/rates"
	"go-currency-converter-agent/skill"

	nhttp "net/http"
)

var version = "dev"

func main() {
	w := log.NewSyncWriter(os.Stderr)
	base := log.NewLogfmtLogger(w)
	logger := log.With(base, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if err := config.LoadDotEnv(); err != nil {
		level.Error(logger).Log("msg", "loading .env", "err", err)
		os.Exit(1)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}
	logger = log.With(level.NewFilter(base, allow(cfg.LogLevel)), "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	rateService := rates.NewFixedService()
	rateService = rates.NewLoggingService(log.With(logger, "component", "rates"), rateService)

	convertService := exchange.NewService(rateService)
	convertService = exchange.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	convertSkill, err := skill.NewConvert(convertService)
	if err != nil {
		level.Error(logger).Log("msg", "building convert skill", "err", err)
		os.Exit(1)
	}
	currencyAgent, err := agent.New(cfg.AgentURL, version, convertSkill)
	if err != nil {
		level.Error(logger).Log("msg", "building agent", "err", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	handler := http.NewServer(currencyAgent, convertService, log.With(logger, "component", "http"))

	srv := &nhttp.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "starting currency agent", "addr", srv.Addr, "url", cfg.AgentURL, "version", version)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			level.Error(logger).Log("msg", "server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		level.Info(logger).Log("msg", "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			level.Error(logger).Log("msg", "shutdown failed", "err", err)
			os.Exit(1)
		}
	}
}

// allow maps a configured log level to a level filter option
func allow(l string) level.Option {
	switch l {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
