package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	restctx "github.com/dtroode/messagely-server/internal/api/rest/context"
	"github.com/dtroode/messagely-server/internal/api/rest/router"
	httpServer "github.com/dtroode/messagely-server/internal/api/rest/server"
	"github.com/dtroode/messagely-server/internal/config"
	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/metrics"
	"github.com/dtroode/messagely-server/internal/model"
	"github.com/dtroode/messagely-server/internal/password"
	"github.com/dtroode/messagely-server/internal/repository/postgres"
	"github.com/dtroode/messagely-server/internal/server"
	"github.com/dtroode/messagely-server/internal/service"
	"github.com/dtroode/messagely-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	conn, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer conn.Close()

	hasher, err := password.NewBcrypt(cfg.Bcrypt.Cost)
	if err != nil {
		logger.Fatal("failed to initialize password hasher", "error", err)
	}
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	userRepo := postgres.NewUserRepository(conn.DB)
	messageRepo := postgres.NewMessageRepository(conn.DB)

	userService := service.NewUser(userRepo, messageRepo, hasher, logger)
	messageService := service.NewMessage(messageRepo, collector, logger)
	authService := service.NewAuth(userService, tokenManager, collector, logger)

	handler := router.New(router.Deps{
		AuthService:    authService,
		UserService:    userService,
		MessageService: messageService,
		TokenService:   authService,
		ContextManager: restctx.NewManager(),
		Database:       conn,
		Recorder:       collector,
		Gatherer:       reg,
		Logger:         logger,
	}).Register()

	srv := httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
