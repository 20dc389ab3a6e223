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

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/notekeeper/internal/api/grpc/context"
	"github.com/dtroode/notekeeper/internal/api/grpc/router"
	grpcServer "github.com/dtroode/notekeeper/internal/api/grpc/server"
	"github.com/dtroode/notekeeper/internal/config"
	"github.com/dtroode/notekeeper/internal/keyissuance"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
	"github.com/dtroode/notekeeper/internal/repository/postgres"
	"github.com/dtroode/notekeeper/internal/server"
	"github.com/dtroode/notekeeper/internal/service"
	storage "github.com/dtroode/notekeeper/internal/storage/minio"
	"github.com/dtroode/notekeeper/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	storageClient, err := storage.NewClientFromConfig(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	issuer, err := keyissuance.NewIssuerFromHex(cfg.Authority.MasterSeed, cfg.Authority.SigningSeed)
	if err != nil {
		logger.Fatal("failed to initialize key issuer", "error", err)
	}

	vault := service.NewVault(postgres.NewNoteRepository(db), storageClient, logger)
	authority := service.NewAuthority(issuer, logger)
	tokenService := service.NewTokenService(token.NewJWT(cfg.JWT.Secret), logger)
	ctxMgr := grpcctx.NewManager()

	r := router.New(vault, authority, tokenService, ctxMgr, logger)
	s := r.Register()
	reflection.Register(s)
	srv := grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port))

	sl := server.NewSecurityLayer(cfg.GRPC)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS)
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
