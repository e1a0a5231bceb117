package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	reportspb "github.com/byb-ai/progress-verifier/gen/proto/reports/v1"
	"github.com/byb-ai/progress-verifier/internal/common"
	"github.com/byb-ai/progress-verifier/internal/escrow"
	"github.com/byb-ai/progress-verifier/internal/export"
	"github.com/byb-ai/progress-verifier/internal/llm/openai"
	"github.com/byb-ai/progress-verifier/internal/ner"
	"github.com/byb-ai/progress-verifier/internal/ocr"
	"github.com/byb-ai/progress-verifier/internal/pipeline"
	"github.com/byb-ai/progress-verifier/internal/repository"
	"github.com/byb-ai/progress-verifier/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// Stage 1: OCR
	store, err := ocr.NewGCSStore(ctx, cfg.OCR.Bucket, cfg.OCR.CredentialsFile)
	if err != nil {
		logger.Error("create object store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	recognizer, err := ocr.NewVisionRecognizer(ctx, cfg.OCR.CredentialsFile)
	if err != nil {
		logger.Error("create recognizer", "error", err)
		os.Exit(1)
	}
	defer recognizer.Close()

	textExtractor := ocr.NewExtractor(store, recognizer, ocr.Config{
		BatchTimeout: cfg.OCR.BatchTimeout,
		BatchSize:    cfg.OCR.BatchSize,
	}, logger)

	// Stage 2: entity extraction
	llmClient, err := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("create llm client", "error", err)
		os.Exit(1)
	}
	entityExtractor := ner.NewExtractor(llmClient, logger)

	processor := pipeline.NewProcessor(logger, textExtractor, entityExtractor)

	// Repositories and services
	files := repository.NewReportFileRepository(entc, logger)
	jobs := repository.NewExtractJobRepository(entc, logger)
	verifications := repository.NewVerificationRepository(entc, logger)
	exporter := export.NewService(verifications, logger)

	var escrowSvc *escrow.Service
	if cfg.EscrowEnabled() {
		escrowSvc, err = escrow.NewService(ctx, escrow.Config{
			RPCURL:          cfg.Escrow.RPCURL,
			ContractAddress: cfg.Escrow.ContractAddress,
			ABIPath:         cfg.Escrow.ABIPath,
			PrivateKey:      cfg.Escrow.PrivateKey,
			ChainID:         cfg.Escrow.ChainID,
		}, logger)
		if err != nil {
			logger.Error("create escrow service", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("escrow not configured; fund release disabled")
	}

	// gRPC server
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.APIKeyInterceptor(cfg.Server.APIKey)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewVerifierService(processor, files, jobs, verifications, exporter, escrowSvc, cfg.LLM.Model, logger)
	reportspb.RegisterVerifierServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
