package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/byb-ai/progress-verifier/internal/common"
	"github.com/byb-ai/progress-verifier/internal/extract"
	"github.com/byb-ai/progress-verifier/internal/llm/openai"
	"github.com/byb-ai/progress-verifier/internal/ner"
	"github.com/byb-ai/progress-verifier/internal/ocr"
	"github.com/byb-ai/progress-verifier/internal/pipeline"
)

// runpipeline runs one document through OCR, entity extraction, and
// validation without touching the database. Useful for smoke-testing
// credentials and prompt changes.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runpipeline <report-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read report file", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if cfg.OCR.Bucket == "" {
		logger.Error("GCS_BUCKET_NAME required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

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

	p := pipeline.NewProcessor(logger, textExtractor, ner.NewExtractor(llmClient, logger))

	start := time.Now()
	outcome, err := p.Process(ctx, extract.Document{
		Content:  content,
		Filename: filepath.Base(path),
	})
	if err != nil {
		logger.Error("pipeline failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(map[string]any{
		"valid":       outcome.Valid,
		"result":      outcome.Result,
		"method":      outcome.Text.Method,
		"pages":       outcome.Text.Pages,
		"confidence":  outcome.Text.Confidence,
		"duration_ms": time.Since(start).Milliseconds(),
	}, "", "  ")
	fmt.Println(string(out))
}
