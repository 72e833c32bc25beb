package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"quiz-forge/internal/config"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/repository"
	"quiz-forge/internal/service"
)

func main() {
	sourceDir := flag.String("source", "", "Directory containing corpus files")
	outputDir := flag.String("output", "", "Directory to write quiz documents into")
	flag.Parse()

	if *sourceDir == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: generate_quizzes -source <dir> -output <dir>")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger is not initialized yet, so use fmt for this critical error
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Get().Info("Quiz generation starting up...",
		zap.String("source", *sourceDir),
		zap.String("output", *outputDir),
	)
	if cfg.Generator.RandomSeed != nil {
		logger.Get().Info("Using fixed random seed", zap.Int64("seed", *cfg.Generator.RandomSeed))
	}

	documentRepo, err := repository.NewFileDocumentRepository(*outputDir)
	if err != nil {
		logger.Get().Fatal("Failed to initialize document repository", zap.Error(err))
	}

	batchSvc := service.NewBatchService(documentRepo, cfg, logger.Get())

	summary, err := batchSvc.GenerateQuizDocuments(context.Background(), *sourceDir)
	if err != nil {
		logger.Get().Fatal("Quiz generation failed", zap.Error(err))
	}

	logger.Get().Info("Quiz generation completed successfully.",
		zap.Int("files_read", summary.FilesRead),
		zap.Int("records_parsed", summary.RecordsParsed),
		zap.Int("malformed_records", summary.MalformedRecords),
		zap.Int("missing_answers", summary.MissingAnswers),
		zap.Int("windows", summary.Windows),
		zap.Int("quizzes", summary.Quizzes),
		zap.Int("documents_written", summary.DocumentsWritten),
	)
}
