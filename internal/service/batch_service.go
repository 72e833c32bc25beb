package service

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"quiz-forge/internal/analysis"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/generator"
	"quiz-forge/internal/parser"
)

// batchService implements the domain.BatchService interface: one
// synchronous pass that parses every corpus file, batches the records into
// fixed windows and emits one quiz document per window.
type batchService struct {
	documentRepo domain.DocumentRepository
	synthesizer  *generator.Synthesizer
	cfg          *config.Config
	logger       *zap.Logger
}

// NewBatchService creates a new instance of batchService. The random source
// for quiz sampling comes from the configured seed, or the wall clock when
// no seed is set (results then differ across runs).
func NewBatchService(
	documentRepo domain.DocumentRepository,
	cfg *config.Config,
	logger *zap.Logger,
) domain.BatchService {
	seed := time.Now().UnixNano()
	if cfg.Generator.RandomSeed != nil {
		seed = *cfg.Generator.RandomSeed
	}
	return &batchService{
		documentRepo: documentRepo,
		synthesizer:  generator.NewSynthesizer(cfg.Generator, rand.New(rand.NewSource(seed))),
		cfg:          cfg,
		logger:       logger,
	}
}

// GenerateQuizDocuments runs the whole pipeline over sourceDir and returns
// the run summary. The first I/O error aborts the run; documents already
// written stay on disk.
func (s *batchService) GenerateQuizDocuments(ctx context.Context, sourceDir string) (*domain.RunSummary, error) {
	s.logger.Info("Starting quiz generation run",
		zap.String("source_dir", sourceDir),
		zap.Int("questions_per_batch", s.cfg.Generator.QuestionsPerBatch),
		zap.Int("questions_per_quiz", s.cfg.Generator.QuestionsPerQuiz),
	)

	summary := &domain.RunSummary{}

	records, err := s.collectRecords(sourceDir, summary)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Corpus parsed",
		zap.Int("files", summary.FilesRead),
		zap.Int("records", summary.RecordsParsed),
		zap.Int("malformed", summary.MalformedRecords),
		zap.Int("missing_answer", summary.MissingAnswers),
	)

	if err := s.emitDocuments(ctx, records, summary); err != nil {
		return nil, err
	}

	s.logger.Info("Quiz generation run completed",
		zap.Int("windows", summary.Windows),
		zap.Int("quizzes", summary.Quizzes),
		zap.Int("documents", summary.DocumentsWritten),
	)
	return summary, nil
}

// collectRecords parses every regular file under sourceDir in lexicographic
// filename order and accumulates one master record sequence. Each record is
// tagged with its source file identifier (base name without extension).
func (s *batchService) collectRecords(sourceDir string, summary *domain.RunSummary) ([]domain.QuestionRecord, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, domain.NewInputIOError(fmt.Sprintf("failed to read source directory %s", sourceDir), err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	// os.ReadDir already sorts by filename; keep the sort explicit so the
	// iteration order is a documented guarantee, not an accident.
	sort.Strings(names)

	var records []domain.QuestionRecord
	for _, name := range names {
		path := filepath.Join(sourceDir, name)
		fileRecords, counters, err := parser.ParseFile(path)
		if err != nil {
			return nil, err
		}

		identifier := strings.TrimSuffix(name, filepath.Ext(name))
		for i := range fileRecords {
			fileRecords[i].Tags = analysis.Tags(fileRecords[i].Question, identifier)
		}
		records = append(records, fileRecords...)

		summary.FilesRead++
		summary.RecordsParsed += len(fileRecords)
		summary.MalformedRecords += counters.Malformed
		summary.MissingAnswers += counters.MissingAnswer

		s.logger.Debug("Parsed corpus file",
			zap.String("file", name),
			zap.Int("records", len(fileRecords)),
			zap.Int("malformed", counters.Malformed),
			zap.Int("missing_answer", counters.MissingAnswer),
		)
	}
	return records, nil
}

// emitDocuments splits the master sequence into windows of
// QuestionsPerBatch records, partitions each window into groups of
// QuestionsPerQuiz and writes one document per window that yields quizzes.
// A trailing group smaller than QuestionsPerQuiz is discarded.
func (s *batchService) emitDocuments(ctx context.Context, records []domain.QuestionRecord, summary *domain.RunSummary) error {
	windowSize := s.cfg.Generator.QuestionsPerBatch
	groupSize := s.cfg.Generator.QuestionsPerQuiz

	for start := 0; start < len(records); start += windowSize {
		end := start + windowSize
		if end > len(records) {
			end = len(records)
		}
		window := records[start:end]
		summary.Windows++

		var quizzes []*domain.Quiz
		for offset := 0; offset+groupSize <= len(window); offset += groupSize {
			group := window[offset : offset+groupSize]
			if quiz := s.synthesizer.Synthesize(group); quiz != nil {
				quizzes = append(quizzes, quiz)
			}
		}

		if len(quizzes) == 0 {
			s.logger.Debug("Window produced no quizzes, skipping document",
				zap.Int("window", summary.Windows),
				zap.Int("records", len(window)),
			)
			continue
		}

		sequence := summary.DocumentsWritten + 1
		if err := s.documentRepo.SaveQuizzes(ctx, sequence, quizzes); err != nil {
			return err
		}
		summary.DocumentsWritten++
		summary.Quizzes += len(quizzes)

		s.logger.Info("Wrote quiz document",
			zap.Int("sequence", sequence),
			zap.Int("quizzes", len(quizzes)),
		)
	}
	return nil
}
