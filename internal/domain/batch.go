package domain

import "context"

// RunSummary aggregates the counters reported after one batch run.
type RunSummary struct {
	FilesRead        int
	RecordsParsed    int
	MalformedRecords int
	MissingAnswers   int
	Windows          int
	Quizzes          int
	DocumentsWritten int
}

// BatchService defines the interface for batch operations.
type BatchService interface {
	// GenerateQuizDocuments reads every corpus file under sourceDir,
	// batches the parsed questions into quizzes and writes one output
	// document per window.
	GenerateQuizDocuments(ctx context.Context, sourceDir string) (*RunSummary, error)
}

// DocumentRepository persists the quizzes of one window as a sequentially
// numbered output document.
type DocumentRepository interface {
	SaveQuizzes(ctx context.Context, sequence int, quizzes []*Quiz) error
}
