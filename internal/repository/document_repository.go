// Package repository persists generated quiz documents. The only backend is
// the local filesystem: one JSON artifact per window, sequentially numbered.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
)

type fileDocumentRepository struct {
	dir string
}

// NewFileDocumentRepository creates the destination directory if needed and
// returns a repository writing artifacts into it.
func NewFileDocumentRepository(dir string) (domain.DocumentRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, domain.NewInputIOError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}
	return &fileDocumentRepository{dir: dir}, nil
}

// SaveQuizzes writes one window's quizzes as quiz_batch_NNN.json. Artifacts
// already written are never rolled back when a later write fails.
func (r *fileDocumentRepository) SaveQuizzes(_ context.Context, sequence int, quizzes []*domain.Quiz) error {
	doc := dto.NewQuizDocument(quizzes)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.NewInternalError("failed to encode quiz document", err)
	}

	path := filepath.Join(r.dir, fmt.Sprintf("quiz_batch_%03d.json", sequence))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.NewInputIOError(fmt.Sprintf("failed to write quiz document %s", path), err)
	}
	return nil
}
