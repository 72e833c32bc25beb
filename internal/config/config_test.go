package config

import (
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := GeneratorConfig{
		QuestionsPerBatch: 100,
		QuestionsPerQuiz:  15,
		PointsPerQuestion: 10,
		PassingScore:      70,
		MaxAdditionalTags: 5,
	}

	tests := []struct {
		name    string
		mutate  func(*GeneratorConfig)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(g *GeneratorConfig) {},
			wantErr: false,
		},
		{
			name:    "zero window size",
			mutate:  func(g *GeneratorConfig) { g.QuestionsPerBatch = 0 },
			wantErr: true,
		},
		{
			name:    "zero group size",
			mutate:  func(g *GeneratorConfig) { g.QuestionsPerQuiz = 0 },
			wantErr: true,
		},
		{
			name:    "group larger than window",
			mutate:  func(g *GeneratorConfig) { g.QuestionsPerQuiz = 200 },
			wantErr: true,
		},
		{
			name:    "negative passing score",
			mutate:  func(g *GeneratorConfig) { g.PassingScore = -1 },
			wantErr: true,
		},
		{
			name:    "passing score above 100",
			mutate:  func(g *GeneratorConfig) { g.PassingScore = 101 },
			wantErr: true,
		},
		{
			name:    "passing score at bounds",
			mutate:  func(g *GeneratorConfig) { g.PassingScore = 100 },
			wantErr: false,
		},
		{
			name:    "negative additional tags",
			mutate:  func(g *GeneratorConfig) { g.MaxAdditionalTags = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			cfg := &Config{Generator: g}

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var domainErr *domain.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, domain.ErrInvalidConfig, domainErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
