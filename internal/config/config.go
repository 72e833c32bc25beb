package config

import (
	"errors"
	"fmt"

	"quiz-forge/internal/domain"

	"github.com/spf13/viper"
)

type Config struct {
	Generator GeneratorConfig
	Logger    LoggerConfig
}

// GeneratorConfig holds the batching and quiz-assembly knobs. RandomSeed is
// nil when absent from the configuration, in which case the run is seeded
// from the wall clock and is not reproducible.
type GeneratorConfig struct {
	QuestionsPerBatch int    `yaml:"questions_per_batch"`
	QuestionsPerQuiz  int    `yaml:"questions_per_quiz"`
	PointsPerQuestion int    `yaml:"points_per_question"`
	PassingScore      int    `yaml:"passing_score"`
	MaxAdditionalTags int    `yaml:"max_additional_tags"`
	RandomSeed        *int64 `yaml:"random_seed"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("generator.questions_per_batch", 100)
	viper.SetDefault("generator.questions_per_quiz", 15)
	viper.SetDefault("generator.points_per_question", 10)
	viper.SetDefault("generator.passing_score", 70)
	viper.SetDefault("generator.max_additional_tags", 5)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	// The config file is optional; defaults cover every key.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Generator: GeneratorConfig{
			QuestionsPerBatch: viper.GetInt("generator.questions_per_batch"),
			QuestionsPerQuiz:  viper.GetInt("generator.questions_per_quiz"),
			PointsPerQuestion: viper.GetInt("generator.points_per_question"),
			PassingScore:      viper.GetInt("generator.passing_score"),
			MaxAdditionalTags: viper.GetInt("generator.max_additional_tags"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	if viper.IsSet("generator.random_seed") {
		seed := viper.GetInt64("generator.random_seed")
		config.Generator.RandomSeed = &seed
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects out-of-range settings before the run starts.
func (c *Config) Validate() error {
	g := c.Generator
	if g.QuestionsPerBatch <= 0 {
		return domain.NewInvalidConfigError(fmt.Sprintf("questions_per_batch must be positive, got %d", g.QuestionsPerBatch))
	}
	if g.QuestionsPerQuiz <= 0 {
		return domain.NewInvalidConfigError(fmt.Sprintf("questions_per_quiz must be positive, got %d", g.QuestionsPerQuiz))
	}
	if g.QuestionsPerQuiz > g.QuestionsPerBatch {
		return domain.NewInvalidConfigError("questions_per_quiz cannot exceed questions_per_batch")
	}
	if g.PointsPerQuestion <= 0 {
		return domain.NewInvalidConfigError(fmt.Sprintf("points_per_question must be positive, got %d", g.PointsPerQuestion))
	}
	if g.PassingScore < 0 || g.PassingScore > 100 {
		return domain.NewInvalidConfigError(fmt.Sprintf("passing_score must be between 0 and 100, got %d", g.PassingScore))
	}
	if g.MaxAdditionalTags < 0 {
		return domain.NewInvalidConfigError(fmt.Sprintf("max_additional_tags cannot be negative, got %d", g.MaxAdditionalTags))
	}
	return nil
}
