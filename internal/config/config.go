package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// OpenAI-compatible completion endpoint
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Generation
	CardsPerChunk       int
	Language            string
	Temperature         float32
	MaxCompletionTokens int
	ModelTimeout        time.Duration

	// Chunking
	MaxWordsPerChunk      int
	MinChunkWords         int
	MinWordsForProcessing int

	// Page filtering
	MinPageContentLength int
	MinTextLength        int

	// Flashcard validation
	MaxFlashcards     int
	MinQuestionLength int
	DefaultDifficulty int

	// Upload limits
	MaxUploadBytes int64

	// CORS
	AllowedOrigins []string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	// .env is optional; useful for development.
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8000"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o-mini"),

		CardsPerChunk:       envInt("CARDS_PER_CHUNK", 3),
		Language:            envOr("GENERATION_LANGUAGE", "English"),
		Temperature:         envFloat32("MODEL_TEMPERATURE", 0.1),
		MaxCompletionTokens: envInt("MAX_COMPLETION_TOKENS", 1000),
		ModelTimeout:        envDuration("MODEL_TIMEOUT", 120*time.Second),

		MaxWordsPerChunk:      envInt("MAX_WORDS_PER_CHUNK", 800),
		MinChunkWords:         envInt("MIN_CHUNK_WORDS", 50),
		MinWordsForProcessing: envInt("MIN_WORDS_FOR_PROCESSING", 50),

		MinPageContentLength: envInt("MIN_PAGE_CONTENT_LENGTH", 10),
		MinTextLength:        envInt("MIN_TEXT_LENGTH_AFTER_CLEANING", 20),

		MaxFlashcards:     envInt("MAX_FLASHCARDS_LIMIT", 20),
		MinQuestionLength: envInt("MIN_QUESTION_LENGTH", 5),
		DefaultDifficulty: envInt("DEFAULT_DIFFICULTY", 3),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10*1024*1024),

		AllowedOrigins: envList("ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:3002",
		}),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.CardsPerChunk <= 0 {
		cfg.CardsPerChunk = 3
	}
	if cfg.MaxCompletionTokens <= 0 {
		cfg.MaxCompletionTokens = 1000
	}
	if cfg.ModelTimeout <= 0 {
		cfg.ModelTimeout = 120 * time.Second
	}
	if cfg.MaxWordsPerChunk <= 0 {
		cfg.MaxWordsPerChunk = 800
	}
	if cfg.MinChunkWords <= 0 {
		cfg.MinChunkWords = 50
	}
	if cfg.MinWordsForProcessing <= 0 {
		cfg.MinWordsForProcessing = 50
	}
	if cfg.MaxFlashcards <= 0 {
		cfg.MaxFlashcards = 20
	}
	if cfg.DefaultDifficulty < 1 || cfg.DefaultDifficulty > 5 {
		cfg.DefaultDifficulty = 3
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 * 1024 * 1024
	}

	return cfg
}

func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.OpenAIModel == "" {
		return fmt.Errorf("OPENAI_MODEL is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat32(key string, fallback float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
