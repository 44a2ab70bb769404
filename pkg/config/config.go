package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"

	UploadBackendLocal = "local"
	UploadBackendS3    = "s3"
)

type Config struct {
	Port string

	LLMProvider        string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	UploadBackend string
	UploadDir     string
	UploadRetain  bool
	MaxUploadMB   int

	S3EndpointURL string
	S3Region      string
	S3AccessKey   string
	S3SecretKey   string
	S3Bucket      string

	AnalysisParallel bool
	CORSOrigins      string

	LogLevel  string
	LogFormat string
}

// Load reads environment variables, optionally from a .env file if present.
// The model API key is not validated here; a missing key shows up on the first call.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8080"),

		LLMProvider:        strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),
		GeminiBaseURL:      os.Getenv("GEMINI_BASE_URL"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    os.Getenv("OPENROUTER_MODEL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "ats-matcher"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		UploadBackend: strings.ToLower(getEnv("UPLOAD_BACKEND", UploadBackendLocal)),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		UploadRetain:  getEnvBool("UPLOAD_RETAIN", true),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 16),

		S3EndpointURL: os.Getenv("S3_ENDPOINT_URL"),
		S3Region:      getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),

		AnalysisParallel: getEnvBool("ANALYSIS_PARALLEL", false),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
