package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var envKeys = []string{
	"PORT", "LLM_PROVIDER", "GEMINI_API_KEY", "GEMINI_MODEL",
	"UPLOAD_BACKEND", "UPLOAD_DIR", "UPLOAD_RETAIN", "MAX_UPLOAD_MB",
	"ANALYSIS_PARALLEL", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "S3_REGION",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, UploadBackendLocal, cfg.UploadBackend)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.True(t, cfg.UploadRetain)
	assert.Equal(t, 16, cfg.MaxUploadMB)
	assert.False(t, cfg.AnalysisParallel)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "OpenRouter")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("UPLOAD_RETAIN", "false")
	t.Setenv("MAX_UPLOAD_MB", "4")
	t.Setenv("ANALYSIS_PARALLEL", "1")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderOpenRouter, cfg.LLMProvider)
	assert.Equal(t, "key", cfg.GeminiAPIKey)
	assert.False(t, cfg.UploadRetain)
	assert.Equal(t, 4, cfg.MaxUploadMB)
	assert.True(t, cfg.AnalysisParallel)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("UPLOAD_RETAIN", "maybe")

	cfg := Load()

	assert.Equal(t, 16, cfg.MaxUploadMB)
	assert.True(t, cfg.UploadRetain)
}
