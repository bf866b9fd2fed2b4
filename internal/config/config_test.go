package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("TEMP_STORE", "")
	t.Setenv("REVIEW_MODEL", "")
	t.Setenv("INTERVIEW_MODEL", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("INFERENCE_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, StoreDisk, cfg.TempStore)
	assert.Equal(t, int64(5<<20), cfg.MaxFileSize)
	assert.Equal(t, "gemini-2.5-flash-preview-05-20", cfg.Models.Review)
	assert.Equal(t, "gemini-pro", cfg.Models.Interview)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Zero(t, cfg.InferenceTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("TEMP_STORE", "S3")
	t.Setenv("S3_USE_SSL", "true")
	t.Setenv("GUIDANCE_MODEL", "gemini-2.5-pro")
	t.Setenv("INFERENCE_TIMEOUT", "90s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreS3, cfg.TempStore)
	assert.True(t, cfg.S3UseSSL)
	assert.Equal(t, "gemini-2.5-pro", cfg.Models.Guidance)
	assert.Equal(t, 90*time.Second, cfg.InferenceTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		_, err := Load()
		assert.ErrorContains(t, err, "GEMINI_API_KEY")
	})

	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "k")
		t.Setenv("TEMP_STORE", "tape")
		_, err := Load()
		assert.ErrorContains(t, err, "TEMP_STORE")
	})

	t.Run("non-positive upload limit", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "k")
		t.Setenv("TEMP_STORE", "")
		t.Setenv("MAX_UPLOAD_BYTES", "-1")
		_, err := Load()
		assert.ErrorContains(t, err, "MAX_UPLOAD_BYTES")
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "invalid")
	assert.True(t, getEnvBool("TEST_BOOL_VAR", true))

	t.Setenv("TEST_INT_VAR", "abc")
	assert.Equal(t, int64(10), getEnvInt64("TEST_INT_VAR", 10))

	t.Setenv("TEST_DUR_VAR", "soon")
	assert.Equal(t, time.Second, getEnvDuration("TEST_DUR_VAR", time.Second))

	t.Setenv("TEST_LIST_VAR", " , ")
	assert.Equal(t, []string{"x"}, getEnvList("TEST_LIST_VAR", []string{"x"}))

	assert.Equal(t, "default", getEnv("NON_EXISTENT_VAR_FOR_TEST", "default"))
}
