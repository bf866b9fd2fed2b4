package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDisk = "disk"
	StoreS3   = "s3"
)

// Models selects the inference model per operation. Values are fixed per deployment.
type Models struct {
	Review    string
	Guidance  string
	Interview string
}

type Config struct {
	Port     string
	LogLevel string

	// Inference
	APIKey           string
	InferenceBaseURL string
	InferenceTimeout time.Duration
	Models           Models

	// Temporary upload store
	TempStore string
	UploadDir string

	// S3
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool

	// Upload limits
	MaxFileSize int64

	CORSAllowedOrigins []string
}

// Load reads configuration from the environment. A .env file is picked up when
// the binary imports github.com/joho/godotenv/autoload.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		APIKey:            getEnv("GEMINI_API_KEY", ""),
		InferenceBaseURL:  getEnv("INFERENCE_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
		InferenceTimeout:  getEnvDuration("INFERENCE_TIMEOUT", 0),
		TempStore:         strings.ToLower(getEnv("TEMP_STORE", StoreDisk)),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		S3Endpoint:        getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3BucketName:      getEnv("S3_BUCKET_NAME", "uploads"),
		S3UseSSL:          getEnvBool("S3_USE_SSL", false),
		MaxFileSize:       getEnvInt64("MAX_UPLOAD_BYTES", 5<<20),
		Models: Models{
			Review:    getEnv("REVIEW_MODEL", "gemini-2.5-flash-preview-05-20"),
			Guidance:  getEnv("GUIDANCE_MODEL", "gemini-2.5-flash-preview-05-20"),
			Interview: getEnv("INTERVIEW_MODEL", "gemini-pro"),
		},
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	if cfg.TempStore != StoreDisk && cfg.TempStore != StoreS3 {
		return nil, fmt.Errorf("TEMP_STORE must be %q or %q, got %q", StoreDisk, StoreS3, cfg.TempStore)
	}

	if cfg.MaxFileSize <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
