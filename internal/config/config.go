package config

import (
	"os"
	"strings"
)

type Config struct {
	Env      string // "dev" or "production"
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// SessionBackend selects where exam sessions live: "memory" or "sql".
	SessionBackend string

	// QuestionsFile is loaded into the questions table at startup when
	// ReloadOnStart is set, replacing existing rows.
	QuestionsFile string
	ReloadOnStart bool

	BlobBasePath string
	CORSOrigins  []string
}

func FromEnv() Config {
	return Config{
		Env:            envOr("APP_ENV", "dev"),
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          envOr("DB_DSN", ""),
		SessionBackend: envOr("SESSION_BACKEND", "memory"),
		QuestionsFile:  envOr("QUESTIONS_FILE", "questions.json"),
		ReloadOnStart:  envBool("RELOAD_ON_START", true),
		BlobBasePath:   envOr("BLOB_BASE_PATH", "./data"),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
