package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const baseConfig = `
logLevel: "info"
authBaseURL: "https://api.example.com"
catalogBaseURL: "https://api.example.com"
sellerBaseURL: "https://api.example.com"
cloudinaryCloudName: "dvqtest"
cloudinaryUploadPreset: "react-native"
cloudinaryFolder: "produtos"
`

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("VITRINE_CATALOG_BASE_URL", "https://staging.example.com")
	t.Setenv("VITRINE_SESSION_BACKEND", "redis")
	t.Setenv("VITRINE_REDIS_ADDR", "localhost:6379")

	cfg, err := Load(writeConfig(t, baseConfig))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CatalogBaseURL != "https://staging.example.com" {
		t.Fatalf("catalogBaseURL = %q", cfg.CatalogBaseURL)
	}
	if cfg.SessionBackend != BackendRedis {
		t.Fatalf("sessionBackend = %q", cfg.SessionBackend)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("redisAddr = %q", cfg.RedisAddr)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, baseConfig))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SessionBackend != BackendFile {
		t.Fatalf("sessionBackend = %q, want file default", cfg.SessionBackend)
	}
	if cfg.Uploader != UploaderCloudinary {
		t.Fatalf("uploader = %q, want cloudinary default", cfg.Uploader)
	}
	if cfg.DataDir == "" || cfg.SessionDBPath == "" {
		t.Fatalf("data paths not defaulted: %+v", cfg)
	}
}

func TestValidateRejectsMissingBaseURL(t *testing.T) {
	if _, err := Load(writeConfig(t, `logLevel: "info"`)); err == nil {
		t.Fatalf("expected error for missing base URLs")
	}
}

func TestValidateRejectsRedisBackendWithoutAddr(t *testing.T) {
	cfg := writeConfig(t, baseConfig+`
sessionBackend: "redis"
`)
	if _, err := Load(cfg); err == nil {
		t.Fatalf("expected error for redis backend without redisAddr")
	}
}

func TestValidateRejectsUnknownUploader(t *testing.T) {
	cfg := writeConfig(t, baseConfig+`
uploader: "ftp"
`)
	if _, err := Load(cfg); err == nil {
		t.Fatalf("expected error for unknown uploader")
	}
}

func TestValidateRejectsMinioWithoutEndpoint(t *testing.T) {
	cfg := writeConfig(t, `
authBaseURL: "https://api.example.com"
catalogBaseURL: "https://api.example.com"
sellerBaseURL: "https://api.example.com"
uploader: "minio"
`)
	if _, err := Load(cfg); err == nil {
		t.Fatalf("expected error for minio uploader without endpoint")
	}
}
