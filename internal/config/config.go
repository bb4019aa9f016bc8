package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// Session storage backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendGorm  = "gorm"
)

// Image upload backends.
const (
	UploaderCloudinary = "cloudinary"
	UploaderMinio      = "minio"
)

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	LogLevel string `yaml:"logLevel"`

	AuthBaseURL    string `yaml:"authBaseURL"`
	CatalogBaseURL string `yaml:"catalogBaseURL"`
	SellerBaseURL  string `yaml:"sellerBaseURL"`

	SessionBackend string `yaml:"sessionBackend"`
	DataDir        string `yaml:"dataDir"`
	SessionDBPath  string `yaml:"sessionDbPath"`
	RedisAddr      string `yaml:"redisAddr"`
	RedisPassword  string `yaml:"redisPassword"`

	Uploader               string `yaml:"uploader"`
	CloudinaryCloudName    string `yaml:"cloudinaryCloudName"`
	CloudinaryUploadPreset string `yaml:"cloudinaryUploadPreset"`
	CloudinaryFolder       string `yaml:"cloudinaryFolder"`
	MinioEndpoint          string `yaml:"minioEndpoint"`
	MinioAccessKey         string `yaml:"minioAccessKey"`
	MinioSecretKey         string `yaml:"minioSecretKey"`
	MinioBucket            string `yaml:"minioBucket"`
	MinioFolder            string `yaml:"minioFolder"`
	MinioPublicURL         string `yaml:"minioPublicURL"`
	MinioUseSSL            bool   `yaml:"minioUseSSL"`
}

// Load reads config from path (defaults to config.yaml) and applies
// environment overrides.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if v := os.Getenv("VITRINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_AUTH_BASE_URL"); v != "" {
		cfg.AuthBaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_CATALOG_BASE_URL"); v != "" {
		cfg.CatalogBaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_SELLER_BASE_URL"); v != "" {
		cfg.SellerBaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_SESSION_BACKEND"); v != "" {
		cfg.SessionBackend = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_DATA_DIR"); v != "" {
		cfg.DataDir = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_SESSION_DB_PATH"); v != "" {
		cfg.SessionDBPath = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("VITRINE_UPLOADER"); v != "" {
		cfg.Uploader = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_CLOUDINARY_CLOUD_NAME"); v != "" {
		cfg.CloudinaryCloudName = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_CLOUDINARY_UPLOAD_PRESET"); v != "" {
		cfg.CloudinaryUploadPreset = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_CLOUDINARY_FOLDER"); v != "" {
		cfg.CloudinaryFolder = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_MINIO_ENDPOINT"); v != "" {
		cfg.MinioEndpoint = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_MINIO_ACCESS_KEY"); v != "" {
		cfg.MinioAccessKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_MINIO_SECRET_KEY"); v != "" {
		cfg.MinioSecretKey = v
	}
	if v := os.Getenv("VITRINE_MINIO_BUCKET"); v != "" {
		cfg.MinioBucket = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_MINIO_FOLDER"); v != "" {
		cfg.MinioFolder = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_MINIO_PUBLIC_URL"); v != "" {
		cfg.MinioPublicURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("VITRINE_MINIO_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.MinioUseSSL = b
		}
	}

	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *FileConfig) {
	if cfg.SessionBackend == "" {
		cfg.SessionBackend = BackendFile
	}
	if cfg.Uploader == "" {
		cfg.Uploader = UploaderCloudinary
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.SessionDBPath == "" {
		cfg.SessionDBPath = cfg.DataDir + "/session.db"
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vitrine"
	}
	return home + "/.vitrine"
}

func validateConfig(cfg FileConfig) error {
	if cfg.AuthBaseURL == "" {
		return errors.New("config: authBaseURL is required (set in config.yaml or VITRINE_AUTH_BASE_URL)")
	}
	if cfg.CatalogBaseURL == "" {
		return errors.New("config: catalogBaseURL is required (set in config.yaml or VITRINE_CATALOG_BASE_URL)")
	}
	if cfg.SellerBaseURL == "" {
		return errors.New("config: sellerBaseURL is required (set in config.yaml or VITRINE_SELLER_BASE_URL)")
	}
	switch cfg.SessionBackend {
	case BackendFile, BackendGorm:
	case BackendRedis:
		if strings.TrimSpace(cfg.RedisAddr) == "" {
			return errors.New("config: redisAddr is required for the redis session backend")
		}
	default:
		return fmt.Errorf("config: unknown sessionBackend %q", cfg.SessionBackend)
	}
	switch cfg.Uploader {
	case UploaderCloudinary:
		if cfg.CloudinaryCloudName == "" || cfg.CloudinaryUploadPreset == "" {
			return errors.New("config: cloudinaryCloudName and cloudinaryUploadPreset are required for the cloudinary uploader")
		}
	case UploaderMinio:
		if cfg.MinioEndpoint == "" || cfg.MinioBucket == "" {
			return errors.New("config: minioEndpoint and minioBucket are required for the minio uploader")
		}
	default:
		return fmt.Errorf("config: unknown uploader %q", cfg.Uploader)
	}
	return nil
}
