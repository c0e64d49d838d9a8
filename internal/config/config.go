package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/dgallion1/doccover/internal/coverage"
	"github.com/dgallion1/doccover/internal/policy"
	"github.com/dgallion1/doccover/internal/report"
)

type Config struct {
	Port string

	// Auth; empty disables it
	APIKey string

	// Analysis
	PublicOnly  bool
	WorkerCount int

	// Report output
	OutputName   string
	OutputDir    string
	ReportFormat string

	// Server
	CacheSize      int
	MaxUploadBytes int64

	Limits policy.Limits
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if there is one.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("DOCCOVER_API_KEY"),

		PublicOnly:  envBool("PUBLIC_ONLY", false),
		WorkerCount: envInt("WORKER_COUNT", 4),

		OutputName:   envOr("OUTPUT_NAME", "javadoc-coverage"),
		OutputDir:    envOr("OUTPUT_DIR", "."),
		ReportFormat: envOr("REPORT_FORMAT", "console"),

		CacheSize:      envInt("CACHE_SIZE", 64),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		Limits: policy.Limits{
			Package:   envFloat("MIN_PACKAGE_COVERAGE", 0),
			Interface: envFloat("MIN_INTERFACE_COVERAGE", 0),
			Class:     envFloat("MIN_CLASS_COVERAGE", 0),
			Method:    envFloat("MIN_METHOD_COVERAGE", 0),
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.WorkerCount <= 0 {
		c.WorkerCount = 4
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 64
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 52428800
	}
	if c.OutputName == "" {
		c.OutputName = "javadoc-coverage"
	}
}

type fileConfig struct {
	Report struct {
		Format     string `toml:"format"`
		OutputDir  string `toml:"output_dir"`
		OutputName string `toml:"output_name"`
		PublicOnly bool   `toml:"public_only"`
	} `toml:"report"`
	Server struct {
		Port      string `toml:"port"`
		Workers   int    `toml:"workers"`
		CacheSize int    `toml:"cache_size"`
	} `toml:"server"`
	Limits policy.Limits `toml:"limits"`
}

// LoadFile overlays the keys set in a TOML file onto cfg. Keys the file
// does not define keep their current value.
func LoadFile(path string, cfg *Config) error {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	if meta.IsDefined("report", "format") {
		cfg.ReportFormat = fc.Report.Format
	}
	if meta.IsDefined("report", "output_dir") {
		cfg.OutputDir = fc.Report.OutputDir
	}
	if meta.IsDefined("report", "output_name") {
		cfg.OutputName = fc.Report.OutputName
	}
	if meta.IsDefined("report", "public_only") {
		cfg.PublicOnly = fc.Report.PublicOnly
	}
	if meta.IsDefined("server", "port") {
		cfg.Port = fc.Server.Port
	}
	if meta.IsDefined("server", "workers") {
		cfg.WorkerCount = fc.Server.Workers
	}
	if meta.IsDefined("server", "cache_size") {
		cfg.CacheSize = fc.Server.CacheSize
	}
	if meta.IsDefined("limits", "package") {
		cfg.Limits.Package = fc.Limits.Package
	}
	if meta.IsDefined("limits", "interface") {
		cfg.Limits.Interface = fc.Limits.Interface
	}
	if meta.IsDefined("limits", "class") {
		cfg.Limits.Class = fc.Limits.Class
	}
	if meta.IsDefined("limits", "method") {
		cfg.Limits.Method = fc.Limits.Method
	}
	cfg.applyDefaults()
	return nil
}

func (c Config) Validate() error {
	if !slices.Contains(report.Formats, strings.ToLower(c.ReportFormat)) {
		return fmt.Errorf("REPORT_FORMAT must be one of %s, got %q", strings.Join(report.Formats, ", "), c.ReportFormat)
	}
	if strings.ContainsAny(c.OutputName, `/\`) {
		return fmt.Errorf("OUTPUT_NAME must be a file name, got %q", c.OutputName)
	}
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	return nil
}

// Coverage returns the engine configuration.
func (c Config) Coverage() coverage.Configuration {
	return coverage.Configuration{PublicOnly: c.PublicOnly}
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

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
