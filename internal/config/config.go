package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/focusflow/internal/ai"
	"github.com/sandeepkv93/focusflow/internal/storage"
)

type Config struct {
	DataDir string        `yaml:"data_dir"`
	Storage StorageConfig `yaml:"storage"`
	AI      AIConfig      `yaml:"ai"`
	Goals   GoalsConfig   `yaml:"goals"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver"`
	Path        string `yaml:"path"`
	RedisURL    string `yaml:"redis_url"`
	RedisPrefix string `yaml:"redis_prefix"`
}

type AIConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type GoalsConfig struct {
	PrimaryID string `yaml:"primary_id"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		DataDir: defaultDataDir(),
		Storage: StorageConfig{
			Driver:      storage.DriverSQLite,
			RedisPrefix: "focusflow",
		},
		AI: AIConfig{
			BaseURL:        ai.DefaultBaseURL,
			Model:          ai.DefaultModel,
			TimeoutSeconds: int(ai.DefaultTimeout / time.Second),
		},
		Goals: GoalsConfig{PrimaryID: "g1"},
	}
}

func defaultDataDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, "focusflow")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".focusflow"
	}
	return filepath.Join(home, ".local", "share", "focusflow")
}

// Load applies defaults, then the YAML file at path (when non-empty), then
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		fileCfg, err := LoadFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}
	cfg = FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto base.
func LoadFile(base Config, path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("FOCUSFLOW_DATA"); ok {
		cfg.DataDir = v
	}
	if v, ok := getEnvString("FOCUSFLOW_STORAGE"); ok {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v, ok := getEnvString("FOCUSFLOW_REDIS_URL"); ok {
		cfg.Storage.RedisURL = v
	}
	for _, name := range []string{"FOCUSFLOW_AI_API_KEY", "GEMINI_API_KEY", "API_KEY"} {
		if v, ok := getEnvString(name); ok {
			cfg.AI.APIKey = v
			break
		}
	}
	if v, ok := getEnvString("FOCUSFLOW_AI_BASE_URL"); ok {
		cfg.AI.BaseURL = v
	}
	if v, ok := getEnvString("FOCUSFLOW_AI_MODEL"); ok {
		cfg.AI.Model = v
	}
	if v, ok := getEnvInt("FOCUSFLOW_AI_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.AI.TimeoutSeconds = v
	}
	if v, ok := getEnvString("FOCUSFLOW_PRIMARY_GOAL"); ok {
		cfg.Goals.PrimaryID = v
	}
	if v, ok := getEnvString("FOCUSFLOW_LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v, ok := getEnvBool("FOCUSFLOW_DEBUG"); ok {
		cfg.Log.Debug = v
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case storage.DriverSQLite, storage.DriverFile, storage.DriverRedis, storage.DriverMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == storage.DriverRedis && strings.TrimSpace(c.Storage.RedisURL) == "" {
		return errors.New("config: redis driver requires storage.redis_url")
	}
	if c.Storage.Driver != storage.DriverMemory && c.Storage.Driver != storage.DriverRedis &&
		strings.TrimSpace(c.DataDir) == "" && strings.TrimSpace(c.Storage.Path) == "" {
		return errors.New("config: data_dir or storage.path is required")
	}
	if c.AI.TimeoutSeconds <= 0 {
		return errors.New("config: ai.timeout_seconds must be positive")
	}
	return nil
}

// StorageOptions resolves the backend options, deriving paths from DataDir
// when storage.path is unset.
func (c Config) StorageOptions() storage.Options {
	opts := storage.Options{
		Driver:   c.Storage.Driver,
		Path:     c.Storage.Path,
		RedisURL: c.Storage.RedisURL,
		Prefix:   c.Storage.RedisPrefix,
	}
	if opts.Path == "" {
		switch c.Storage.Driver {
		case storage.DriverSQLite:
			opts.Path = filepath.Join(c.DataDir, "focusflow.db")
		case storage.DriverFile:
			opts.Path = filepath.Join(c.DataDir, "collections")
		}
	}
	return opts
}

func (c Config) AIConfig() ai.Config {
	return ai.Config{
		APIKey:  c.AI.APIKey,
		BaseURL: c.AI.BaseURL,
		Model:   c.AI.Model,
		Timeout: time.Duration(c.AI.TimeoutSeconds) * time.Second,
	}
}

// LogPath is the log file, defaulting to focusflow.log in the data dir.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.Log.File) != "" {
		return c.Log.File
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return ""
	}
	return filepath.Join(c.DataDir, "focusflow.log")
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
