package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	RecordsNone     = "none"
	RecordsLocal    = "local"
	RecordsPostgres = "postgres"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

// [Duration] implements [yaml.Unmarshaler]
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	var err error
	d.Duration, err = time.ParseDuration(s)
	return err
}

type LogConfig struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
}

type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     uint   `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	DbName   string `json:"db_name" yaml:"db_name"`
	SSLMode  string `json:"sslmode" yaml:"sslmode"`
}

func (p PostgresConfig) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		url.QueryEscape(p.Password),
		p.Host,
		p.Port,
		p.DbName,
		p.SSLMode,
	)
}

type RecordsConfig struct {
	Backend         string   `json:"backend" yaml:"backend"`
	Path            string   `json:"path" yaml:"path"`
	Addr            string   `json:"addr" yaml:"addr"`
	ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type Config struct {
	Mode      string         `json:"mode" yaml:"mode"`
	Player    string         `json:"player" yaml:"player"`
	ExportDir string         `json:"export_dir" yaml:"export_dir"`
	Sound     bool           `json:"sound" yaml:"sound"`
	Log       LogConfig      `json:"log" yaml:"log"`
	Records   RecordsConfig  `json:"records" yaml:"records"`
	Postgres  PostgresConfig `json:"postgres" yaml:"postgres"`
}

func Default() *Config {
	return &Config{
		Mode:      "production",
		Player:    "anonymous",
		ExportDir: ".",
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Records: RecordsConfig{
			Backend:         RecordsLocal,
			Path:            "records",
			Addr:            ":8080",
			ShutdownTimeout: Duration{15 * time.Second},
		},
		Postgres: PostgresConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			DbName:  "minesweeper",
			SSLMode: "disable",
		},
	}
}

// Read loads the config at path on top of [Default]. A missing file is not
// an error. Environment variables override the file.
func Read(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := readFile(path, config); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	config.applyEnv()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func readFile(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, config)
	default:
		return json.Unmarshal(b, config)
	}
}

func (c *Config) applyEnv() {
	if development, ok := os.LookupEnv("DEVELOPMENT"); ok {
		if development != "0" {
			c.Mode = "development"
		} else {
			c.Mode = "production"
		}
	}
	if dir, ok := os.LookupEnv("MINESWEEPER_EXPORT_DIR"); ok {
		c.ExportDir = dir
	}
	if player, ok := os.LookupEnv("MINESWEEPER_PLAYER"); ok {
		c.Player = player
	}
	if password, ok := os.LookupEnv("POSTGRES_PASSWORD"); ok {
		c.Postgres.Password = password
	}
}

func (c Config) Validate() error {
	switch c.Records.Backend {
	case RecordsNone, RecordsLocal, RecordsPostgres:
	default:
		return fmt.Errorf("unknown records backend %q", c.Records.Backend)
	}
	if strings.TrimSpace(c.Player) == "" {
		return errors.New("player name must not be empty")
	}
	return nil
}

// DatabaseURL prefers DATABASE_URL over the postgres section.
func (c Config) DatabaseURL() string {
	if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok {
		return dbURL
	}
	return c.Postgres.URL()
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"player":           c.Player,
		"export_dir":       c.ExportDir,
		"sound":            c.Sound,
		"log_path":         c.Log.Path,
		"records_backend":  c.Records.Backend,
		"records_path":     c.Records.Path,
		"records_addr":     c.Records.Addr,
		"shutdown_timeout": c.Records.ShutdownTimeout.Duration.String(),
		"pg_host":          c.Postgres.Host,
		"pg_port":          c.Postgres.Port,
		"pg_user":          c.Postgres.User,
		"pg_db_name":       c.Postgres.DbName,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}
