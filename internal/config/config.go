package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	ModeReport = "report"
	ModeServe  = "serve"
)

type (
	Config struct {
		App     `yaml:"app"`
		Log     `yaml:"log"`
		PG      `yaml:"postgres"`
		Report  `yaml:"report"`
		HTTP    `yaml:"http"`
		GRPC    `yaml:"grpc"`
		Kafka   `yaml:"kafka"`
		Fixture `yaml:"fixture"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-default:"newsreport"`
		Version string `yaml:"version" env:"APP_VERSION" env-default:"dev"`
		Mode    string `yaml:"mode" env:"APP_MODE" env-default:"report"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	PG struct {
		Name        string `yaml:"name" env:"PG_DB" env-default:"news"`
		URL         string `yaml:"url" env:"PG_URL"`
		MaxPoolSize int    `yaml:"max_pool_size" env:"MAX_POOL_SIZE" env-default:"1"`
		Migrate     bool   `yaml:"migrate" env:"PG_MIGRATE" env-default:"false"`
	}

	Report struct {
		ArticlesLimit  int     `yaml:"articles_limit" env:"REPORT_ARTICLES_LIMIT" env-default:"3"`
		ErrorThreshold float64 `yaml:"error_threshold" env:"REPORT_ERROR_THRESHOLD" env-default:"1.0"`
		OkStatus       string  `yaml:"ok_status" env:"REPORT_OK_STATUS" env-default:"200 OK"`
		ErrorStatus    string  `yaml:"error_status" env:"REPORT_ERROR_STATUS" env-default:"404 NOT FOUND"`
	}

	HTTP struct {
		Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	}

	GRPC struct {
		Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
	}

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"news-reports"`
	}

	// Fixture points at a YAML dump of the news tables. When set, reports
	// are built from it and no database is contacted.
	Fixture struct {
		Path string `yaml:"path" env:"FIXTURE_PATH"`
	}
)

const (
	defaultEnvPath    = ".env"
	defaultConfigPath = "config/config.yaml"
)

func New() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		pathToConfig = defaultConfigPath
	}

	if _, err := os.Stat(pathToConfig); err == nil {
		if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
	} else {
		log.WithField("path", pathToConfig).
			Debug("Config file not found, reading environment only")
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

func loadEnvFile() error {
	envPath, ok := os.LookupEnv("ENV_PATH")
	if !ok || envPath == "" {
		envPath = defaultEnvPath
	}

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envPath, err)
	}
	return nil
}

func (c *Config) validate() error {
	switch c.App.Mode {
	case ModeReport, ModeServe:
	default:
		return fmt.Errorf("unknown app mode %q", c.App.Mode)
	}

	if c.PG.URL == "" && c.PG.Name == "" {
		return errors.New("database name must be specified")
	}

	if c.Report.ArticlesLimit <= 0 {
		return fmt.Errorf("articles limit must be positive, got %d", c.Report.ArticlesLimit)
	}

	if c.Report.ErrorThreshold < 0 || c.Report.ErrorThreshold > 100 {
		return fmt.Errorf("error threshold must be within [0, 100], got %g", c.Report.ErrorThreshold)
	}

	return nil
}

// DSN returns PG.URL when set, otherwise a URL that reaches the named
// database with libpq defaults for host, user and password.
func (p PG) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	u := url.URL{Scheme: "postgres", Path: "/" + p.Name}
	return u.String()
}

// MigrateURL is DSN with sslmode=disable unless sslmode is already set.
func (p PG) MigrateURL() string {
	u, err := url.Parse(p.DSN())
	if err != nil {
		return p.DSN()
	}
	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "disable")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

func (f Fixture) Enabled() bool {
	return f.Path != ""
}
