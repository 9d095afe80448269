package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	AudioBackendDisk  = "disk"
	AudioBackendMinio = "minio"
)

type Config struct {
	Env        string     `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Postgres   Postgres   `yaml:"postgres"`
	Audio      Audio      `yaml:"audio"`
	Minio      Minio      `yaml:"minio"`
	ES         ES         `yaml:"elasticsearch"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8081"`
	Timeout      time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowOrigins []string      `yaml:"allow_origins" env-default:"http://localhost:5173"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
	MaxConns int32  `yaml:"max_conns" env-default:"10"`
}

// Audio selects where lesson audio files live. For the disk backend relative
// audio_file_path values are resolved against RootDir.
type Audio struct {
	Backend string `yaml:"backend" env:"AUDIO_BACKEND" env-default:"disk"`
	RootDir string `yaml:"root_dir" env:"AUDIO_ROOT_DIR" env-default:"./media/audio"`
	Bucket  string `yaml:"bucket" env-default:"lesson-audio"`
}

type Minio struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"minio:9000"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// ES is optional; with no hosts course search is switched off.
type ES struct {
	Hosts    []string `yaml:"hosts" env:"ES_HOSTS"`
	Index    string   `yaml:"index" env-default:"courses"`
	Password string   `yaml:"password" env:"ES_PASSWORD"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode)
}

func (c *Config) Validate() error {
	switch c.Audio.Backend {
	case AudioBackendDisk, AudioBackendMinio:
	default:
		return fmt.Errorf("unknown audio backend %q", c.Audio.Backend)
	}
	if c.Postgres.DBName == "" {
		return fmt.Errorf("postgres dbname is required")
	}
	return nil
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	// .env is optional, it only seeds the environment for local runs
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("config: %s", err)
	}
	return cfg
}
