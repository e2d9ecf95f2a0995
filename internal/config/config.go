package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Mailer     Mailer     `yaml:"mailer"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"webinar_booker"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Mailer selects the delivery driver: "log" (default), "smtp" or "ses".
type Mailer struct {
	Driver string `yaml:"driver" env-default:"log"`
	SMTP   SMTP   `yaml:"smtp"`
	SES    SES    `yaml:"ses"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" env-default:"25"`
	From     string `yaml:"from"`
	Username string `yaml:"username"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
}

type SES struct {
	Region    string `yaml:"region" env-default:"us-east-1"`
	From      string `yaml:"from"`
	AccessKey string `yaml:"access_key" env:"AWS_ACCESS_KEY_ID"`
	SecretKey string `yaml:"secret_key" env:"AWS_SECRET_ACCESS_KEY"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
