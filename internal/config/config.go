package config

import (
	"fmt"
	"github.com/caarlos0/env/v6"
	"strings"
	"time"
)

type HTTPCfg struct {
	Port            int           `env:"LUNCHLY_HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"LUNCHLY_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type PostgresCfg struct {
	User           string        `env:"POSTGRES_USER"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DB"`
	Host           string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port           int           `env:"POSTGRES_PORT" envDefault:"5432"`
	SslMode        string        `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn    int           `env:"POSTGRES_POOL_MAX_CONN" envDefault:"10"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" envDefault:"5s"`
}

// DSN builds connection string in keyword/value format, text values are quoted
func (c PostgresCfg) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s pool_max_conns=%d",
		dsnQuote(c.User), dsnQuote(c.Password), dsnQuote(c.Host), c.Port, dsnQuote(c.Database), dsnQuote(c.SslMode), c.PoolMaxConn,
	)
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func dsnQuote(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

type LogCfg struct {
	Level string `env:"LUNCHLY_LOG_LEVEL" envDefault:"info"`
}

type ReservationsCfg struct {
	BestCustomersLimit int `env:"LUNCHLY_BEST_CUSTOMERS_LIMIT" envDefault:"10"`
}

type Config struct {
	HTTPCfg         HTTPCfg
	PostgresCfg     PostgresCfg
	LogCfg          LogCfg
	ReservationsCfg ReservationsCfg
}

// Build reads config from environment, database credentials have no defaults
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if cfg.ReservationsCfg.BestCustomersLimit <= 0 {
		return cfg, fmt.Errorf("best customers limit must be positive, got %d", cfg.ReservationsCfg.BestCustomersLimit)
	}
	return cfg, nil
}
