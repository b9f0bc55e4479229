package app

import (
	server "github.com/admin/astro-web/natal-chart/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/alerter"
	ephemerisAdapter "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/ephemeris"
	localStorage "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/storage/local"
	"github.com/admin/astro-web/natal-chart/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/storage/s3"
	"github.com/admin/astro-web/natal-chart/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres  *pg.Config               `envconfig:"POSTGRES"`
	Log       *logger.Config           `envconfig:"LOG"`
	Server    *server.Config           `envconfig:"APISERVER"`
	Ephemeris *ephemerisAdapter.Config `envconfig:"EPHEMERIS"`
	Redis     *RedisConfig             `envconfig:"REDIS"`
	S3        *s3Adapter.Config        `envconfig:"S3"`
	Artifacts *localStorage.Config     `envconfig:"ARTIFACTS"`
	Alerter   *alerterAdapter.Config   `envconfig:"ALERTER"`
}

// RedisConfig кэш опционален: без него справочник читается напрямую из БД
type RedisConfig struct {
	Enabled bool `envconfig:"ENABLED" default:"false"`
	redisAdapter.Config
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
