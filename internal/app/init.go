package app

import (
	"fmt"

	alerterAdapter "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/alerter"
	ephemerisAdapter "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/ephemeris"
	localStorage "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/storage/local"
	"github.com/admin/astro-web/natal-chart/internal/adapters/secondary/storage/pg"
	redisStorage "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/storage/redis"
	s3Storage "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/storage/s3"
	"github.com/admin/astro-web/natal-chart/internal/ports/cache"
	"github.com/admin/astro-web/natal-chart/internal/ports/repository"
	"github.com/admin/astro-web/natal-chart/internal/ports/service"
	"github.com/admin/astro-web/natal-chart/internal/ports/storage"
	cityRepo "github.com/admin/astro-web/natal-chart/internal/repository/city"
	ephemerisService "github.com/admin/astro-web/natal-chart/internal/services/ephemeris"
	"github.com/jmoiron/sqlx"
)

// Dependencies внешние зависимости сервиса карт
type Dependencies struct {
	CityRepo  repository.ICityRepo
	Ephemeris service.IEphemerisService
	Artifacts storage.IArtifactStore
	Cache     cache.Cache
	Alerter   service.IAlerterService
}

// initDependencies инициализирует адаптеры и порты приложения
func (a *App) initDependencies(db *sqlx.DB) (*Dependencies, error) {
	persistenceLayer := pg.NewDB(db)

	deps := &Dependencies{
		CityRepo:  cityRepo.New(persistenceLayer, a.Log),
		Ephemeris: ephemerisService.New(ephemerisAdapter.NewClient(a.Cfg.Ephemeris, a.Log)),
	}

	artifacts, err := a.initArtifactStore()
	if err != nil {
		return nil, err
	}
	deps.Artifacts = artifacts

	// Redis опционален: без него справочник городов читается из БД напрямую
	if a.Cfg.Redis != nil && a.Cfg.Redis.Enabled {
		rdb, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		deps.Cache = redisStorage.NewClient(rdb)
		a.Log.Info("redis cache connected")
	}

	// Alerter опционален: без него диагностика остаётся только в логах
	if alerter := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log); alerter != nil {
		deps.Alerter = alerter
		a.Log.Info("diagnostic alerter configured")
	}

	return deps, nil
}

// initArtifactStore выбирает хранилище SVG: S3 если включён, иначе локальная директория
func (a *App) initArtifactStore() (storage.IArtifactStore, error) {
	if a.Cfg.S3 != nil && a.Cfg.S3.Enabled {
		client, err := a.Cfg.S3.NewClient()
		if err != nil {
			return nil, fmt.Errorf("failed to init s3 artifact store: %w", err)
		}
		a.Log.Info("using s3 artifact store", "bucket", a.Cfg.S3.Bucket)
		return s3Storage.NewClient(client, a.Cfg.S3.Bucket, a.Log), nil
	}

	store, err := localStorage.NewStore(a.Cfg.Artifacts, a.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to init local artifact store: %w", err)
	}

	return store, nil
}
