package chart

import (
	"log/slog"

	"github.com/admin/astro-web/natal-chart/internal/ports/cache"
	"github.com/admin/astro-web/natal-chart/internal/ports/repository"
	"github.com/admin/astro-web/natal-chart/internal/ports/service"
	"github.com/admin/astro-web/natal-chart/internal/ports/storage"
)

// Service бизнес-логика генерации натальных карт:
// нормализация входа, вызов провайдера, шейпинг результата.
// Cache и Alerter опциональны (nil допустим).
type Service struct {
	CityRepo  repository.ICityRepo
	Ephemeris service.IEphemerisService
	Artifacts storage.IArtifactStore
	Cache     cache.Cache
	Alerter   service.IAlerterService
	Log       *slog.Logger
}

// New создаёт новый сервис генерации карт
func New(
	cityRepo repository.ICityRepo,
	ephemeris service.IEphemerisService,
	artifacts storage.IArtifactStore,
	c cache.Cache,
	alerter service.IAlerterService,
	log *slog.Logger,
) *Service {
	return &Service{
		CityRepo:  cityRepo,
		Ephemeris: ephemeris,
		Artifacts: artifacts,
		Cache:     c,
		Alerter:   alerter,
		Log:       log,
	}
}
