package chart

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

const (
	citiesCacheKey = "natal:cities"
	cityCacheTTL   = 12 * time.Hour
)

// Cities возвращает статический справочник городов для формы.
// Справочник не меняется в рантайме, поэтому кэшируется целиком.
func (s *Service) Cities(ctx context.Context) ([]domain.City, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, citiesCacheKey); err == nil {
			var cities []domain.City
			if err := json.Unmarshal([]byte(cached), &cities); err == nil {
				return cities, nil
			}
			s.Log.Warn("failed to decode cached cities, falling back to db", "error", err)
		}
	}

	cities, err := s.CityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(cities); err == nil {
			if err := s.Cache.Set(ctx, citiesCacheKey, string(data), cityCacheTTL); err != nil {
				s.Log.Warn("failed to cache cities", "error", err)
			}
		}
	}

	return cities, nil
}

// resolveCity находит город в справочнике по названию
func (s *Service) resolveCity(ctx context.Context, name string) (*domain.City, error) {
	cacheKey := "natal:city:" + strings.ToLower(name)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey); err == nil {
			var city domain.City
			if err := json.Unmarshal([]byte(cached), &city); err == nil {
				return &city, nil
			}
		}
	}

	city, err := s.CityRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(city); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, string(data), cityCacheTTL); err != nil {
				s.Log.Warn("failed to cache city", "error", err, "city", name)
			}
		}
	}

	return city, nil
}
