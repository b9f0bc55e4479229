package cityRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/admin/astro-web/natal-chart/internal/domain"
	"github.com/admin/astro-web/natal-chart/internal/ports/persistence"
	ports "github.com/admin/astro-web/natal-chart/internal/ports/repository"
)

type cityColumns struct {
	TableName string
	ID        string
	Name      string
	Country   string
	Latitude  string
	Longitude string
	Timezone  string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns cityColumns
}

// New создаёт новый репозиторий справочника городов
func New(db persistence.Persistence, log *slog.Logger) ports.ICityRepo {
	cols := cityColumns{
		TableName: "cities",
		ID:        "id",
		Name:      "name",
		Country:   "country",
		Latitude:  "latitude",
		Longitude: "longitude",
		Timezone:  "timezone",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.Name,
		r.columns.Country,
		r.columns.Latitude,
		r.columns.Longitude,
		r.columns.Timezone)
}

// GetAll возвращает весь справочник городов
func (r *Repository) GetAll(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Name)
	err := r.db.Select(ctx, &cities, query)
	if err != nil {
		r.Log.Error("failed to get cities",
			"error", err)
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}
	r.Log.Debug("cities retrieved successfully", "count", len(cities))
	return cities, nil
}

// GetByName возвращает город по названию (без учёта регистра)
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	var city domain.City
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Name)
	err := r.db.Get(ctx, &city, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("city not found", "city", name)
			return nil, fmt.Errorf("city not found: %w", err)
		}
		r.Log.Error("failed to get city by name",
			"error", err,
			"city", name)
		return nil, fmt.Errorf("failed to get city by name: %w", err)
	}
	r.Log.Debug("city retrieved successfully", "city", name)
	return &city, nil
}
