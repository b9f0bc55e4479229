package repository

import (
	"context"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

// ICityRepo интерфейс справочника городов
type ICityRepo interface {
	GetAll(ctx context.Context) ([]domain.City, error)
	GetByName(ctx context.Context, name string) (*domain.City, error)
}
