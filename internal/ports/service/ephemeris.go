package service

import (
	"context"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

// IEphemerisService интерфейс внешнего эфемеридного провайдера.
// Провайдер чёрный ящик: расчёт позиций, домов, аспектов и рендер SVG
// целиком на его стороне. Координаты и таймзона передаются только явно.
type IEphemerisService interface {
	ComputeSubject(ctx context.Context, input domain.BirthInput) (*domain.ProviderSubject, error)
	ComputeAspects(ctx context.Context, subject *domain.ProviderSubject) ([]domain.ProviderAspect, error)
	RenderChart(ctx context.Context, subject *domain.ProviderSubject) ([]byte, error)
}
