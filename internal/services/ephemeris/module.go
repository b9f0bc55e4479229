package ephemeris

import (
	"context"
	"fmt"

	ephemerisAdapter "github.com/admin/astro-web/natal-chart/internal/adapters/secondary/ephemeris"
	"github.com/admin/astro-web/natal-chart/internal/domain"
	"github.com/admin/astro-web/natal-chart/internal/ports/service"
)

// Service реализует IEphemerisService поверх HTTP-клиента эфемеридного API
type Service struct {
	client *ephemerisAdapter.Client
}

// New создаёт новый сервис эфемеридного провайдера
func New(client *ephemerisAdapter.Client) service.IEphemerisService {
	return &Service{
		client: client,
	}
}

// buildRequest собирает запрос к API из нормализованного BirthInput
func buildRequest(input domain.BirthInput) ephemerisAdapter.SubjectRequest {
	return ephemerisAdapter.SubjectRequest{
		Subject: ephemerisAdapter.Person{
			Name: input.Name,
			BirthData: ephemerisAdapter.BirthData{
				Year:      input.Year,
				Month:     input.Month,
				Day:       input.Day,
				Hour:      input.Hour,
				Minute:    input.Minute,
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
				Timezone:  input.Timezone,
			},
		},
		Options: ephemerisAdapter.ChartOptions{
			HouseSystem:  "P", // Плацидус
			ZodiacType:   "Tropic",
			ActivePoints: domain.KnownBodies,
			Precision:    2,
		},
	}
}

// ComputeSubject рассчитывает позиции тел и куспиды домов
func (s *Service) ComputeSubject(ctx context.Context, input domain.BirthInput) (*domain.ProviderSubject, error) {
	resp, err := s.client.CalculateSubject(ctx, buildRequest(input))
	if err != nil {
		return nil, domain.WrapProviderError(err)
	}

	if resp.Status != "" && resp.Status != "success" {
		return nil, domain.WrapProviderError(fmt.Errorf(
			"ephemeris API returned error: status=%s, code=%d, message=%s",
			resp.Status, resp.Code, resp.Message))
	}

	if resp.Data == nil {
		return nil, domain.WrapProviderError(fmt.Errorf("ephemeris API returned empty data"))
	}

	subject := &domain.ProviderSubject{
		Raw:  resp.Data.Points,
		Echo: input,
	}

	for _, p := range resp.Data.Planets {
		subject.Planets = append(subject.Planets, domain.ProviderPoint{
			Name:       p.Name,
			Sign:       p.Sign,
			Position:   p.Degree,
			House:      p.House,
			Retrograde: p.Retrograde,
		})
	}

	for _, h := range resp.Data.Houses {
		subject.Houses = append(subject.Houses, domain.ProviderPoint{
			Name:     h.Name,
			Sign:     h.Sign,
			Position: h.Degree,
			House:    h.House,
		})
	}

	return subject, nil
}

// ComputeAspects рассчитывает аспекты для уже посчитанного субъекта
func (s *Service) ComputeAspects(ctx context.Context, subject *domain.ProviderSubject) ([]domain.ProviderAspect, error) {
	resp, err := s.client.CalculateAspects(ctx, buildRequest(subject.Echo))
	if err != nil {
		return nil, domain.WrapProviderError(err)
	}

	if resp.Status != "" && resp.Status != "success" {
		return nil, domain.WrapProviderError(fmt.Errorf(
			"ephemeris API returned error: status=%s, code=%d, message=%s",
			resp.Status, resp.Code, resp.Message))
	}

	var aspects []domain.ProviderAspect
	if resp.Data != nil {
		for _, a := range resp.Data.Aspects {
			aspects = append(aspects, domain.ProviderAspect{
				Planet1: a.Planet1,
				Planet2: a.Planet2,
				Aspect:  a.Aspect,
				Orb:     a.Orb,
			})
		}
	}

	return aspects, nil
}

// RenderChart запрашивает SVG-рендер карты
func (s *Service) RenderChart(ctx context.Context, subject *domain.ProviderSubject) ([]byte, error) {
	svg, err := s.client.RenderChartSVG(ctx, buildRequest(subject.Echo))
	if err != nil {
		return nil, domain.WrapProviderError(err)
	}
	return svg, nil
}
