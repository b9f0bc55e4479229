package chart

import (
	"context"
	"fmt"

	"github.com/admin/astro-web/natal-chart/internal/domain"
	"github.com/google/uuid"
)

// GenerateResult результат генерации карты.
// SVGName строится из request ID, а не из имени человека: два Петрова,
// отправившие форму одновременно, не должны перетирать файлы друг друга.
type GenerateResult struct {
	RequestID uuid.UUID
	Chart     *domain.ChartResult
	ChartJSON []byte
	Summary   string
	SVGName   string
}

// Generate выполняет полный цикл: нормализация, расчёт у провайдера,
// шейпинг, рендер SVG, сохранение артефакта.
// Между запросами ничего не сохраняется, каждый считается заново.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	input, err := s.normalize(ctx, req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.New()

	s.Log.Info("generating natal chart",
		"request_id", requestID,
		"name", input.Name,
		"date", fmt.Sprintf("%04d-%02d-%02d", input.Year, input.Month, input.Day),
		"timezone", input.Timezone,
		"time_unknown", input.TimeUnknown,
	)

	subject, err := s.Ephemeris.ComputeSubject(ctx, input)
	if err != nil {
		s.reportFailure(ctx, requestID, "compute subject", err)
		return nil, err
	}

	aspects, err := s.Ephemeris.ComputeAspects(ctx, subject)
	if err != nil {
		s.reportFailure(ctx, requestID, "compute aspects", err)
		return nil, err
	}

	result, err := shapeResult(input, subject, aspects)
	if err != nil {
		s.reportFailure(ctx, requestID, "shape result", err)
		return nil, err
	}

	chartJSON, err := result.JSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart result: %w", err)
	}

	svg, err := s.Ephemeris.RenderChart(ctx, subject)
	if err != nil {
		s.reportFailure(ctx, requestID, "render chart", err)
		return nil, err
	}

	svgName := requestID.String() + ".svg"
	if err := s.Artifacts.Put(ctx, svgName, svg); err != nil {
		return nil, fmt.Errorf("failed to store chart artifact: %w", err)
	}

	s.Log.Info("natal chart generated",
		"request_id", requestID,
		"planets", len(result.Planets),
		"aspects", len(result.Aspects),
		"svg_name", svgName,
		"svg_size", len(svg),
	)

	return &GenerateResult{
		RequestID: requestID,
		Chart:     result,
		ChartJSON: chartJSON,
		Summary:   Summarize(result),
		SVGName:   svgName,
	}, nil
}

// ChartSVG отдаёт сохранённый SVG-артефакт по имени
func (s *Service) ChartSVG(ctx context.Context, name string) ([]byte, error) {
	return s.Artifacts.Get(ctx, name)
}

// reportFailure пишет диагностический лог и шлёт алерт для ошибок
// провайдера и дрейфа схемы. Ни одна ошибка не глотается молча.
func (s *Service) reportFailure(ctx context.Context, requestID uuid.UUID, stage string, err error) {
	s.Log.Error("chart generation failed",
		"request_id", requestID,
		"stage", stage,
		"error", err,
		"provider_error", domain.IsProviderError(err),
		"shaping_error", domain.IsShapingError(err),
	)

	if s.Alerter == nil {
		return
	}

	if !domain.IsProviderError(err) && !domain.IsShapingError(err) {
		return
	}

	message := fmt.Sprintf("natal chart %s failed at %s: %v", requestID, stage, err)
	if alertErr := s.Alerter.SendAlert(ctx, message); alertErr != nil {
		s.Log.Warn("failed to send diagnostic alert",
			"error", alertErr,
			"request_id", requestID,
		)
	}
}
