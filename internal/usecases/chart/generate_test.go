package chart

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

func TestGenerate_FullPipeline(t *testing.T) {
	ephemeris := &fakeEphemeris{
		subject: jungSubject(),
		aspects: jungAspects(),
		svg:     []byte("<svg>jung</svg>"),
	}
	svc, artifacts := newTestService(ephemeris)

	result, err := svc.Generate(context.Background(), jungRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, ephemeris.subjectCall)
	assert.Equal(t, 1, ephemeris.aspectsCall)
	assert.Equal(t, 1, ephemeris.renderCall)

	require.NotNil(t, result.Chart)
	assert.Len(t, result.Chart.Planets, len(domain.KnownBodies))
	assert.Len(t, result.Chart.Houses, domain.HouseCount)
	assert.NotEmpty(t, result.Chart.Aspects)

	// SVG именуется по request ID, а не по имени человека
	assert.Equal(t, result.RequestID.String()+".svg", result.SVGName)
	stored, err := svc.ChartSVG(context.Background(), result.SVGName)
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg>jung</svg>"), stored)
	assert.Len(t, artifacts.files, 1)

	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.ChartJSON)
}

func TestGenerate_ChartJSONContract(t *testing.T) {
	ephemeris := &fakeEphemeris{subject: jungSubject(), aspects: jungAspects()}
	svc, _ := newTestService(ephemeris)

	result, err := svc.Generate(context.Background(), jungRequest())
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(result.ChartJSON, &decoded))

	for _, key := range []string{"name", "birth_data", "planets", "houses", "aspects"} {
		assert.Contains(t, decoded, key)
	}

	// Путь до артефакта не часть канонического результата:
	// повторный расчёт тех же данных обязан давать байт-в-байт тот же JSON
	assert.NotContains(t, decoded, "svg")
	assert.NotContains(t, decoded, "chart_svg_url")

	again, err := svc.Generate(context.Background(), jungRequest())
	require.NoError(t, err)
	assert.Equal(t, result.ChartJSON, again.ChartJSON)
	assert.NotEqual(t, result.SVGName, again.SVGName)
}

func TestGenerate_ProviderFailure(t *testing.T) {
	ephemeris := &fakeEphemeris{
		subjectErr: domain.WrapProviderError(errors.New("upstream 503")),
	}
	svc, artifacts := newTestService(ephemeris)
	alerter := &recordingAlerter{}
	svc.Alerter = alerter

	_, err := svc.Generate(context.Background(), jungRequest())
	require.Error(t, err)
	assert.True(t, domain.IsProviderError(err))

	// Один вызов, без ретраев: расчёт детерминирован
	assert.Equal(t, 1, ephemeris.subjectCall)
	assert.Zero(t, ephemeris.aspectsCall)
	assert.Zero(t, ephemeris.renderCall)
	assert.Empty(t, artifacts.files)

	require.Len(t, alerter.messages, 1)
	assert.Contains(t, alerter.messages[0], "compute subject")
}

func TestGenerate_ShapingFailureAlerts(t *testing.T) {
	subject := jungSubject()
	subject.Planets = subject.Planets[1:] // провайдер потерял Солнце

	ephemeris := &fakeEphemeris{subject: subject, aspects: jungAspects()}
	svc, _ := newTestService(ephemeris)
	alerter := &recordingAlerter{}
	svc.Alerter = alerter

	_, err := svc.Generate(context.Background(), jungRequest())
	require.Error(t, err)
	assert.True(t, domain.IsShapingError(err))

	require.Len(t, alerter.messages, 1)
	assert.Contains(t, alerter.messages[0], "Sun")
}

func TestGenerate_ValidationFailureDoesNotAlert(t *testing.T) {
	svc, _ := newTestService(&fakeEphemeris{})
	alerter := &recordingAlerter{}
	svc.Alerter = alerter

	req := jungRequest()
	req.Month = 13

	_, err := svc.Generate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Empty(t, alerter.messages)
}

func TestGenerate_NilAlerterIsSafe(t *testing.T) {
	ephemeris := &fakeEphemeris{
		renderErr: domain.WrapProviderError(errors.New("render failed")),
		subject:   jungSubject(),
		aspects:   jungAspects(),
	}
	svc, _ := newTestService(ephemeris)
	svc.Alerter = nil

	_, err := svc.Generate(context.Background(), jungRequest())
	require.Error(t, err)
	assert.True(t, domain.IsProviderError(err))
}

func TestSummarize_ReferenceChart(t *testing.T) {
	result, err := shapeResult(jungInput(), jungSubject(), jungAspects())
	require.NoError(t, err)

	summary := Summarize(result)

	assert.Contains(t, summary, "Carl Jung")
	assert.Contains(t, summary, "Sun in Leo")
	assert.Contains(t, summary, "Moon in Taurus")
	assert.Contains(t, summary, "Rising Aquarius")
	assert.Contains(t, summary, "1875-07-26")
}

func TestSummarize_UnknownTimeOmitsRising(t *testing.T) {
	input := jungInput()
	input.TimeUnknown = true

	result, err := shapeResult(input, jungSubject(), jungAspects())
	require.NoError(t, err)

	summary := Summarize(result)

	assert.Contains(t, summary, "Sun in Leo")
	assert.NotContains(t, summary, "Rising Aquarius")
	assert.True(t, strings.Contains(summary, "unknown") || strings.Contains(summary, "noon"),
		"summary should mention that birth time is unknown")
}
