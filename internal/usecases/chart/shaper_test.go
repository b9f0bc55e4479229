package chart

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

func jungInput() domain.BirthInput {
	return domain.BirthInput{
		Name:      "Carl Jung",
		Year:      1875,
		Month:     7,
		Day:       26,
		Hour:      19,
		Minute:    20,
		Latitude:  47.6,
		Longitude: 9.32,
		Timezone:  "Europe/Zurich",
	}
}

func TestShapeResult_ReferenceChart(t *testing.T) {
	result, err := shapeResult(jungInput(), jungSubject(), jungAspects())
	require.NoError(t, err)

	assert.Equal(t, "Carl Jung", result.Name)
	assert.Equal(t, "1875-07-26", result.BirthData.Date)
	assert.Equal(t, "19:20", result.BirthData.Time)
	assert.Equal(t, "Europe/Zurich", result.BirthData.Timezone)

	require.Len(t, result.Planets, len(domain.KnownBodies))
	require.Len(t, result.Houses, domain.HouseCount)
	assert.NotEmpty(t, result.Aspects)
	assert.False(t, result.HousesUnreliable)

	// Тела идут в каноническом порядке независимо от порядка у провайдера
	for i, body := range domain.KnownBodies {
		assert.Equal(t, body, result.Planets[i].Name)
	}

	assert.Equal(t, domain.SignLeo, result.Planets[0].Sign)
	assert.Equal(t, domain.SignTaurus, result.Planets[1].Sign)

	for _, p := range result.Planets {
		assert.True(t, p.Position >= 0 && p.Position < 30,
			"planet %s position %f out of [0, 30)", p.Name, p.Position)
		assert.True(t, p.House >= 1 && p.House <= domain.HouseCount)
	}

	// Дома строго 1..12 без пропусков
	for i, h := range result.Houses {
		assert.Equal(t, i+1, h.Number)
		assert.True(t, h.Position >= 0 && h.Position < 30)
	}
}

func TestShapeResult_Deterministic(t *testing.T) {
	first, err := shapeResult(jungInput(), jungSubject(), jungAspects())
	require.NoError(t, err)

	second, err := shapeResult(jungInput(), jungSubject(), jungAspects())
	require.NoError(t, err)

	firstJSON, err := first.JSON()
	require.NoError(t, err)
	secondJSON, err := second.JSON()
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

func TestShapeResult_AspectOrderPreserved(t *testing.T) {
	aspects := jungAspects()

	result, err := shapeResult(jungInput(), jungSubject(), aspects)
	require.NoError(t, err)

	require.Len(t, result.Aspects, len(aspects))
	for i, a := range aspects {
		assert.Equal(t, a.Planet1, result.Aspects[i].Planet1)
		assert.Equal(t, a.Planet2, result.Aspects[i].Planet2)
		assert.Equal(t, a.Aspect, result.Aspects[i].Aspect)
	}
}

func TestShapeResult_MissingBody(t *testing.T) {
	subject := jungSubject()
	subject.Planets = subject.Planets[:5] // Юпитер и далее отсутствуют

	_, err := shapeResult(jungInput(), subject, nil)
	require.Error(t, err)

	var sErr *domain.ShapingError
	require.ErrorAs(t, err, &sErr)
	assert.Contains(t, sErr.Missing, "Jupiter")
}

func TestShapeResult_MissingHouse(t *testing.T) {
	subject := jungSubject()
	subject.Houses = append(subject.Houses[:6], subject.Houses[7:]...)

	_, err := shapeResult(jungInput(), subject, nil)
	require.Error(t, err)

	var sErr *domain.ShapingError
	require.ErrorAs(t, err, &sErr)
	assert.Contains(t, sErr.Missing, "house 7")
}

func TestShapeResult_UnknownSign(t *testing.T) {
	subject := jungSubject()
	subject.Planets[0].Sign = "Ophiuchus"

	_, err := shapeResult(jungInput(), subject, nil)
	require.Error(t, err)
	assert.True(t, domain.IsShapingError(err))
}

func TestShapeResult_RawDumpFallback(t *testing.T) {
	// Провайдер отдал только key-value дамп без именованных списков
	reference := jungSubject()
	raw := map[string]json.RawMessage{}

	for _, p := range reference.Planets {
		data, err := json.Marshal(p)
		require.NoError(t, err)
		raw[strings.ToLower(p.Name)] = data
	}
	for _, h := range reference.Houses {
		data, err := json.Marshal(h)
		require.NoError(t, err)
		raw[fmt.Sprintf("house_%d", h.House)] = data
	}

	subject := &domain.ProviderSubject{Raw: raw}

	result, err := shapeResult(jungInput(), subject, jungAspects())
	require.NoError(t, err)

	require.Len(t, result.Planets, len(domain.KnownBodies))
	require.Len(t, result.Houses, domain.HouseCount)
	assert.Equal(t, domain.SignLeo, result.Planets[0].Sign)
	assert.Equal(t, 3.32, result.Planets[0].Position)
}

func TestShapeResult_UnknownTimeFlagsHouses(t *testing.T) {
	input := jungInput()
	input.Hour = 12
	input.Minute = 0
	input.TimeUnknown = true

	result, err := shapeResult(input, jungSubject(), nil)
	require.NoError(t, err)

	assert.True(t, result.HousesUnreliable)
	assert.Equal(t, "12:00", result.BirthData.Time)
}
