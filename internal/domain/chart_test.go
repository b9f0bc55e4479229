package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZodiacSign_IsValid(t *testing.T) {
	for _, sign := range AllSigns {
		assert.True(t, sign.IsValid(), "sign %s", sign)
	}

	assert.False(t, ZodiacSign("Ophiuchus").IsValid())
	assert.False(t, ZodiacSign("leo").IsValid(), "sign validation is case-sensitive")
	assert.False(t, ZodiacSign("").IsValid())
}

func TestChartResult_JSONContract(t *testing.T) {
	result := &ChartResult{
		Name: "Carl Jung",
		BirthData: BirthData{
			Date:     "1875-07-26",
			Time:     "19:20",
			Lat:      47.6,
			Lon:      9.32,
			Timezone: "Europe/Zurich",
		},
		Planets: []Placement{{Name: "Sun", Sign: SignLeo, Position: 3.32, House: 7}},
		Houses:  []HouseCusp{{Number: 1, Sign: SignAquarius, Position: 2.2}},
		Aspects: []Aspect{},
	}

	data, err := result.JSON()
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"birth_data"`)
	assert.Contains(t, text, `"retrograde": false`)

	// Пустой city и флаг ненадёжных домов не попадают в контракт
	assert.NotContains(t, text, `"city"`)
	assert.NotContains(t, text, `"houses_unreliable"`)

	result.HousesUnreliable = true
	data, err = result.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"houses_unreliable": true`)
}

func TestCity_DisplayName(t *testing.T) {
	city := City{Name: "Zurich", Country: "Switzerland"}
	assert.Equal(t, "Zurich, Switzerland", city.DisplayName())

	noCountry := City{Name: "Atlantis"}
	assert.Equal(t, "Atlantis", noCountry.DisplayName())
}

func TestErrorTaxonomy(t *testing.T) {
	vErr := NewValidationError("day", "must be between 1 and 28")
	assert.True(t, IsValidationError(vErr))
	assert.False(t, IsProviderError(vErr))
	assert.True(t, strings.Contains(vErr.Error(), "day"))

	pErr := WrapProviderError(assert.AnError)
	assert.True(t, IsProviderError(pErr))
	assert.ErrorIs(t, pErr, assert.AnError)
	assert.Nil(t, WrapProviderError(nil))

	sErr := NewShapingError("planet Pluto")
	assert.True(t, IsShapingError(sErr))
	assert.False(t, IsValidationError(sErr))
	assert.Contains(t, sErr.Error(), "Pluto")
}
