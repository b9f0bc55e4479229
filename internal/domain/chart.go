package domain

import "encoding/json"

// ZodiacSign знак зодиака
type ZodiacSign string

const (
	SignAries       ZodiacSign = "Aries"
	SignTaurus      ZodiacSign = "Taurus"
	SignGemini      ZodiacSign = "Gemini"
	SignCancer      ZodiacSign = "Cancer"
	SignLeo         ZodiacSign = "Leo"
	SignVirgo       ZodiacSign = "Virgo"
	SignLibra       ZodiacSign = "Libra"
	SignScorpio     ZodiacSign = "Scorpio"
	SignSagittarius ZodiacSign = "Sagittarius"
	SignCapricorn   ZodiacSign = "Capricorn"
	SignAquarius    ZodiacSign = "Aquarius"
	SignPisces      ZodiacSign = "Pisces"
)

// AllSigns все двенадцать знаков в зодиакальном порядке
var AllSigns = []ZodiacSign{
	SignAries, SignTaurus, SignGemini, SignCancer,
	SignLeo, SignVirgo, SignLibra, SignScorpio,
	SignSagittarius, SignCapricorn, SignAquarius, SignPisces,
}

func (s ZodiacSign) IsValid() bool {
	for _, known := range AllSigns {
		if s == known {
			return true
		}
	}
	return false
}

// KnownBodies десять небесных тел, которые обязан вернуть провайдер.
// Порядок фиксирован: в нём же тела идут в итоговом JSON.
var KnownBodies = []string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

// HouseCount количество домов в карте
const HouseCount = 12

// BirthInput нормализованные данные рождения.
// Координаты и таймзона всегда заданы явно: резолв по названию места
// в рантайме запрещён, города берутся только из статического справочника.
type BirthInput struct {
	Name      string
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Latitude  float64
	Longitude float64
	Timezone  string
	City      string // опционально, только для отображения

	// TimeUnknown время рождения не было указано, подставлен полдень.
	// Дома и асцендент в таком случае ненадёжны.
	TimeUnknown bool
}

// Placement позиция небесного тела в карте
type Placement struct {
	Name       string     `json:"name"`
	Sign       ZodiacSign `json:"sign"`
	Position   float64    `json:"position"`
	House      int        `json:"house"`
	Retrograde bool       `json:"retrograde"`
}

// HouseCusp куспид дома
type HouseCusp struct {
	Number   int        `json:"number"`
	Sign     ZodiacSign `json:"sign"`
	Position float64    `json:"position"`
}

// Aspect угловая связь между двумя телами
type Aspect struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Aspect  string  `json:"aspect"`
	Orb     float64 `json:"orb"`
}

// BirthData эхо входных данных в итоговом контракте
type BirthData struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	City     string  `json:"city,omitempty"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"timezone"`
}

// ChartResult итоговая натальная карта: стабильный выходной контракт.
// Ссылка на SVG-артефакт намеренно не входит в JSON - имя файла
// генерируется на запрос, а контракт обязан быть идемпотентным.
type ChartResult struct {
	Name             string      `json:"name"`
	BirthData        BirthData   `json:"birth_data"`
	Planets          []Placement `json:"planets"`
	Houses           []HouseCusp `json:"houses"`
	Aspects          []Aspect    `json:"aspects"`
	HousesUnreliable bool        `json:"houses_unreliable,omitempty"`
}

// JSON сериализует карту в канонический вид.
// Для одинакового BirthInput результат побайтово одинаков.
func (r *ChartResult) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
