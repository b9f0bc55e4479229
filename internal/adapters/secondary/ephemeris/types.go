package ephemeris

import "encoding/json"

// BirthData данные рождения для API запроса.
// Координаты и таймзона передаются явно: резолв по названию города
// на стороне провайдера ненадёжен и не используется.
type BirthData struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Person субъект натальной карты
type Person struct {
	Name      string    `json:"name"`
	BirthData BirthData `json:"birth_data"`
}

// ChartOptions опции расчёта карты
type ChartOptions struct {
	HouseSystem  string   `json:"house_system"`  // "P" для Плацидуса
	ZodiacType   string   `json:"zodiac_type"`   // "Tropic" для тропического
	ActivePoints []string `json:"active_points"` // ["Sun", "Moon", ...]
	Precision    int      `json:"precision"`
}

// SubjectRequest запрос на расчёт субъекта
type SubjectRequest struct {
	Subject Person       `json:"subject"`
	Options ChartOptions `json:"options"`
}

// SubjectResponse ответ API на расчёт субъекта
type SubjectResponse struct {
	Status    string       `json:"status"`
	Code      int          `json:"code,omitempty"`
	Message   string       `json:"message,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
	Data      *SubjectData `json:"data,omitempty"`
	RawJSON   string       `json:"-"` // Оригинальный JSON ответ для диагностики
}

// SubjectData данные субъекта. Старые версии API отдают planets/houses
// именованными списками, новые могут отдавать общий дамп points.
type SubjectData struct {
	Planets []PointPosition            `json:"planets,omitempty"`
	Houses  []PointPosition            `json:"houses,omitempty"`
	Points  map[string]json.RawMessage `json:"points,omitempty"`
}

// PointPosition позиция планеты или куспида дома
type PointPosition struct {
	Name       string  `json:"name"`
	Sign       string  `json:"sign"`
	Degree     float64 `json:"degree"`
	House      int     `json:"house,omitempty"`
	Retrograde bool    `json:"retrograde,omitempty"`
}

// AspectsResponse ответ API на расчёт аспектов
type AspectsResponse struct {
	Status  string       `json:"status"`
	Code    int          `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Data    *AspectsData `json:"data,omitempty"`
	RawJSON string       `json:"-"`
}

// AspectsData список аспектов в порядке значимости
type AspectsData struct {
	Aspects []AspectRelation `json:"aspects,omitempty"`
}

// AspectRelation аспект между двумя телами
type AspectRelation struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Aspect  string  `json:"aspect"`
	Orb     float64 `json:"orb"`
}
