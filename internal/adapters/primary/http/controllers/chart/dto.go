package chartController

import "encoding/json"

// GenerateChartRequest поля формы генерации карты.
// Hour/Minute указатели: пустые значения означают неизвестное время рождения.
// Либо заполняются lat/lon/timezone, либо city из справочника.
type GenerateChartRequest struct {
	Name      string   `json:"name" form:"name"`
	Year      int      `json:"year" form:"year"`
	Month     int      `json:"month" form:"month"`
	Day       int      `json:"day" form:"day"`
	Hour      *int     `json:"hour" form:"hour"`
	Minute    *int     `json:"minute" form:"minute"`
	City      string   `json:"city" form:"city"`
	Latitude  *float64 `json:"lat" form:"lat"`
	Longitude *float64 `json:"lon" form:"lon"`
	Timezone  string   `json:"timezone" form:"timezone"`
}

// GenerateChartResponse ответ с готовой картой.
// Chart это канонический JSON-контракт, отдаётся как есть.
type GenerateChartResponse struct {
	RequestID        string          `json:"request_id"`
	Summary          string          `json:"summary"`
	Chart            json.RawMessage `json:"chart"`
	ChartSVGURL      string          `json:"chart_svg_url"`
	HousesUnreliable bool            `json:"houses_unreliable"`
}
