package domain

import "encoding/json"

// ProviderSubject сырой результат расчёта субъекта, как его вернул провайдер.
// Провайдер может отдавать тела и дома либо именованным списком (Planets/Houses),
// либо общим key-value дампом (Raw) - шейпер обязан уметь читать оба варианта.
type ProviderSubject struct {
	Planets []ProviderPoint
	Houses  []ProviderPoint
	Raw     map[string]json.RawMessage

	// Echo исходный запрос, нужен провайдеру для последующих вызовов
	// (аспекты, рендер) без повторного расчёта на нашей стороне.
	Echo BirthInput
}

// ProviderPoint позиция тела или куспида дома в терминах провайдера
type ProviderPoint struct {
	Name       string  `json:"name"`
	Sign       string  `json:"sign"`
	Position   float64 `json:"position"`
	House      int     `json:"house"`
	Retrograde bool    `json:"retrograde"`
}

// ProviderAspect аспект в терминах провайдера.
// Список упорядочен самим провайдером по значимости, порядок сохраняем.
type ProviderAspect struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Aspect  string  `json:"aspect"`
	Orb     float64 `json:"orb"`
}
