package chart

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

// shapeResult собирает стабильный ChartResult из сырого ответа провайдера.
// Имена полей провайдера здесь отвязываются от выходного контракта:
// смена версии провайдера не должна менять наш JSON.
// Каждое из десяти тел и каждый из двенадцати домов обязаны присутствовать,
// иначе ShapingError - молчаливый дрейф схемы хуже явной ошибки.
func shapeResult(input domain.BirthInput, subject *domain.ProviderSubject, aspects []domain.ProviderAspect) (*domain.ChartResult, error) {
	result := &domain.ChartResult{
		Name: input.Name,
		BirthData: domain.BirthData{
			Date:     fmt.Sprintf("%04d-%02d-%02d", input.Year, input.Month, input.Day),
			Time:     fmt.Sprintf("%02d:%02d", input.Hour, input.Minute),
			City:     input.City,
			Lat:      input.Latitude,
			Lon:      input.Longitude,
			Timezone: input.Timezone,
		},
		Planets:          make([]domain.Placement, 0, len(domain.KnownBodies)),
		Houses:           make([]domain.HouseCusp, 0, domain.HouseCount),
		Aspects:          make([]domain.Aspect, 0, len(aspects)),
		HousesUnreliable: input.TimeUnknown,
	}

	for _, body := range domain.KnownBodies {
		point, err := findBody(subject, body)
		if err != nil {
			return nil, err
		}

		sign := domain.ZodiacSign(point.Sign)
		if !sign.IsValid() {
			return nil, domain.NewShapingError(fmt.Sprintf("valid sign for %s (got %q)", body, point.Sign))
		}

		result.Planets = append(result.Planets, domain.Placement{
			Name:       body,
			Sign:       sign,
			Position:   point.Position,
			House:      point.House,
			Retrograde: point.Retrograde,
		})
	}

	for number := 1; number <= domain.HouseCount; number++ {
		point, err := findHouse(subject, number)
		if err != nil {
			return nil, err
		}

		sign := domain.ZodiacSign(point.Sign)
		if !sign.IsValid() {
			return nil, domain.NewShapingError(fmt.Sprintf("valid sign for house %d (got %q)", number, point.Sign))
		}

		result.Houses = append(result.Houses, domain.HouseCusp{
			Number:   number,
			Sign:     sign,
			Position: point.Position,
		})
	}

	// Порядок аспектов сохраняется как у провайдера: он ранжирует по значимости
	for _, a := range aspects {
		result.Aspects = append(result.Aspects, domain.Aspect{
			Planet1: a.Planet1,
			Planet2: a.Planet2,
			Aspect:  a.Aspect,
			Orb:     a.Orb,
		})
	}

	return result, nil
}

// findBody ищет тело сначала в именованном списке, затем в key-value дампе
func findBody(subject *domain.ProviderSubject, name string) (*domain.ProviderPoint, error) {
	for i := range subject.Planets {
		if strings.EqualFold(subject.Planets[i].Name, name) {
			return &subject.Planets[i], nil
		}
	}

	if point, ok := lookupRaw(subject.Raw, strings.ToLower(name)); ok {
		return point, nil
	}

	return nil, domain.NewShapingError("planet " + name)
}

// findHouse ищет куспид дома по номеру в списке, затем в дампе по ключу house_N
func findHouse(subject *domain.ProviderSubject, number int) (*domain.ProviderPoint, error) {
	for i := range subject.Houses {
		if subject.Houses[i].House == number {
			return &subject.Houses[i], nil
		}
	}

	if point, ok := lookupRaw(subject.Raw, fmt.Sprintf("house_%d", number)); ok {
		return point, nil
	}

	return nil, domain.NewShapingError(fmt.Sprintf("house %d", number))
}

// lookupRaw достаёт позицию из generic key-value дампа провайдера
func lookupRaw(raw map[string]json.RawMessage, key string) (*domain.ProviderPoint, bool) {
	if raw == nil {
		return nil, false
	}

	data, ok := raw[key]
	if !ok {
		return nil, false
	}

	var point domain.ProviderPoint
	if err := json.Unmarshal(data, &point); err != nil {
		return nil, false
	}

	return &point, true
}
