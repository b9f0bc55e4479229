package chart

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

// noonHour нейтральное время, подставляемое при неизвестном времени рождения
const noonHour = 12

// GenerateRequest сырые поля формы до нормализации.
// Hour/Minute как указатели: nil означает, что время рождения неизвестно.
// Координаты либо заданы явно, либо берутся из справочника по City.
type GenerateRequest struct {
	Name      string
	Year      int
	Month     int
	Day       int
	Hour      *int
	Minute    *int
	City      string
	Latitude  *float64
	Longitude *float64
	Timezone  string
}

// normalize валидирует сырые поля и собирает BirthInput.
// Провайдер никогда не вызывается с неполными координатами или таймзоной:
// все проверки происходят здесь, до первого внешнего вызова.
func (s *Service) normalize(ctx context.Context, req GenerateRequest) (domain.BirthInput, error) {
	var input domain.BirthInput

	if strings.TrimSpace(req.Name) == "" {
		return input, domain.NewValidationError("name", "must not be empty")
	}
	input.Name = strings.TrimSpace(req.Name)

	if req.Year < 1000 || req.Year > 3000 {
		return input, domain.NewValidationError("year", "must be between 1000 and 3000")
	}
	input.Year = req.Year

	if req.Month < 1 || req.Month > 12 {
		return input, domain.NewValidationError("month", "must be between 1 and 12")
	}
	input.Month = req.Month

	if req.Day < 1 || req.Day > daysInMonth(req.Year, req.Month) {
		return input, domain.NewValidationError("day",
			fmt.Sprintf("must be between 1 and %d for %d-%02d", daysInMonth(req.Year, req.Month), req.Year, req.Month))
	}
	input.Day = req.Day

	// Неизвестное время рождения: подставляем полдень и помечаем карту,
	// чтобы потребители не интерпретировали дома и асцендент
	if req.Hour == nil || req.Minute == nil {
		input.Hour = noonHour
		input.Minute = 0
		input.TimeUnknown = true
	} else {
		if *req.Hour < 0 || *req.Hour > 23 {
			return input, domain.NewValidationError("hour", "must be between 0 and 23")
		}
		if *req.Minute < 0 || *req.Minute > 59 {
			return input, domain.NewValidationError("minute", "must be between 0 and 59")
		}
		input.Hour = *req.Hour
		input.Minute = *req.Minute
	}

	// Координаты и таймзона: либо заданы явно, либо через справочник городов.
	// Живого геокодинга нет по дизайну.
	switch {
	case req.Latitude != nil && req.Longitude != nil && req.Timezone != "":
		input.Latitude = *req.Latitude
		input.Longitude = *req.Longitude
		input.Timezone = req.Timezone
		input.City = strings.TrimSpace(req.City)
	case req.City != "":
		city, err := s.resolveCity(ctx, strings.TrimSpace(req.City))
		if err != nil {
			return input, domain.NewValidationError("city", "unknown city, provide explicit coordinates and timezone")
		}
		input.Latitude = city.Latitude
		input.Longitude = city.Longitude
		input.Timezone = city.Timezone
		input.City = city.DisplayName()
	default:
		return input, domain.NewValidationError("coordinates", "latitude, longitude and timezone are required (or pick a known city)")
	}

	if input.Latitude < -90 || input.Latitude > 90 {
		return input, domain.NewValidationError("latitude", "must be between -90 and 90")
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return input, domain.NewValidationError("longitude", "must be between -180 and 180")
	}
	if strings.TrimSpace(input.Timezone) == "" {
		return input, domain.NewValidationError("timezone", "must not be empty")
	}

	return input, nil
}

// daysInMonth количество дней в месяце с учётом високосных лет
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
