package chart

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/admin/astro-web/natal-chart/internal/domain"
)

// ==========================
// Test Helper Functions
// ==========================

// fakeCityRepo справочник городов в памяти
type fakeCityRepo struct {
	cities []domain.City
}

func (r *fakeCityRepo) GetAll(ctx context.Context) ([]domain.City, error) {
	return r.cities, nil
}

func (r *fakeCityRepo) GetByName(ctx context.Context, name string) (*domain.City, error) {
	for i := range r.cities {
		if r.cities[i].Name == name {
			return &r.cities[i], nil
		}
	}
	return nil, fmt.Errorf("city not found: %s", name)
}

// fakeEphemeris детерминированный провайдер для тестов, считает вызовы
type fakeEphemeris struct {
	subject     *domain.ProviderSubject
	aspects     []domain.ProviderAspect
	svg         []byte
	subjectErr  error
	aspectsErr  error
	renderErr   error
	subjectCall int
	aspectsCall int
	renderCall  int
}

func (f *fakeEphemeris) ComputeSubject(ctx context.Context, input domain.BirthInput) (*domain.ProviderSubject, error) {
	f.subjectCall++
	if f.subjectErr != nil {
		return nil, f.subjectErr
	}
	subject := *f.subject
	subject.Echo = input
	return &subject, nil
}

func (f *fakeEphemeris) ComputeAspects(ctx context.Context, subject *domain.ProviderSubject) ([]domain.ProviderAspect, error) {
	f.aspectsCall++
	if f.aspectsErr != nil {
		return nil, f.aspectsErr
	}
	return f.aspects, nil
}

func (f *fakeEphemeris) RenderChart(ctx context.Context, subject *domain.ProviderSubject) ([]byte, error) {
	f.renderCall++
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	if f.svg == nil {
		return []byte("<svg/>"), nil
	}
	return f.svg, nil
}

// memArtifacts хранилище артефактов в памяти
type memArtifacts struct {
	files map[string][]byte
}

func newMemArtifacts() *memArtifacts {
	return &memArtifacts{files: map[string][]byte{}}
}

func (m *memArtifacts) Put(ctx context.Context, name string, data []byte) error {
	m.files[name] = data
	return nil
}

func (m *memArtifacts) Get(ctx context.Context, name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("artifact not found: %s", name)
	}
	return data, nil
}

// recordingAlerter запоминает отправленные алерты
type recordingAlerter struct {
	messages []string
}

func (a *recordingAlerter) SendAlert(ctx context.Context, message string) error {
	a.messages = append(a.messages, message)
	return nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// jungSubject референсный субъект: Карл Юнг, 26.07.1875 19:20, Кессвиль.
// Позиции взяты из документированного референсного вывода провайдера.
func jungSubject() *domain.ProviderSubject {
	return &domain.ProviderSubject{
		Planets: []domain.ProviderPoint{
			{Name: "Sun", Sign: "Leo", Position: 3.32, House: 7},
			{Name: "Moon", Sign: "Taurus", Position: 15.53, House: 3},
			{Name: "Mercury", Sign: "Cancer", Position: 13.79, House: 6},
			{Name: "Venus", Sign: "Cancer", Position: 17.5, House: 6},
			{Name: "Mars", Sign: "Sagittarius", Position: 21.37, House: 11, Retrograde: true},
			{Name: "Jupiter", Sign: "Libra", Position: 23.47, House: 9},
			{Name: "Saturn", Sign: "Aquarius", Position: 24.2, House: 1, Retrograde: true},
			{Name: "Uranus", Sign: "Leo", Position: 14.8, House: 7},
			{Name: "Neptune", Sign: "Taurus", Position: 3.03, House: 3, Retrograde: true},
			{Name: "Pluto", Sign: "Taurus", Position: 23.3, House: 3, Retrograde: true},
		},
		Houses: []domain.ProviderPoint{
			{House: 1, Sign: "Aquarius", Position: 2.2},
			{House: 2, Sign: "Pisces", Position: 15.6},
			{House: 3, Sign: "Aries", Position: 24.1},
			{House: 4, Sign: "Taurus", Position: 26.3},
			{House: 5, Sign: "Gemini", Position: 22.9},
			{House: 6, Sign: "Cancer", Position: 16.4},
			{House: 7, Sign: "Leo", Position: 2.2},
			{House: 8, Sign: "Virgo", Position: 15.6},
			{House: 9, Sign: "Libra", Position: 24.1},
			{House: 10, Sign: "Scorpio", Position: 26.3},
			{House: 11, Sign: "Sagittarius", Position: 22.9},
			{House: 12, Sign: "Capricorn", Position: 16.4},
		},
	}
}

func jungAspects() []domain.ProviderAspect {
	return []domain.ProviderAspect{
		{Planet1: "Sun", Planet2: "Neptune", Aspect: "square", Orb: 0.29},
		{Planet1: "Moon", Planet2: "Pluto", Aspect: "conjunction", Orb: 7.77},
		{Planet1: "Venus", Planet2: "Jupiter", Aspect: "square", Orb: 5.97},
		{Planet1: "Moon", Planet2: "Saturn", Aspect: "square", Orb: 8.67},
	}
}

func jungRequest() GenerateRequest {
	return GenerateRequest{
		Name:      "Carl Jung",
		Year:      1875,
		Month:     7,
		Day:       26,
		Hour:      intPtr(19),
		Minute:    intPtr(20),
		Latitude:  floatPtr(47.6),
		Longitude: floatPtr(9.32),
		Timezone:  "Europe/Zurich",
	}
}

func newTestService(ephemeris *fakeEphemeris) (*Service, *memArtifacts) {
	artifacts := newMemArtifacts()
	svc := &Service{
		CityRepo: &fakeCityRepo{cities: []domain.City{
			{Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522, Timezone: "Europe/Paris"},
			{Name: "Tokyo", Country: "Japan", Latitude: 35.6762, Longitude: 139.6503, Timezone: "Asia/Tokyo"},
		}},
		Ephemeris: ephemeris,
		Artifacts: artifacts,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return svc, artifacts
}
