package domain

// City запись статического справочника городов.
// Справочник заменяет живой геокодинг: координаты и таймзона
// заранее известны и заливаются миграцией.
type City struct {
	ID        int64   `db:"id" json:"-"`
	Name      string  `db:"name" json:"name"`
	Country   string  `db:"country" json:"country"`
	Latitude  float64 `db:"latitude" json:"lat"`
	Longitude float64 `db:"longitude" json:"lon"`
	Timezone  string  `db:"timezone" json:"timezone"`
}

// DisplayName название города для отображения в карте
func (c *City) DisplayName() string {
	if c.Country == "" {
		return c.Name
	}
	return c.Name + ", " + c.Country
}
