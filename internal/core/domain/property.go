package domain

import "time"

// Property — объект недвижимости. Хранится в CRUD-хранилище, сиды лежат в каталоге.
type Property struct {
	ID       string
	Title    string
	Location string
	Address  string
	// Price: строка для отображения ("$450,000"), PriceValue: число для фильтров и JSON-LD
	Price       string
	PriceValue  int64
	Type        string
	Beds        int
	Baths       float64
	Sqft        int
	YearBuilt   int
	Description string
	Images      []string
	Features    []string
	Latitude    *float64
	Longitude   *float64
	Geohash     string
	Published   bool
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyQuery: фильтры списка в CRUD API (GET /properties)
type PropertyQuery struct {
	Published *bool
	Featured  *bool
	Type      string
	// Near: префикс geohash
	Near  string
	Limit int
	// Offset: сколько строк пропустить; порядок выдачи стабильный (created_at, id)
	Offset int
}

// PropertyPatch: частичное обновление: nil-поле означает "оставить прежнее значение"
type PropertyPatch struct {
	Title       *string
	Location    *string
	Address     *string
	Price       *string
	PriceValue  *int64
	Type        *string
	Beds        *int
	Baths       *float64
	Sqft        *int
	YearBuilt   *int
	Description *string
	Images      *[]string
	Features    *[]string
	Latitude    *float64
	Longitude   *float64
	Published   *bool
	Featured    *bool
}

// Apply накладывает патч на копию объекта
func (p PropertyPatch) Apply(prop Property) Property {
	if p.Title != nil {
		prop.Title = *p.Title
	}
	if p.Location != nil {
		prop.Location = *p.Location
	}
	if p.Address != nil {
		prop.Address = *p.Address
	}
	if p.Price != nil {
		prop.Price = *p.Price
	}
	if p.PriceValue != nil {
		prop.PriceValue = *p.PriceValue
	}
	if p.Type != nil {
		prop.Type = *p.Type
	}
	if p.Beds != nil {
		prop.Beds = *p.Beds
	}
	if p.Baths != nil {
		prop.Baths = *p.Baths
	}
	if p.Sqft != nil {
		prop.Sqft = *p.Sqft
	}
	if p.YearBuilt != nil {
		prop.YearBuilt = *p.YearBuilt
	}
	if p.Description != nil {
		prop.Description = *p.Description
	}
	if p.Images != nil {
		prop.Images = append([]string(nil), (*p.Images)...)
	}
	if p.Features != nil {
		prop.Features = append([]string(nil), (*p.Features)...)
	}
	if p.Latitude != nil {
		lat := *p.Latitude
		prop.Latitude = &lat
	}
	if p.Longitude != nil {
		lng := *p.Longitude
		prop.Longitude = &lng
	}
	if p.Published != nil {
		prop.Published = *p.Published
	}
	if p.Featured != nil {
		prop.Featured = *p.Featured
	}
	return prop
}

// HasLocation: известны ли координаты
func (p Property) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}
