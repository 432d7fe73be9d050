package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// PriceRange: именованный ценовой диапазон фильтра объектов.
// Нижняя граница включается, верхняя нет; у верхнего диапазона верхней границы нет.
type PriceRange struct {
	Label string
	Min   int64
	// Max == 0 означает "без верхней границы"
	Max int64
}

var PriceRanges = []PriceRange{
	{Label: "Under $200K", Min: 0, Max: 200000},
	{Label: "$200K-$400K", Min: 200000, Max: 400000},
	{Label: "$400K-$700K", Min: 400000, Max: 700000},
	{Label: "$700K+", Min: 700000},
}

// Contains проверяет попадание цены в диапазон [Min, Max)
func (r PriceRange) Contains(price int64) bool {
	if price < r.Min {
		return false
	}
	return r.Max == 0 || price < r.Max
}

// PriceRangeByLabel ищет диапазон по подписи
func PriceRangeByLabel(label string) (PriceRange, bool) {
	for _, r := range PriceRanges {
		if r.Label == label {
			return r, true
		}
	}
	return PriceRange{}, false
}

// PropertyTypes: значения фильтра по типу
var PropertyTypes = []string{"House", "Villa", "Apartment", "Condo", "Townhouse", "Land"}

// PropertyFilterState: состояние фильтров страницы списка объектов.
// Принадлежит одному рендеру страницы, между запросами не переживает.
type PropertyFilterState struct {
	Type       string
	PriceRange string
	MinBeds    int
	Query      string
}

// ParsePropertyFilterState читает фильтры из query-параметров (type, price, beds, q)
func ParsePropertyFilterState(q url.Values) PropertyFilterState {
	state := PropertyFilterState{
		Type:       strings.TrimSpace(q.Get("type")),
		PriceRange: strings.TrimSpace(q.Get("price")),
		Query:      strings.TrimSpace(q.Get("q")),
	}
	if beds, err := strconv.Atoi(q.Get("beds")); err == nil && beds > 0 {
		state.MinBeds = beds
	}
	return state
}

// IsEmpty: ни один фильтр не задан
func (s PropertyFilterState) IsEmpty() bool {
	return s.Type == "" && s.PriceRange == "" && s.MinBeds == 0 && s.Query == ""
}

// Matches: все заданные условия выполняются одновременно (AND)
func (s PropertyFilterState) Matches(p Property) bool {
	if s.Type != "" && !strings.EqualFold(s.Type, p.Type) {
		return false
	}
	if s.PriceRange != "" {
		if r, ok := PriceRangeByLabel(s.PriceRange); ok && !r.Contains(p.PriceValue) {
			return false
		}
	}
	if s.MinBeds > 0 && p.Beds < s.MinBeds {
		return false
	}
	if s.Query != "" && !strings.Contains(searchableText(p), strings.ToLower(s.Query)) {
		return false
	}
	return true
}

// Apply возвращает новый срез подходящих объектов; исходный не меняется
func (s PropertyFilterState) Apply(props []Property) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if s.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func searchableText(p Property) string {
	parts := []string{p.Title, p.Location, p.Address, p.Type, p.Description}
	parts = append(parts, p.Features...)
	return strings.ToLower(strings.Join(parts, " "))
}
