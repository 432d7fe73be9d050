package domain

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Варианты сортировки отзывов
const (
	SortDateDesc   = "date-desc"
	SortDateAsc    = "date-asc"
	SortRatingDesc = "rating-desc"
	SortRatingAsc  = "rating-asc"
)

// TestimonialSorts: допустимые значения параметра sort, первый используется по умолчанию
var TestimonialSorts = []string{SortDateDesc, SortDateAsc, SortRatingDesc, SortRatingAsc}

// TestimonialFilterState: фильтр и сортировка страницы отзывов
type TestimonialFilterState struct {
	Category  string
	MinRating int
	Sort      string
}

// ParseTestimonialFilterState читает category, rating и sort; неизвестная сортировка заменяется на date-desc
func ParseTestimonialFilterState(q url.Values) TestimonialFilterState {
	state := TestimonialFilterState{
		Category: strings.TrimSpace(q.Get("category")),
		Sort:     SortDateDesc,
	}
	if state.Category == "all" {
		state.Category = ""
	}
	if r, err := strconv.Atoi(q.Get("rating")); err == nil && r >= 1 && r <= 5 {
		state.MinRating = r
	}
	for _, s := range TestimonialSorts {
		if q.Get("sort") == s {
			state.Sort = s
		}
	}
	return state
}

// Apply фильтрует и сортирует копию. Сортировка устойчивая: при равенстве сохраняется порядок каталога.
func (s TestimonialFilterState) Apply(items []Testimonial) []Testimonial {
	out := make([]Testimonial, 0, len(items))
	for _, t := range items {
		if s.Category != "" && !strings.EqualFold(s.Category, t.Category) {
			continue
		}
		if s.MinRating > 0 && t.Rating < s.MinRating {
			continue
		}
		out = append(out, t)
	}

	switch s.Sort {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortRatingAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	return out
}

// AverageRating: средняя оценка и количество отзывов
func AverageRating(items []Testimonial) (float64, int) {
	if len(items) == 0 {
		return 0, 0
	}
	var sum int
	for _, t := range items {
		sum += t.Rating
	}
	return float64(sum) / float64(len(items)), len(items)
}

// DepartmentFilter: выбранный отдел на странице вакансий. Пустое значение и "all" означают все отделы.
type DepartmentFilter string

func (d DepartmentFilter) Apply(jobs []JobListing) []JobListing {
	out := make([]JobListing, 0, len(jobs))
	for _, j := range jobs {
		if d == "" || d == "all" || strings.EqualFold(string(d), j.Department) {
			out = append(out, j)
		}
	}
	return out
}
