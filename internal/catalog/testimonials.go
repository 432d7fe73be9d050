package catalog

import (
	"slices"
	"strings"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Категории отзывов
const (
	TestimonialCategoryBuying     = "buying"
	TestimonialCategorySelling    = "selling"
	TestimonialCategoryManagement = "management"
)

var testimonials = []domain.Testimonial{
	{
		ID:         "t-1",
		Author:     "Jennifer & Mark S.",
		Location:   "Austin, TX",
		Category:   TestimonialCategoryBuying,
		Rating:     5,
		Quote:      "David found us the Zilker house before it even hit the market. We closed in three weeks.",
		Date:       day(2024, time.March, 12),
		PropertyID: "3",
	},
	{
		ID:       "t-2",
		Author:   "Robert K.",
		Location: "West Lake Hills, TX",
		Category: TestimonialCategorySelling,
		Rating:   5,
		Quote:    "The staging and photography made our home look like a magazine. Two offers over asking on the first weekend.",
		Date:     day(2024, time.January, 28),
		VideoURL: "https://www.youtube.com/embed/realhouse-robert",
	},
	{
		ID:       "t-3",
		Author:   "Samantha L.",
		Location: "Round Rock, TX",
		Category: TestimonialCategoryManagement,
		Rating:   4,
		Quote:    "Tom's team handles everything with our rental. Monthly statements are always on time.",
		Date:     day(2023, time.November, 5),
	},
	{
		ID:       "t-4",
		Author:   "Carlos M.",
		Location: "Austin, TX",
		Category: TestimonialCategoryBuying,
		Rating:   5,
		Quote:    "As a first-time buyer I had a hundred questions. Every one got a patient answer.",
		Date:     day(2024, time.March, 12),
	},
	{
		ID:       "t-5",
		Author:   "Hannah W.",
		Location: "Dripping Springs, TX",
		Category: TestimonialCategorySelling,
		Rating:   4,
		Quote:    "Clear pricing advice and honest feedback after every showing.",
		Date:     day(2023, time.August, 19),
	},
	{
		ID:       "t-6",
		Author:   "Greg P.",
		Location: "Austin, TX",
		Category: TestimonialCategoryManagement,
		Rating:   3,
		Quote:    "Good communication overall, although one repair took longer than I expected.",
		Date:     day(2023, time.June, 2),
	},
	{
		ID:       "t-7",
		Author:   "Nora & James T.",
		Location: "Austin, TX",
		Category: TestimonialCategoryBuying,
		Rating:   5,
		Quote:    "We relocated from Seattle without visiting once before closing. The virtual tours were that good.",
		Date:     day(2024, time.May, 7),
		VideoURL: "https://www.youtube.com/embed/realhouse-nora-james",
	},
}

// Testimonials возвращает отзывы в порядке каталога; срез является копией
func Testimonials() []domain.Testimonial {
	return slices.Clone(testimonials)
}

func GetTestimonialByID(id string) (domain.Testimonial, bool) {
	for _, t := range testimonials {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Testimonial{}, false
}

func GetTestimonialsByCategory(category string) []domain.Testimonial {
	out := make([]domain.Testimonial, 0)
	for _, t := range testimonials {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// TestimonialCategories: категории в порядке первого появления
func TestimonialCategories() []string {
	var out []string
	for _, t := range testimonials {
		if !slices.Contains(out, t.Category) {
			out = append(out, t.Category)
		}
	}
	return out
}
