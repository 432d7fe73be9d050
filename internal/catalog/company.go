package catalog

import (
	"slices"
	"strings"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

// Company: факты о компании для футера, страницы "о нас" и общих схем сайта
var Company = domain.Company{
	Name:        "Realhouse",
	LegalName:   "Realhouse Realty LLC",
	Tagline:     "Central Texas homes, handled with care.",
	Description: "Realhouse is an independent real estate agency helping families buy, sell and manage homes across Austin and the Hill Country.",
	URL:         "https://realhouse.example",
	Logo:        "/images/logo.svg",
	Phone:       "+1 512 555 0100",
	Email:       "hello@realhouse.example",
	Street:      "812 W 11th St, Suite 200",
	City:        "Austin",
	Region:      "TX",
	PostalCode:  "78701",
	Country:     "US",
	Latitude:    30.2760,
	Longitude:   -97.7502,
	FoundedYear: 2009,
	PriceRange:  "$$",
	Hours: []domain.OpeningHours{
		{Days: "Mo-Fr", Opens: "09:00", Closes: "18:00"},
		{Days: "Sa", Opens: "10:00", Closes: "14:00"},
	},
	SameAs: []string{
		"https://www.facebook.com/realhouse",
		"https://www.instagram.com/realhouse",
		"https://www.linkedin.com/company/realhouse",
	},
	Stats: []domain.CompanyStat{
		{Label: "Homes sold", Value: "1,200+"},
		{Label: "Years in business", Value: "15"},
		{Label: "Rentals managed", Value: "200+"},
		{Label: "Average rating", Value: "4.8"},
	},
	Values:  []string{"Honest advice", "Local expertise", "Clients before commissions"},
	History: "Realhouse opened as a two-person brokerage on West 11th Street and has grown into a full-service agency with sales, marketing and property management teams.",
}

var faqs = []domain.FAQ{
	{ID: "faq-1", Category: "buying", Question: "How long does it take to buy a home?", Answer: "Most of our buyers close within 30 to 45 days after an accepted offer."},
	{ID: "faq-2", Category: "buying", Question: "Do I need a mortgage pre-approval before touring?", Answer: "It is not required, but sellers take offers with a pre-approval letter more seriously."},
	{ID: "faq-3", Category: "selling", Question: "How do you price my home?", Answer: "We compare recent sales, active competition and your home's condition, then walk you through the range."},
	{ID: "faq-4", Category: "selling", Question: "Should I renovate before selling?", Answer: "Usually small repairs and staging give a better return than a full renovation."},
	{ID: "faq-5", Category: "management", Question: "What does property management cost?", Answer: "Our fee is a percentage of collected rent with no charge while the unit is vacant."},
	{ID: "faq-6", Category: "general", Question: "Which areas do you cover?", Answer: "Austin, Round Rock, Cedar Park, Dripping Springs and West Lake Hills."},
}

// FAQs возвращает все вопросы; срез является копией
func FAQs() []domain.FAQ {
	return slices.Clone(faqs)
}

func GetFAQsByCategory(category string) []domain.FAQ {
	out := make([]domain.FAQ, 0)
	for _, f := range faqs {
		if strings.EqualFold(f.Category, category) {
			out = append(out, f)
		}
	}
	return out
}

// FAQCategories: категории вопросов в порядке первого появления
func FAQCategories() []string {
	var out []string
	for _, f := range faqs {
		if !slices.Contains(out, f.Category) {
			out = append(out, f.Category)
		}
	}
	return out
}
