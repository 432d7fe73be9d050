package catalog

import (
	"strings"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

// Категории услуг
const (
	ServiceCategoryBuying     = "buying"
	ServiceCategorySelling    = "selling"
	ServiceCategoryManagement = "management"
	ServiceCategoryAdvisory   = "advisory"
)

var services = []domain.Service{
	{
		ID:       "svc-buying",
		Slug:     "home-buying",
		Title:    "Home Buying",
		Category: ServiceCategoryBuying,
		Summary:  "From the first showing to the closing table, we help you find and secure the right home.",
		Body: `<h2>How we help buyers</h2>
<p>We start with a <strong>needs assessment</strong> and a realistic budget, then line up showings that match.</p>
<ul><li>Off-market and pre-market listings</li><li>Offer strategy backed by recent comparables</li><li>Inspection and appraisal coordination</li></ul>
<p>Read our <a href="/faq" class="inline-link" target="_blank">buyer FAQ</a> before your first tour.</p>`,
		Icon:            "home",
		Highlights:      []string{"Dedicated buyer agent", "Local market reports", "Negotiation support"},
		RelatedServices: []string{"svc-mortgage", "svc-relocation"},
		FAQ: []domain.FAQ{
			{ID: "svc-buying-faq-1", Category: "buying", Question: "Do I pay a buyer agent fee?", Answer: "In most transactions the fee is negotiated with the seller; we explain every option before you sign anything."},
		},
	},
	{
		ID:       "svc-selling",
		Slug:     "home-selling",
		Title:    "Home Selling",
		Category: ServiceCategorySelling,
		Summary:  "Pricing, staging and marketing that gets your property sold for the best possible price.",
		Body: `<h2>Our selling process</h2>
<p>Every listing gets a <em>comparative market analysis</em>, professional photography and a launch plan.</p>
<ol><li>Pricing consultation</li><li>Staging and photography</li><li>Open houses and private showings</li><li>Offer review and closing</li></ol>
<script>alert("x")</script>`,
		Icon:            "tag",
		Highlights:      []string{"Professional photography", "Targeted online campaigns", "Weekly seller reports"},
		RelatedServices: []string{"svc-valuation", "svc-staging"},
	},
	{
		ID:              "svc-valuation",
		Slug:            "property-valuation",
		Title:           "Property Valuation",
		Category:        ServiceCategoryAdvisory,
		Summary:         "An accurate, data-driven estimate of what your property is worth today.",
		Body:            `<p>Our valuations combine recent sales, active competition and on-site inspection. <a href="/contact" onclick="steal()">Request a valuation</a>.</p>`,
		Icon:            "chart",
		Highlights:      []string{"Free for homeowners", "Written report in 48 hours"},
		RelatedServices: []string{"svc-selling"},
	},
	{
		ID:              "svc-management",
		Slug:            "property-management",
		Title:           "Property Management",
		Category:        ServiceCategoryManagement,
		Summary:         "Tenant screening, rent collection and maintenance for owners who want hands-off income.",
		Body:            `<h3>What is included</h3><ul><li>Tenant screening</li><li>Online rent collection</li><li>24/7 maintenance line</li></ul>`,
		Icon:            "key",
		Highlights:      []string{"Monthly owner statements", "Vetted contractors"},
		RelatedServices: []string{"svc-valuation"},
	},
	{
		ID:              "svc-mortgage",
		Slug:            "mortgage-guidance",
		Title:           "Mortgage Guidance",
		Category:        ServiceCategoryAdvisory,
		Summary:         "We connect you with trusted lenders and explain the numbers in plain language.",
		Body:            `<p>Compare <strong>rates</strong>, terms and closing costs side by side before you commit.</p>`,
		Icon:            "calculator",
		Highlights:      []string{"Lender introductions", "Pre-approval checklist"},
		RelatedServices: []string{"svc-buying"},
	},
	{
		ID:              "svc-relocation",
		Slug:            "relocation",
		Title:           "Relocation Services",
		Category:        ServiceCategoryBuying,
		Summary:         "Moving to Central Texas? Neighborhood tours, school research and remote closings.",
		Body:            `<p>We organize <em>virtual tours</em> and neighborhood briefings so you can decide before you arrive.</p>`,
		Icon:            "map",
		Highlights:      []string{"Virtual tours", "School district research"},
		RelatedServices: []string{"svc-buying", "svc-mortgage"},
	},
	{
		ID:              "svc-staging",
		Slug:            "home-staging",
		Title:           "Home Staging",
		Category:        ServiceCategorySelling,
		Summary:         "Furniture, lighting and styling that help buyers picture themselves at home.",
		Body:            `<p>Staged homes photograph better and sell faster. <img src="/images/staging.jpg" alt="Staged living room"></p>`,
		Icon:            "sparkle",
		Highlights:      []string{"In-house designers", "Furniture rental included"},
		RelatedServices: []string{"svc-selling"},
	},
}

// Services возвращает все услуги; срез является копией
func Services() []domain.Service {
	return cloneAll(services, cloneService)
}

func GetServiceBySlug(slug string) (domain.Service, bool) {
	for _, s := range services {
		if s.Slug == slug {
			return cloneService(s), true
		}
	}
	return domain.Service{}, false
}

func GetServiceByID(id string) (domain.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return cloneService(s), true
		}
	}
	return domain.Service{}, false
}

func GetServicesByCategory(category string) []domain.Service {
	out := make([]domain.Service, 0)
	for _, s := range services {
		if strings.EqualFold(s.Category, category) {
			out = append(out, cloneService(s))
		}
	}
	return out
}

// RelatedServices разворачивает svc.RelatedServices; неизвестные id пропускаются
func RelatedServices(svc domain.Service) []domain.Service {
	out := make([]domain.Service, 0, len(svc.RelatedServices))
	for _, id := range svc.RelatedServices {
		if related, ok := GetServiceByID(id); ok {
			out = append(out, related)
		}
	}
	return out
}
