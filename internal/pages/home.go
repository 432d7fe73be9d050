package pages

import (
	"context"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

const featuredLimit = 3

// HomePage: первый экран, избранные объекты, услуги и сводка оценок
type HomePage struct {
	site *Site

	featured    []domain.Property
	featuredErr error
}

func (s *Site) Home() *HomePage {
	return &HomePage{site: s}
}

func (p *HomePage) Build(ctx context.Context) (*dom.Fragment, error) {
	b := &builder{}
	c := p.site.Company

	hero := dom.MustEl("section", "hero", "")
	dom.Attr(hero, "aria-labelledby", "hero-title")
	h1 := dom.Heading(1, c.Tagline, "hero-title")
	dom.Attr(h1, "id", "hero-title")
	search := dom.MustEl("form", "hero-search", "")
	dom.Attrs(search, "action", "/properties", "method", "get", "role", "search")
	label := dom.MustEl("label", "visually-hidden", "Search properties")
	dom.Attr(label, "for", "hero-q")
	input := dom.MustEl("input", "", "")
	dom.Attrs(input, "id", "hero-q", "type", "search", "name", "q", "placeholder", "City, neighborhood or feature")
	submit := dom.MustEl("button", "button button-primary", "Search")
	dom.Attr(submit, "type", "submit")
	dom.Append(search, label, input, submit)
	dom.Append(hero, h1, dom.MustEl("p", "lead", c.Description), search)

	featured := dom.Section("featured", "Featured properties", "featured-properties")
	published, yes := true, true
	p.featured, p.featuredErr = p.site.Listings.ListProperties(ctx, domain.PropertyQuery{
		Published: &published, Featured: &yes, Limit: featuredLimit,
	})
	if p.featuredErr != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to load featured properties", p.featuredErr, port.Fields{"page": "home"})
		featured.AppendChild(statusMessage("error", "Featured listings are unavailable right now. Please try again later."))
	} else {
		featured.AppendChild(propertyGrid(b, p.featured, "No featured listings at the moment."))
	}
	featured.AppendChild(dom.Link("/properties", "View all properties", "button"))

	services := dom.Section("services", "What we do", "home-services")
	grid := dom.MustEl("div", "service-grid", "")
	for _, svc := range catalog.Services() {
		card := dom.MustEl("article", "service-card", "")
		title := dom.Heading(3, "", "")
		title.AppendChild(dom.Link(seo.ServicePath(svc.Slug), svc.Title, ""))
		dom.Append(card, b.icon(svc.Icon), title, dom.MustEl("p", "", svc.Summary))
		grid.AppendChild(card)
	}
	services.AppendChild(grid)

	stats := dom.Section("stats", "Realhouse in numbers", "home-stats")
	dl := dom.MustEl("dl", "stats", "")
	for _, st := range c.Stats {
		dom.Append(dl, dom.MustEl("dt", "", st.Label), dom.MustEl("dd", "", st.Value))
	}
	stats.AppendChild(dl)

	reviews := dom.Section("reviews", "What clients say", "home-reviews")
	all := catalog.Testimonials()
	if avg, count := domain.AverageRating(all); count > 0 {
		summary := dom.MustEl("p", "rating-summary", "")
		dom.Append(summary, ratingStars(b, int(avg+0.5)),
			dom.Text(" "+formatRating(avg)+" average from "+domain.FormatNumber(count)+" reviews"))
		reviews.AppendChild(summary)
		latest := domain.TestimonialFilterState{Sort: domain.SortDateDesc}.Apply(all)
		reviews.AppendChild(testimonialCard(b, latest[0]))
	}
	reviews.AppendChild(dom.Link("/testimonials", "Read all testimonials", "button"))

	cta := dom.Section("cta", "Ready to make a move?", "cta")
	cta.AppendChild(dom.Link("/contact", "Talk to an agent", "button button-primary"))

	return dom.NewFragment(hero, featured, services, stats, reviews, cta), b.err
}

func (p *HomePage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{
		Title:       p.site.Company.Name,
		Description: p.site.Company.Description,
		Path:        "/",
		Image:       p.site.Company.Logo,
	}, p.site.BaseURL)
	if len(p.featured) == 0 {
		return nil
	}
	return doc.InjectSchema(seo.PropertyListSchema(p.featured, p.site.BaseURL, "Featured properties"), seo.SchemaIDPropertyList)
}

func (p *HomePage) Bind(main *html.Node) error {
	return requireMounted(main)
}
