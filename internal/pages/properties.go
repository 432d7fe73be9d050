package pages

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

const (
	// listingPageSize совпадает с максимальным limit в API
	listingPageSize = 200
	// maxListingPages ограничивает обход, если API перестал учитывать offset
	maxListingPages = 100
)

// publishedListings выбирает все опубликованные объекты постранично, пока не придет неполная страница
func (s *Site) publishedListings(ctx context.Context) ([]domain.Property, error) {
	published := true
	var all []domain.Property
	for page := 0; page < maxListingPages; page++ {
		batch, err := s.Listings.ListProperties(ctx, domain.PropertyQuery{
			Published: &published,
			Limit:     listingPageSize,
			Offset:    page * listingPageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < listingPageSize {
			return all, nil
		}
	}
	contextkeys.LoggerFromContext(ctx).Warn("Listing page limit reached", port.Fields{"fetched": len(all)})
	return all, nil
}

var propertiesCrumbs = []dom.Crumb{{Label: "Home", Href: "/"}, {Label: "Properties", Href: "/properties"}}

// PropertiesPage: опубликованные объекты, суженные фильтрами этого запроса
type PropertiesPage struct {
	status
	site   *Site
	filter domain.PropertyFilterState

	results []domain.Property
}

func (s *Site) Properties(q url.Values) *PropertiesPage {
	return &PropertiesPage{site: s, filter: domain.ParsePropertyFilterState(q)}
}

// Filter возвращает состояние фильтров этой страницы
func (p *PropertiesPage) Filter() domain.PropertyFilterState { return p.filter }

func (p *PropertiesPage) Build(ctx context.Context) (*dom.Fragment, error) {
	b := &builder{}
	header := pageHeader("Properties for sale", "Homes, condos and land across Central Texas.", propertiesCrumbs)

	results := dom.Section("results", "", "property-results")
	all, err := p.site.publishedListings(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to load properties", err, port.Fields{"page": "properties"})
		p.code = http.StatusBadGateway
		results.AppendChild(statusMessage("error", "Something went wrong while loading properties. Please try again later."))
		return dom.NewFragment(header, results), b.err
	}

	p.results = p.filter.Apply(all)
	count := statusMessage("info", resultCountText(len(p.results), len(all)))
	dom.Attr(count, "id", "result-count")
	dom.Append(results, count, propertyGrid(b, p.results, "No properties match your filters. Try widening your search."))
	return dom.NewFragment(header, filterForm(), results), b.err
}

func resultCountText(shown, total int) string {
	if shown == total {
		return fmt.Sprintf("Showing all %d properties", total)
	}
	return fmt.Sprintf("Showing %d of %d properties", shown, total)
}

func filterForm() *html.Node {
	form := dom.MustEl("form", "filter-form", "")
	dom.Attrs(form, "action", "/properties", "method", "get", "aria-label", "Filter properties")

	qWrap := dom.MustEl("div", "form-field", "")
	qLabel := dom.MustEl("label", "", "Keyword")
	dom.Attr(qLabel, "for", "filter-q")
	q := dom.MustEl("input", "", "")
	dom.Attrs(q, "id", "filter-q", "type", "search", "name", "q")
	dom.Append(qWrap, qLabel, q)

	types := []*html.Node{selectOption("", "Any type")}
	for _, t := range domain.PropertyTypes {
		types = append(types, selectOption(t, t))
	}
	prices := []*html.Node{selectOption("", "Any price")}
	for _, r := range domain.PriceRanges {
		prices = append(prices, selectOption(r.Label, r.Label))
	}
	beds := []*html.Node{selectOption("", "Any beds")}
	for i := 1; i <= 5; i++ {
		beds = append(beds, selectOption(strconv.Itoa(i), strconv.Itoa(i)+"+"))
	}

	submit := dom.MustEl("button", "button button-primary", "Apply filters")
	dom.Attr(submit, "type", "submit")
	dom.Append(form,
		qWrap,
		labelledSelect("filter-type", "type", "Type", types...),
		labelledSelect("filter-price", "price", "Price", prices...),
		labelledSelect("filter-beds", "beds", "Bedrooms", beds...),
		submit,
		dom.Link("/properties", "Reset", "button button-link"),
	)
	return form
}

func (p *PropertiesPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{
		Title:       "Properties for sale",
		Description: "Browse homes, villas, condos and land for sale in Austin and the Texas Hill Country.",
		Path:        "/properties",
		NoIndex:     !p.filter.IsEmpty(),
	}, p.site.BaseURL)
	if err := injectBreadcrumbs(doc, propertiesCrumbs, p.site.BaseURL); err != nil {
		return err
	}
	if len(p.results) == 0 {
		return nil
	}
	return doc.InjectSchema(seo.PropertyListSchema(p.results, p.site.BaseURL, "Properties for sale"), seo.SchemaIDPropertyList)
}

// Bind переносит состояние фильтров в смонтированную форму
func (p *PropertiesPage) Bind(main *html.Node) error {
	if err := requireMounted(main); err != nil {
		return err
	}
	form := dom.FindFirst(main, dom.ByClass("filter-form"))
	if form == nil {
		return nil
	}
	if q := dom.FindByID(form, "filter-q"); q != nil {
		dom.Attr(q, "value", p.filter.Query)
	}
	markSelected(form, "type", p.filter.Type)
	markSelected(form, "price", p.filter.PriceRange)
	beds := ""
	if p.filter.MinBeds > 0 {
		beds = strconv.Itoa(p.filter.MinBeds)
	}
	markSelected(form, "beds", beds)
	return nil
}
