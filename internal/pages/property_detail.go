package pages

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

const (
	nearbyPrecision = 5
	nearbyLimit     = 3
)

// PropertyPage: один объект. Для неизвестного id выводится секция "не найдено",
// для сбоя API сообщение об ошибке; ни то, ни другое не возвращается как error.
type PropertyPage struct {
	status
	site *Site
	id   string

	property *domain.Property
}

func (s *Site) Property(id string) *PropertyPage {
	return &PropertyPage{site: s, id: id}
}

func (p *PropertyPage) Build(ctx context.Context) (*dom.Fragment, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"page": "property", "property_id": p.id})

	prop, err := p.site.Listings.GetProperty(ctx, p.id)
	switch {
	case errors.Is(err, domain.ErrPropertyNotFound):
		p.code = http.StatusNotFound
		return dom.NewFragment(notFoundSection("Property not found",
			"The listing you are looking for has been sold or removed.",
			"/properties", "Browse all properties")), nil
	case err != nil:
		logger.Error("Failed to load property", err, nil)
		p.code = http.StatusBadGateway
		return dom.NewFragment(
			pageHeader("Property", "", propertiesCrumbs),
			statusMessage("error", "Something went wrong while loading this property. Please try again later."),
			dom.Link("/properties", "Back to all properties", "button"),
		), nil
	}
	p.property = prop

	b := &builder{}
	crumbs := p.crumbs()
	header := pageHeader(prop.Title, "", crumbs)
	meta := dom.MustEl("div", "property-meta", "")
	location := dom.MustEl("p", "property-location", "")
	dom.Append(location, b.icon("pin"), dom.Text(firstNonEmpty(prop.Address, prop.Location)))
	dom.Append(meta, dom.MustEl("p", "property-price", prop.Price), location, propertyFacts(b, *prop))
	header.AppendChild(meta)

	frag := dom.NewFragment(header, gallery(prop))

	overview := dom.Section("overview", "Overview", "property-overview")
	overview.AppendChild(dom.MustEl("p", "", prop.Description))
	frag.Append(overview)

	if len(prop.Features) > 0 {
		features := dom.Section("features", "Features", "property-features")
		features.AppendChild(dom.List(false, "feature-list", prop.Features))
		frag.Append(features)
	}

	facts := dom.Section("facts", "Facts", "property-facts-table")
	facts.AppendChild(dom.Table("Property facts", []string{"Fact", "Value"}, factRows(*prop)))
	frag.Append(facts)

	if prop.HasLocation() {
		loc := dom.Section("location", "Location", "property-map")
		mapLink := dom.Link(fmt.Sprintf("https://www.openstreetmap.org/?mlat=%f&mlon=%f#map=16/%f/%f",
			*prop.Latitude, *prop.Longitude, *prop.Latitude, *prop.Longitude), "View on map", "button")
		dom.Attr(mapLink, "rel", "noopener")
		loc.AppendChild(dom.Append(mapLink, b.icon("map")))
		frag.Append(loc)
	}

	if nearby := p.nearby(ctx, logger); len(nearby) > 0 {
		section := dom.Section("nearby", "Nearby listings", "nearby-properties")
		section.AppendChild(propertyGrid(b, nearby, ""))
		frag.Append(section)
	}

	inquiry := dom.Section("inquiry", "Ask about this property", "property-inquiry")
	inquiry.AppendChild(contactForm(ContactFormState{
		PropertyID:    prop.ID,
		PropertyTitle: prop.Title,
		Message:       "I'm interested in " + prop.Title + ".",
	}))
	frag.Append(inquiry)
	return frag, b.err
}

func (p *PropertyPage) nearby(ctx context.Context, logger port.LoggerPort) []domain.Property {
	prop := p.property
	if len(prop.Geohash) < nearbyPrecision {
		return nil
	}
	published := true
	found, err := p.site.Listings.ListProperties(ctx, domain.PropertyQuery{
		Published: &published,
		Near:      prop.Geohash[:nearbyPrecision],
		Limit:     nearbyLimit + 1,
	})
	if err != nil {
		logger.Warn("Failed to load nearby properties", port.Fields{"error": err.Error()})
		return nil
	}
	out := make([]domain.Property, 0, nearbyLimit)
	for _, n := range found {
		if n.ID != prop.ID && len(out) < nearbyLimit {
			out = append(out, n)
		}
	}
	return out
}

func (p *PropertyPage) crumbs() []dom.Crumb {
	title := "Property"
	if p.property != nil {
		title = p.property.Title
	}
	return append(append([]dom.Crumb{}, propertiesCrumbs...), dom.Crumb{Label: title, Href: seo.PropertyPath(p.id)})
}

func gallery(prop *domain.Property) *html.Node {
	g := dom.MustEl("div", "gallery", "")
	for i, src := range prop.Images {
		alt := fmt.Sprintf("%s, photo %d of %d", prop.Title, i+1, len(prop.Images))
		img := dom.Image(src, alt, "")
		if i == 0 {
			dom.Attr(img, "loading", "eager")
		}
		caption := ""
		if i == 0 {
			caption = prop.Location
		}
		g.AppendChild(dom.Figure(img, caption, "gallery-item"))
	}
	return g
}

func factRows(p domain.Property) [][]string {
	rows := [][]string{{"Type", p.Type}, {"Price", p.Price}}
	if p.Beds > 0 {
		rows = append(rows, []string{"Bedrooms", fmt.Sprint(p.Beds)})
	}
	if p.Baths > 0 {
		rows = append(rows, []string{"Bathrooms", formatBaths(p.Baths)})
	}
	if p.Sqft > 0 {
		rows = append(rows, []string{"Living area", domain.FormatNumber(p.Sqft) + " sqft"})
	}
	if p.YearBuilt > 0 {
		rows = append(rows, []string{"Year built", fmt.Sprint(p.YearBuilt)})
	}
	return rows
}

func (p *PropertyPage) SetupSEO(doc *seo.Document) error {
	if p.property == nil {
		title := "Property not found"
		if p.code != http.StatusNotFound {
			title = "Property unavailable"
		}
		doc.ApplyPageMeta(seo.PageMeta{Title: title, Path: seo.PropertyPath(p.id), NoIndex: true}, p.site.BaseURL)
		return nil
	}
	doc.UpdatePropertyMeta(*p.property, p.site.BaseURL)
	if err := doc.InjectSchema(seo.PropertySchema(*p.property, p.site.BaseURL), seo.SchemaIDProperty); err != nil {
		return err
	}
	return injectBreadcrumbs(doc, p.crumbs(), p.site.BaseURL)
}

func (p *PropertyPage) Bind(main *html.Node) error {
	if err := requireMounted(main); err != nil {
		return err
	}
	return bindContactForms(main)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
