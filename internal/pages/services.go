package pages

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/content"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

var servicesCrumbs = []dom.Crumb{{Label: "Home", Href: "/"}, {Label: "Services", Href: "/services"}}

type ServicesPage struct {
	noBind
	site *Site
}

func (s *Site) Services() *ServicesPage {
	return &ServicesPage{site: s}
}

func (p *ServicesPage) Build(ctx context.Context) (*dom.Fragment, error) {
	b := &builder{}
	frag := dom.NewFragment(pageHeader("Our services", "Everything you need to buy, sell or rent out a home.", servicesCrumbs))

	for _, category := range []string{
		catalog.ServiceCategoryBuying,
		catalog.ServiceCategorySelling,
		catalog.ServiceCategoryManagement,
		catalog.ServiceCategoryAdvisory,
	} {
		items := catalog.GetServicesByCategory(category)
		if len(items) == 0 {
			continue
		}
		section := dom.Section("category-"+category, dom.HumanizeSlug(category), "service-category")
		grid := dom.MustEl("div", "service-grid", "")
		for _, svc := range items {
			grid.AppendChild(serviceCard(b, svc))
		}
		section.AppendChild(grid)
		frag.Append(section)
	}
	return frag, b.err
}

func serviceCard(b *builder, svc domain.Service) *html.Node {
	card := dom.MustEl("article", "service-card", "")
	title := dom.Heading(3, "", "service-card-title")
	title.AppendChild(dom.Link(seo.ServicePath(svc.Slug), svc.Title, ""))
	dom.Append(card, b.icon(svc.Icon), title, dom.MustEl("p", "", svc.Summary))
	return card
}

func (p *ServicesPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{
		Title:       "Our services",
		Description: "Home buying, selling, valuations, property management and relocation support from Realhouse.",
		Path:        "/services",
	}, p.site.BaseURL)
	return injectBreadcrumbs(doc, servicesCrumbs, p.site.BaseURL)
}

// ServicePage: одна услуга; тело из CMS очищается перед разбором
type ServicePage struct {
	status
	site *Site
	slug string

	service *domain.Service
}

func (s *Site) Service(slug string) *ServicePage {
	return &ServicePage{site: s, slug: slug}
}

func (p *ServicePage) Build(ctx context.Context) (*dom.Fragment, error) {
	svc, ok := catalog.GetServiceBySlug(p.slug)
	if !ok {
		p.code = http.StatusNotFound
		return dom.NewFragment(notFoundSection("Service not found",
			"We could not find that service.", "/services", "See all services")), nil
	}
	p.service = &svc

	b := &builder{}
	header := pageHeader(svc.Title, svc.Summary, p.crumbs())
	dom.Append(header, b.icon(svc.Icon))

	body := dom.MustEl("div", "service-body prose", "")
	nodes, err := content.ParseServiceContent(svc.Body)
	if err != nil {
		return nil, fmt.Errorf("service %s body: %w", svc.Slug, err)
	}
	dom.Append(body, nodes...)
	frag := dom.NewFragment(header, body)

	if len(svc.Highlights) > 0 {
		hl := dom.Section("highlights", "What's included", "service-highlights")
		ul := dom.MustEl("ul", "check-list", "")
		for _, h := range svc.Highlights {
			ul.AppendChild(dom.Append(dom.MustEl("li", "", ""), b.icon("check"), dom.Text(h)))
		}
		hl.AppendChild(ul)
		frag.Append(hl)
	}

	if len(svc.FAQ) > 0 {
		faq := dom.Section("service-faq", "Questions", "service-faq")
		faq.AppendChild(accordion("service-faq", svc.FAQ))
		frag.Append(faq)
	}

	if related := catalog.RelatedServices(svc); len(related) > 0 {
		rel := dom.Section("related", "Related services", "related-services")
		grid := dom.MustEl("div", "service-grid", "")
		for _, r := range related {
			grid.AppendChild(serviceCard(b, r))
		}
		rel.AppendChild(grid)
		frag.Append(rel)
	}

	cta := dom.Section("service-cta", "Talk to a specialist", "cta")
	cta.AppendChild(dom.Link("/contact", "Get in touch", "button button-primary"))
	frag.Append(cta)
	return frag, b.err
}

func (p *ServicePage) crumbs() []dom.Crumb {
	title := dom.HumanizeSlug(p.slug)
	if p.service != nil {
		title = p.service.Title
	}
	return append(append([]dom.Crumb{}, servicesCrumbs...), dom.Crumb{Label: title, Href: seo.ServicePath(p.slug)})
}

func (p *ServicePage) SetupSEO(doc *seo.Document) error {
	if p.service == nil {
		doc.ApplyPageMeta(seo.PageMeta{Title: "Service not found", Path: seo.ServicePath(p.slug), NoIndex: true}, p.site.BaseURL)
		return nil
	}
	svc := *p.service
	doc.ApplyPageMeta(seo.PageMeta{Title: svc.Title, Description: svc.Summary, Path: seo.ServicePath(svc.Slug)}, p.site.BaseURL)
	if err := doc.InjectSchema(seo.ServiceSchema(svc, p.site.Company), seo.SchemaIDService); err != nil {
		return err
	}
	if err := doc.InjectSchema(seo.FAQPageSchema(svc.FAQ), seo.SchemaIDFAQ); err != nil {
		return err
	}
	return injectBreadcrumbs(doc, p.crumbs(), p.site.BaseURL)
}

func (p *ServicePage) Bind(main *html.Node) error {
	if err := requireMounted(main); err != nil {
		return err
	}
	return bindAccordions(main)
}
