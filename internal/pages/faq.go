package pages

import (
	"context"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

var faqCrumbs = []dom.Crumb{{Label: "Home", Href: "/"}, {Label: "FAQ", Href: "/faq"}}

type FAQPage struct {
	site *Site
}

func (s *Site) FAQ() *FAQPage {
	return &FAQPage{site: s}
}

func (p *FAQPage) Build(ctx context.Context) (*dom.Fragment, error) {
	frag := dom.NewFragment(pageHeader("Frequently asked questions", "Quick answers about buying, selling and renting with us.", faqCrumbs))
	for _, category := range catalog.FAQCategories() {
		section := dom.Section("faq-"+category, dom.HumanizeSlug(category), "faq-category")
		section.AppendChild(accordion("faq-"+category, catalog.GetFAQsByCategory(category)))
		frag.Append(section)
	}
	more := dom.Section("faq-more", "Still have questions?", "cta")
	more.AppendChild(dom.Link("/contact", "Contact an agent", "button button-primary"))
	frag.Append(more)
	return frag, nil
}

func (p *FAQPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{
		Title:       "Frequently asked questions",
		Description: "Answers to common questions about buying, selling and managing property with Realhouse.",
		Path:        "/faq",
	}, p.site.BaseURL)
	if err := doc.InjectSchema(seo.FAQPageSchema(catalog.FAQs()), seo.SchemaIDFAQ); err != nil {
		return err
	}
	return injectBreadcrumbs(doc, faqCrumbs, p.site.BaseURL)
}

func (p *FAQPage) Bind(main *html.Node) error {
	if err := requireMounted(main); err != nil {
		return err
	}
	return bindAccordions(main)
}
