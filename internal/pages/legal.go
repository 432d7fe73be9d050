package pages

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/content"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

const legalKind = "legal"

// LegalPage выводит markdown-документ, например политику конфиденциальности
type LegalPage struct {
	status
	noBind
	site *Site
	slug string

	page *content.Page
}

func (s *Site) Legal(slug string) *LegalPage {
	return &LegalPage{site: s, slug: slug}
}

func (p *LegalPage) Build(ctx context.Context) (*dom.Fragment, error) {
	page, err := p.site.Content.Get(ctx, legalKind, p.slug)
	if errors.Is(err, content.ErrNotFound) {
		p.code = http.StatusNotFound
		return dom.NewFragment(notFoundSection("Page not found", "This document does not exist.", "/", "Go to the home page")), nil
	}
	if err != nil {
		return nil, fmt.Errorf("legal page %s: %w", p.slug, err)
	}
	p.page = &page

	nodes, err := page.Nodes()
	if err != nil {
		return nil, err
	}
	header := pageHeader(page.Title, page.Summary, p.crumbs())
	if !page.EffectiveDate.IsZero() {
		header.AppendChild(dom.MustEl("p", "effective-date", "Effective "+page.EffectiveDate.Format("January 2, 2006")))
	}
	if !page.UpdatedAt.IsZero() {
		header.AppendChild(dom.MustEl("p", "updated-at", "Last updated "+page.UpdatedAt.Format("January 2, 2006")))
	}
	body := dom.MustEl("article", "legal-body prose", "")
	dom.Append(body, nodes...)
	return dom.NewFragment(header, body), nil
}

func (p *LegalPage) crumbs() []dom.Crumb {
	title := dom.HumanizeSlug(p.slug)
	if p.page != nil {
		title = p.page.Title
	}
	return []dom.Crumb{{Label: "Home", Href: "/"}, {Label: title, Href: "/" + p.slug}}
}

func (p *LegalPage) SetupSEO(doc *seo.Document) error {
	if p.page == nil {
		doc.ApplyPageMeta(seo.PageMeta{Title: "Page not found", Path: "/" + p.slug, NoIndex: true}, p.site.BaseURL)
		return nil
	}
	doc.ApplyPageMeta(seo.PageMeta{Title: p.page.Title, Description: p.page.Summary, Path: "/" + p.slug}, p.site.BaseURL)
	return injectBreadcrumbs(doc, p.crumbs(), p.site.BaseURL)
}
