package pages

import (
	"context"
	"net/http"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

// NotFoundPage отвечает на несуществующие маршруты
type NotFoundPage struct {
	noBind
	site *Site
}

func (s *Site) NotFound() *NotFoundPage {
	return &NotFoundPage{site: s}
}

func (p *NotFoundPage) Status() int { return http.StatusNotFound }

func (p *NotFoundPage) Build(ctx context.Context) (*dom.Fragment, error) {
	section := notFoundSection("Page not found",
		"The page you are looking for does not exist or has moved.", "/properties", "Browse properties")
	section.AppendChild(dom.Link("/", "Go to the home page", "button"))
	return dom.NewFragment(section), nil
}

func (p *NotFoundPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{Title: "Page not found", NoIndex: true}, p.site.BaseURL)
	return nil
}

// ErrorPage выводится после паники или неудачного рендера
type ErrorPage struct {
	noBind
	site *Site
}

func (s *Site) Error() *ErrorPage {
	return &ErrorPage{site: s}
}

func (p *ErrorPage) Status() int { return http.StatusInternalServerError }

func (p *ErrorPage) Build(ctx context.Context) (*dom.Fragment, error) {
	section := dom.MustEl("section", "server-error", "")
	dom.Append(section,
		dom.Heading(1, "Something went wrong", "page-title"),
		statusMessage("error", "We hit an unexpected problem. Please try again in a moment."),
		dom.Link("/", "Go to the home page", "button button-primary"),
	)
	return dom.NewFragment(section), nil
}

func (p *ErrorPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{Title: "Something went wrong", NoIndex: true}, p.site.BaseURL)
	return nil
}
