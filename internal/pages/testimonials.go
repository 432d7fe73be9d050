package pages

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

var testimonialsCrumbs = []dom.Crumb{{Label: "Home", Href: "/"}, {Label: "Testimonials", Href: "/testimonials"}}

var sortLabels = map[string]string{
	domain.SortDateDesc:   "Newest first",
	domain.SortDateAsc:    "Oldest first",
	domain.SortRatingDesc: "Highest rated",
	domain.SortRatingAsc:  "Lowest rated",
}

// TestimonialsPage: отзывы с категорией, оценкой и сортировкой из запроса
type TestimonialsPage struct {
	site   *Site
	filter domain.TestimonialFilterState

	shown []domain.Testimonial
}

func (s *Site) Testimonials(q url.Values) *TestimonialsPage {
	return &TestimonialsPage{site: s, filter: domain.ParseTestimonialFilterState(q)}
}

func (p *TestimonialsPage) Filter() domain.TestimonialFilterState { return p.filter }

func (p *TestimonialsPage) Build(ctx context.Context) (*dom.Fragment, error) {
	b := &builder{}
	all := catalog.Testimonials()
	p.shown = p.filter.Apply(all)

	header := pageHeader("Client testimonials", "", testimonialsCrumbs)
	if avg, count := domain.AverageRating(all); count > 0 {
		summary := dom.MustEl("p", "rating-summary", "")
		dom.Append(summary, ratingStars(b, int(avg+0.5)),
			dom.Text(" "+formatRating(avg)+" average from "+domain.FormatNumber(count)+" reviews"))
		header.AppendChild(summary)
	}

	form := dom.MustEl("form", "testimonial-filter", "")
	dom.Attrs(form, "action", "/testimonials", "method", "get", "aria-label", "Filter testimonials")
	categories := []*html.Node{selectOption("all", "All categories")}
	for _, c := range catalog.TestimonialCategories() {
		categories = append(categories, selectOption(c, dom.HumanizeSlug(c)))
	}
	ratings := []*html.Node{selectOption("", "Any rating")}
	for r := 5; r >= 1; r-- {
		ratings = append(ratings, selectOption(strconv.Itoa(r), strconv.Itoa(r)+"+ stars"))
	}
	sorts := make([]*html.Node, 0, len(domain.TestimonialSorts))
	for _, s := range domain.TestimonialSorts {
		sorts = append(sorts, selectOption(s, sortLabels[s]))
	}
	submit := dom.MustEl("button", "button", "Apply")
	dom.Attr(submit, "type", "submit")
	dom.Append(form,
		labelledSelect("testimonial-category", "category", "Category", categories...),
		labelledSelect("testimonial-rating", "rating", "Rating", ratings...),
		labelledSelect("testimonial-sort", "sort", "Sort by", sorts...),
		submit,
	)

	list := dom.Section("reviews", "", "testimonial-list")
	if len(p.shown) == 0 {
		list.AppendChild(statusMessage("info", "No testimonials match your selection."))
	}
	for _, t := range p.shown {
		list.AppendChild(testimonialCard(b, t))
	}
	return dom.NewFragment(header, form, list), b.err
}

func formatRating(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

func testimonialCard(b *builder, t domain.Testimonial) *html.Node {
	card := dom.MustEl("article", "testimonial-card", "")
	dom.Attrs(card, "id", "testimonial-"+t.ID, "data-category", t.Category)
	quote := dom.MustEl("blockquote", "", "")
	quote.AppendChild(dom.MustEl("p", "", t.Quote))
	author := dom.MustEl("footer", "testimonial-author", "")
	cite := dom.MustEl("cite", "", t.Author)
	dom.Append(author, cite)
	if t.Location != "" {
		author.AppendChild(dom.Text(", " + t.Location))
	}
	date := dom.MustEl("time", "", t.Date.Format("January 2006"))
	dom.Attr(date, "datetime", t.Date.Format("2006-01-02"))
	dom.Append(card, ratingStars(b, t.Rating), quote, author, date)

	if t.PropertyID != "" {
		card.AppendChild(dom.Link(seo.PropertyPath(t.PropertyID), "See the property", "testimonial-property"))
	}
	if t.VideoURL != "" {
		dom.Append(card, videoModal(b, "testimonial-"+t.ID+"-video", "Testimonial from "+t.Author, t.VideoURL)...)
	}
	return card
}

func (p *TestimonialsPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{
		Title:       "Client testimonials",
		Description: "Read what buyers, sellers and landlords say about working with Realhouse.",
		Path:        "/testimonials",
	}, p.site.BaseURL)
	if err := injectBreadcrumbs(doc, testimonialsCrumbs, p.site.BaseURL); err != nil {
		return err
	}
	if len(p.shown) == 0 {
		return nil
	}
	reviews := make([]map[string]any, 0, len(p.shown))
	for _, t := range p.shown {
		r := seo.ReviewSchema(t, p.site.Company)
		delete(r, "@context")
		reviews = append(reviews, r)
	}
	return doc.InjectSchema(seo.Schema{"@context": "https://schema.org", "@graph": reviews}, seo.SchemaIDReviews)
}

// Bind переносит выбор в форму и связывает кнопки видео с диалогами
func (p *TestimonialsPage) Bind(main *html.Node) error {
	if err := requireMounted(main); err != nil {
		return err
	}
	category := p.filter.Category
	if category == "" {
		category = "all"
	}
	rating := ""
	if p.filter.MinRating > 0 {
		rating = strconv.Itoa(p.filter.MinRating)
	}
	markSelected(main, "category", category)
	markSelected(main, "rating", rating)
	markSelected(main, "sort", p.filter.Sort)
	return bindVideoModals(main)
}
