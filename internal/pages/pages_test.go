package pages

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/testutil"
)

func renderPage(t *testing.T, site *Site, path string, p Page) (int, *goquery.Document) {
	t.Helper()
	doc, err := site.NewDocument(path)
	require.NoError(t, err)
	code, err := Render(context.Background(), doc, p)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	return code, testutil.ParseHTML(t, buf.Bytes())
}

func schemaIDs(doc *goquery.Document) []string {
	var ids []string
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	})
	return ids
}

func TestBindRequiresMountedTree(t *testing.T) {
	site, _, _ := newTestSite()
	detached := dom.MustEl("main", "", "")
	for name, p := range map[string]Page{
		"home":         site.Home(),
		"properties":   site.Properties(nil),
		"property":     site.Property("1"),
		"services":     site.Services(),
		"service":      site.Service("home-buying"),
		"about":        site.About(),
		"careers":      site.Careers(nil),
		"job":          site.Job("real-estate-agent"),
		"testimonials": site.Testimonials(nil),
		"contact":      site.Contact(),
		"faq":          site.FAQ(),
		"privacy":      site.Legal("privacy"),
		"not-found":    site.NotFound(),
		"error":        site.Error(),
	} {
		_, err := p.Build(context.Background())
		require.NoError(t, err, name)
		require.ErrorIs(t, p.Bind(detached), ErrNotMounted, name)
	}
}

func TestLayoutMarksCurrentNavAndStaticSchemas(t *testing.T) {
	site, _, _ := newTestSite()
	_, doc := renderPage(t, site, "/services/home-buying", site.Service("home-buying"))

	current := doc.Find(`.site-nav a[aria-current="page"]`)
	require.Equal(t, 1, current.Length())
	require.Equal(t, "Services", current.Text())
	require.Contains(t, doc.Find(".copyright").Text(), "2024")

	ids := schemaIDs(doc)
	require.Contains(t, ids, seo.SchemaIDOrganization)
	require.Contains(t, ids, seo.SchemaIDWebSite)
	require.Contains(t, ids, seo.SchemaIDAgency)
}

func TestHomeShowsFeaturedListings(t *testing.T) {
	site, reader, _ := newTestSite()
	code, doc := renderPage(t, site, "/", site.Home())
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 3, doc.Find("#featured .property-card").Length())

	q := reader.queries[0]
	require.True(t, *q.Featured)
	require.Equal(t, 3, q.Limit)
	require.Contains(t, schemaIDs(doc), seo.SchemaIDPropertyList)
}

func TestHomeSurvivesAPIFailure(t *testing.T) {
	site, reader, _ := newTestSite()
	reader.listErr = errUpstream
	code, doc := renderPage(t, site, "/", site.Home())
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 1, doc.Find(`#featured [role="alert"]`).Length())
	require.NotContains(t, schemaIDs(doc), seo.SchemaIDPropertyList)
}

func TestPropertiesFilterIsConjunctive(t *testing.T) {
	site, _, _ := newTestSite()
	q := url.Values{"price": {"$400K-$700K"}, "beds": {"3"}}
	code, doc := renderPage(t, site, "/properties", site.Properties(q))
	require.Equal(t, http.StatusOK, code)

	var ids []string
	doc.Find(".property-card").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-property-id")
		ids = append(ids, id)
	})
	require.Equal(t, []string{"1", "3", "6"}, ids)
	require.Equal(t, "Showing 3 of 8 properties", doc.Find("#result-count").Text())

	selected, _ := doc.Find(`select[name="price"] option[selected]`).Attr("value")
	require.Equal(t, "$400K-$700K", selected)
	beds, _ := doc.Find(`select[name="beds"] option[selected]`).Attr("value")
	require.Equal(t, "3", beds)

	robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
	require.Equal(t, "noindex, follow", robots)
}

func TestPropertiesFreeTextAndType(t *testing.T) {
	site, _, _ := newTestSite()
	_, doc := renderPage(t, site, "/properties", site.Properties(url.Values{"q": {"EANES"}, "type": {"villa"}}))
	require.Equal(t, 1, doc.Find(".property-card").Length())
	require.Equal(t, "8", doc.Find(".property-card").AttrOr("data-property-id", ""))
	require.Equal(t, "EANES", doc.Find("#filter-q").AttrOr("value", ""))
}

func TestPropertiesFilterStateIsPerPage(t *testing.T) {
	site, _, _ := newTestSite()
	first := site.Properties(url.Values{"type": {"Villa"}})
	second := site.Properties(url.Values{})
	require.Equal(t, "Villa", first.Filter().Type)
	require.True(t, second.Filter().IsEmpty())
}

func manyListings(condos, villas int) []domain.Property {
	out := make([]domain.Property, 0, condos+villas)
	for i := 0; i < condos+villas; i++ {
		typ := "Condo"
		if i >= condos {
			typ = "Villa"
		}
		out = append(out, domain.Property{
			ID:         fmt.Sprintf("bulk-%03d", i),
			Title:      fmt.Sprintf("%s %d", typ, i),
			Location:   "Austin, TX",
			Price:      "$500,000",
			PriceValue: 500000,
			Type:       typ,
			Beds:       2,
			Published:  true,
		})
	}
	return out
}

func TestPropertiesPagesThroughLargeCatalog(t *testing.T) {
	site, reader, _ := newTestSite()
	reader.props = manyListings(200, 50)

	code, doc := renderPage(t, site, "/properties", site.Properties(url.Values{"type": {"Villa"}}))
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 50, doc.Find(".property-card").Length())
	require.Equal(t, "Showing 50 of 250 properties", doc.Find("#result-count").Text())

	require.Len(t, reader.queries, 2)
	require.Equal(t, 0, reader.queries[0].Offset)
	require.Equal(t, listingPageSize, reader.queries[1].Offset)
}

func TestSitemapIncludesListingsBeyondFirstPage(t *testing.T) {
	site, reader, _ := newTestSite()
	reader.props = manyListings(200, 50)

	urls, err := site.SitemapURLs(context.Background())
	require.NoError(t, err)
	require.Equal(t, seo.PropertyPath("bulk-249"), urls[len(urls)-1].Loc)
}

func TestPropertiesAPIFailureIs502(t *testing.T) {
	site, reader, _ := newTestSite()
	reader.listErr = errUpstream
	code, doc := renderPage(t, site, "/properties", site.Properties(nil))
	require.Equal(t, http.StatusBadGateway, code)
	require.Contains(t, doc.Find(`[role="alert"]`).Text(), "Something went wrong")
}

func TestPropertyDetail(t *testing.T) {
	site, reader, _ := newTestSite()
	for i := range reader.props {
		switch reader.props[i].ID {
		case "1":
			reader.props[i].Geohash = "9v6kpzzzz"
		case "2", "3":
			reader.props[i].Geohash = "9v6kp1111"
		}
	}

	code, doc := renderPage(t, site, "/properties/1", site.Property("1"))
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Modern Lakeside Villa", doc.Find("h1").Text())
	require.Equal(t, "Modern Lakeside Villa | Realhouse", doc.Find("title").Text())
	require.Equal(t, 3, doc.Find(".gallery figure").Length())
	require.Equal(t, 4, doc.Find(".feature-list li").Length())
	require.Equal(t, "https://realhouse.example/properties/1", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))

	nearby := doc.Find("#nearby .property-card")
	require.Equal(t, 2, nearby.Length())
	require.Equal(t, "9v6kp", reader.queries[len(reader.queries)-1].Near)

	require.Equal(t, "1", doc.Find(`input[name="property_id"]`).AttrOr("value", ""))
	require.Equal(t, "Modern Lakeside Villa", doc.Find(`input[name="property_title"]`).AttrOr("value", ""))

	var listing map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.Find("script#"+seo.SchemaIDProperty).Text()), &listing))
	require.Equal(t, "RealEstateListing", listing["@type"])
	require.Contains(t, schemaIDs(doc), seo.SchemaIDBreadcrumbs)
	require.Equal(t, "page", doc.Find(".breadcrumbs [aria-current]").AttrOr("aria-current", ""))
}

func TestPropertyNotFound(t *testing.T) {
	site, _, _ := newTestSite()
	code, doc := renderPage(t, site, "/properties/404", site.Property("404"))
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "/properties", doc.Find(".not-found a").AttrOr("href", ""))
	require.NotContains(t, schemaIDs(doc), seo.SchemaIDProperty)
}

func TestPropertyFetchFailureIs502(t *testing.T) {
	site, reader, _ := newTestSite()
	reader.getErr = errUpstream
	code, doc := renderPage(t, site, "/properties/1", site.Property("1"))
	require.Equal(t, http.StatusBadGateway, code)
	require.Equal(t, 1, doc.Find(`[role="alert"]`).Length())
}

func TestRenderClearsPreviousDynamicSchemas(t *testing.T) {
	site, _, _ := newTestSite()
	doc, err := site.NewDocument("/properties/1")
	require.NoError(t, err)
	_, err = Render(context.Background(), doc, site.Property("1"))
	require.NoError(t, err)
	require.Contains(t, doc.SchemaIDs(), seo.SchemaIDProperty)

	_, err = Render(context.Background(), doc, site.FAQ())
	require.NoError(t, err)
	require.NotContains(t, doc.SchemaIDs(), seo.SchemaIDProperty)
	require.Contains(t, doc.SchemaIDs(), seo.SchemaIDFAQ)
	require.Contains(t, doc.SchemaIDs(), seo.SchemaIDOrganization)
}

func TestServiceDetailSanitizesBodyAndBindsAccordion(t *testing.T) {
	site, _, _ := newTestSite()
	code, doc := renderPage(t, site, "/services/home-buying", site.Service("home-buying"))
	require.Equal(t, http.StatusOK, code)

	body := doc.Find(".service-body")
	require.Equal(t, "How we help buyers", body.Find("h2").Text())
	require.Equal(t, 0, body.Find("script,[onclick],[class],[target]").Length())
	require.Equal(t, "/faq", body.Find("a").AttrOr("href", ""))

	triggers := doc.Find(".accordion-trigger")
	require.Equal(t, 1, triggers.Length())
	target := triggers.AttrOr("aria-controls", "")
	require.Equal(t, "false", triggers.AttrOr("aria-expanded", ""))
	require.Equal(t, 1, doc.Find("#"+target).Length())

	require.Equal(t, 2, doc.Find("#related .service-card").Length())
	require.Contains(t, schemaIDs(doc), seo.SchemaIDService)
}

func TestServiceNotFound(t *testing.T) {
	site, _, _ := newTestSite()
	code, doc := renderPage(t, site, "/services/nope", site.Service("nope"))
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "/services", doc.Find(".not-found a").AttrOr("href", ""))
}

func TestCareersDepartmentFilter(t *testing.T) {
	site, _, _ := newTestSite()
	_, doc := renderPage(t, site, "/careers", site.Careers(url.Values{"department": {"Marketing"}}))
	require.Equal(t, 1, doc.Find(".job-card").Length())
	require.Equal(t, "Marketing", doc.Find(`select[name="department"] option[selected]`).AttrOr("value", ""))

	_, doc = renderPage(t, site, "/careers", site.Careers(url.Values{"department": {"all"}}))
	require.Equal(t, 4, doc.Find(".job-card").Length())
}

func TestJobDetailOmitsMissingSalary(t *testing.T) {
	site, _, _ := newTestSite()
	code, doc := renderPage(t, site, "/careers/real-estate-agent", site.Job("real-estate-agent"))
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, doc.Find("table").Text(), "Salary")

	_, doc = renderPage(t, site, "/careers/marketing-coordinator", site.Job("marketing-coordinator"))
	require.NotContains(t, doc.Find("table").Text(), "Salary")
	require.NotContains(t, doc.Find("table").Text(), "Apply by")

	var posting map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.Find("script#"+seo.SchemaIDJob).Text()), &posting))
	require.NotContains(t, posting, "baseSalary")

	code, _ = renderPage(t, site, "/careers/nope", site.Job("nope"))
	require.Equal(t, http.StatusNotFound, code)
}

func TestTestimonialsSortAndVideoBinding(t *testing.T) {
	site, _, _ := newTestSite()
	_, doc := renderPage(t, site, "/testimonials", site.Testimonials(url.Values{"sort": {domain.SortRatingDesc}}))

	var ids []string
	doc.Find(".testimonial-card").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("id", ""))
	})
	require.Equal(t, []string{"testimonial-t-1", "testimonial-t-2", "testimonial-t-4", "testimonial-t-7",
		"testimonial-t-3", "testimonial-t-5", "testimonial-t-6"}, ids)

	triggers := doc.Find(".video-trigger")
	require.Equal(t, 2, triggers.Length())
	triggers.Each(func(_ int, s *goquery.Selection) {
		target := s.AttrOr("aria-controls", "")
		require.NotEmpty(t, target)
		require.Equal(t, 1, doc.Find("dialog#"+target).Length())
	})
	require.Equal(t, domain.SortRatingDesc, doc.Find(`select[name="sort"] option[selected]`).AttrOr("value", ""))
}

func TestTestimonialsCategoryFilter(t *testing.T) {
	site, _, _ := newTestSite()
	_, doc := renderPage(t, site, "/testimonials", site.Testimonials(url.Values{"category": {"buying"}, "rating": {"5"}}))
	doc.Find(".testimonial-card").Each(func(_ int, s *goquery.Selection) {
		require.Equal(t, "buying", s.AttrOr("data-category", ""))
		require.Equal(t, 5, s.Find(".icon-star.filled").Length())
	})
}

func TestContactValidationErrors(t *testing.T) {
	site, _, sender := newTestSite()
	form := url.Values{"name": {"  "}, "email": {"not-an-email"}, "message": {""}, "phone": {"abc"}}
	code, doc := renderPage(t, site, "/contact", site.ContactSubmit(form))
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Empty(t, sender.sent)

	require.Equal(t, "Please enter your name.", doc.Find("#name-error").Text())
	require.Equal(t, "Please enter a valid email address.", doc.Find("#email-error").Text())
	require.Equal(t, "Please enter a valid phone number.", doc.Find("#phone-error").Text())
	require.Equal(t, "Please enter a message.", doc.Find("#message-error").Text())
	require.Equal(t, "true", doc.Find("#contact-email").AttrOr("aria-invalid", ""))
	require.Equal(t, "email-error", doc.Find("#contact-email").AttrOr("aria-describedby", ""))
	require.Equal(t, "not-an-email", doc.Find("#contact-email").AttrOr("value", ""))
	require.Equal(t, "alert", doc.Find("#form-status").AttrOr("role", ""))
}

func TestContactSuccessClearsForm(t *testing.T) {
	site, _, sender := newTestSite()
	form := url.Values{
		"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Is it still available?"},
		"property_id": {"3"}, "property_title": {"Family Home near Zilker Park"},
	}
	page := site.ContactSubmit(form)
	code, doc := renderPage(t, site, "/contact", page)
	require.Equal(t, http.StatusOK, code)

	require.Len(t, sender.sent, 1)
	require.Equal(t, "3", sender.sent[0].PropertyID)
	require.Equal(t, "Thank you, Ana!", doc.Find("#form-status").Text())
	require.Equal(t, "status", doc.Find("#form-status").AttrOr("role", ""))
	require.Empty(t, doc.Find("#contact-name").AttrOr("value", ""))
	require.Empty(t, doc.Find("#contact-message").Text())
	require.Empty(t, page.Form().Errors)
	require.Equal(t, "3", doc.Find(`input[name="property_id"]`).AttrOr("value", ""))
}

func TestContactSendFailureKeepsInput(t *testing.T) {
	site, _, sender := newTestSite()
	sender.err = errUpstream
	form := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Hello"}}
	code, doc := renderPage(t, site, "/contact", site.ContactSubmit(form))
	require.Equal(t, http.StatusBadGateway, code)
	require.Equal(t, msgSendFailed, doc.Find("#form-status").Text())
	require.Equal(t, "Ana", doc.Find("#contact-name").AttrOr("value", ""))
	require.Equal(t, "Hello", doc.Find("#contact-message").Text())
}

func TestContactRejectedByAPI(t *testing.T) {
	site, _, sender := newTestSite()
	sender.receipt = &domain.InquiryReceipt{Success: false, Message: "Please correct the highlighted fields and try again."}
	form := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Hello"}}
	code, doc := renderPage(t, site, "/contact", site.ContactSubmit(form))
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Equal(t, "Ana", doc.Find("#contact-name").AttrOr("value", ""))
}

func TestFAQPage(t *testing.T) {
	site, _, _ := newTestSite()
	_, doc := renderPage(t, site, "/faq", site.FAQ())
	require.Equal(t, 6, doc.Find(".accordion-trigger[aria-controls]").Length())
	require.Equal(t, 0, doc.Find("[data-accordion-target]").Length())

	var faq map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.Find("script#"+seo.SchemaIDFAQ).Text()), &faq))
	require.Len(t, faq["mainEntity"], 6)
}

func TestLegalPages(t *testing.T) {
	site, _, _ := newTestSite()
	code, doc := renderPage(t, site, "/privacy", site.Legal("privacy"))
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Privacy Policy", doc.Find("h1").Text())
	require.Equal(t, 4, doc.Find(".legal-body h2").Length())

	code, _ = renderPage(t, site, "/cookies", site.Legal("cookies"))
	require.Equal(t, http.StatusNotFound, code)
}

func TestAboutListsTeamByDepartment(t *testing.T) {
	site, _, _ := newTestSite()
	_, doc := renderPage(t, site, "/about", site.About())
	require.Equal(t, 6, doc.Find(".team-card").Length())
	require.Equal(t, 5, doc.Find(".team-group").Length())
	require.Contains(t, schemaIDs(doc), seo.SchemaIDTeam)
}

func TestNotFoundAndErrorPages(t *testing.T) {
	site, _, _ := newTestSite()
	code, doc := renderPage(t, site, "/nope", site.NotFound())
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "/properties", doc.Find(".not-found a").First().AttrOr("href", ""))

	code, doc = renderPage(t, site, "/", site.Error())
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "Something went wrong", doc.Find("h1").Text())
}

func TestSitemapURLs(t *testing.T) {
	site, reader, _ := newTestSite()
	urls, err := site.SitemapURLs(context.Background())
	require.NoError(t, err)
	locs := make([]string, 0, len(urls))
	for _, u := range urls {
		locs = append(locs, u.Loc)
	}
	require.Contains(t, locs, "/properties/8")
	require.Contains(t, locs, "/services/home-buying")
	require.Contains(t, locs, "/careers/real-estate-agent")

	reader.listErr = errUpstream
	partial, err := site.SitemapURLs(context.Background())
	require.ErrorIs(t, err, errUpstream)
	require.Len(t, partial, len(staticSitemapPaths)+7+4)
}

func TestConcurrentRendersShareSite(t *testing.T) {
	site, _, _ := newTestSite()
	build := []func() Page{
		func() Page { return site.Services() },
		func() Page { return site.FAQ() },
		func() Page { return site.Testimonials(nil) },
		func() Page { return site.Careers(nil) },
	}

	const renders = 32
	outputs := make([]string, renders)
	errs := make([]error, renders)
	var wg sync.WaitGroup
	for i := 0; i < renders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := site.NewDocument("/services")
			if err != nil {
				errs[i] = err
				return
			}
			if _, err := Render(context.Background(), doc, build[i%len(build)]()); err != nil {
				errs[i] = err
				return
			}
			var buf bytes.Buffer
			errs[i] = doc.Render(&buf)
			outputs[i] = buf.String()
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		require.Equal(t, outputs[i%len(build)], outputs[i])
	}
}
