package pages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/content"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

// ContentSource отдает markdown-страницы, например юридические документы
type ContentSource interface {
	Get(ctx context.Context, kind, slug string) (content.Page, error)
}

// Site: все, что нужно контроллерам страниц. Site безопасен для конкурентного
// использования; контроллеры создаются на каждый запрос.
type Site struct {
	Company   domain.Company
	BaseURL   string
	Listings  port.PropertyReaderPort
	Inquiries port.InquirySenderPort
	Content   ContentSource
	Now       func() time.Time
}

func (s *Site) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

var primaryNav = []dom.NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Properties", Href: "/properties"},
	{Label: "Services", Href: "/services"},
	{Label: "About", Href: "/about"},
	{Label: "Careers", Href: "/careers"},
	{Label: "Testimonials", Href: "/testimonials"},
	{Label: "FAQ", Href: "/faq"},
	{Label: "Contact", Href: "/contact"},
}

// NewDocument строит каркас сайта для path: шапку, пустой <main>, футер
// и общий для сайта JSON-LD
func (s *Site) NewDocument(path string) (*seo.Document, error) {
	doc := seo.NewDocument(s.Company.Name, "en")
	dom.Attr(doc.Body(), "class", "site")

	header, err := s.header(path)
	if err != nil {
		return nil, err
	}
	footer, err := s.footer()
	if err != nil {
		return nil, err
	}
	body := doc.Body()
	body.InsertBefore(header, doc.Main())
	skip := dom.Link("#main-content", "Skip to main content", "skip-link")
	body.InsertBefore(skip, header)
	body.AppendChild(footer)

	static := []struct {
		id     string
		schema seo.Schema
	}{
		{seo.SchemaIDOrganization, seo.OrganizationSchema(s.Company)},
		{seo.SchemaIDWebSite, seo.WebSiteSchema(s.Company.Name, s.BaseURL)},
		{seo.SchemaIDAgency, seo.RealEstateAgentSchema(s.Company, catalog.Testimonials())},
	}
	for _, st := range static {
		if err := doc.InjectSchema(st.schema, st.id); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (s *Site) header(path string) (*html.Node, error) {
	header := dom.MustEl("header", "site-header", "")
	b := &builder{}
	brand := dom.Link("/", "", "brand")
	dom.Append(brand, b.icon("home"), dom.MustEl("span", "brand-name", s.Company.Name))

	links := make([]dom.NavLink, len(primaryNav))
	copy(links, primaryNav)
	for i := range links {
		links[i].Current = isCurrent(links[i].Href, path)
	}
	dom.Append(header, brand, dom.NavList("Primary", "site-nav", links))
	return header, b.err
}

func isCurrent(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

func (s *Site) footer() (*html.Node, error) {
	c := s.Company
	b := &builder{}
	footer := dom.MustEl("footer", "site-footer", "")

	about := dom.MustEl("div", "footer-about", "")
	dom.Append(about, dom.MustEl("p", "footer-brand", c.Name), dom.MustEl("p", "", c.Tagline))

	contact := dom.MustEl("address", "footer-contact", "")
	dom.Append(contact,
		dom.Append(dom.MustEl("p", "", ""), b.icon("pin"), dom.Text(fmt.Sprintf("%s, %s, %s %s", c.Street, c.City, c.Region, c.PostalCode))),
		dom.Append(dom.MustEl("p", "", ""), b.icon("phone"), dom.Link("tel:"+strings.ReplaceAll(c.Phone, " ", ""), c.Phone, "")),
		dom.Append(dom.MustEl("p", "", ""), b.icon("mail"), dom.Link("mailto:"+c.Email, c.Email, "")),
	)

	hours := make([]string, 0, len(c.Hours))
	for _, h := range c.Hours {
		hours = append(hours, fmt.Sprintf("%s %s-%s", h.Days, h.Opens, h.Closes))
	}

	social := make([]dom.NavLink, 0, len(c.SameAs))
	for _, u := range c.SameAs {
		social = append(social, dom.NavLink{Label: socialLabel(u), Href: u})
	}

	legal := dom.NavList("Legal", "footer-legal", []dom.NavLink{
		{Label: "Privacy Policy", Href: "/privacy"},
		{Label: "Terms of Service", Href: "/terms"},
	})
	copyright := dom.MustEl("p", "copyright", "© "+strconv.Itoa(s.now().Year())+" "+c.LegalName)

	dom.Append(footer, about, contact, dom.List(false, "footer-hours", hours),
		dom.NavList("Social", "footer-social", social), legal, copyright)
	return footer, b.err
}

// socialLabel: "https://www.instagram.com/realhouse" -> "Instagram"
func socialLabel(u string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(u, "https://"), "http://")
	host = strings.TrimPrefix(host, "www.")
	name, _, _ := strings.Cut(host, ".")
	return dom.HumanizeSlug(name)
}
