package pages

import (
	"context"
	"strconv"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

var aboutCrumbs = []dom.Crumb{{Label: "Home", Href: "/"}, {Label: "About", Href: "/about"}}

type AboutPage struct {
	noBind
	site *Site
}

func (s *Site) About() *AboutPage {
	return &AboutPage{site: s}
}

func (p *AboutPage) Build(ctx context.Context) (*dom.Fragment, error) {
	b := &builder{}
	c := p.site.Company

	story := dom.Section("story", "Our story", "about-story")
	dom.Append(story,
		dom.MustEl("p", "", c.Description),
		dom.MustEl("p", "", c.History),
		dom.MustEl("p", "founded", "Serving Central Texas since "+strconv.Itoa(c.FoundedYear)+"."),
	)

	values := dom.Section("values", "What we stand for", "about-values")
	ul := dom.MustEl("ul", "check-list", "")
	for _, v := range c.Values {
		ul.AppendChild(dom.Append(dom.MustEl("li", "", ""), b.icon("check"), dom.Text(v)))
	}
	values.AppendChild(ul)

	stats := dom.Section("stats", "By the numbers", "about-stats")
	dl := dom.MustEl("dl", "stats", "")
	for _, st := range c.Stats {
		dom.Append(dl, dom.MustEl("dt", "", st.Label), dom.MustEl("dd", "", st.Value))
	}
	stats.AppendChild(dl)

	team := dom.Section("team", "Meet the team", "about-team")
	seen := map[string]bool{}
	for _, m := range catalog.TeamMembers() {
		if seen[m.Department] {
			continue
		}
		seen[m.Department] = true
		group := dom.MustEl("div", "team-group", "")
		group.AppendChild(dom.Heading(3, m.Department, ""))
		grid := dom.MustEl("div", "team-grid", "")
		for _, member := range catalog.GetTeamMembersByDepartment(m.Department) {
			grid.AppendChild(teamCard(b, member))
		}
		group.AppendChild(grid)
		team.AppendChild(group)
	}

	join := dom.Section("join", "Join us", "cta")
	join.AppendChild(dom.Link("/careers", "See open positions", "button button-primary"))

	return dom.NewFragment(pageHeader("About "+c.Name, c.Tagline, aboutCrumbs), story, values, stats, team, join), b.err
}

func teamCard(b *builder, m domain.TeamMember) *html.Node {
	card := dom.MustEl("article", "team-card", "")
	dom.Attr(card, "id", "member-"+m.ID)
	if m.Photo != "" {
		card.AppendChild(dom.Figure(dom.Image(m.Photo, m.Name, ""), "", "team-photo"))
	}
	dom.Append(card,
		dom.Heading(4, m.Name, "team-name"),
		dom.MustEl("p", "team-role", m.Role),
		dom.MustEl("p", "", m.Bio),
	)
	contact := dom.MustEl("p", "team-contact", "")
	if m.Email != "" {
		dom.Append(contact, b.icon("mail"), dom.Link("mailto:"+m.Email, m.Email, ""))
	}
	if m.Phone != "" {
		dom.Append(contact, b.icon("phone"), dom.Link("tel:"+m.Phone, m.Phone, ""))
	}
	if contact.FirstChild != nil {
		card.AppendChild(contact)
	}
	return card
}

func (p *AboutPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{
		Title:       "About " + p.site.Company.Name,
		Description: p.site.Company.Description,
		Path:        "/about",
		Image:       p.site.Company.Logo,
	}, p.site.BaseURL)
	if err := doc.InjectSchema(seo.TeamSchema(catalog.TeamMembers(), p.site.Company), seo.SchemaIDTeam); err != nil {
		return err
	}
	return injectBreadcrumbs(doc, aboutCrumbs, p.site.BaseURL)
}
