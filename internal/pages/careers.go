package pages

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

var careersCrumbs = []dom.Crumb{{Label: "Home", Href: "/"}, {Label: "Careers", Href: "/careers"}}

// CareersPage: список вакансий, можно сузить до одного отдела
type CareersPage struct {
	site       *Site
	department domain.DepartmentFilter
}

func (s *Site) Careers(q url.Values) *CareersPage {
	return &CareersPage{site: s, department: domain.DepartmentFilter(strings.TrimSpace(q.Get("department")))}
}

func (p *CareersPage) Build(ctx context.Context) (*dom.Fragment, error) {
	b := &builder{}
	header := pageHeader("Careers", "Join an agency that puts clients before commissions.", careersCrumbs)

	form := dom.MustEl("form", "department-filter", "")
	dom.Attrs(form, "action", "/careers", "method", "get", "aria-label", "Filter jobs")
	options := []*html.Node{selectOption("all", "All departments")}
	for _, d := range catalog.Departments() {
		options = append(options, selectOption(d, d))
	}
	submit := dom.MustEl("button", "button", "Filter")
	dom.Attr(submit, "type", "submit")
	dom.Append(form, labelledSelect("department", "department", "Department", options...), submit)

	jobs := p.department.Apply(catalog.Jobs())
	list := dom.Section("openings", "Open positions", "job-list")
	if len(jobs) == 0 {
		list.AppendChild(statusMessage("info", "There are no openings in this department right now."))
	}
	for _, j := range jobs {
		list.AppendChild(jobCard(b, j))
	}
	return dom.NewFragment(header, form, list), b.err
}

func jobCard(b *builder, j domain.JobListing) *html.Node {
	card := dom.MustEl("article", "job-card", "")
	title := dom.Heading(3, "", "job-title")
	title.AppendChild(dom.Link(seo.JobPath(j.Slug), j.Title, ""))
	meta := dom.MustEl("p", "job-meta", "")
	dom.Append(meta, b.icon("briefcase"), dom.Text(j.Department+" · "+humanEmploymentType(j.EmploymentType)+" · "+jobLocation(j)))
	dom.Append(card, title, meta, dom.MustEl("p", "", j.Summary))
	return card
}

func jobLocation(j domain.JobListing) string {
	if j.Remote {
		if j.Location == "" {
			return "Remote"
		}
		return j.Location + " (remote)"
	}
	return j.Location
}

func humanEmploymentType(t string) string {
	return dom.HumanizeSlug(strings.ToLower(strings.ReplaceAll(t, "_", "-")))
}

func (p *CareersPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{
		Title:       "Careers",
		Description: "Open positions at Realhouse in sales, marketing, property management and operations.",
		Path:        "/careers",
	}, p.site.BaseURL)
	return injectBreadcrumbs(doc, careersCrumbs, p.site.BaseURL)
}

func (p *CareersPage) Bind(main *html.Node) error {
	if err := requireMounted(main); err != nil {
		return err
	}
	selected := string(p.department)
	if selected == "" {
		selected = "all"
	}
	markSelected(main, "department", selected)
	return nil
}

// JobPage: одна вакансия
type JobPage struct {
	status
	noBind
	site *Site
	slug string

	job *domain.JobListing
}

func (s *Site) Job(slug string) *JobPage {
	return &JobPage{site: s, slug: slug}
}

func (p *JobPage) Build(ctx context.Context) (*dom.Fragment, error) {
	job, ok := catalog.GetJobBySlug(p.slug)
	if !ok {
		p.code = http.StatusNotFound
		return dom.NewFragment(notFoundSection("Position not found",
			"This position has been filled or is no longer open.", "/careers", "See open positions")), nil
	}
	p.job = &job

	b := &builder{}
	header := pageHeader(job.Title, job.Summary, p.crumbs())
	facts := [][]string{
		{"Department", job.Department},
		{"Employment type", humanEmploymentType(job.EmploymentType)},
		{"Location", jobLocation(job)},
		{"Posted", job.PostedAt.Format("January 2, 2006")},
	}
	if job.Salary != nil {
		facts = append(facts, []string{"Salary", salaryText(*job.Salary)})
	}
	if !job.Deadline.IsZero() {
		facts = append(facts, []string{"Apply by", job.Deadline.Format("January 2, 2006")})
	}
	header.AppendChild(dom.Table("Position details", nil, facts))

	frag := dom.NewFragment(header)
	for _, part := range []struct {
		id, title string
		items     []string
	}{
		{"responsibilities", "Responsibilities", job.Responsibilities},
		{"requirements", "Requirements", job.Requirements},
		{"benefits", "Benefits", job.Benefits},
	} {
		if len(part.items) == 0 {
			continue
		}
		s := dom.Section(part.id, part.title, "job-"+part.id)
		s.AppendChild(dom.List(false, "", part.items))
		frag.Append(s)
	}

	apply := dom.Section("apply", "Apply", "cta")
	mail := "mailto:" + p.site.Company.Email + "?subject=" + url.QueryEscape("Application: "+job.Title)
	link := dom.Link(mail, "Apply by email", "button button-primary")
	dom.Append(link, b.icon("mail"))
	apply.AppendChild(link)
	frag.Append(apply)
	return frag, b.err
}

func salaryText(s domain.SalaryRange) string {
	unit := strings.ToLower(s.Unit)
	if s.Min == s.Max || s.Max == 0 {
		return fmt.Sprintf("%s per %s", domain.FormatPrice(s.Min), unit)
	}
	return fmt.Sprintf("%s - %s per %s", domain.FormatPrice(s.Min), domain.FormatPrice(s.Max), unit)
}

func (p *JobPage) crumbs() []dom.Crumb {
	title := dom.HumanizeSlug(p.slug)
	if p.job != nil {
		title = p.job.Title
	}
	return append(append([]dom.Crumb{}, careersCrumbs...), dom.Crumb{Label: title, Href: seo.JobPath(p.slug)})
}

func (p *JobPage) SetupSEO(doc *seo.Document) error {
	if p.job == nil {
		doc.ApplyPageMeta(seo.PageMeta{Title: "Position not found", Path: seo.JobPath(p.slug), NoIndex: true}, p.site.BaseURL)
		return nil
	}
	doc.ApplyPageMeta(seo.PageMeta{Title: p.job.Title, Description: p.job.Summary, Path: seo.JobPath(p.job.Slug)}, p.site.BaseURL)
	if err := doc.InjectSchema(seo.JobPostingSchema(*p.job, p.site.Company), seo.SchemaIDJob); err != nil {
		return err
	}
	return injectBreadcrumbs(doc, p.crumbs(), p.site.BaseURL)
}
