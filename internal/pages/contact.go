package pages

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

const (
	msgFixFields  = "Please correct the highlighted fields and try again."
	msgSendFailed = "We could not send your message right now. Please try again later."
)

// ContactFormState: содержимое формы заявки для одного рендера
type ContactFormState struct {
	Name          string
	Email         string
	Phone         string
	Message       string
	PropertyID    string
	PropertyTitle string
	// Errors: имя поля -> сообщение
	Errors map[string]string
	// Notice выводится в статусной области формы; NoticeKind: "success" или "error"
	Notice     string
	NoticeKind string
}

func contactFormStateFromValues(v url.Values) ContactFormState {
	return ContactFormState{
		Name:          v.Get("name"),
		Email:         v.Get("email"),
		Phone:         v.Get("phone"),
		Message:       v.Get("message"),
		PropertyID:    v.Get("property_id"),
		PropertyTitle: v.Get("property_title"),
	}
}

func (s ContactFormState) inquiry() domain.Inquiry {
	return domain.NormalizeInquiry(domain.Inquiry{
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Message:       s.Message,
		PropertyID:    s.PropertyID,
		PropertyTitle: s.PropertyTitle,
	})
}

// cleared оставляет только контекст объекта; нужен после успешной отправки
func (s ContactFormState) cleared() ContactFormState {
	return ContactFormState{PropertyID: s.PropertyID, PropertyTitle: s.PropertyTitle}
}

type formField struct {
	name     string
	label    string
	kind     string
	required bool
	value    string
}

func contactForm(state ContactFormState) *html.Node {
	form := dom.MustEl("form", "contact-form", "")
	dom.Attrs(form, "action", "/contact", "method", "post", "novalidate", "")

	notice := dom.MustEl("div", "form-status", state.Notice)
	dom.Attr(notice, "id", "form-status")
	if state.NoticeKind != "" {
		dom.AddClass(notice, "status-"+state.NoticeKind)
	}
	form.AppendChild(notice)

	fields := []formField{
		{name: "name", label: "Name", kind: "text", required: true, value: state.Name},
		{name: "email", label: "Email", kind: "email", required: true, value: state.Email},
		{name: "phone", label: "Phone (optional)", kind: "tel", value: state.Phone},
		{name: "message", label: "Message", kind: "textarea", required: true, value: state.Message},
	}
	for _, f := range fields {
		form.AppendChild(formFieldNode(f, state.Errors[f.name]))
	}

	for _, hidden := range [][2]string{{"property_id", state.PropertyID}, {"property_title", state.PropertyTitle}} {
		if hidden[1] == "" {
			continue
		}
		in := dom.MustEl("input", "", "")
		dom.Attrs(in, "type", "hidden", "name", hidden[0], "value", hidden[1])
		form.AppendChild(in)
	}

	submit := dom.MustEl("button", "button button-primary", "Send message")
	dom.Attr(submit, "type", "submit")
	form.AppendChild(submit)
	return form
}

func formFieldNode(f formField, errMsg string) *html.Node {
	id := "contact-" + f.name
	wrap := dom.MustEl("div", "form-field", "")
	label := dom.MustEl("label", "", f.label)
	dom.Attr(label, "for", id)

	var input *html.Node
	if f.kind == "textarea" {
		input = dom.MustEl("textarea", "", f.value)
		dom.Attr(input, "rows", "5")
	} else {
		input = dom.MustEl("input", "", "")
		dom.Attrs(input, "type", f.kind, "value", f.value)
	}
	dom.Attrs(input, "id", id, "name", f.name)
	if f.required {
		dom.Attrs(input, "required", "", "aria-required", "true")
	}

	errSpan := dom.MustEl("span", "field-error", errMsg)
	dom.Attr(errSpan, "id", f.name+"-error")
	dom.Append(wrap, label, input, errSpan)
	return wrap
}

// bindContactForms связывает поля с их span ошибок и делает статусную
// область live region
func bindContactForms(main *html.Node) error {
	if err := requireMounted(main); err != nil {
		return err
	}
	for _, form := range dom.FindAll(main, dom.ByClass("contact-form")) {
		if st := dom.FindByID(form, "form-status"); st != nil {
			role := "status"
			if dom.HasClass(st, "status-error") {
				role = "alert"
			}
			dom.Attrs(st, "role", role, "aria-live", "polite")
		}
		for _, span := range dom.FindAll(form, dom.ByClass("field-error")) {
			id, _ := dom.GetAttr(span, "id")
			name := strings.TrimSuffix(id, "-error")
			input := dom.FindFirst(form, func(n *html.Node) bool {
				v, _ := dom.GetAttr(n, "name")
				return (n.Data == "input" || n.Data == "textarea") && v == name
			})
			if input == nil {
				continue
			}
			dom.Attr(input, "aria-describedby", id)
			if strings.TrimSpace(dom.TextContent(span)) != "" {
				dom.Attr(input, "aria-invalid", "true")
			} else {
				dom.RemoveAttr(input, "aria-invalid")
			}
		}
	}
	return nil
}

var contactCrumbs = []dom.Crumb{{Label: "Home", Href: "/"}, {Label: "Contact", Href: "/contact"}}

// ContactPage выводит форму контактов. С отправленными значениями проверяет их,
// отправляет заявку и выводит форму заново с результатом.
type ContactPage struct {
	status
	site      *Site
	submitted url.Values
	form      ContactFormState
}

func (s *Site) Contact() *ContactPage {
	return &ContactPage{site: s}
}

func (s *Site) ContactSubmit(values url.Values) *ContactPage {
	return &ContactPage{site: s, submitted: values}
}

// Form возвращает состояние формы после Build
func (p *ContactPage) Form() ContactFormState { return p.form }

func (p *ContactPage) Build(ctx context.Context) (*dom.Fragment, error) {
	if p.submitted != nil {
		p.form = p.submit(ctx, contactFormStateFromValues(p.submitted))
	}

	b := &builder{}
	c := p.site.Company
	header := pageHeader("Contact us", "Questions about a listing or a service? An agent will reply within one business day.", contactCrumbs)

	formSection := dom.Section("contact-form", "Send us a message", "contact-form-section")
	formSection.AppendChild(contactForm(p.form))

	office := dom.Section("office", "Visit our office", "contact-office")
	addr := dom.MustEl("address", "", "")
	dom.Append(addr,
		dom.Append(dom.MustEl("p", "", ""), b.icon("pin"), dom.Text(c.Street+", "+c.City+", "+c.Region+" "+c.PostalCode)),
		dom.Append(dom.MustEl("p", "", ""), b.icon("phone"), dom.Link("tel:"+strings.ReplaceAll(c.Phone, " ", ""), c.Phone, "")),
		dom.Append(dom.MustEl("p", "", ""), b.icon("mail"), dom.Link("mailto:"+c.Email, c.Email, "")),
	)
	rows := make([][]string, 0, len(c.Hours))
	for _, h := range c.Hours {
		rows = append(rows, []string{h.Days, h.Opens + "-" + h.Closes})
	}
	dom.Append(office, addr, dom.Table("Office hours", []string{"Days", "Hours"}, rows))

	return dom.NewFragment(header, formSection, office), b.err
}

func (p *ContactPage) submit(ctx context.Context, state ContactFormState) ContactFormState {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"page": "contact"})
	inquiry := state.inquiry()

	if err := domain.ValidateInquiry(inquiry); err != nil {
		p.code = http.StatusUnprocessableEntity
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			state.Errors = verr.Fields
		}
		state.Notice, state.NoticeKind = msgFixFields, "error"
		return state
	}

	receipt, err := p.site.Inquiries.SendInquiry(ctx, inquiry)
	if err != nil {
		logger.Error("Failed to send inquiry", err, nil)
		p.code = http.StatusBadGateway
		state.Notice, state.NoticeKind = msgSendFailed, "error"
		return state
	}
	if !receipt.Success {
		p.code = http.StatusUnprocessableEntity
		state.Notice, state.NoticeKind = firstNonEmpty(receipt.Message, msgFixFields), "error"
		return state
	}

	logger.Info("Inquiry sent", port.Fields{"property_id": inquiry.PropertyID})
	cleared := state.cleared()
	cleared.Notice, cleared.NoticeKind = receipt.Message, "success"
	return cleared
}

func (p *ContactPage) SetupSEO(doc *seo.Document) error {
	doc.ApplyPageMeta(seo.PageMeta{
		Title:       "Contact us",
		Description: "Call, email or visit the Realhouse office in Austin, or send us a message about any listing.",
		Path:        "/contact",
	}, p.site.BaseURL)
	return injectBreadcrumbs(doc, contactCrumbs, p.site.BaseURL)
}

func (p *ContactPage) Bind(main *html.Node) error {
	return bindContactForms(main)
}
