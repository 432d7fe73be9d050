package pages

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

// builder запоминает первую ошибку конструкторов, чтобы код Build оставался линейным
type builder struct {
	err error
}

func (b *builder) icon(name string) *html.Node {
	n, err := dom.Icon(name)
	if err != nil && b.err == nil {
		b.err = err
	}
	return n
}

func pageHeader(title, lead string, crumbs []dom.Crumb) *html.Node {
	h := dom.MustEl("header", "page-header", "")
	if len(crumbs) > 0 {
		h.AppendChild(dom.Breadcrumbs(crumbs))
	}
	h.AppendChild(dom.Heading(1, title, "page-title"))
	if lead != "" {
		h.AppendChild(dom.MustEl("p", "lead", lead))
	}
	return h
}

// statusMessage: live region; для ошибок role=alert
func statusMessage(kind, text string) *html.Node {
	div := dom.MustEl("div", "status-message status-"+kind, text)
	if kind == "error" {
		dom.Attr(div, "role", "alert")
	} else {
		dom.Attrs(div, "role", "status", "aria-live", "polite")
	}
	return div
}

// notFoundSection выводится, когда запрошенная сущность не найдена
func notFoundSection(title, message, backHref, backLabel string) *html.Node {
	s := dom.MustEl("section", "not-found", "")
	dom.Append(s,
		dom.Heading(1, title, "page-title"),
		dom.MustEl("p", "", message),
		dom.Link(backHref, backLabel, "button button-primary"),
	)
	return s
}

func formatBaths(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func propertyFacts(b *builder, p domain.Property) *html.Node {
	ul := dom.MustEl("ul", "property-facts", "")
	add := func(icon, text string) {
		li := dom.MustEl("li", "", "")
		dom.Append(li, b.icon(icon), dom.MustEl("span", "", text))
		ul.AppendChild(li)
	}
	if p.Beds > 0 {
		add("bed", fmt.Sprintf("%d bd", p.Beds))
	}
	if p.Baths > 0 {
		add("bath", formatBaths(p.Baths)+" ba")
	}
	if p.Sqft > 0 {
		add("area", domain.FormatNumber(p.Sqft)+" sqft")
	}
	return ul
}

func propertyCard(b *builder, p domain.Property) *html.Node {
	card := dom.MustEl("article", "property-card", "")
	dom.Attr(card, "data-property-id", p.ID)
	href := seo.PropertyPath(p.ID)

	if len(p.Images) > 0 {
		card.AppendChild(dom.Append(dom.Link(href, "", "property-card-media"), dom.Image(p.Images[0], p.Title, "")))
	}
	body := dom.MustEl("div", "property-card-body", "")
	title := dom.Heading(3, "", "property-card-title")
	title.AppendChild(dom.Link(href, p.Title, ""))
	location := dom.MustEl("p", "property-location", "")
	dom.Append(location, b.icon("pin"), dom.Text(p.Location))
	dom.Append(body,
		dom.MustEl("span", "property-type", p.Type),
		title,
		dom.MustEl("p", "property-price", p.Price),
		location,
		propertyFacts(b, p),
	)
	card.AppendChild(body)
	return card
}

func propertyGrid(b *builder, props []domain.Property, empty string) *html.Node {
	if len(props) == 0 {
		return statusMessage("info", empty)
	}
	grid := dom.MustEl("div", "property-grid", "")
	for _, p := range props {
		grid.AppendChild(propertyCard(b, p))
	}
	return grid
}

func ratingStars(b *builder, rating int) *html.Node {
	span := dom.MustEl("span", "rating", "")
	dom.Attrs(span, "role", "img", "aria-label", fmt.Sprintf("Rated %d out of 5", rating))
	for i := 1; i <= 5; i++ {
		star := b.icon("star")
		if star != nil && i <= rating {
			dom.AddClass(star, "filled")
		}
		dom.Append(span, star)
	}
	return span
}

// accordion выводит пары вопрос/ответ. Кнопка ссылается на панель через
// data-accordion-target; Bind превращает это в aria-controls.
func accordion(idPrefix string, faqs []domain.FAQ) *html.Node {
	div := dom.MustEl("div", "accordion", "")
	for i, f := range faqs {
		panelID := fmt.Sprintf("%s-panel-%d", idPrefix, i+1)
		item := dom.MustEl("div", "accordion-item", "")
		heading := dom.Heading(3, "", "accordion-heading")
		trigger := dom.Button(f.Question, "accordion-trigger")
		dom.Attrs(trigger, "id", panelID+"-trigger", "data-accordion-target", panelID)
		heading.AppendChild(trigger)
		panel := dom.MustEl("div", "accordion-panel", "")
		dom.Attrs(panel, "id", panelID, "role", "region", "aria-labelledby", panelID+"-trigger", "hidden", "")
		panel.AppendChild(dom.MustEl("p", "", f.Answer))
		dom.Append(item, heading, panel)
		div.AppendChild(item)
	}
	return div
}

// bindAccordions связывает каждую кнопку с ее панелью в смонтированном дереве
func bindAccordions(main *html.Node) error {
	for _, trigger := range dom.FindAll(main, dom.ByClass("accordion-trigger")) {
		target, _ := dom.GetAttr(trigger, "data-accordion-target")
		if dom.FindByID(main, target) == nil {
			return fmt.Errorf("accordion panel %q not found", target)
		}
		dom.Attrs(trigger, "aria-controls", target, "aria-expanded", "false")
		dom.RemoveAttr(trigger, "data-accordion-target")
	}
	return nil
}

// videoModal выводит кнопку и закрытый <dialog> со встроенным видео
func videoModal(b *builder, id, label, videoURL string) []*html.Node {
	dialogID := id + "-dialog"
	trigger := dom.Button("", "video-trigger")
	dom.Attrs(trigger, "data-video-dialog", dialogID, "aria-label", "Play video: "+label)
	dom.Append(trigger, b.icon("play"), dom.MustEl("span", "", "Watch video"))

	dialog := dom.MustEl("dialog", "video-modal", "")
	dom.Attrs(dialog, "id", dialogID, "aria-label", label)
	frame := dom.MustEl("iframe", "", "")
	dom.Attrs(frame, "src", videoURL, "title", label, "loading", "lazy", "allowfullscreen", "")
	closeBtn := dom.Button("Close", "video-close")
	dom.Attr(closeBtn, "data-close-dialog", dialogID)
	dom.Append(dialog, frame, closeBtn)
	return []*html.Node{trigger, dialog}
}

// bindVideoModals связывает каждую кнопку с ее диалогом
func bindVideoModals(main *html.Node) error {
	for _, trigger := range dom.FindAll(main, dom.ByClass("video-trigger")) {
		target, _ := dom.GetAttr(trigger, "data-video-dialog")
		dialog := dom.FindByID(main, target)
		if dialog == nil || dialog.Data != "dialog" {
			return fmt.Errorf("video dialog %q not found", target)
		}
		dom.Attrs(trigger, "aria-controls", target, "aria-haspopup", "dialog")
	}
	return nil
}

func breadcrumbItems(crumbs []dom.Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Path: c.Href})
	}
	return items
}

// injectBreadcrumbs добавляет JSON-LD хлебных крошек по видимому пути
func injectBreadcrumbs(doc *seo.Document, crumbs []dom.Crumb, baseURL string) error {
	return doc.InjectSchema(seo.BreadcrumbSchema(breadcrumbItems(crumbs), baseURL), seo.SchemaIDBreadcrumbs)
}

// selectOption строит <option>; выбранный помечает Bind
func selectOption(value, label string) *html.Node {
	o := dom.MustEl("option", "", label)
	dom.Attr(o, "value", value)
	return o
}

// markSelected ставит "selected" опции select[name] со значением v
func markSelected(root *html.Node, name, v string) {
	sel := dom.FindFirst(root, func(n *html.Node) bool {
		got, _ := dom.GetAttr(n, "name")
		return n.Data == "select" && got == name
	})
	for _, o := range dom.FindAll(sel, dom.ByTag("option")) {
		val, _ := dom.GetAttr(o, "value")
		if strings.EqualFold(val, v) {
			dom.Attr(o, "selected", "")
		} else {
			dom.RemoveAttr(o, "selected")
		}
	}
}

func labelledSelect(id, name, label string, options ...*html.Node) *html.Node {
	wrap := dom.MustEl("div", "form-field", "")
	l := dom.MustEl("label", "", label)
	dom.Attr(l, "for", id)
	sel := dom.MustEl("select", "", "")
	dom.Attrs(sel, "id", id, "name", name)
	dom.Append(sel, options...)
	dom.Append(wrap, l, sel)
	return wrap
}
