package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func Link(href, text, class string) *html.Node {
	a := MustEl("a", class, text)
	Attr(a, "href", href)
	return a
}

// Image строит <img> с ленивой загрузкой. alt есть всегда, у декоративных картинок он пустой.
func Image(src, alt, class string) *html.Node {
	img := MustEl("img", class, "")
	return Attrs(img, "src", src, "alt", alt, "loading", "lazy", "decoding", "async")
}

// Button строит <button type="button">
func Button(text, class string) *html.Node {
	b := MustEl("button", class, text)
	Attr(b, "type", "button")
	return b
}

// List строит <ul> или <ol>, по одному текстовому <li> на элемент
func List(ordered bool, class string, items []string) *html.Node {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	l := MustEl(tag, class, "")
	for _, item := range items {
		l.AppendChild(MustEl("li", "", item))
	}
	return l
}

// Heading строит <h1>..<h6>; уровень вне диапазона прижимается к границе
func Heading(level int, text, class string) *html.Node {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return MustEl("h"+strconv.Itoa(level), class, text)
}

// Section строит <section id=… aria-labelledby=…> с заголовком <h2>
func Section(id, heading, class string) *html.Node {
	s := MustEl("section", class, "")
	Attr(s, "id", id)
	if heading != "" {
		headingID := id + "-heading"
		Attr(s, "aria-labelledby", headingID)
		h := MustEl("h2", "section-title", heading)
		Attr(h, "id", headingID)
		s.AppendChild(h)
	}
	return s
}

// Figure оборачивает img, <figcaption> необязателен
func Figure(img *html.Node, caption, class string) *html.Node {
	f := MustEl("figure", class, "")
	Append(f, img)
	if caption != "" {
		f.AppendChild(MustEl("figcaption", "", caption))
	}
	return f
}

// Table строит таблицу с подписью и строкой заголовков. Короткие строки добиваются пустыми ячейками.
func Table(caption string, headers []string, rows [][]string) *html.Node {
	t := MustEl("table", "data-table", "")
	if caption != "" {
		t.AppendChild(MustEl("caption", "", caption))
	}
	if len(headers) > 0 {
		thead := MustEl("thead", "", "")
		tr := MustEl("tr", "", "")
		for _, h := range headers {
			th := MustEl("th", "", h)
			Attr(th, "scope", "col")
			tr.AppendChild(th)
		}
		Append(t, Append(thead, tr))
	}
	tbody := MustEl("tbody", "", "")
	for _, row := range rows {
		tr := MustEl("tr", "", "")
		for i := 0; i < len(row) || i < len(headers); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			tr.AppendChild(MustEl("td", "", cell))
		}
		tbody.AppendChild(tr)
	}
	t.AppendChild(tbody)
	return t
}

// NavLink: пункт навигационного списка
type NavLink struct {
	Label   string
	Href    string
	Current bool
}

// NavList строит <nav aria-label=…><ul>…</ul></nav>; текущая ссылка получает aria-current="page"
func NavList(label, class string, links []NavLink) *html.Node {
	nav := MustEl("nav", class, "")
	Attr(nav, "aria-label", label)
	ul := MustEl("ul", "", "")
	for _, l := range links {
		a := Link(l.Href, l.Label, "")
		if l.Current {
			Attr(a, "aria-current", "page")
		}
		Append(ul, Append(MustEl("li", "", ""), a))
	}
	nav.AppendChild(ul)
	return nav
}

// Crumb: шаг хлебных крошек. Последний шаг это текущая страница, без ссылки.
type Crumb struct {
	Label string
	Href  string
}

func Breadcrumbs(crumbs []Crumb) *html.Node {
	nav := MustEl("nav", "breadcrumbs", "")
	Attr(nav, "aria-label", "Breadcrumb")
	ol := MustEl("ol", "", "")
	for i, c := range crumbs {
		li := MustEl("li", "", "")
		if i == len(crumbs)-1 {
			span := MustEl("span", "", c.Label)
			Attr(span, "aria-current", "page")
			li.AppendChild(span)
		} else {
			li.AppendChild(Link(c.Href, c.Label, ""))
		}
		ol.AppendChild(li)
	}
	nav.AppendChild(ol)
	return nav
}

// HumanizeSlug делает из "property-management" строку "Property Management".
// cases.Caser хранит состояние, поэтому создается на каждый вызов.
func HumanizeSlug(slug string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(strings.TrimSpace(slug), "-", " "))
}
