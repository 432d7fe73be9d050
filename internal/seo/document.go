package seo

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/constants"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
)

// Стабильные id скриптов JSON-LD. id с динамическим префиксом принадлежат
// текущей странице и удаляются до того, как следующая страница настроит схемы.
const (
	SchemaIDOrganization = "schema-organization"
	SchemaIDWebSite      = "schema-website"
	SchemaIDAgency       = "schema-agency"

	SchemaIDProperty     = constants.DynamicSchemaPrefix + "property"
	SchemaIDPropertyList = constants.DynamicSchemaPrefix + "property-list"
	SchemaIDBreadcrumbs  = constants.DynamicSchemaPrefix + "breadcrumbs"
	SchemaIDFAQ          = constants.DynamicSchemaPrefix + "faq"
	SchemaIDService      = constants.DynamicSchemaPrefix + "service"
	SchemaIDJob          = constants.DynamicSchemaPrefix + "job"
	SchemaIDTeam         = constants.DynamicSchemaPrefix + "team"
	SchemaIDReviews      = constants.DynamicSchemaPrefix + "reviews"
)

const ldJSONType = "application/ld+json"

var ErrEmptySchemaID = errors.New("seo: schema id is required")

// Document это рендеримая страница: <html> с <head> и <body>, в котором шапка,
// <main> и футер. Элементы head остаются уникальными за счет upsert.
type Document struct {
	SiteName string

	root *html.Node
	html *html.Node
	head *html.Node
	body *html.Node
	main *html.Node
}

func NewDocument(siteName, lang string) *Document {
	d := &Document{SiteName: siteName}
	d.root = &html.Node{Type: html.DocumentNode}
	d.root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	d.html = dom.MustEl("html", "", "")
	if lang != "" {
		dom.Attr(d.html, "lang", lang)
	}
	d.head = dom.MustEl("head", "", "")
	charset := dom.MustEl("meta", "", "")
	dom.Attr(charset, "charset", "utf-8")
	viewport := dom.MustEl("meta", "", "")
	dom.Attrs(viewport, "name", "viewport", "content", "width=device-width, initial-scale=1")
	dom.Append(d.head, charset, viewport)

	d.body = dom.MustEl("body", "", "")
	d.main = dom.MustEl("main", "site-main", "")
	dom.Attrs(d.main, "id", "main-content", "tabindex", "-1")
	d.body.AppendChild(d.main)

	dom.Append(d.html, d.head, d.body)
	d.root.AppendChild(d.html)
	return d
}

func (d *Document) Root() *html.Node { return d.root }
func (d *Document) Head() *html.Node { return d.head }
func (d *Document) Body() *html.Node { return d.body }
func (d *Document) Main() *html.Node { return d.main }

// Mount присоединяет узлы фрагмента к <main> и возвращает <main>
func (d *Document) Mount(f *dom.Fragment) *html.Node {
	f.MoveTo(d.main)
	return d.main
}

// SetTitle задает <title>; к непустому заголовку добавляется имя сайта
func (d *Document) SetTitle(title string) {
	full := d.SiteName
	if title != "" && title != d.SiteName {
		full = title + " | " + d.SiteName
	}
	t := dom.FindFirst(d.head, dom.ByTag("title"))
	if t == nil {
		t = dom.MustEl("title", "", "")
		d.head.AppendChild(t)
	}
	dom.SetText(t, full)
}

func (d *Document) Title() string {
	if t := dom.FindFirst(d.head, dom.ByTag("title")); t != nil {
		return dom.TextContent(t)
	}
	return ""
}

// UpsertMeta обновляет <meta attr=key> или добавляет новый; attr: "name" или "property"
func (d *Document) UpsertMeta(attr, key, content string) {
	m := dom.FindFirst(d.head, func(n *html.Node) bool {
		v, ok := dom.GetAttr(n, attr)
		return n.DataAtom == atom.Meta && ok && v == key
	})
	if m == nil {
		m = dom.MustEl("meta", "", "")
		dom.Attr(m, attr, key)
		d.head.AppendChild(m)
	}
	dom.Attr(m, "content", content)
}

// Meta возвращает content у <meta attr=key>
func (d *Document) Meta(attr, key string) (string, bool) {
	m := dom.FindFirst(d.head, func(n *html.Node) bool {
		v, ok := dom.GetAttr(n, attr)
		return n.DataAtom == atom.Meta && ok && v == key
	})
	if m == nil {
		return "", false
	}
	return dom.GetAttr(m, "content")
}

func (d *Document) UpsertCanonical(href string) {
	l := dom.FindFirst(d.head, func(n *html.Node) bool {
		v, _ := dom.GetAttr(n, "rel")
		return n.DataAtom == atom.Link && v == "canonical"
	})
	if l == nil {
		l = dom.MustEl("link", "", "")
		dom.Attr(l, "rel", "canonical")
		d.head.AppendChild(l)
	}
	dom.Attr(l, "href", href)
}

func (d *Document) Canonical() string {
	l := dom.FindFirst(d.head, func(n *html.Node) bool {
		v, _ := dom.GetAttr(n, "rel")
		return n.DataAtom == atom.Link && v == "canonical"
	})
	href, _ := dom.GetAttr(l, "href")
	return href
}

// PageMeta: общие данные head страницы
type PageMeta struct {
	Title       string
	Description string
	// Path: канонический путь на сайте, например "/about"
	Path    string
	Image   string
	OGType  string
	NoIndex bool
}

// ApplyPageMeta задает title, description, canonical и теги OpenGraph/Twitter
func (d *Document) ApplyPageMeta(meta PageMeta, baseURL string) {
	d.SetTitle(meta.Title)
	description := Truncate(meta.Description, 160)
	canonical := AbsoluteURL(baseURL, meta.Path)
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	if description != "" {
		d.UpsertMeta("name", "description", description)
		d.UpsertMeta("property", "og:description", description)
	}
	if canonical != "" {
		d.UpsertCanonical(canonical)
		d.UpsertMeta("property", "og:url", canonical)
	}
	d.UpsertMeta("property", "og:title", d.Title())
	d.UpsertMeta("property", "og:type", ogType)
	d.UpsertMeta("property", "og:site_name", d.SiteName)
	if img := AbsoluteURL(baseURL, meta.Image); img != "" {
		d.UpsertMeta("property", "og:image", img)
		d.UpsertMeta("name", "twitter:card", "summary_large_image")
	} else {
		d.UpsertMeta("name", "twitter:card", "summary")
	}
	if meta.NoIndex {
		d.UpsertMeta("name", "robots", "noindex, follow")
	}
}

// UpdatePropertyMeta заполняет head страницы объекта
func (d *Document) UpdatePropertyMeta(p domain.Property, baseURL string) {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	description := p.Description
	if p.Price != "" {
		description = p.Price + " · " + p.Location + ". " + description
	}
	d.ApplyPageMeta(PageMeta{
		Title:       p.Title,
		Description: description,
		Path:        PropertyPath(p.ID),
		Image:       image,
		OGType:      "article",
	}, baseURL)
	if p.PriceValue > 0 {
		d.UpsertMeta("property", "product:price:amount", fmt.Sprintf("%d", p.PriceValue))
		d.UpsertMeta("property", "product:price:currency", "USD")
	}
}

func isLDScript(n *html.Node) bool {
	t, _ := dom.GetAttr(n, "type")
	return n.DataAtom == atom.Script && t == ldJSONType
}

// InjectSchema заменяет элемент с тем же id свежим скриптом JSON-LD в конце <head>.
// nil-схема только удаляет существующий элемент.
func (d *Document) InjectSchema(schema Schema, id string) error {
	if id == "" {
		return ErrEmptySchemaID
	}
	for _, n := range dom.FindAll(d.root, func(n *html.Node) bool {
		v, ok := dom.GetAttr(n, "id")
		return ok && v == id
	}) {
		dom.Remove(n)
	}
	if schema == nil {
		return nil
	}

	payload, err := schema.JSON()
	if err != nil {
		return fmt.Errorf("seo: marshal schema %s: %w", id, err)
	}
	script := dom.MustEl("script", "", "")
	dom.Attrs(script, "type", ldJSONType, "id", id)
	script.AppendChild(dom.Text(payload))
	d.head.AppendChild(script)
	return nil
}

// ClearDynamicSchemas удаляет все скрипты JSON-LD с динамическим префиксом id
// и возвращает их количество
func (d *Document) ClearDynamicSchemas() int {
	scripts := dom.FindAll(d.root, func(n *html.Node) bool {
		id, _ := dom.GetAttr(n, "id")
		return isLDScript(n) && strings.HasPrefix(id, constants.DynamicSchemaPrefix)
	})
	for _, s := range scripts {
		dom.Remove(s)
	}
	return len(scripts)
}

// SchemaIDs: id скриптов JSON-LD в порядке документа
func (d *Document) SchemaIDs() []string {
	var ids []string
	for _, n := range dom.FindAll(d.root, isLDScript) {
		id, _ := dom.GetAttr(n, "id")
		ids = append(ids, id)
	}
	return ids
}

// Render пишет весь документ вместе с doctype
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Truncate укорачивает s до max рун по границе слова и добавляет многоточие.
// При max <= 0 возвращает пустую строку.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:max-1])
	if i := strings.LastIndex(cut, " "); i > max/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
