// Package content превращает HTML из CMS и markdown-документы в очищенные DOM-узлы.
package content

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// Policy: белый список для любого HTML из CMS или markdown.
// У ссылок остается только href; class, target, обработчики и скрипты удаляются.
func Policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements(
			"p", "br", "hr", "h2", "h3", "h4", "h5", "h6",
			"ul", "ol", "li", "strong", "em", "b", "i", "blockquote",
			"code", "pre", "table", "thead", "tbody", "tr", "th", "td",
		)
		p.AllowAttrs("href").OnElements("a")
		p.AllowURLSchemes("http", "https", "mailto", "tel")
		p.RequireParseableURLs(true)
		p.AllowRelativeURLs(true)
		p.RequireNoFollowOnFullyQualifiedLinks(false)
		policy = p
	})
	return policy
}

// Sanitize применяет Policy к сырому HTML
func Sanitize(raw string) string {
	return Policy().Sanitize(raw)
}

// ParseServiceContent очищает сырой HTML и разбирает его в узлы в контексте <div>.
// Возвращаемые узлы отсоединены.
func ParseServiceContent(raw string) ([]*html.Node, error) {
	clean := strings.TrimSpace(Sanitize(raw))
	if clean == "" {
		return nil, nil
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(clean), ctx)
	if err != nil {
		return nil, fmt.Errorf("content: parse fragment: %w", err)
	}
	return nodes, nil
}
