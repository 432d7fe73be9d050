// Package dom строит отсоединенные деревья HTML-узлов без строковых шаблонов.
// Текст всегда попадает в текстовые узлы, поэтому html.Render его экранирует.
package dom

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrInvalidTag = errors.New("dom: invalid tag name")

var customElementName = regexp.MustCompile(`^[a-z][a-z0-9]*-[a-z0-9-]*$`)

// El создает отсоединенный элемент с необязательными классом и текстом.
// Тег должен быть известным HTML-элементом или custom element с "-" в имени.
func El(tag, class, text string) (*html.Node, error) {
	a := atom.Lookup([]byte(tag))
	if a == 0 && !customElementName.MatchString(tag) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: a}
	if class != "" {
		Attr(n, "class", class)
	}
	if text != "" {
		n.AppendChild(Text(text))
	}
	return n, nil
}

// MustEl: El для тегов, известных на этапе компиляции
func MustEl(tag, class, text string) *html.Node {
	n, err := El(tag, class, text)
	if err != nil {
		panic(err)
	}
	return n
}

func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr задает или заменяет атрибут и возвращает узел
func Attr(n *html.Node, key, val string) *html.Node {
	for i := range n.Attr {
		if n.Attr[i].Key == key && n.Attr[i].Namespace == "" {
			n.Attr[i].Val = val
			return n
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

// Attrs задает пары ключ/значение; лишний последний ключ игнорируется
func Attrs(n *html.Node, kv ...string) *html.Node {
	for i := 0; i+1 < len(kv); i += 2 {
		Attr(n, kv[i], kv[i+1])
	}
	return n
}

func GetAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attr = out
}

func HasClass(n *html.Node, class string) bool {
	v, _ := GetAttr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	if v, ok := GetAttr(n, "class"); ok && v != "" {
		Attr(n, "class", v+" "+class)
		return
	}
	Attr(n, "class", class)
}

// Append присоединяет детей к parent. nil пропускается; ребенок,
// у которого уже есть родитель, переносится.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
	return parent
}

// SetText заменяет всех детей n одним текстовым узлом
func SetText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	if text != "" {
		n.AppendChild(Text(text))
	}
}

// TextContent склеивает все текстовые узлы-потомки
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Render сериализует узлы по порядку
func Render(w io.Writer, nodes ...*html.Node) error {
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("dom: render: %w", err)
		}
	}
	return nil
}
