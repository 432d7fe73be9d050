package testutil

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
)

// ParseHTML разбирает HTML в goquery-документ для проверок
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// RenderNodes сериализует узлы и разбирает результат обратно для проверок
func RenderNodes(t testing.TB, nodes ...*html.Node) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	if err := dom.Render(&buf, nodes...); err != nil {
		t.Fatalf("render nodes: %v", err)
	}
	return ParseHTML(t, buf.Bytes())
}
