package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL: одна запись <url>; нулевой LastMod и пустой ChangeFreq опускаются
type SitemapURL struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteSitemap пишет urlset sitemaps.org. Относительные адреса разрешаются
// относительно baseURL.
func WriteSitemap(w io.Writer, baseURL string, urls []SitemapURL) error {
	set := xmlURLSet{XMLNS: sitemapNS, URLs: make([]xmlURL, 0, len(urls))}
	for _, u := range urls {
		entry := xmlURL{Loc: AbsoluteURL(baseURL, u.Loc), LastMod: date(u.LastMod), ChangeFreq: u.ChangeFreq}
		if u.Priority > 0 {
			entry.Priority = fmt.Sprintf("%.1f", u.Priority)
		}
		set.URLs = append(set.URLs, entry)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("seo: encode sitemap: %w", err)
	}
	return enc.Flush()
}

// Robots возвращает robots.txt, разрешающий все, кроме API
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Allow: /\n")
	if baseURL != "" {
		b.WriteString("\nSitemap: " + AbsoluteURL(baseURL, "/sitemap.xml") + "\n")
	}
	return b.String()
}
