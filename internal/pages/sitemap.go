package pages

import (
	"context"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

var staticSitemapPaths = []struct {
	path     string
	freq     string
	priority float64
}{
	{"/", "daily", 1.0},
	{"/properties", "daily", 0.9},
	{"/services", "monthly", 0.7},
	{"/about", "monthly", 0.5},
	{"/careers", "weekly", 0.5},
	{"/testimonials", "weekly", 0.5},
	{"/faq", "monthly", 0.5},
	{"/contact", "yearly", 0.6},
	{"/privacy", "yearly", 0.2},
	{"/terms", "yearly", 0.2},
}

// SitemapURLs перечисляет все индексируемые страницы. Объекты берутся из API;
// при его сбое статические и каталожные страницы возвращаются вместе с ошибкой.
func (s *Site) SitemapURLs(ctx context.Context) ([]seo.SitemapURL, error) {
	urls := make([]seo.SitemapURL, 0, 64)
	for _, p := range staticSitemapPaths {
		urls = append(urls, seo.SitemapURL{Loc: p.path, ChangeFreq: p.freq, Priority: p.priority})
	}
	for _, svc := range catalog.Services() {
		urls = append(urls, seo.SitemapURL{Loc: seo.ServicePath(svc.Slug), ChangeFreq: "monthly", Priority: 0.6})
	}
	for _, j := range catalog.Jobs() {
		urls = append(urls, seo.SitemapURL{Loc: seo.JobPath(j.Slug), LastMod: j.PostedAt, ChangeFreq: "weekly", Priority: 0.4})
	}

	props, err := s.publishedListings(ctx)
	if err != nil {
		return urls, err
	}
	for _, p := range props {
		mod := p.UpdatedAt
		if mod.IsZero() {
			mod = p.CreatedAt
		}
		urls = append(urls, seo.SitemapURL{Loc: seo.PropertyPath(p.ID), LastMod: mod, ChangeFreq: "weekly", Priority: 0.8})
	}
	return urls, nil
}
