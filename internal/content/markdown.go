package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("content: page not found")

// Page: markdown-документ с YAML front matter
type Page struct {
	Kind          string
	Slug          string
	Title         string
	Summary       string
	EffectiveDate time.Time
	UpdatedAt     time.Time
	// HTML: отрендеренное и очищенное тело
	HTML string
}

// Nodes разбирает тело в отсоединенные узлы
func (p Page) Nodes() ([]*html.Node, error) {
	return ParseServiceContent(p.HTML)
}

type frontMatter struct {
	Title         string `yaml:"title"`
	Summary       string `yaml:"summary"`
	EffectiveDate string `yaml:"effective_date"`
	UpdatedAt     string `yaml:"updated_at"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Store читает страницы из <dir>/<kind>/<slug>.md и кэширует их на ttl
type Store struct {
	dir string
	ttl time.Duration
	md  goldmark.Markdown
	now func() time.Time

	mu    sync.RWMutex
	items map[string]cacheEntry
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

func NewStore(dir string, ttl time.Duration) *Store {
	if strings.TrimSpace(dir) == "" {
		dir = "content"
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{
		dir:   dir,
		ttl:   ttl,
		md:    goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough)),
		now:   time.Now,
		items: map[string]cacheEntry{},
	}
}

// Get возвращает страницу; для неизвестного или кривого slug: ErrNotFound
func (s *Store) Get(ctx context.Context, kind, slug string) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !slugPattern.MatchString(kind) || !slugPattern.MatchString(slug) {
		return Page{}, ErrNotFound
	}

	key := kind + "/" + slug
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()
	if ok && s.now().Before(entry.expires) {
		return entry.page, nil
	}

	page, err := s.read(kind, slug)
	if err != nil {
		return Page{}, err
	}
	s.mu.Lock()
	s.items[key] = cacheEntry{page: page, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return page, nil
}

func (s *Store) read(kind, slug string) (Page, error) {
	file := filepath.Join(s.dir, kind, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, fmt.Errorf("content: read %s: %w", file, err)
	}
	return s.Parse(kind, slug, data)
}

// Parse рендерит markdown-документ; front matter необязателен
func (s *Store) Parse(kind, slug string, data []byte) (Page, error) {
	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s/%s: %w", kind, slug, err)
		}
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("content: render %s/%s: %w", kind, slug, err)
	}

	page := Page{
		Kind:          kind,
		Slug:          slug,
		Title:         strings.TrimSpace(front.Title),
		Summary:       strings.TrimSpace(front.Summary),
		EffectiveDate: parseDate(front.EffectiveDate),
		UpdatedAt:     parseDate(front.UpdatedAt),
		HTML:          Sanitize(buf.String()),
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
