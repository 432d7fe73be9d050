package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/testutil"
)

func TestSanitizeKeepsOnlyHrefOnLinks(t *testing.T) {
	out := Sanitize(`<p onclick="x()">Hi <a href="/contact" class="btn" target="_blank">us</a></p><script>alert(1)</script>`)
	require.Equal(t, `<p>Hi <a href="/contact">us</a></p>`, out)
}

func TestSanitizeDropsJavascriptURLs(t *testing.T) {
	out := Sanitize(`<a href="javascript:alert(1)">x</a>`)
	require.NotContains(t, out, "javascript")
}

func TestParseServiceContent(t *testing.T) {
	nodes, err := ParseServiceContent(`<h3>Plan</h3><ul><li>One</li><li>Two</li></ul><img src=x onerror="y()">`)
	require.NoError(t, err)
	doc := testutil.RenderNodes(t, nodes...)
	require.Equal(t, 2, doc.Find("li").Length())
	require.Equal(t, 0, doc.Find("img").Length())

	empty, err := ParseServiceContent(`<script>only()</script>`)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestCatalogServiceBodiesSanitize(t *testing.T) {
	for _, svc := range catalog.Services() {
		nodes, err := ParseServiceContent(svc.Body)
		require.NoError(t, err, svc.Slug)
		doc := testutil.RenderNodes(t, nodes...)
		require.Equal(t, 0, doc.Find("script").Length(), svc.Slug)
		require.Equal(t, 0, doc.Find("[onclick],[class],[target]").Length(), svc.Slug)
	}
}

func TestStoreParsesFrontMatter(t *testing.T) {
	s := NewStore(filepath.Join("..", "..", "content"), time.Minute)
	page, err := s.Get(context.Background(), "legal", "privacy")
	require.NoError(t, err)
	require.Equal(t, "Privacy Policy", page.Title)
	require.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), page.UpdatedAt)

	nodes, err := page.Nodes()
	require.NoError(t, err)
	doc := testutil.RenderNodes(t, nodes...)
	require.Equal(t, "Information we collect", doc.Find("h2").First().Text())
	href, _ := doc.Find("a").First().Attr("href")
	require.Equal(t, "mailto:privacy@realhouse.example", href)
}

func TestStoreNotFoundAndSlugGuard(t *testing.T) {
	s := NewStore(t.TempDir(), time.Minute)
	_, err := s.Get(context.Background(), "legal", "missing")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(context.Background(), "legal", "../../etc/passwd")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCachesUntilExpiry(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "legal"), 0o755))
	file := filepath.Join(dir, "legal", "terms.md")
	require.NoError(t, os.WriteFile(file, []byte("first"), 0o600))

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(dir, time.Minute)
	s.now = func() time.Time { return now }

	page, err := s.Get(context.Background(), "legal", "terms")
	require.NoError(t, err)
	require.Equal(t, "Terms", page.Title)
	require.Contains(t, page.HTML, "first")

	require.NoError(t, os.WriteFile(file, []byte("second"), 0o600))
	page, _ = s.Get(context.Background(), "legal", "terms")
	require.Contains(t, page.HTML, "first")

	now = now.Add(2 * time.Minute)
	page, _ = s.Get(context.Background(), "legal", "terms")
	require.Contains(t, page.HTML, "second")
}

func TestParseRejectsBrokenFrontMatter(t *testing.T) {
	s := NewStore("", 0)
	_, err := s.Parse("legal", "x", []byte("---\ntitle: [unclosed\n---\nbody"))
	require.Error(t, err)

	page, err := s.Parse("legal", "x", bytes.TrimSpace([]byte("No front matter <script>bad()</script>")))
	require.NoError(t, err)
	require.NotContains(t, page.HTML, "script")
}
