package dom_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/testutil"
)

func TestElRejectsInvalidTags(t *testing.T) {
	_, err := dom.El("notatag", "", "")
	require.ErrorIs(t, err, dom.ErrInvalidTag)
	_, err = dom.El("<script>", "", "")
	require.ErrorIs(t, err, dom.ErrInvalidTag)

	n, err := dom.El("property-card", "card", "")
	require.NoError(t, err)
	require.Equal(t, "property-card", n.Data)

	require.Panics(t, func() { dom.MustEl("", "", "") })
}

func TestTextIsEscaped(t *testing.T) {
	p := dom.MustEl("p", "lead", `<script>alert("x")</script>`)
	var buf bytes.Buffer
	require.NoError(t, dom.Render(&buf, p))
	require.Equal(t, `<p class="lead">&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</p>`, buf.String())
}

func TestAttrReplacesExisting(t *testing.T) {
	a := dom.Link("/a", "A", "")
	dom.Attr(a, "href", "/b")
	v, ok := dom.GetAttr(a, "href")
	require.True(t, ok)
	require.Equal(t, "/b", v)
	require.Len(t, a.Attr, 1)
}

func TestBreadcrumbsMarkCurrentPage(t *testing.T) {
	doc := testutil.RenderNodes(t, dom.Breadcrumbs([]dom.Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Properties", Href: "/properties"},
		{Label: "Lakeside Villa"},
	}))

	require.Equal(t, 3, doc.Find("nav[aria-label=Breadcrumb] ol li").Length())
	require.Equal(t, 2, doc.Find("li a").Length())
	require.Equal(t, "Lakeside Villa", doc.Find(`[aria-current="page"]`).Text())
}

func TestTablePadsShortRows(t *testing.T) {
	doc := testutil.RenderNodes(t, dom.Table("Facts", []string{"Feature", "Value"}, [][]string{{"Beds", "4"}, {"Garage"}}))
	require.Equal(t, "Facts", doc.Find("caption").Text())
	require.Equal(t, 2, doc.Find(`th[scope="col"]`).Length())
	require.Equal(t, 4, doc.Find("tbody td").Length())
}

func TestSectionIsLabelled(t *testing.T) {
	doc := testutil.RenderNodes(t, dom.Section("team", "Our Team", ""))
	section := doc.Find("section#team")
	label, _ := section.Attr("aria-labelledby")
	require.Equal(t, "team-heading", label)
	require.Equal(t, "Our Team", doc.Find("#team-heading").Text())
}

func TestIcon(t *testing.T) {
	svg, err := dom.Icon("home")
	require.NoError(t, err)
	v, _ := dom.GetAttr(svg, "aria-hidden")
	require.Equal(t, "true", v)
	require.Equal(t, 2, len(dom.FindAll(svg, dom.ByTag("path"))))

	_, err = dom.Icon("unicorn")
	require.ErrorIs(t, err, dom.ErrUnknownIcon)
	require.Contains(t, dom.IconNames(), "star")
}

func TestFragmentMoveTo(t *testing.T) {
	frag := dom.NewFragment(dom.MustEl("h1", "", "Title"), nil, dom.MustEl("p", "", "Body"))
	require.Equal(t, 2, frag.Len())

	main := dom.MustEl("main", "", "")
	nodes := frag.Nodes()
	frag.MoveTo(main)
	require.Zero(t, frag.Len())
	require.True(t, dom.IsAttached(nodes[1], main))
}

func TestQueriesAndRemove(t *testing.T) {
	root := dom.MustEl("div", "", "")
	target := dom.Attr(dom.MustEl("span", "hit", "x"), "id", "target")
	dom.Append(root, dom.MustEl("p", "hit", ""), dom.Append(dom.MustEl("div", "", ""), target))

	require.Same(t, target, dom.FindByID(root, "target"))
	require.Len(t, dom.FindAll(root, dom.ByClass("hit")), 2)

	dom.Remove(target)
	require.Nil(t, dom.FindByID(root, "target"))
	require.False(t, dom.IsAttached(target, root))
	dom.Remove(target)
}

func TestHumanizeSlug(t *testing.T) {
	require.Equal(t, "Property Management", dom.HumanizeSlug("property-management"))
}

func TestHumanizeSlugConcurrent(t *testing.T) {
	slugs := []string{"property-management", "home-buying", "investment-advisory", "relocation"}
	want := []string{"Property Management", "Home Buying", "Investment Advisory", "Relocation"}

	const workers = 16
	got := make([][]string, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got[w] = append(got[w], dom.HumanizeSlug(slugs[i%len(slugs)]))
			}
		}(w)
	}
	wg.Wait()

	for w := range got {
		for i, title := range got[w] {
			require.Equal(t, want[i%len(want)], title)
		}
	}
}

func TestNavListAndList(t *testing.T) {
	doc := testutil.RenderNodes(t,
		dom.NavList("Main", "site-nav", []dom.NavLink{{Label: "Home", Href: "/"}, {Label: "About", Href: "/about", Current: true}}),
		dom.List(true, "steps", []string{"One", "Two"}),
	)
	require.Equal(t, "About", doc.Find(`nav[aria-label="Main"] a[aria-current="page"]`).Text())
	require.Equal(t, 2, doc.Find("ol.steps li").Length())
}

func TestSetTextAndTextContent(t *testing.T) {
	p := dom.MustEl("p", "", "old")
	dom.Append(p, dom.MustEl("b", "", "bold"))
	require.Equal(t, "oldbold", dom.TextContent(p))
	dom.SetText(p, "new")
	require.Equal(t, "new", dom.TextContent(p))
	require.Equal(t, html.TextNode, p.FirstChild.Type)
}
