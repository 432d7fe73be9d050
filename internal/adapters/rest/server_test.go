package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/constants"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/testutil"
)

func doRequest(t *testing.T, env *testEnv, method, path, body string, header http.Header) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, env.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func jsonHeader() http.Header {
	return http.Header{"Content-Type": {"application/json"}}
}

func TestListPropertiesAPI(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodGet, "/api/v1/properties?featured=true&limit=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	var props []PropertyResponse
	require.NoError(t, json.Unmarshal(body, &props))
	require.Len(t, props, 2)
	for _, p := range props {
		require.True(t, p.Featured)
	}
}

func TestListPropertiesRejectsBadParams(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, _ := doRequest(t, env, http.MethodGet, "/api/v1/properties?published=perhaps", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, env, http.MethodGet, "/api/v1/properties?limit=-1", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListPropertiesStorageFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	env.storage.err = errors.New("connection reset")

	resp, body := doRequest(t, env, http.MethodGet, "/api/v1/properties", "", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.JSONEq(t, `{"error":"Failed to retrieve properties"}`, string(body))
}

func TestGetPropertyAPI(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodGet, "/api/v1/properties/1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p PropertyResponse
	require.NoError(t, json.Unmarshal(body, &p))
	require.Equal(t, "Modern Lakeside Villa", p.Title)

	resp, body = doRequest(t, env, http.MethodGet, "/api/v1/properties/missing", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"error":"Property not found"}`, string(body))
}

func TestCreateUpdateDeleteProperty(t *testing.T) {
	env := newTestEnv(t, nil)

	create := `{"id":"new-1","title":"Garden Flat","location":"Austin, TX","price":"","priceValue":410000,
		"type":"Condo","beds":2,"baths":1,"sqft":900,"description":"Ground floor flat with a garden."}`
	resp, body := doRequest(t, env, http.MethodPost, "/api/v1/properties", create, jsonHeader())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.JSONEq(t, `{"id":"new-1"}`, string(body))

	stored, err := env.storage.GetByID(context.Background(), "new-1")
	require.NoError(t, err)
	require.Equal(t, "$410,000", stored.Price)

	resp, body = doRequest(t, env, http.MethodPut, "/api/v1/properties/new-1", `{"title":"Garden Flat with Patio"}`, jsonHeader())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated PropertyResponse
	require.NoError(t, json.Unmarshal(body, &updated))
	require.Equal(t, "Garden Flat with Patio", updated.Title)
	require.Equal(t, 2, updated.Beds)

	resp, _ = doRequest(t, env, http.MethodPut, "/api/v1/properties/nope", `{"title":"X"}`, jsonHeader())
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doRequest(t, env, http.MethodDelete, "/api/v1/properties/new-1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"success":true}`, string(body))

	resp, _ = doRequest(t, env, http.MethodDelete, "/api/v1/properties/new-1", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreatePropertyDuplicateIDIsConflict(t *testing.T) {
	env := newTestEnv(t, nil)

	dup := `{"id":"1","title":"Another Villa","location":"Austin, TX","priceValue":900000,
		"type":"Villa","beds":4,"baths":3,"sqft":3000,"description":"Same id as an existing listing."}`
	resp, body := doRequest(t, env, http.MethodPost, "/api/v1/properties", dup, jsonHeader())
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.JSONEq(t, `{"error":"Property with this id already exists"}`, string(body))

	stored, err := env.storage.GetByID(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "Modern Lakeside Villa", stored.Title)
}

func TestCreatePropertyValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodPost, "/api/v1/properties", `{"title":"Only a title"}`, jsonHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var verr ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &verr))
	require.Equal(t, "Validation failed", verr.Error)
	require.Contains(t, verr.Fields["body"], "location")

	resp, _ = doRequest(t, env, http.MethodPost, "/api/v1/properties", `{not json`, jsonHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitInquiryAPI(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodPost, "/api/v1/inquiries",
		`{"name":"Ana","email":"ana@example.com","message":"Is the villa still available?","property_id":"1"}`, jsonHeader())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok InquiryResponse
	require.NoError(t, json.Unmarshal(body, &ok))
	require.True(t, ok.Success)
	require.Contains(t, ok.Message, "Ana")

	saved := env.inquiries.all()
	require.Len(t, saved, 1)
	require.Equal(t, "1", saved[0].PropertyID)
	require.NotEmpty(t, saved[0].ID)

	resp, body = doRequest(t, env, http.MethodPost, "/api/v1/inquiries", `{"name":"","email":"nope","message":""}`, jsonHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var rejected InquiryResponse
	require.NoError(t, json.Unmarshal(body, &rejected))
	require.False(t, rejected.Success)
	require.Equal(t, inquiryRejectedMessage, rejected.Message)
	require.Contains(t, rejected.Fields, "email")
	require.Len(t, env.inquiries.all(), 1)
}

func TestTraceIDHeader(t *testing.T) {
	env := newTestEnv(t, nil)

	const trace = "4f1c2d0e-9a8b-4c7d-8e6f-5a4b3c2d1e0f"
	resp, _ := doRequest(t, env, http.MethodGet, "/api/v1/properties/1", "", http.Header{constants.TraceIDHeader: {trace}})
	require.Equal(t, trace, resp.Header.Get(constants.TraceIDHeader))

	resp, _ = doRequest(t, env, http.MethodGet, "/api/v1/properties/1", "", http.Header{constants.TraceIDHeader: {"not-a-uuid"}})
	require.NotEqual(t, "not-a-uuid", resp.Header.Get(constants.TraceIDHeader))
	require.NotEmpty(t, resp.Header.Get(constants.TraceIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, _ := doRequest(t, env, http.MethodOptions, "/api/v1/properties", "", http.Header{
		"Origin":                        {"https://admin.realhouse.example"},
		"Access-Control-Request-Method": {"POST"},
	})
	require.Equal(t, "https://admin.realhouse.example", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, _ = doRequest(t, env, http.MethodGet, "/api/v1/properties", "", http.Header{"Origin": {"https://evil.example"}})
	require.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestUnknownAPIRouteIsJSON(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodGet, "/api/v1/nothing-here", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"error":"Not found"}`, string(body))
}

func TestHomePageRendersFeaturedFromAPI(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 3, doc.Find("[data-property-id]").Length())
	require.Equal(t, 1, doc.Find("main#main-content").Length())
}

func TestPropertyPageStatuses(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodGet, "/properties/1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Modern Lakeside Villa", doc.Find("h1").Text())
	require.Equal(t, "https://realhouse.example/properties/1", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))

	resp, _ = doRequest(t, env, http.MethodGet, "/properties/404-me", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	env.storage.err = errors.New("db down")
	resp, _ = doRequest(t, env, http.MethodGet, "/properties/1", "", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestPropertiesPageFindsListingsPastFirstAPIPage(t *testing.T) {
	env := newTestEnv(t, nil)
	for i := 0; i < 250; i++ {
		typ := "Condo"
		if i >= 200 {
			typ = "Villa"
		}
		require.NoError(t, env.storage.Create(context.Background(), domain.Property{
			ID:         fmt.Sprintf("z-%03d", i),
			Title:      fmt.Sprintf("%s listing %d", typ, i),
			Location:   "Austin, TX",
			Price:      "$500,000",
			PriceValue: 500000,
			Type:       typ,
			Beds:       2,
			Published:  true,
		}))
	}

	resp, body := doRequest(t, env, http.MethodGet, "/properties?type=Villa", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 50, doc.Find(`.property-card[data-property-id^="z-"]`).Length())
	require.Equal(t, 1, doc.Find(`.property-card[data-property-id="z-249"]`).Length())

	resp, _ = doRequest(t, env, http.MethodGet, "/api/v1/properties?offset=-3", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStaticPagesRender(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, path := range []string{"/properties", "/services", "/about", "/careers", "/testimonials", "/faq", "/contact", "/privacy", "/terms"} {
		resp, body := doRequest(t, env, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		doc := testutil.ParseHTML(t, body)
		require.Equal(t, 1, doc.Find("h1").Length(), path)
	}
}

func TestUnknownPageIs404(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodGet, "/no/such/page", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "noindex, follow", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
}

func TestContactFormPostRoundTrip(t *testing.T) {
	env := newTestEnv(t, nil)
	form := http.Header{"Content-Type": {"application/x-www-form-urlencoded"}}

	values := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "message": {"Call me"}, "property_id": {"3"}}
	resp, body := doRequest(t, env, http.MethodPost, "/contact", values.Encode(), form)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := testutil.ParseHTML(t, body)
	require.Contains(t, doc.Find("#form-status").Text(), "Thank you, Ana!")
	require.Equal(t, "", doc.Find("#contact-name").AttrOr("value", ""))
	require.Len(t, env.inquiries.all(), 1)

	values = url.Values{"name": {"Ana"}, "email": {"not-an-email"}, "message": {"Call me"}}
	resp, body = doRequest(t, env, http.MethodPost, "/contact", values.Encode(), form)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	doc = testutil.ParseHTML(t, body)
	require.Equal(t, "true", doc.Find("#contact-email").AttrOr("aria-invalid", ""))
	require.Len(t, env.inquiries.all(), 1)
}

func TestRobotsAndSitemap(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := doRequest(t, env, http.MethodGet, "/robots.txt", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "Sitemap: https://realhouse.example/sitemap.xml")

	resp, body = doRequest(t, env, http.MethodGet, "/sitemap.xml", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "<loc>https://realhouse.example/properties/1</loc>")
	require.Contains(t, string(body), "<loc>https://realhouse.example/privacy</loc>")
}

func TestSitemapSurvivesAPIFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	env.storage.err = errors.New("db down")

	resp, body := doRequest(t, env, http.MethodGet, "/sitemap.xml", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotContains(t, string(body), "/properties/1<")
	require.Contains(t, string(body), "<loc>https://realhouse.example/services</loc>")
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, nil)
	resp, body := doRequest(t, env, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, string(body))

	down := newTestEnv(t, func(context.Context) error { return errors.New("ping failed") })
	resp, body = doRequest(t, down, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.JSONEq(t, `{"status":"unavailable"}`, string(body))
}

func TestRecoverMiddlewareRendersErrorPage(t *testing.T) {
	env := newTestEnv(t, nil)
	h := NewPageHandler(env.site, nil)
	logger := testutil.NewRecordingLogger()

	handler := LoggerMiddleware(logger)(h.RecoverMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "Something went wrong", doc.Find("h1").Text())
	require.Contains(t, logger.Messages("error"), "Panic while serving page")
}
