package rest

import (
	"bytes"
	"context"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/pages"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

const maxFormBytes = 64 << 10

// HealthCheck проверяет зависимости сервиса (например, пинг БД)
type HealthCheck func(ctx context.Context) error

// PageHandler отдает HTML-страницы сайта
type PageHandler struct {
	site   *pages.Site
	health HealthCheck
}

func NewPageHandler(site *pages.Site, health HealthCheck) *PageHandler {
	return &PageHandler{site: site, health: health}
}

// render собирает документ, прогоняет страницу и пишет HTML целиком.
// Ошибка страницы превращается в страницу 500.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, p pages.Page) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"component": "PageHandler",
		"path":      r.URL.Path,
	})

	doc, err := h.site.NewDocument(r.URL.Path)
	if err != nil {
		logger.Error("Failed to build document shell", err, nil)
		h.renderError(w, r)
		return
	}
	code, err := pages.Render(r.Context(), doc, p)
	if err != nil {
		logger.Error("Page render failed", err, nil)
		h.renderError(w, r)
		return
	}
	h.write(w, doc, code, logger)
}

// renderError отдает страницу 500, а если не собралась и она, то простой текст
func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"component": "PageHandler"})

	doc, err := h.site.NewDocument(r.URL.Path)
	if err == nil {
		var code int
		if code, err = pages.Render(r.Context(), doc, h.site.Error()); err == nil {
			h.write(w, doc, code, logger)
			return
		}
	}
	logger.Error("Error page render failed", err, nil)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *PageHandler) write(w http.ResponseWriter, doc *seo.Document, code int, logger port.LoggerPort) {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		logger.Error("Failed to serialize document", err, nil)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

// RecoverMiddleware ловит панику обработчика страницы и отдает страницу 500
func (h *PageHandler) RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			contextkeys.LoggerFromContext(r.Context()).Error("Panic while serving page", nil, port.Fields{
				"component": "PageHandler",
				"panic":     rec,
				"stack":     string(debug.Stack()),
			})
			h.renderError(w, r)
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Home())
}

func (h *PageHandler) Properties(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Properties(r.URL.Query()))
}

func (h *PageHandler) Property(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Property(chi.URLParam(r, "propertyID")))
}

func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Services())
}

func (h *PageHandler) Service(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Service(chi.URLParam(r, "slug")))
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.About())
}

func (h *PageHandler) Careers(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Careers(r.URL.Query()))
}

func (h *PageHandler) Job(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Job(chi.URLParam(r, "slug")))
}

func (h *PageHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Testimonials(r.URL.Query()))
}

func (h *PageHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.FAQ())
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Contact())
}

// SubmitContact обрабатывает POST /contact (обычная HTML-форма)
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		contextkeys.LoggerFromContext(r.Context()).Warn("Invalid contact form body", port.Fields{"error": err.Error()})
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	h.render(w, r, h.site.ContactSubmit(r.PostForm))
}

// Legal отдает markdown-документ; slug берется из последнего сегмента пути
func (h *PageHandler) Legal(w http.ResponseWriter, r *http.Request) {
	slug := strings.Trim(r.URL.Path, "/")
	h.render(w, r, h.site.Legal(slug))
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.NotFound())
}

// Sitemap отдает sitemap.xml. При сбое API карта отдается без объектов.
func (h *PageHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Sitemap"})

	urls, err := h.site.SitemapURLs(r.Context())
	if err != nil {
		logger.Warn("Sitemap built without properties", port.Fields{"error": err.Error()})
	}
	var buf bytes.Buffer
	if err := seo.WriteSitemap(&buf, h.site.BaseURL, urls); err != nil {
		logger.Error("Failed to write sitemap", err, nil)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *PageHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(seo.Robots(h.site.BaseURL)))
}

// Healthz: 200 {"status":"ok"} или 503, если проверка не прошла
func (h *PageHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health(r.Context()); err != nil {
			contextkeys.LoggerFromContext(r.Context()).Error("Health check failed", err, nil)
			RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
