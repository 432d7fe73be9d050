package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(listenPort string,
	propertyHandlers *PropertyHandler,
	inquiryHandlers *InquiryHandler,
	pageHandlers *PageHandler,
	allowedOrigins []string,
	baseLogger port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger))

	r.Get("/healthz", pageHandlers.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
			ExposedHeaders:   []string{"X-Trace-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.Get("/properties", propertyHandlers.ListProperties)
		r.Post("/properties", propertyHandlers.CreateProperty)
		r.Get("/properties/{propertyID}", propertyHandlers.GetProperty)
		r.Put("/properties/{propertyID}", propertyHandlers.UpdateProperty)
		r.Delete("/properties/{propertyID}", propertyHandlers.DeleteProperty)

		r.Post("/inquiries", inquiryHandlers.SubmitInquiry)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			WriteJSONError(w, http.StatusNotFound, "Not found")
		})
	})

	// страницы сайта
	r.Group(func(r chi.Router) {
		r.Use(pageHandlers.RecoverMiddleware)

		r.Get("/robots.txt", pageHandlers.Robots)
		r.Get("/sitemap.xml", pageHandlers.Sitemap)

		r.Get("/", pageHandlers.Home)
		r.Get("/properties", pageHandlers.Properties)
		r.Get("/properties/{propertyID}", pageHandlers.Property)
		r.Get("/services", pageHandlers.Services)
		r.Get("/services/{slug}", pageHandlers.Service)
		r.Get("/about", pageHandlers.About)
		r.Get("/careers", pageHandlers.Careers)
		r.Get("/careers/{slug}", pageHandlers.Job)
		r.Get("/testimonials", pageHandlers.Testimonials)
		r.Get("/faq", pageHandlers.FAQ)
		r.Get("/contact", pageHandlers.Contact)
		r.Post("/contact", pageHandlers.SubmitContact)
		r.Get("/privacy", pageHandlers.Legal)
		r.Get("/terms", pageHandlers.Legal)
	})

	r.NotFound(pageHandlers.RecoverMiddleware(http.HandlerFunc(pageHandlers.NotFound)).ServeHTTP)

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + listenPort,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// Handler нужен тестам, чтобы гонять роутер через httptest
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
