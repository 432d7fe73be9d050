package rest

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/adapters/site_api_client"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/content"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/usecase"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/pages"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/testutil"
)

type memoryStorage struct {
	mu    sync.Mutex
	items map[string]domain.Property
	err   error
}

func newMemoryStorage(props ...domain.Property) *memoryStorage {
	s := &memoryStorage{items: map[string]domain.Property{}}
	for _, p := range props {
		s.items[p.ID] = p
	}
	return s
}

func (s *memoryStorage) List(_ context.Context, q domain.PropertyQuery) ([]domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Property
	for _, p := range s.items {
		if q.Published != nil && p.Published != *q.Published {
			continue
		}
		if q.Featured != nil && p.Featured != *q.Featured {
			continue
		}
		if q.Type != "" && !strings.EqualFold(p.Type, q.Type) {
			continue
		}
		if q.Near != "" && !strings.HasPrefix(p.Geohash, q.Near) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if q.Offset > 0 {
		if q.Offset >= len(out) {
			return nil, nil
		}
		out = out[q.Offset:]
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *memoryStorage) GetByID(_ context.Context, id string) (*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.items[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (s *memoryStorage) Create(_ context.Context, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[p.ID]; ok {
		return domain.ErrPropertyExists
	}
	s.items[p.ID] = p
	return nil
}

func (s *memoryStorage) Update(_ context.Context, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	s.items[p.ID] = p
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memoryStorage) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items), nil
}

type memoryInquiries struct {
	mu    sync.Mutex
	saved []domain.Inquiry
}

func (r *memoryInquiries) Save(_ context.Context, in domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, in)
	return nil
}

func (r *memoryInquiries) all() []domain.Inquiry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Inquiry(nil), r.saved...)
}

type testEnv struct {
	storage   *memoryStorage
	inquiries *memoryInquiries
	site      *pages.Site
	server    *httptest.Server
}

// newTestEnv поднимает API и сайт в одном процессе; страницы ходят в API по HTTP
func newTestEnv(t *testing.T, health HealthCheck) *testEnv {
	t.Helper()

	storage := newMemoryStorage(catalog.Properties()...)
	inquiries := &memoryInquiries{}

	site := &pages.Site{
		Company: catalog.Company,
		BaseURL: "https://realhouse.example",
		Content: content.NewStore("../../../content", time.Minute),
		Now:     func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
	}

	logger := testutil.NewNopLogger()
	srv := NewServer("0",
		NewPropertyHandler(
			usecase.NewListPropertiesUseCase(storage),
			usecase.NewGetPropertyUseCase(storage),
			usecase.NewCreatePropertyUseCase(storage),
			usecase.NewUpdatePropertyUseCase(storage),
			usecase.NewDeletePropertyUseCase(storage),
		),
		NewInquiryHandler(usecase.NewSubmitInquiryUseCase(inquiries, nil)),
		NewPageHandler(site, health),
		[]string{"https://admin.realhouse.example"},
		logger,
	)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client := site_api_client.NewClient(ts.URL+"/api/v1", ts.Client())
	site.Listings = client
	site.Inquiries = client

	return &testEnv{storage: storage, inquiries: inquiries, site: site, server: ts}
}
