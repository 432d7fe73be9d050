package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
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
		if q.Type != "" && p.Type != q.Type {
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
	p, ok := s.items[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (s *memoryStorage) Create(_ context.Context, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
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
	return len(s.items), s.err
}

type recordingInquiries struct {
	saved     []domain.Inquiry
	published []domain.Inquiry
	saveErr   error
	notifyErr error
}

func (r *recordingInquiries) Save(_ context.Context, in domain.Inquiry) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, in)
	return nil
}

func (r *recordingInquiries) InquiryCreated(_ context.Context, in domain.Inquiry) error {
	r.published = append(r.published, in)
	return r.notifyErr
}

var errBoom = errors.New("boom")
