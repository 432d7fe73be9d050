package pages

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/content"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

var errUpstream = errors.New("upstream unavailable")

type fakeReader struct {
	props   []domain.Property
	listErr error
	getErr  error
	queries []domain.PropertyQuery
}

func newFakeReader() *fakeReader {
	return &fakeReader{props: catalog.Properties()}
}

func (f *fakeReader) ListProperties(ctx context.Context, q domain.PropertyQuery) ([]domain.Property, error) {
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Property
	skipped := 0
	for _, p := range f.props {
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
		if skipped < q.Offset {
			skipped++
			continue
		}
		out = append(out, p)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeReader) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.props {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

type fakeSender struct {
	receipt *domain.InquiryReceipt
	err     error
	sent    []domain.Inquiry
}

func (f *fakeSender) SendInquiry(ctx context.Context, in domain.Inquiry) (*domain.InquiryReceipt, error) {
	f.sent = append(f.sent, in)
	if f.err != nil {
		return nil, f.err
	}
	if f.receipt != nil {
		return f.receipt, nil
	}
	return &domain.InquiryReceipt{Success: true, Message: "Thank you, " + in.Name + "!"}, nil
}

func newTestSite() (*Site, *fakeReader, *fakeSender) {
	reader := newFakeReader()
	sender := &fakeSender{}
	return &Site{
		Company:   catalog.Company,
		BaseURL:   "https://realhouse.example",
		Listings:  reader,
		Inquiries: sender,
		Content:   content.NewStore("../../content", time.Minute),
		Now:       func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
	}, reader, sender
}
