package port

import (
	"context"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

// PropertyReaderPort: то, что нужно страницам сайта от CRUD API
type PropertyReaderPort interface {
	ListProperties(ctx context.Context, query domain.PropertyQuery) ([]domain.Property, error)
	// GetProperty возвращает domain.ErrPropertyNotFound для 404
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
}

// InquirySenderPort отправляет заявку с контактной формы.
// Ошибка означает сетевой сбой или не-2xx ответ; отказ валидации приходит как Success=false.
type InquirySenderPort interface {
	SendInquiry(ctx context.Context, inquiry domain.Inquiry) (*domain.InquiryReceipt, error)
}
