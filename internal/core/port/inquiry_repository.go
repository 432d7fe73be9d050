package port

import (
	"context"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

type InquiryRepositoryPort interface {
	Save(ctx context.Context, inquiry domain.Inquiry) error
}

// InquiryNotifierPort публикует событие о новой заявке (CRM, почтовые уведомления)
type InquiryNotifierPort interface {
	InquiryCreated(ctx context.Context, inquiry domain.Inquiry) error
}
