package usecases_port

import (
	"context"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

type SubmitInquiryUseCase interface {
	Execute(ctx context.Context, inquiry domain.Inquiry) (*domain.InquiryReceipt, error)
}
