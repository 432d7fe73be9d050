package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/google/uuid"
)

type SubmitInquiryUseCase struct {
	repo     port.InquiryRepositoryPort
	notifier port.InquiryNotifierPort
	now      func() time.Time
}

// NewSubmitInquiryUseCase; notifier может быть nil, тогда события не публикуются
func NewSubmitInquiryUseCase(repo port.InquiryRepositoryPort, notifier port.InquiryNotifierPort) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{repo: repo, notifier: notifier, now: time.Now}
}

// Execute валидирует и сохраняет заявку. Ошибка валидации: *domain.ValidationError.
func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, inquiry domain.Inquiry) (*domain.InquiryReceipt, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "SubmitInquiry"})

	inquiry = domain.NormalizeInquiry(inquiry)
	if err := domain.ValidateInquiry(inquiry); err != nil {
		ucLogger.Warn("Inquiry rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	inquiry.ID = uuid.New().String()
	inquiry.CreatedAt = uc.now().UTC()

	if err := uc.repo.Save(ctx, inquiry); err != nil {
		ucLogger.Error("Failed to save inquiry", err, nil)
		return nil, fmt.Errorf("failed to save inquiry: %w", err)
	}

	// Заявка уже сохранена; сбой брокера только логируется, повторов нет
	if uc.notifier != nil {
		if err := uc.notifier.InquiryCreated(ctx, inquiry); err != nil {
			ucLogger.Error("Failed to publish inquiry event", err, port.Fields{"inquiry_id": inquiry.ID})
		}
	}

	ucLogger.Info("Inquiry accepted", port.Fields{"inquiry_id": inquiry.ID, "property_id": inquiry.PropertyID})
	return &domain.InquiryReceipt{
		Success: true,
		Message: fmt.Sprintf("Thank you, %s! An agent will get back to you within one business day.", inquiry.Name),
	}, nil
}
