package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/google/uuid"
)

type CreatePropertyUseCase struct {
	storage port.PropertyStoragePort
	now     func() time.Time
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage, now: time.Now}
}

// Execute создает объект; ID генерируется, если не задан
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, prop domain.Property) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "CreateProperty"})

	prop = normalizeProperty(prop)
	if err := validateProperty(prop); err != nil {
		ucLogger.Warn("Property rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	if prop.ID == "" {
		prop.ID = uuid.New().String()
	}
	now := uc.now().UTC()
	prop.CreatedAt = now
	prop.UpdatedAt = now

	if err := uc.storage.Create(ctx, prop); err != nil {
		ucLogger.Error("Failed to create property", err, port.Fields{"property_id": prop.ID})
		return nil, err
	}

	ucLogger.Info("Property created", port.Fields{"property_id": prop.ID})
	return &prop, nil
}

func normalizeProperty(p domain.Property) domain.Property {
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Location = strings.TrimSpace(p.Location)
	p.Type = strings.TrimSpace(p.Type)
	p.Price = strings.TrimSpace(p.Price)
	if p.Price == "" && p.PriceValue > 0 {
		p.Price = domain.FormatPrice(p.PriceValue)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return p
}

func validateProperty(p domain.Property) error {
	fields := map[string]string{}
	if p.Title == "" {
		fields["title"] = "is required"
	}
	if p.Location == "" {
		fields["location"] = "is required"
	}
	if p.Type == "" {
		fields["type"] = "is required"
	}
	if p.PriceValue < 0 {
		fields["priceValue"] = "must not be negative"
	}
	if p.Beds < 0 {
		fields["beds"] = "must not be negative"
	}
	if p.Baths < 0 {
		fields["baths"] = "must not be negative"
	}
	if p.Sqft < 0 {
		fields["sqft"] = "must not be negative"
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		fields["latitude"] = "must be within [-90, 90]"
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		fields["longitude"] = "must be within [-180, 180]"
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}
