package site_api_client

import (
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

// PropertyDTO: объект в ответе CRUD API
type PropertyDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Address     string    `json:"address"`
	Price       string    `json:"price"`
	PriceValue  int64     `json:"priceValue"`
	Type        string    `json:"type"`
	Beds        int       `json:"beds"`
	Baths       float64   `json:"baths"`
	Sqft        int       `json:"sqft"`
	YearBuilt   int       `json:"yearBuilt"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Features    []string  `json:"features"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Geohash     string    `json:"geohash"`
	Published   bool      `json:"published"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (d PropertyDTO) toDomain() domain.Property {
	return domain.Property{
		ID:          d.ID,
		Title:       d.Title,
		Location:    d.Location,
		Address:     d.Address,
		Price:       d.Price,
		PriceValue:  d.PriceValue,
		Type:        d.Type,
		Beds:        d.Beds,
		Baths:       d.Baths,
		Sqft:        d.Sqft,
		YearBuilt:   d.YearBuilt,
		Description: d.Description,
		Images:      d.Images,
		Features:    d.Features,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		Geohash:     d.Geohash,
		Published:   d.Published,
		Featured:    d.Featured,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// InquiryRequestDTO: тело POST /inquiries
type InquiryRequestDTO struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Message       string `json:"message"`
	PropertyID    string `json:"property_id,omitempty"`
	PropertyTitle string `json:"property_title,omitempty"`
}

// InquiryResponseDTO: конверт {success, message}
type InquiryResponseDTO struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorDTO struct {
	Error string `json:"error"`
}
