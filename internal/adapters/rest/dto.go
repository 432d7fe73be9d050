package rest

import (
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

// PropertyResponse: объект в ответах CRUD API
type PropertyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Address     string    `json:"address,omitempty"`
	Price       string    `json:"price"`
	PriceValue  int64     `json:"priceValue"`
	Type        string    `json:"type"`
	Beds        int       `json:"beds"`
	Baths       float64   `json:"baths"`
	Sqft        int       `json:"sqft"`
	YearBuilt   int       `json:"yearBuilt,omitempty"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Features    []string  `json:"features"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Geohash     string    `json:"geohash,omitempty"`
	Published   bool      `json:"published"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	images, features := p.Images, p.Features
	if images == nil {
		images = []string{}
	}
	if features == nil {
		features = []string{}
	}
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Address:     p.Address,
		Price:       p.Price,
		PriceValue:  p.PriceValue,
		Type:        p.Type,
		Beds:        p.Beds,
		Baths:       p.Baths,
		Sqft:        p.Sqft,
		YearBuilt:   p.YearBuilt,
		Description: p.Description,
		Images:      images,
		Features:    features,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Geohash:     p.Geohash,
		Published:   p.Published,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PropertyCreateRequest: тело POST /properties; обязательные поля проверяет JSON Schema
type PropertyCreateRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Address     string   `json:"address"`
	Price       string   `json:"price"`
	PriceValue  int64    `json:"priceValue"`
	Type        string   `json:"type"`
	Beds        int      `json:"beds"`
	Baths       float64  `json:"baths"`
	Sqft        int      `json:"sqft"`
	YearBuilt   int      `json:"yearBuilt"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	// nil: опубликован по умолчанию
	Published *bool `json:"published"`
	Featured  bool  `json:"featured"`
}

func (req PropertyCreateRequest) toDomain() domain.Property {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	return domain.Property{
		ID:          req.ID,
		Title:       req.Title,
		Location:    req.Location,
		Address:     req.Address,
		Price:       req.Price,
		PriceValue:  req.PriceValue,
		Type:        req.Type,
		Beds:        req.Beds,
		Baths:       req.Baths,
		Sqft:        req.Sqft,
		YearBuilt:   req.YearBuilt,
		Description: req.Description,
		Images:      req.Images,
		Features:    req.Features,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Published:   published,
		Featured:    req.Featured,
	}
}

// PropertyUpdateRequest: частичное тело PUT /properties/{id}
type PropertyUpdateRequest struct {
	Title       *string   `json:"title"`
	Location    *string   `json:"location"`
	Address     *string   `json:"address"`
	Price       *string   `json:"price"`
	PriceValue  *int64    `json:"priceValue"`
	Type        *string   `json:"type"`
	Beds        *int      `json:"beds"`
	Baths       *float64  `json:"baths"`
	Sqft        *int      `json:"sqft"`
	YearBuilt   *int      `json:"yearBuilt"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	Features    *[]string `json:"features"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Published   *bool     `json:"published"`
	Featured    *bool     `json:"featured"`
}

func (req PropertyUpdateRequest) toPatch() domain.PropertyPatch {
	return domain.PropertyPatch{
		Title:       req.Title,
		Location:    req.Location,
		Address:     req.Address,
		Price:       req.Price,
		PriceValue:  req.PriceValue,
		Type:        req.Type,
		Beds:        req.Beds,
		Baths:       req.Baths,
		Sqft:        req.Sqft,
		YearBuilt:   req.YearBuilt,
		Description: req.Description,
		Images:      req.Images,
		Features:    req.Features,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Published:   req.Published,
		Featured:    req.Featured,
	}
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// InquiryRequest: тело POST /inquiries
type InquiryRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Message       string `json:"message"`
	PropertyID    string `json:"property_id"`
	PropertyTitle string `json:"property_title"`
}

func (req InquiryRequest) toDomain() domain.Inquiry {
	return domain.Inquiry{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		PropertyID:    req.PropertyID,
		PropertyTitle: req.PropertyTitle,
	}
}

// InquiryResponse: конверт {success, message}; fields заполняется при 400
type InquiryResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}
