package domain

import "time"

// Inquiry — заявка с контактной формы или со страницы объекта.
// Теги validate проверяются go-playground/validator; "phone": собственное правило.
type Inquiry struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name" validate:"required,max=120"`
	Email         string    `json:"email" validate:"required,email,max=254"`
	Phone         string    `json:"phone" validate:"omitempty,phone"`
	Message       string    `json:"message" validate:"required,max=5000"`
	PropertyID    string    `json:"property_id,omitempty" validate:"omitempty,max=64"`
	PropertyTitle string    `json:"property_title,omitempty" validate:"omitempty,max=200"`
	CreatedAt     time.Time `json:"created_at"`
}

// InquiryReceipt: конверт ответа {success, message}
type InquiryReceipt struct {
	Success bool
	Message string
}
