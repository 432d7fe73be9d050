package domain

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{7,20}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Сообщения для полей формы; ключ: json-имя поля
var inquiryMessages = map[string]map[string]string{
	"name": {
		"required": "Please enter your name.",
		"max":      "Name is too long.",
	},
	"email": {
		"required": "Please enter your email address.",
		"email":    "Please enter a valid email address.",
		"max":      "Email address is too long.",
	},
	"phone": {
		"phone": "Please enter a valid phone number.",
	},
	"message": {
		"required": "Please enter a message.",
		"max":      "Message is too long.",
	},
}

// NormalizeInquiry обрезает пробелы во всех текстовых полях
func NormalizeInquiry(in Inquiry) Inquiry {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	in.PropertyTitle = strings.TrimSpace(in.PropertyTitle)
	return in
}

// ValidateInquiry возвращает *ValidationError с сообщением для каждого неверного поля или nil
func ValidateInquiry(in Inquiry) error {
	err := getValidator().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		msg := "Invalid value."
		if byTag, ok := inquiryMessages[field]; ok {
			if m, ok := byTag[fe.Tag()]; ok {
				msg = m
			}
		}
		fields[field] = msg
	}
	return NewValidationError(fields)
}
